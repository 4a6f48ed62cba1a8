package meshcore

import (
	"testing"

	"github.com/azureblue/chunkmesher/pkg/meshbuf"
)

// TestEmitFace_WritesSixVerticesPerFace checks the fixed per-vertex
// attribute fields (direction, texture, lower) and the vertex count,
// independent of the winding order chosen for anti-banding.
func TestEmitFace_WritesSixVerticesPerFace(t *testing.T) {
	solidBuf := make([]uint32, 12)
	waterBuf := make([]uint32, 12)
	solid := meshbuf.NewOutputView(solidBuf)
	water := meshbuf.NewOutputView(waterBuf)

	emitFace(UP, 1, 1, 1, 1, 1, 42, 0, false, &solid, &water)

	if solid.Len() != 12 {
		t.Fatalf("got %d words, want 12 (6 vertices x 2 words)", solid.Len())
	}
	if water.Len() != 0 {
		t.Fatalf("non-water face leaked %d words into the water stream", water.Len())
	}
	words := solid.Words()
	for v := 0; v < 6; v++ {
		w1 := words[v*2+1]
		if Direction((w1>>16)&0x7) != UP {
			t.Fatalf("vertex %d: direction mismatch", v)
		}
		if uint16((w1>>19)&0xFF) != 42 {
			t.Fatalf("vertex %d: texture mismatch", v)
		}
		if (w1>>29)&0x3 != 0 {
			t.Fatalf("vertex %d: lower should be 0 for a non-water face", v)
		}
	}
}

func TestEmitFace_WaterFaceRoutesToWaterStreamWithLoweredTop(t *testing.T) {
	solidBuf := make([]uint32, 12)
	waterBuf := make([]uint32, 12)
	solid := meshbuf.NewOutputView(solidBuf)
	water := meshbuf.NewOutputView(waterBuf)

	emitFace(UP, 1, 1, 1, 1, 1, waterTexture, 0, false, &solid, &water)

	if solid.Len() != 0 {
		t.Fatalf("water face leaked %d words into the solid stream", solid.Len())
	}
	if water.Len() != 12 {
		t.Fatalf("got %d words in water stream, want 12", water.Len())
	}
	w1 := water.Words()[1]
	if (w1>>29)&0x3 != 2 {
		t.Fatalf("water UP face: got lower %d, want 2", (w1>>29)&0x3)
	}
}

func TestEmitFace_NonUpWaterFaceIsNotLowered(t *testing.T) {
	// emitFace itself does not filter by direction; faceCandidate is
	// responsible for only calling it on UP for water blocks. This test
	// checks that emitFace applies lowering to UP only: a non-UP water
	// face passed to it directly carries lower=0.
	solidBuf := make([]uint32, 12)
	waterBuf := make([]uint32, 12)
	solid := meshbuf.NewOutputView(solidBuf)
	water := meshbuf.NewOutputView(waterBuf)

	emitFace(FRONT, 1, 1, 1, 1, 1, waterTexture, 0, false, &solid, &water)

	w1 := water.Words()[1]
	if (w1>>29)&0x3 != 0 {
		t.Fatalf("non-UP water face: got lower %d, want 0", (w1>>29)&0x3)
	}
}
