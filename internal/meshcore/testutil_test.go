package meshcore

import (
	"github.com/azureblue/chunkmesher/internal/registry"
	"github.com/azureblue/chunkmesher/pkg/meshbuf"
)

func newHaloGrid() []uint32 {
	return make([]uint32, ChunkDim*ChunkDim*ChunkDim)
}

func newTestChunkView(data []uint32) (meshbuf.ChunkView, error) {
	return meshbuf.NewChunkView(data, ChunkDim)
}

func gridIndex(x, y, h int) int {
	return (h*ChunkDim+y)*ChunkDim + x
}

func setBlock(data []uint32, x, y, h int, blockType registry.BlockType, solid bool) {
	id := uint32(blockType)
	if solid {
		id |= registry.SolidBit
	}
	data[gridIndex(x, y, h)] = id
}

type decodedFace struct {
	dir     Direction
	texture uint16
	lower   uint32
	width   int
	height  int
	aos     [4]uint8
}

// decodeFaces splits a words buffer into consecutive 6-vertex (12-word)
// faces and decodes the attribute word's fixed fields plus the maximum
// width/height field seen across the face's six vertices (only the far-
// corner vertices carry the nonzero span).
func decodeFaces(words []uint32) []decodedFace {
	var faces []decodedFace
	for i := 0; i+12 <= len(words); i += 12 {
		var f decodedFace
		for v := 0; v < 6; v++ {
			w1 := words[i+v*2+1]
			dir := Direction((w1 >> 16) & 0x7)
			texture := uint16((w1 >> 19) & 0xFF)
			lower := (w1 >> 29) & 0x3
			width := int(w1 & 0x7F)
			height := int((w1 >> 7) & 0x7F)
			ao := uint8((w1 >> 27) & 0x3)
			if v == 0 {
				f.dir = dir
				f.texture = texture
				f.lower = lower
			}
			if width > f.width {
				f.width = width
			}
			if height > f.height {
				f.height = height
			}
			f.aos[v%4] = ao
		}
		faces = append(faces, f)
	}
	return faces
}
