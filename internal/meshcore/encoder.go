package meshcore

import (
	"github.com/azureblue/chunkmesher/internal/registry"
	"github.com/azureblue/chunkmesher/pkg/meshbuf"
)

// waterTexture is the texture ID that routes an emitted face to the water
// stream instead of the solid one.
var waterTexture = registry.WaterTexture()

// cornerAO unpacks one of the four 2-bit corner values packed LSB-first
// into aoShadows.
func cornerAO(aoShadows uint8, corner int) uint32 {
	return uint32(aoShadows>>(2*corner)) & 0x3
}

// emitFace packs one quad (six vertices, two 32-bit words each) and
// appends it to the solid or water stream. A single w x ht rectangle
// covers both the unmerged case (quick.go always passes w=ht=1) and a
// greedily merged run.
func emitFace(dir Direction, x, y, h, w, ht int, texture uint16, aoShadows uint8, reverseWinding bool, solid, water *meshbuf.OutputView) {
	ao0 := cornerAO(aoShadows, 0)
	ao1 := cornerAO(aoShadows, 1)
	ao2 := cornerAO(aoShadows, 2)
	ao3 := cornerAO(aoShadows, 3)

	flip := 0
	if ao0+ao2 > ao1+ao3 {
		flip = 1
	}
	reversed := 0
	if reverseWinding {
		reversed = 1
	}
	row := winding[flip*2+reversed]

	lower := uint32(0)
	if texture == waterTexture && dir == UP {
		lower = 2
	}

	target := solid
	if texture == waterTexture {
		target = water
	}

	vo := vertexOffsets[dir]
	mw := mergeVectorW[dir]
	mh := mergeVectorH[dir]

	for _, v := range row {
		maskW := mergeMasksW[v]
		maskH := mergeMasksH[v]

		xb := x + vo[0] + mw[0]*w*maskW + mh[0]*ht*maskH
		yb := y + vo[1] + mw[1]*w*maskW + mh[1]*ht*maskH
		zb := h + vo[2] + mw[2]*w*maskW + mh[2]*ht*maskH

		word0 := uint32(zb&0x3F)<<14 | uint32(yb&0x7F)<<7 | uint32(xb&0x7F)

		var widthField, heightField uint32
		if maskW != 0 {
			widthField = uint32(w & 0x7F)
		}
		if maskH != 0 {
			heightField = uint32(ht&0x7F) << 7
		}

		word1 := lower<<29 |
			uint32(texture&0xFF)<<19 |
			uint32(dir&0x7)<<16 |
			heightField |
			widthField |
			cornerAO(aoShadows, v)<<27

		target.Write2(word0, word1)
	}
}
