package meshcore

import (
	"github.com/azureblue/chunkmesher/internal/registry"
	"github.com/azureblue/chunkmesher/pkg/meshbuf"
)

// axisUnitVector returns the 3D unit vector (in x,y,h order, matching
// ChunkView.At's axis order) for the given axis index and sign.
func axisUnitVector(axis, sign int) [3]int {
	var v [3]int
	v[axis] = sign
	return v
}

// rotate90CCW rotates a 2D (width,height)-local offset 90 degrees
// counter-clockwise, advancing the sampler from one corner to the next.
func rotate90CCW(p [2]int) [2]int {
	return [2]int{-p[1], p[0]}
}

func offsetPoint(base, wv, hv [3]int, p [2]int) [3]int {
	return [3]int{
		base[0] + wv[0]*p[0] + hv[0]*p[1],
		base[1] + wv[1]*p[0] + hv[1]*p[1],
		base[2] + wv[2]*p[0] + hv[2]*p[1],
	}
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// sampleAO computes the four 2-bit corner shadow values for a face at
// (x,y,h) (halo-space coordinates) in direction dir, packed LSB-first
// into one byte. Both the quick and greedy passes call this with the
// source voxel's own coordinates; the sampling plane itself is one step
// along dir.
func sampleAO(view meshbuf.ChunkView, x, y, h int, dir Direction) uint8 {
	info := dirInfos[dir]
	base := [3]int{x + info.neighbor[0], y + info.neighbor[1], h + info.neighbor[2]}
	wv := axisUnitVector(info.widthAxis, info.widthSign)
	hv := axisUnitVector(info.heightAxis, info.heightSign)

	side0 := [2]int{-1, 0}
	side1 := [2]int{0, -1}
	corner := [2]int{-1, -1}

	var shadows uint8
	for v := 0; v < 4; v++ {
		s0 := offsetPoint(base, wv, hv, side0)
		s1 := offsetPoint(base, wv, hv, side1)
		cn := offsetPoint(base, wv, hv, corner)

		edge0 := registry.IsSolid(view.At(s0[0], s0[1], s0[2]))
		edge1 := registry.IsSolid(view.At(s1[0], s1[1], s1[2]))
		diag := registry.IsSolid(view.At(cn[0], cn[1], cn[2]))

		var ao uint32
		if edge0 && edge1 {
			ao = 3
		} else {
			ao = boolBit(edge0) + boolBit(edge1) + boolBit(diag)
		}
		shadows |= uint8(ao) << uint(2*v)

		side0 = rotate90CCW(side0)
		side1 = rotate90CCW(side1)
		corner = rotate90CCW(corner)
	}
	return shadows
}
