package meshcore

import (
	"github.com/azureblue/chunkmesher/internal/registry"
	"github.com/azureblue/chunkmesher/pkg/meshbuf"
)

// quickDirOrder is the per-voxel direction check order: UP, then DOWN,
// then the four sides.
var quickDirOrder = [6]Direction{UP, DOWN, FRONT, LEFT, BACK, RIGHT}

// faceCandidate is the shared visibility + AO + texture computation used
// by both the quick and greedy passes: the semantic reference for
// whether a face exists at (x,y,h) in direction dir, and if so, its
// texture and packed corner AO. Coordinates are halo-space (1..S
// interior). ambientOcclusion is read once per Mesh call by the caller,
// not sampled here, so toggling it can never vary mid-sweep.
func faceCandidate(view meshbuf.ChunkView, x, y, h int, dir Direction, ambientOcclusion bool) (ok bool, texture uint16, aoShadows uint8) {
	id := view.At(x, y, h)
	if id == 0 {
		return false, 0, 0
	}
	srcType := registry.DecodeType(id)
	srcWater := registry.IsWater(srcType)

	if dir == UP {
		neighbor := view.At(x, y, h+1)
		if registry.IsSolid(neighbor) {
			return false, 0, 0
		}
		if srcWater && registry.IsWater(registry.DecodeType(neighbor)) {
			return false, 0, 0
		}
		texture = faceTextureSlot(srcType, UP)
		if !srcWater && ambientOcclusion {
			aoShadows = sampleAO(view, x, y, h, UP)
		}
		return true, texture, aoShadows
	}

	if srcWater {
		return false, 0, 0
	}
	info := dirInfos[dir]
	neighbor := view.At(x+info.neighbor[0], y+info.neighbor[1], h+info.neighbor[2])
	if registry.IsSolid(neighbor) {
		return false, 0, 0
	}
	texture = faceTextureSlot(srcType, dir)
	if ambientOcclusion {
		aoShadows = sampleAO(view, x, y, h, dir)
	}
	return true, texture, aoShadows
}

// quickMesh is the unmerged reference pass: a triple-nested sweep
// emitting one 1x1 quad per visible voxel face.
func quickMesh(view meshbuf.ChunkView, ambientOcclusion bool, solid, water *meshbuf.OutputView) {
	for h := 1; h <= S; h++ {
		for y := 1; y <= S; y++ {
			for x := 1; x <= S; x++ {
				if view.At(x, y, h) == 0 {
					continue
				}
				for _, dir := range quickDirOrder {
					ok, texture, ao := faceCandidate(view, x, y, h, dir, ambientOcclusion)
					if !ok {
						continue
					}
					emitFace(dir, x, y, h, 1, 1, texture, ao, false, solid, water)
				}
			}
		}
	}
}
