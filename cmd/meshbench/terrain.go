package main

import (
	"github.com/azureblue/chunkmesher/internal/config"
	"github.com/azureblue/chunkmesher/internal/meshcore"
	"github.com/azureblue/chunkmesher/internal/registry"

	"github.com/ojrac/opensimplex-go"
)

const (
	stoneBlock = registry.BlockType(3)
	dirtBlock  = registry.BlockType(2)
	grassBlock = registry.BlockType(1)
)

// generateChunk fills a fresh (S+2)^3 halo grid with rolling terrain (a
// simplex height field with grass over dirt over stone) and a lake of
// water blocks at or below the configured sea level, exercising both
// the solid and water paths of the mesher with a non-trivial chunk.
func generateChunk(seed int64) []uint32 {
	data := make([]uint32, meshcore.ChunkDim*meshcore.ChunkDim*meshcore.ChunkDim)
	noise := opensimplex.NewNormalized(seed)
	seaLevel := config.GetSeaLevel()

	index := func(x, y, z int) int {
		return (z*meshcore.ChunkDim+y)*meshcore.ChunkDim + x
	}
	set := func(x, y, z int, t registry.BlockType, solid bool) {
		id := uint32(t)
		if solid {
			id |= registry.SolidBit
		}
		data[index(x, y, z)] = id
	}

	for y := 1; y <= meshcore.S; y++ {
		for x := 1; x <= meshcore.S; x++ {
			h := int(noise.Eval2(float64(x)*0.08, float64(y)*0.08) * float64(meshcore.S-2))
			if h < 1 {
				h = 1
			}
			if h > meshcore.S {
				h = meshcore.S
			}

			for z := 1; z <= h; z++ {
				switch {
				case z == h:
					set(x, y, z, grassBlock, true)
				case z >= h-3:
					set(x, y, z, dirtBlock, true)
				default:
					if config.GetCaves() && isCave(noise, x, y, z) {
						continue
					}
					set(x, y, z, stoneBlock, true)
				}
			}

			for z := h + 1; z <= seaLevel; z++ {
				set(x, y, z, registry.WaterBlockType, false)
			}
		}
	}
	return data
}

// isCave carves small cavities below the surface using a second,
// higher-frequency noise sample offset well away from the height field.
func isCave(noise opensimplex.Noise, x, y, z int) bool {
	v := noise.Eval3(float64(x)*0.25+1000, float64(y)*0.25+1000, float64(z)*0.25+1000)
	return v > 0.8
}
