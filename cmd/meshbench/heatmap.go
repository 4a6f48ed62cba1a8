package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/azureblue/chunkmesher/internal/meshcore"
	"golang.org/x/image/draw"
)

// slabQuadCounts returns, for each of the S height layers, the number of
// merged quads whose origin lands in that layer — a rough per-slab
// measure of how effective the greedy pass was at that height.
func slabQuadCounts(words []uint32) [meshcore.S]int {
	var counts [meshcore.S]int
	for i := 0; i+12 <= len(words); i += 12 {
		// The lowest vertex Z of a face is its origin's Z, except for UP
		// faces, whose quad lies on the top boundary of their voxel.
		zb := int((words[i] >> 14) & 0x3F)
		for v := 1; v < 6; v++ {
			if z := int((words[i+v*2] >> 14) & 0x3F); z < zb {
				zb = z
			}
		}
		if meshcore.Direction((words[i+1]>>16)&0x7) == meshcore.UP {
			zb--
		}
		layer := zb - 1
		if layer >= 0 && layer < meshcore.S {
			counts[layer]++
		}
	}
	return counts
}

// writeHeatmapPNG renders one pixel per height layer, brightness scaled
// by merged-quad count, upscaled with nearest-neighbor so the result is
// visible at a normal image viewer's zoom level, and writes it to path.
func writeHeatmapPNG(path string, counts [meshcore.S]int) error {
	max := 1
	for _, c := range counts {
		if c > max {
			max = c
		}
	}

	src := image.NewGray(image.Rect(0, 0, 1, meshcore.S))
	for i, c := range counts {
		v := uint8(255 * c / max)
		src.SetGray(0, i, color.Gray{Y: v})
	}

	const scale = 16
	dst := image.NewRGBA(image.Rect(0, 0, scale, meshcore.S*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("meshbench: creating heatmap file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, dst); err != nil {
		return fmt.Errorf("meshbench: encoding heatmap png: %w", err)
	}
	return nil
}
