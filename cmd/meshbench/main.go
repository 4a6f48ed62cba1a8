// Command meshbench exercises the mesher core end to end: it synthesizes
// a test chunk, runs both the quick and greedy passes over it, and
// reports per-pass timing and output size. Pass -heatmap to also dump a
// debug PNG visualizing the greedy pass's merge effectiveness per slab.
package main

import (
	"flag"
	"log"

	"github.com/azureblue/chunkmesher/internal/config"
	"github.com/azureblue/chunkmesher/internal/meshcore"
	"github.com/azureblue/chunkmesher/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

func main() {
	seed := flag.Int64("seed", 1, "terrain generator seed")
	seaLevel := flag.Int("sea-level", 16, "water level in halo-space Z (1..32)")
	chunkX := flag.Int("chunk-x", 0, "chunk grid coordinate, X")
	chunkY := flag.Int("chunk-y", 0, "chunk grid coordinate, Y")
	chunkZ := flag.Int("chunk-z", 0, "chunk grid coordinate, Z")
	heatmapPath := flag.String("heatmap", "", "optional path to write a per-slab merge heat-map PNG")
	flag.Parse()

	config.SetSeaLevel(*seaLevel)

	chunkData := generateChunk(*seed)

	// World-space offset for this chunk, the same chunk-coord*size
	// arithmetic the teacher's Chunk.GetActiveBlocks uses per block.
	origin := mgl32.Vec3{float32(*chunkX * meshcore.S), float32(*chunkY * meshcore.S), float32(*chunkZ * meshcore.S)}
	extent := origin.Add(mgl32.Vec3{meshcore.S, meshcore.S, meshcore.S})
	log.Printf("synthesized chunk spanning world %v..%v (seed=%d, sea level=%d)", origin, extent, *seed, *seaLevel)

	maxWords := 6 * meshcore.S * meshcore.S * meshcore.S * 6 * 2
	out := make([]uint32, maxWords)
	tmp := make([]uint32, maxWords)

	config.SetGreedyMerge(false)
	profiling.ResetFrame()
	quickWords, err := meshcore.Mesh(chunkData, out, tmp)
	if err != nil {
		log.Fatalf("quick pass: %v", err)
	}
	quickDur := profiling.SumWithPrefix("meshcore.Mesh")
	log.Printf("quick pass:  %d words (%d vertices) in %s", quickWords, quickWords/2, quickDur)

	config.SetGreedyMerge(true)
	profiling.ResetFrame()
	greedyWords, err := meshcore.Mesh(chunkData, out, tmp)
	if err != nil {
		log.Fatalf("greedy pass: %v", err)
	}
	greedyDur := profiling.SumWithPrefix("meshcore.Mesh")
	log.Printf("greedy pass: %d words (%d vertices) in %s", greedyWords, greedyWords/2, greedyDur)

	if quickWords > 0 {
		reduction := 100.0 * (1.0 - float64(greedyWords)/float64(quickWords))
		log.Printf("merge reduced vertex count by %.1f%%", reduction)
	}

	if top := profiling.TopN(5); top != "" {
		log.Printf("top tasks: %s", top)
	}

	if *heatmapPath != "" {
		counts := slabQuadCounts(out[:greedyWords])
		if err := writeHeatmapPNG(*heatmapPath, counts); err != nil {
			log.Fatalf("heatmap: %v", err)
		}
		log.Printf("wrote heat-map to %s", *heatmapPath)
	}
}
