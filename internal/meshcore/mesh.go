package meshcore

import (
	"github.com/azureblue/chunkmesher/internal/config"
	"github.com/azureblue/chunkmesher/internal/profiling"
	"github.com/azureblue/chunkmesher/pkg/meshbuf"
)

// Mesh is the single entry point: it meshes chunkData (a read-only
// (S+2)^3 grid of block IDs) into outMesh, using tmpMesh as water
// scratch space, and returns the total number of words written to
// outMesh (solid prefix followed by the appended water suffix).
//
// Which pass runs is selected by config.GetGreedyMerge(): the greedy
// (merged) pass by default, or the quick (unmerged) reference pass when
// disabled. Both share visibility, AO, and the face encoder, and emit
// the same covered surface. config.GetAmbientOcclusion() is likewise
// read exactly once here and threaded through the whole sweep rather
// than re-read per voxel per direction.
func Mesh(chunkData []uint32, outMesh []uint32, tmpMesh []uint32) (int, error) {
	defer profiling.Track("meshcore.Mesh")()

	view, err := meshbuf.NewChunkView(chunkData, ChunkDim)
	if err != nil {
		return 0, err
	}

	solid := meshbuf.NewOutputView(outMesh)
	water := meshbuf.NewOutputView(tmpMesh)

	ambientOcclusion := config.GetAmbientOcclusion()
	if config.GetGreedyMerge() {
		greedyMesh(view, ambientOcclusion, &solid, &water)
	} else {
		quickMesh(view, ambientOcclusion, &solid, &water)
	}

	return finalize(outMesh, &solid, &water), nil
}

// finalize appends the water stream after the solid stream, both already
// resident in their own output buffers, and returns the combined length.
func finalize(outMesh []uint32, solid, water *meshbuf.OutputView) int {
	n := solid.Len()
	waterWords := water.Words()
	if n+len(waterWords) > len(outMesh) {
		panic("meshcore: out_mesh capacity exceeded during finalize")
	}
	copy(outMesh[n:], waterWords)
	return n + len(waterWords)
}
