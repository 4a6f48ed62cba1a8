// Package meshcore implements the chunk mesher core: the quick (unmerged)
// and greedy (merged) passes over a chunk's block grid, sharing one face
// encoder and AO sampler. See Mesh for the single entry point.
package meshcore

import "github.com/azureblue/chunkmesher/internal/registry"

// S is the chunk edge length. ChunkDim is the edge length of the halo'd
// input grid the host supplies: (S+2)^3.
const (
	S        = 32
	ChunkDim = S + 2
)

// Direction indexes the six real face directions plus two reserved
// diagonal slots. Order matches the block table's per-face texture order.
type Direction int

const (
	UP Direction = iota
	FRONT
	LEFT
	BACK
	RIGHT
	DOWN
	diagA // reserved for foliage/grasslike geometry, never emitted
	diagB // reserved for foliage/grasslike geometry, never emitted
)

// World axis indices used by dirInfo below. H stands for the vertical
// axis (Z in the source tables); x/y are the horizontal axes.
const (
	axisX = 0
	axisY = 1
	axisH = 2
)

// vertexOffsets, mergeVectorW and mergeVectorH are transcribed verbatim
// from original_source/src-rust/mesher.rs's VERTEX_OFFSETS,
// MERGE_VECTOR_W and MERGE_VECTOR_H constant tables (axis order x,y,z).
// Directions 6 and 7 are the reserved diagonal slots; their rows are
// carried for table completeness but never reached by emitFace.
var vertexOffsets = [8][3]int{
	{0, 0, 1}, // UP
	{0, 0, 0}, // FRONT
	{0, 1, 0}, // LEFT
	{1, 1, 0}, // BACK
	{1, 0, 0}, // RIGHT
	{0, 1, 0}, // DOWN
	{0, 0, 0}, // diagA (reserved)
	{0, 1, 0}, // diagB (reserved)
}

var mergeVectorW = [8][3]int{
	{1, 0, 0},
	{1, 0, 0},
	{0, -1, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{1, 0, 0},
	{1, 1, 0},
	{1, -1, 0},
}

var mergeVectorH = [8][3]int{
	{0, 1, 0},
	{0, 0, 1},
	{0, 0, 1},
	{0, 0, 1},
	{0, 0, 1},
	{0, -1, 0},
	{0, 0, 1},
	{0, 0, 1},
}

// winding gives the 6-index vertex sequence for a quad, selected by
// flip*2+reversed. Transcribed from mesher.rs's WINDING table.
var winding = [4][6]int{
	{0, 1, 2, 0, 2, 3},
	{3, 2, 0, 2, 1, 0},
	{1, 2, 3, 1, 3, 0},
	{0, 3, 1, 3, 2, 1},
}

// mergeMasksW and mergeMasksH select, per vertex slot v=0..3, whether
// that corner carries the far coordinate (width*mask_w[v] and
// height*mask_h[v] respectively) or the origin.
var mergeMasksW = [4]int{0, 1, 1, 0}
var mergeMasksH = [4]int{0, 0, 1, 1}

// directionInfo captures, per real direction, the data the greedy and AO passes
// need: the unit offset to the neighbor voxel that visibility is tested
// against, and which world axis (plus sign) the width/height merge spans
// run along. Derived directly from mergeVectorW/H above: each real
// direction has exactly one nonzero component in each vector, which
// identifies the axis; its sign is carried through unchanged.
type directionInfo struct {
	neighbor   [3]int
	widthAxis  int
	widthSign  int
	heightAxis int
	heightSign int
	layerAxis  int
}

var dirInfos = [6]directionInfo{
	UP:    {neighbor: [3]int{0, 0, 1}, widthAxis: axisX, widthSign: 1, heightAxis: axisY, heightSign: 1, layerAxis: axisH},
	FRONT: {neighbor: [3]int{0, -1, 0}, widthAxis: axisX, widthSign: 1, heightAxis: axisH, heightSign: 1, layerAxis: axisY},
	LEFT:  {neighbor: [3]int{-1, 0, 0}, widthAxis: axisY, widthSign: -1, heightAxis: axisH, heightSign: 1, layerAxis: axisX},
	BACK:  {neighbor: [3]int{0, 1, 0}, widthAxis: axisX, widthSign: -1, heightAxis: axisH, heightSign: 1, layerAxis: axisY},
	RIGHT: {neighbor: [3]int{1, 0, 0}, widthAxis: axisY, widthSign: 1, heightAxis: axisH, heightSign: 1, layerAxis: axisX},
	DOWN:  {neighbor: [3]int{0, 0, -1}, widthAxis: axisX, widthSign: 1, heightAxis: axisY, heightSign: -1, layerAxis: axisH},
}

// faceTextureSlot returns the block-table face-texture slot used by
// direction d. It is simply d itself: the table's face order
// (UP,FRONT,LEFT,BACK,RIGHT,DOWN) matches the Direction enum order.
func faceTextureSlot(t registry.BlockType, d Direction) uint16 {
	return registry.TexturesOf(t)[d]
}
