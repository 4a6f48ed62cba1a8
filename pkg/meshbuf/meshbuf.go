// Package meshbuf provides bounds-checked views over caller-owned
// []uint32 buffers, keeping the grid and output indexing arithmetic in
// one place instead of scattered pointer arithmetic at each call site.
package meshbuf

import "fmt"

// ChunkView wraps a read-only (S+2)^3 input grid of block IDs.
type ChunkView struct {
	data []uint32
	dim  int
}

// NewChunkView wraps data as a chunk grid of side dim (expected S+2). It
// errors if len(data) != dim^3.
func NewChunkView(data []uint32, dim int) (ChunkView, error) {
	want := dim * dim * dim
	if len(data) != want {
		return ChunkView{}, fmt.Errorf("meshbuf: chunk view expects %d words (dim=%d), got %d", want, dim, len(data))
	}
	return ChunkView{data: data, dim: dim}, nil
}

// Dim returns the side length of the cubic grid (S+2).
func (c ChunkView) Dim() int { return c.dim }

// At returns the raw block word at grid coordinates x,y,z, each in
// 0..dim-1. Coordinates out of range are the caller's bug and are not
// checked per axis: Go's slice bounds check panics only when the
// flattened index falls outside data; otherwise another cell is read.
func (c ChunkView) At(x, y, z int) uint32 {
	return c.data[(z*c.dim+y)*c.dim+x]
}

// OutputView wraps an append-only []uint32 write target with a hard
// capacity. Write2 panics if it would exceed that capacity: output
// overflow is a programmer error, never a recovered one.
type OutputView struct {
	buf []uint32
	n   int
}

// NewOutputView wraps buf for append-only writes starting at offset 0.
func NewOutputView(buf []uint32) OutputView {
	return OutputView{buf: buf}
}

// Write2 appends one vertex's two packed words and advances the write
// index by 2.
func (o *OutputView) Write2(w0, w1 uint32) {
	if o.n+2 > len(o.buf) {
		panic("meshbuf: output buffer capacity exceeded")
	}
	o.buf[o.n] = w0
	o.buf[o.n+1] = w1
	o.n += 2
}

// Len returns the number of words written so far.
func (o OutputView) Len() int { return o.n }

// Words returns the written prefix of the backing buffer.
func (o OutputView) Words() []uint32 { return o.buf[:o.n] }
