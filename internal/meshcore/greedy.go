package meshcore

import "github.com/azureblue/chunkmesher/pkg/meshbuf"

// packCell packs a face candidate's (texture, AO) payload into a mask
// cell (texture<<8 | AO_shadows), offset by +1 so the zero cell
// unambiguously means "no face" even when a real candidate's packed
// bits happen to be zero (texture=0, AO=0).
func packCell(texture uint16, aoShadows uint8) uint32 {
	payload := uint32(texture&0x1FF)<<8 | uint32(aoShadows)
	return payload + 1
}

func unpackCell(cell uint32) (texture uint16, aoShadows uint8) {
	payload := cell - 1
	return uint16(payload>>8) & 0x1FF, uint8(payload)
}

// composeCoord maps a (layer, u, v) triple in a direction's own
// (layerAxis, widthAxis, heightAxis) coordinate system back to
// halo-space (x, y, h).
func composeCoord(info directionInfo, layer, u, v int) (x, y, h int) {
	var coords [3]int
	coords[info.layerAxis] = layer
	coords[info.widthAxis] = u
	coords[info.heightAxis] = v
	return coords[axisX], coords[axisY], coords[axisH]
}

// mergedOrigin returns the coordinate to pass as emitFace's origin on an
// axis whose merge-vector sign is known, given the 1-based run start and
// span on that axis. For a positive-sign axis the origin is the run's
// first index (emitFace's own offset/merge-vector arithmetic reaches the
// far corner). For a negative-sign axis the far corner is reached by
// subtraction, so the origin must be the run's *last* index instead.
func mergedOrigin(start, span, sign int) int {
	if sign > 0 {
		return start
	}
	return start + span - 1
}

// greedyMesh is the merged pass. For each of the 6 directions it sweeps
// layers along that direction's fixed axis, builds a width x height mask
// of face candidates for the layer, and greedily merges same-payload
// cells into rectangles via a scan/grow/zero algorithm applied uniformly
// to all six directions through dirInfos.
func greedyMesh(view meshbuf.ChunkView, ambientOcclusion bool, solid, water *meshbuf.OutputView) {
	var mask [S * S]uint32

	for _, dir := range [6]Direction{UP, DOWN, FRONT, LEFT, BACK, RIGHT} {
		info := dirInfos[dir]

		for layer := 1; layer <= S; layer++ {
			for v := 1; v <= S; v++ {
				for u := 1; u <= S; u++ {
					x, y, h := composeCoord(info, layer, u, v)
					ok, texture, ao := faceCandidate(view, x, y, h, dir, ambientOcclusion)
					idx := (v-1)*S + (u - 1)
					if ok {
						mask[idx] = packCell(texture, ao)
					} else {
						mask[idx] = 0
					}
				}
			}

			for v0 := 0; v0 < S; v0++ {
				for u0 := 0; u0 < S; u0++ {
					idx := v0*S + u0
					cell := mask[idx]
					if cell == 0 {
						continue
					}

					width := 1
					for u0+width < S && mask[v0*S+u0+width] == cell {
						width++
					}

					height := 1
				growHeight:
					for v0+height < S {
						rowBase := (v0 + height) * S
						for k := 0; k < width; k++ {
							if mask[rowBase+u0+k] != cell {
								break growHeight
							}
						}
						height++
					}

					for dv := 0; dv < height; dv++ {
						rowBase := (v0 + dv) * S
						for du := 0; du < width; du++ {
							mask[rowBase+u0+du] = 0
						}
					}

					texture, ao := unpackCell(cell)
					originU := mergedOrigin(u0+1, width, info.widthSign)
					originV := mergedOrigin(v0+1, height, info.heightSign)
					x, y, h := composeCoord(info, layer, originU, originV)
					emitFace(dir, x, y, h, width, height, texture, ao, false, solid, water)
				}
			}
		}
	}
}
