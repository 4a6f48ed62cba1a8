// Package registry holds the static block/texture table: the fixed
// compile-time mapping from a decoded block type to its six face texture
// IDs, plus the predicates meshcore builds on.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
)

// BlockType is the decoded (low 31 bits) value of a chunk word.
type BlockType uint32

// TableSize bounds BlockType values accepted by the table; an ID whose
// decoded type is out of range is treated as the empty entry (index 0).
const TableSize = 9

// WaterBlockType is the reserved type used for water. Its table entry's
// texture IDs double as WaterTexture, used by the encoder to route a face
// to the water stream instead of the solid one.
const WaterBlockType BlockType = 6

// FaceTextures holds one texture ID per direction, in the order
// UP, FRONT, LEFT, BACK, RIGHT, DOWN.
type FaceTextures [6]uint16

// Definition is one block table entry.
type Definition struct {
	Type     BlockType
	Name     string
	Textures FaceTextures
	Water    bool
}

// Table is the fixed block/texture table, indexed by decoded block type.
var Table [TableSize]Definition

func init() {
	set := func(t BlockType, name string, textures FaceTextures) {
		Table[t] = Definition{Type: t, Name: name, Textures: textures, Water: t == WaterBlockType}
	}
	set(0, "empty", FaceTextures{0, 0, 0, 0, 0, 0})
	set(1, "block1", FaceTextures{1, 1, 1, 1, 1, 1})
	set(2, "block2", FaceTextures{3, 2, 2, 2, 2, 1})
	set(3, "block3", FaceTextures{3, 3, 3, 3, 3, 3})
	set(4, "block4", FaceTextures{4, 4, 4, 4, 4, 4})
	set(5, "block5", FaceTextures{5, 5, 5, 5, 5, 5})
	set(6, "water", FaceTextures{6, 6, 6, 6, 6, 6})
	set(7, "block7", FaceTextures{7, 7, 7, 7, 7, 7})
	set(8, "block8", FaceTextures{0, 8, 8, 8, 8, 0})
}

// WaterTexture is the texture ID that routes an emitted face to the water
// stream; it is the water block's own UP texture entry.
func WaterTexture() uint16 {
	return Table[WaterBlockType].Textures[0]
}

// SolidBit is the high bit of a chunk word that marks an opaque occluder.
const SolidBit uint32 = 0x80000000

// IsSolid reports whether a raw chunk word is an opaque occluder.
func IsSolid(id uint32) bool {
	return id&SolidBit != 0
}

// DecodeType extracts the low-31-bit block type from a raw chunk word.
func DecodeType(id uint32) BlockType {
	return BlockType(id &^ SolidBit)
}

// IsWater reports whether a decoded block type is the water type.
func IsWater(t BlockType) bool {
	return t == WaterBlockType
}

// TexturesOf returns the six face texture IDs for a decoded block type.
// Types outside the table range fall back to the empty entry.
func TexturesOf(t BlockType) FaceTextures {
	if t >= TableSize {
		return Table[0].Textures
	}
	return Table[t].Textures
}

// LoadTextureOverrides loads a JSON object mapping symbolic texture names
// to integer texture IDs and applies them by name to matching table
// entries' textures. Entries whose name does not match any key are left
// untouched. This is additive host integration, not part of the default
// table construction.
func LoadTextureOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("registry: could not read texture overrides: %w", err)
	}
	var overrides map[string]int
	if err := json.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("registry: could not unmarshal texture overrides: %w", err)
	}
	for i := range Table {
		id, ok := overrides[Table[i].Name]
		if !ok {
			continue
		}
		tex := uint16(id)
		for f := range Table[i].Textures {
			Table[i].Textures[f] = tex
		}
	}
	return nil
}
