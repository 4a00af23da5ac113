package types

import "fmt"

// TagType is the primitive type encoded in the high nibble of a Tag.
// (The numbers align with the apphelp TAG_TYPE_* definitions.)
type TagType uint16

const (
	TagTypeNull      TagType = 0x1000
	TagTypeByte      TagType = 0x2000
	TagTypeWord      TagType = 0x3000
	TagTypeDWord     TagType = 0x4000
	TagTypeQWord     TagType = 0x5000
	TagTypeStringRef TagType = 0x6000
	TagTypeList      TagType = 0x7000
	TagTypeString    TagType = 0x8000
	TagTypeBinary    TagType = 0x9000

	// TagTypeMask selects the type nibble of a Tag.
	TagTypeMask TagType = 0xF000
)

// Valid reports whether t is one of the nine known types.
func (t TagType) Valid() bool {
	return t >= TagTypeNull && t <= TagTypeBinary && t&^TagTypeMask == 0
}

// String implements the Stringer interface for TagType.
func (t TagType) String() string {
	switch t {
	case TagTypeNull:
		return "NULL"
	case TagTypeByte:
		return "BYTE"
	case TagTypeWord:
		return "WORD"
	case TagTypeDWord:
		return "DWORD"
	case TagTypeQWord:
		return "QWORD"
	case TagTypeStringRef:
		return "STRINGREF"
	case TagTypeList:
		return "LIST"
	case TagTypeString:
		return "STRING"
	case TagTypeBinary:
		return "BINARY"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_0x%04X", uint16(t))
	}
}
