// Package tags holds the static symbol tables of the sdbf format: the
// mapping from 16-bit tag codes to their published names, and the mapping
// from tag types to XML schema types.
package tags

import (
	"fmt"

	"github.com/joshuapare/sdbkit/pkg/types"
)

// InvalidTag is the name of every code that is not in the table, including
// codes whose low 12 bits are zero. It is a renderable name, not an error.
const InvalidTag = "InvalidTag"

// Classify derives the tag type from the high nibble of code.
func Classify(code types.Tag) (types.TagType, error) {
	t := code.Type()
	if !t.Valid() {
		return 0, &types.Error{
			Kind: types.ErrKindUnknownType,
			Msg:  fmt.Sprintf("unknown tag type 0x%X for tag 0x%04X", uint16(t)>>12, uint16(code)),
		}
	}
	return t, nil
}

// XMLType returns the XML schema type used for the type attribute of a
// rendered tag. NULL and LIST tags carry no type attribute.
func XMLType(t types.TagType) (string, bool) {
	switch t {
	case types.TagTypeByte:
		return "xs:byte", true
	case types.TagTypeWord:
		return "xs:unsignedShort", true
	case types.TagTypeDWord:
		return "xs:unsignedInt", true
	case types.TagTypeQWord:
		return "xs:unsignedLong", true
	case types.TagTypeString, types.TagTypeStringRef:
		return "xs:string", true
	case types.TagTypeBinary:
		return "xs:base64Binary", true
	default:
		return "", false
	}
}

// Name resolves code to its published name, or InvalidTag.
func Name(code types.Tag) string {
	if code&0x0FFF == 0 {
		return InvalidTag
	}
	if name, ok := names[code]; ok {
		return name
	}
	return InvalidTag
}

// Lookup returns the code registered for name.
func Lookup(name string) (types.Tag, bool) {
	code, ok := byName[name]
	return code, ok
}

var byName = func() map[string]types.Tag {
	m := make(map[string]types.Tag, len(names))
	for code, name := range names {
		m[name] = code
	}
	return m
}()
