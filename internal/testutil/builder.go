// Package testutil builds sdbf databases and fake tag trees for tests.
package testutil

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/sdbkit/pkg/types"
)

// Node describes one tag to encode. Num feeds the fixed-size types (BYTE,
// WORD, DWORD, QWORD, STRINGREF), Str feeds STRING, Data feeds BINARY and
// Children feeds LIST.
type Node struct {
	Code     types.Tag
	Num      uint64
	Str      string
	Data     []byte
	Children []Node
}

// List, Null, Byte, Word, DWord, QWord, StringRef, String and Binary are
// shorthands for building Node trees.
func List(code types.Tag, children ...Node) Node {
	return Node{Code: code, Children: children}
}
func Null(code types.Tag) Node { return Node{Code: code} }
func Byte(code types.Tag, v uint8) Node { return Node{Code: code, Num: uint64(v)} }
func Word(code types.Tag, v uint16) Node { return Node{Code: code, Num: uint64(v)} }
func DWord(code types.Tag, v uint32) Node { return Node{Code: code, Num: uint64(v)} }
func QWord(code types.Tag, v uint64) Node { return Node{Code: code, Num: v} }
func StringRef(code types.Tag, ref uint32) Node { return Node{Code: code, Num: uint64(ref)} }
func String(code types.Tag, s string) Node { return Node{Code: code, Str: s} }
func Binary(code types.Tag, data []byte) Node { return Node{Code: code, Data: data} }

// Build encodes a database with the given version and top-level tags.
func Build(major, minor uint32, top ...Node) []byte {
	out := make([]byte, 12)
	binary.LittleEndian.PutUint32(out[0:], major)
	binary.LittleEndian.PutUint32(out[4:], minor)
	copy(out[8:], "sdbf")
	for _, n := range top {
		out = appendNode(out, n)
	}
	return out
}

// Offsets returns the tag id each top-level node would receive, in order.
// Nested ids can be computed by calling Offsets on the children with the
// parent's id + 6 as base.
func Offsets(base int, nodes ...Node) []types.TagID {
	ids := make([]types.TagID, 0, len(nodes))
	off := base
	for _, n := range nodes {
		ids = append(ids, types.TagID(off))
		off += len(appendNode(nil, n))
	}
	return ids
}

func appendNode(out []byte, n Node) []byte {
	out = binary.LittleEndian.AppendUint16(out, uint16(n.Code))
	switch n.Code.Type() {
	case types.TagTypeNull:
	case types.TagTypeByte:
		out = append(out, byte(n.Num), 0)
	case types.TagTypeWord:
		out = binary.LittleEndian.AppendUint16(out, uint16(n.Num))
	case types.TagTypeDWord, types.TagTypeStringRef:
		out = binary.LittleEndian.AppendUint32(out, uint32(n.Num))
	case types.TagTypeQWord:
		out = binary.LittleEndian.AppendUint64(out, n.Num)
	case types.TagTypeList:
		var body []byte
		for _, c := range n.Children {
			body = appendNode(body, c)
		}
		out = appendSized(out, body)
	case types.TagTypeString:
		out = appendSized(out, EncodeUTF16(n.Str))
	case types.TagTypeBinary:
		out = appendSized(out, n.Data)
	default:
		panic("testutil: cannot encode tag type " + n.Code.Type().String())
	}
	return out
}

func appendSized(out, body []byte) []byte {
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))
	out = append(out, body...)
	if len(body)%2 != 0 {
		out = append(out, 0)
	}
	return out
}

// EncodeUTF16 returns s as NUL-terminated UTF-16LE.
func EncodeUTF16(s string) []byte {
	enc, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	if err != nil {
		panic(err)
	}
	return append(enc, 0, 0)
}
