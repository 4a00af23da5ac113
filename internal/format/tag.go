package format

import (
	"fmt"

	"github.com/joshuapare/sdbkit/internal/buf"
	"github.com/joshuapare/sdbkit/pkg/types"
)

// Record describes one tag as laid out in the file.
//
//	+------+-----------+-----------------+
//	| TAG  | [SIZE]    | payload         |
//	| u16  | u32       | SIZE or fixed   |
//	+------+-----------+-----------------+
//
// SIZE is present only for LIST, STRING and BINARY tags. The fixed payload
// sizes are NULL 0, BYTE 1, WORD 2, DWORD 4, QWORD 8, STRINGREF 4.
type Record struct {
	Code    types.Tag
	Type    types.TagType
	Offset  int // absolute offset of the tag code
	DataOff int // absolute offset of the payload
	DataLen int // payload length in bytes
	Next    int // offset of the following sibling (WORD aligned)
}

// FixedPayloadSize returns the payload size of a fixed-width tag type, or
// ok = false for the sized types (LIST, STRING, BINARY).
func FixedPayloadSize(t types.TagType) (int, bool) {
	switch t {
	case types.TagTypeNull:
		return 0, true
	case types.TagTypeByte:
		return 1, true
	case types.TagTypeWord:
		return 2, true
	case types.TagTypeDWord, types.TagTypeStringRef:
		return 4, true
	case types.TagTypeQWord:
		return 8, true
	default:
		return 0, false
	}
}

// DecodeTag decodes the record at off. maxPayload bounds the size field of
// sized tags (0 disables the check; file bounds are always enforced).
func DecodeTag(b []byte, off int, maxPayload int) (Record, error) {
	code, ok := buf.U16At(b, off)
	if !ok {
		return Record{}, fmt.Errorf("tag at 0x%x: %w", off, ErrTruncated)
	}
	rec := Record{Code: types.Tag(code), Type: types.Tag(code).Type(), Offset: off}
	if !rec.Type.Valid() {
		return Record{}, fmt.Errorf("tag 0x%04X at 0x%x: %w", code, off, ErrUnknownType)
	}

	rec.DataOff = off + TagSize
	if n, fixed := FixedPayloadSize(rec.Type); fixed {
		rec.DataLen = n
	} else {
		size, ok := buf.U32At(b, rec.DataOff)
		if !ok {
			return Record{}, fmt.Errorf("tag 0x%04X at 0x%x: size field: %w", code, off, ErrTruncated)
		}
		if maxPayload > 0 && uint64(size) > uint64(maxPayload) {
			return Record{}, fmt.Errorf("tag 0x%04X at 0x%x: size %d: %w", code, off, size, ErrOversize)
		}
		rec.DataOff += SizeFieldSize
		rec.DataLen = int(size)
	}

	end, ok := buf.AddOverflowSafe(rec.DataOff, rec.DataLen)
	if !ok || end > len(b) {
		return Record{}, fmt.Errorf("tag 0x%04X at 0x%x: payload: %w", code, off, ErrTruncated)
	}
	rec.Next = buf.AlignEven(end)
	return rec, nil
}

// Payload returns the payload bytes of rec. DecodeTag has already validated
// the bounds.
func (r Record) Payload(b []byte) []byte {
	return b[r.DataOff : r.DataOff+r.DataLen]
}
