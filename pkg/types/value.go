package types

// Value is a decoded leaf payload. Type selects which field is meaningful:
// Num for BYTE/WORD/DWORD/QWORD, Bytes for BINARY, Str for STRING/STRINGREF,
// nothing for NULL. LIST tags have children instead of a Value.
type Value struct {
	Type  TagType
	Num   uint64
	Bytes []byte
	Str   string
}

// IsNumeric reports whether the value carries an integer payload.
func (v Value) IsNumeric() bool {
	switch v.Type {
	case TagTypeByte, TagTypeWord, TagTypeDWord, TagTypeQWord:
		return true
	default:
		return false
	}
}

// ReadValue reads the leaf payload of id using the accessor matching typ.
// LIST and unknown types are rejected with ErrTypeMismatch.
func ReadValue(db Database, id TagID, typ TagType) (Value, error) {
	v := Value{Type: typ}
	var err error
	switch typ {
	case TagTypeNull:
	case TagTypeByte:
		var b uint8
		b, err = db.ReadByte(id)
		v.Num = uint64(b)
	case TagTypeWord:
		var w uint16
		w, err = db.ReadWord(id)
		v.Num = uint64(w)
	case TagTypeDWord:
		var d uint32
		d, err = db.ReadDWord(id)
		v.Num = uint64(d)
	case TagTypeQWord:
		v.Num, err = db.ReadQWord(id)
	case TagTypeBinary:
		v.Bytes, err = db.ReadBinary(id)
	case TagTypeString, TagTypeStringRef:
		v.Str, err = db.ReadString(id)
	default:
		return Value{}, &Error{Kind: ErrKindType, Msg: "no leaf value for " + typ.String() + " tag"}
	}
	if err != nil {
		return Value{}, err
	}
	return v, nil
}
