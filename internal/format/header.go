package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/sdbkit/internal/buf"
)

// Header captures the fixed sdbf header. Windows stores it little-endian.
type Header struct {
	MajorVersion uint32
	MinorVersion uint32
}

// ParseHeader validates and extracts the fields of an sdbf header.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("sdbf header: %w", ErrTruncated)
	}
	if !bytes.Equal(b[SignatureOffset:SignatureOffset+SignatureSize], Signature) {
		return Header{}, fmt.Errorf("sdbf header: %w", ErrSignatureMismatch)
	}
	return Header{
		MajorVersion: buf.U32LE(b[MajorVersionOffset:]),
		MinorVersion: buf.U32LE(b[MinorVersionOffset:]),
	}, nil
}
