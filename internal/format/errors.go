package format

import "errors"

var (
	// ErrSignatureMismatch indicates the header lacks the "sdbf" magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrUnknownType indicates a tag code whose high nibble maps to no type.
	ErrUnknownType = errors.New("format: unknown tag type")
	// ErrOversize indicates a size field beyond the configured limit.
	ErrOversize = errors.New("format: payload too large")
)
