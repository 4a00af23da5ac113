package types

const (
	// HeaderSize is the size of the sdbf file header in bytes.
	HeaderSize = 12

	// MaxTagDepth is the default bound on List nesting during traversal.
	// Real databases nest fewer than ten levels; the bound only guards
	// against crafted input.
	MaxTagDepth = 256

	// MaxPayloadSize guards against absurd size fields on LIST/STRING/BINARY
	// tags. It is applied in addition to the file-bounds check.
	MaxPayloadSize = 256 << 20
)
