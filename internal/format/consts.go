// Package format houses low-level decoders for the Windows application
// compatibility database ("sdbf") file format. The goal is to keep the
// parsing focused, allocation-free, and independent from the public API so
// higher-level packages can orchestrate the data in a more ergonomic form.
package format

// Signature is the four-byte magic at offset 8 of every database.
var Signature = []byte{'s', 'd', 'b', 'f'}

const (
	// HeaderSize is the size of the sdbf header in bytes.
	//
	//	Offset  Size  Description
	//	------  ----  -------------------------
	//	 0x000   4    Major version
	//	 0x004   4    Minor version
	//	 0x008   4    's' 'd' 'b' 'f'
	HeaderSize = 12

	MajorVersionOffset = 0x0
	MinorVersionOffset = 0x4
	SignatureOffset    = 0x8
	SignatureSize      = 4

	// TagSize is the size of the tag code that prefixes every record.
	TagSize = 2

	// SizeFieldSize is the size of the DWORD length that follows the tag
	// code of LIST, STRING and BINARY records.
	SizeFieldSize = 4
)
