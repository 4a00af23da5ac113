package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat      ErrKind = iota // bytes do not parse as an sdbf database
	ErrKindCorrupt                    // structural corruption (bad sizes/offsets/depth)
	ErrKindUnsupported                // valid feature we don't support (yet)
	ErrKindNotFound                   // missing file or tag
	ErrKindType                       // typed read doesn't match the tag type
	ErrKindState                      // invalid operation for current state (e.g., closed)
	ErrKindUnknownType                // tag code whose type nibble maps to no type
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so wrapped
// instances match the sentinels below with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrNotFound indicates the database file (or a requested tag) is missing.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrInvalidFormat indicates the input lacks a valid "sdbf" header.
	ErrInvalidFormat = &Error{Kind: ErrKindFormat, Msg: "not an sdb database (bad sdbf header)"}
	// ErrCorrupt indicates non-recoverable structural inconsistency.
	ErrCorrupt = &Error{Kind: ErrKindCorrupt, Msg: "corrupt database structure"}
	// ErrUnknownTagType indicates a tag code whose high nibble maps to no type.
	ErrUnknownTagType = &Error{Kind: ErrKindUnknownType, Msg: "unknown tag type"}
	// ErrTypeMismatch indicates a typed read or decode against the wrong tag type.
	ErrTypeMismatch = &Error{Kind: ErrKindType, Msg: "tag has different type"}
	// ErrClosed indicates the database handle was already closed.
	ErrClosed = &Error{Kind: ErrKindState, Msg: "database is closed"}
)

// -----------------------------------------------------------------------------
// Core Identifiers & Metadata
// -----------------------------------------------------------------------------

// TagID is a small, copyable handle referring to a tag record. Implementations
// encode the absolute byte offset of the tag in the database file.
type TagID uint32

// TagIDRoot is the virtual root whose children are the top-level tags.
const TagIDRoot TagID = 0

// Tag is the 16-bit tag code stored in front of every record. The high
// nibble selects the TagType; the low 12 bits select the symbolic name.
type Tag uint16

// Type returns the masked type nibble of the code without validating it.
func (t Tag) Type() TagType { return TagType(t) & TagTypeMask }

// Header exposes the fixed sdbf file header.
type Header struct {
	MajorVersion uint32 // format major version (2 on XP-era files, 3 later)
	MinorVersion uint32 // format minor version
}

// -----------------------------------------------------------------------------
// Provider contract
// -----------------------------------------------------------------------------

// Database is the read-only tag tree provider consumed by the converter and
// the info summary. Implementations must bounds-check every access and never
// panic on malformed input.
type Database interface {
	// Close releases resources. Safe to call multiple times.
	Close() error

	// Header returns the sdbf file header.
	Header() Header

	// Root returns the virtual root. Its children are the top-level tags.
	Root() (TagID, error)

	// Tag returns the raw tag code stored at id.
	Tag(TagID) (Tag, error)

	// Children returns the ordered child tags of a List tag (or the root).
	Children(TagID) ([]TagID, error)

	// Typed accessors. Each fails with ErrTypeMismatch when the classified
	// type of the tag does not match the accessor.
	ReadByte(TagID) (uint8, error)
	ReadWord(TagID) (uint16, error)
	ReadDWord(TagID) (uint32, error)
	ReadQWord(TagID) (uint64, error)
	ReadBinary(TagID) ([]byte, error) // BINARY
	ReadString(TagID) (string, error) // STRING or STRINGREF
}

// -----------------------------------------------------------------------------
// Open Options
// -----------------------------------------------------------------------------

// OpenOptions controls safety limits when constructing a Database.
type OpenOptions struct {
	// MaxPayloadSize guards against absurd/malicious LIST/STRING/BINARY size
	// fields. Zero selects MaxPayloadSize.
	MaxPayloadSize int
}
