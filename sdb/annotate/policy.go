// Package annotate turns raw tag values into short human-readable comments:
// decoded bit flags, timestamps, GUIDs and references to other tag codes.
//
// Which tags get which decoding is static domain knowledge kept in the
// policies table; it cannot be derived from the tag type alone.
package annotate

// Kind selects the decoding applied to a tag value.
type Kind int

const (
	None         Kind = iota // no comment
	BitFlags                 // OR'd labels plus a hex residual
	EpochSeconds             // DWORD seconds since 1970-01-01 UTC
	FileTime                 // QWORD 100ns ticks since 1601-01-01 UTC
	TagRef                   // WORD holding another tag code
	GUID                     // 16-byte BINARY
)

// String implements the Stringer interface for Kind.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case BitFlags:
		return "bitflags"
	case EpochSeconds:
		return "epoch-seconds"
	case FileTime:
		return "filetime"
	case TagRef:
		return "tag-ref"
	case GUID:
		return "guid"
	default:
		return "unknown"
	}
}

// Flag is one labelled mask of a BitFlags table. A zero Mask labels the
// value 0 itself.
type Flag struct {
	Mask  uint64
	Label string
}

// Policy is the decoding registered for a tag name.
type Policy struct {
	Kind  Kind
	Flags []Flag // BitFlags only, applied in order
}

var indexFlags = []Flag{
	{Mask: 0x1, Label: "SHIMDB_INDEX_UNIQUE_KEY"},
	{Mask: 0x2, Label: "SHIMDB_INDEX_TRAILING_CHARACTERS"},
}

var platformFlags = []Flag{
	{Mask: 0x1, Label: "X86"},
	{Mask: 0x2, Label: "AMD64"},
	{Mask: 0x4, Label: "IA64"},
	{Mask: 0x8, Label: "ARM"},
	{Mask: 0x10, Label: "ARM64"},
}

var policies = map[string]Policy{
	"INDEX_FLAGS":           {Kind: BitFlags, Flags: indexFlags},
	"RUNTIME_PLATFORM":      {Kind: BitFlags, Flags: platformFlags},
	"GUEST_TARGET_PLATFORM": {Kind: BitFlags, Flags: platformFlags},

	"LINK_DATE":      {Kind: EpochSeconds},
	"UPTO_LINK_DATE": {Kind: EpochSeconds},
	"FROM_LINK_DATE": {Kind: EpochSeconds},

	"TIME":    {Kind: FileTime},
	"MODTIME": {Kind: FileTime},

	"TAG":       {Kind: TagRef},
	"INDEX_TAG": {Kind: TagRef},
	"INDEX_KEY": {Kind: TagRef},

	"EXE_ID":              {Kind: GUID},
	"DATABASE_ID":         {Kind: GUID},
	"MSI_PACKAGE_ID":      {Kind: GUID},
	"FIX_ID":              {Kind: GUID},
	"APP_ID":              {Kind: GUID},
	"CONTEXT_PLATFORM_ID": {Kind: GUID},
	"CONTEXT_BRANCH_ID":   {Kind: GUID},
}

// PolicyFor returns the policy registered for name; unknown names get None.
func PolicyFor(name string) Policy {
	return policies[name]
}
