package annotate

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joshuapare/sdbkit/internal/format"
	"github.com/joshuapare/sdbkit/pkg/types"
	"github.com/joshuapare/sdbkit/sdb/tags"
)

const (
	flagSeparator = " | "
	epochLayout   = "2006-01-02 15:04:05 UTC"
	guidSize      = 16
)

// Annotate returns the comment for a value of the tag called name, or ""
// when the tag has no policy or the policy has nothing to say (zero
// timestamps, empty GUIDs, no bits set). A policy applied to a value of the
// wrong kind is reported as types.ErrTypeMismatch.
func Annotate(name string, v types.Value) (string, error) {
	p := PolicyFor(name)
	switch p.Kind {
	case None:
		return "", nil
	case BitFlags:
		if !v.IsNumeric() {
			return "", mismatch(name, p.Kind, v)
		}
		return DecodeFlags(v.Num, p.Flags), nil
	case EpochSeconds:
		if v.Type != types.TagTypeDWord {
			return "", mismatch(name, p.Kind, v)
		}
		return formatEpoch(v.Num), nil
	case FileTime:
		if v.Type != types.TagTypeQWord {
			return "", mismatch(name, p.Kind, v)
		}
		return formatFiletime(v.Num), nil
	case TagRef:
		if v.Type != types.TagTypeWord {
			return "", mismatch(name, p.Kind, v)
		}
		return tags.Name(types.Tag(v.Num)), nil
	case GUID:
		if v.Type != types.TagTypeBinary {
			return "", mismatch(name, p.Kind, v)
		}
		if len(v.Bytes) == 0 {
			return "", nil
		}
		s, err := FormatGUID(v.Bytes)
		if err != nil {
			return "", fmt.Errorf("annotate %s: %w", name, err)
		}
		return "{" + s + "}", nil
	default:
		return "", fmt.Errorf("annotate %s: unhandled policy %d", name, p.Kind)
	}
}

// DecodeFlags decomposes value into the labels of table. Masks are consumed
// in table order when all of their bits are still set; leftover bits are
// appended as a hex literal. Returns "" when nothing applies.
func DecodeFlags(value uint64, table []Flag) string {
	var parts []string
	remaining := value
	for _, f := range table {
		if f.Mask == 0 {
			if value == 0 {
				parts = append(parts, f.Label)
			}
			continue
		}
		if remaining&f.Mask == f.Mask {
			parts = append(parts, f.Label)
			remaining &^= f.Mask
		}
	}
	if remaining != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", remaining))
	}
	return strings.Join(parts, flagSeparator)
}

// FormatGUID renders 16 bytes in the Windows GUID layout: the first three
// groups are little-endian, the last two are byte sequences.
func FormatGUID(b []byte) (string, error) {
	if len(b) != guidSize {
		return "", &types.Error{
			Kind: types.ErrKindType,
			Msg:  fmt.Sprintf("GUID must be %d bytes long, got %d", guidSize, len(b)),
		}
	}
	var u uuid.UUID
	u[0], u[1], u[2], u[3] = b[3], b[2], b[1], b[0]
	u[4], u[5] = b[5], b[4]
	u[6], u[7] = b[7], b[6]
	copy(u[8:], b[8:])
	return u.String(), nil
}

func formatEpoch(secs uint64) string {
	if secs == 0 {
		return ""
	}
	return time.Unix(int64(secs), 0).UTC().Format(epochLayout)
}

// formatFiletime keeps the full 100ns precision: seven fractional digits.
func formatFiletime(ticks uint64) string {
	if ticks == 0 {
		return ""
	}
	t := format.FiletimeToTime(ticks)
	return fmt.Sprintf("%s.%07dZ", t.Format("2006-01-02T15:04:05"), t.Nanosecond()/100)
}

func mismatch(name string, k Kind, v types.Value) error {
	return &types.Error{
		Kind: types.ErrKindType,
		Msg:  fmt.Sprintf("tag %s: %s annotation cannot decode a %s value", name, k, v.Type),
	}
}
