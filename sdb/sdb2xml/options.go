package sdb2xml

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/sdbkit/pkg/types"
)

// Annotations selects whether decoded values are added as XML comments.
type Annotations string

const (
	// Comment appends a human-readable decoding of known values (flags,
	// timestamps, tag references, GUIDs) as a trailing comment.
	Comment Annotations = "comment"

	// Disabled renders raw values only.
	Disabled Annotations = "disabled"
)

// ParseAnnotations maps "comment" and "disabled" to their Annotations value.
func ParseAnnotations(s string) (Annotations, error) {
	switch a := Annotations(s); a {
	case Comment, Disabled:
		return a, nil
	default:
		return "", &types.Error{
			Kind: types.ErrKindUnsupported,
			Msg:  fmt.Sprintf("unknown annotation mode %q (want comment or disabled)", s),
		}
	}
}

// Options controls conversion.
type Options struct {
	// ExcludeTags lists tag names whose elements, and everything beneath
	// them, are left out of the output. "InvalidTag" matches every tag
	// without a published name.
	ExcludeTags []string

	// Annotations selects the comment mode.
	// Default: Comment
	Annotations Annotations

	// WithTagID adds tagid="N" (the tag's file offset) to every element.
	WithTagID bool

	// WithTag adds tag="0xXXXX" (the raw tag code) to every element.
	WithTag bool

	// MaxDepth bounds LIST nesting. Deeper trees fail with types.ErrCorrupt.
	// Default: types.MaxTagDepth
	MaxDepth int

	// Logger receives debug output about skipped subtrees. Nil discards.
	Logger *slog.Logger
}

// DefaultOptions returns the options used by the sdbtool CLI when no flags
// are given: annotations on, no diagnostic attributes, nothing excluded.
func DefaultOptions() Options {
	return Options{
		Annotations: Comment,
		MaxDepth:    types.MaxTagDepth,
	}
}

func (o Options) normalized() (Options, error) {
	if o.Annotations == "" {
		o.Annotations = Comment
	}
	if _, err := ParseAnnotations(string(o.Annotations)); err != nil {
		return o, err
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = types.MaxTagDepth
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o, nil
}
