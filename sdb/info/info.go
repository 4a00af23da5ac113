// Package info summarises a shim database the way apphelp's
// SdbGetDatabaseInformation does: format version, description, database
// GUID and runtime platform.
package info

import (
	"fmt"

	"github.com/joshuapare/sdbkit/pkg/types"
	"github.com/joshuapare/sdbkit/sdb"
	"github.com/joshuapare/sdbkit/sdb/annotate"
	"github.com/joshuapare/sdbkit/sdb/tags"
)

// Bits of Information.Flags.
const (
	// FlagValidGUID is set when the database carries a DATABASE_ID.
	FlagValidGUID uint32 = 0x00000001
	// FlagValidRuntimePlatform is always set: RuntimePlatform is either
	// read from the database or defaulted.
	FlagValidRuntimePlatform uint32 = 0x10000000
)

// DefaultRuntimePlatform is reported when DATABASE has no RUNTIME_PLATFORM.
const DefaultRuntimePlatform uint32 = 4

// Information describes one database.
type Information struct {
	Major           uint32 `json:"major" yaml:"major"`
	Minor           uint32 `json:"minor" yaml:"minor"`
	Flags           uint32 `json:"flags" yaml:"flags"`
	Description     string `json:"description,omitempty" yaml:"description,omitempty"`
	ID              string `json:"id,omitempty" yaml:"id,omitempty"`
	RuntimePlatform uint32 `json:"runtime_platform" yaml:"runtime_platform"`
	PlatformLabel   string `json:"platform_label,omitempty" yaml:"platform_label,omitempty"`
}

// HasID reports whether the database carries a DATABASE_ID.
func (i *Information) HasID() bool { return i.Flags&FlagValidGUID != 0 }

// GetFile opens the database at path and summarises it.
func GetFile(path string) (*Information, error) {
	db, err := sdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("get database information for %s: %w", path, err)
	}
	defer db.Close()

	inf, err := Get(db)
	if err != nil {
		return nil, fmt.Errorf("get database information for %s: %w", path, err)
	}
	return inf, nil
}

// Get summarises db. Only direct children of the top-level DATABASE tag are
// consulted; the first occurrence of each tag wins.
func Get(db types.Database) (*Information, error) {
	head := db.Header()
	inf := &Information{
		Major:           head.MajorVersion,
		Minor:           head.MinorVersion,
		Flags:           FlagValidRuntimePlatform,
		RuntimePlatform: DefaultRuntimePlatform,
	}

	database, err := findDatabase(db)
	if err != nil {
		return nil, err
	}
	kids, err := db.Children(database)
	if err != nil {
		return nil, err
	}

	var seenName, seenID, seenPlatform bool
	for _, id := range kids {
		code, err := db.Tag(id)
		if err != nil {
			return nil, err
		}
		switch {
		case code == tags.NameTag && !seenName:
			seenName = true
			if inf.Description, err = db.ReadString(id); err != nil {
				return nil, err
			}
		case code == tags.DatabaseID && !seenID:
			seenID = true
			raw, err := db.ReadBinary(id)
			if err != nil {
				return nil, err
			}
			if inf.ID, err = annotate.FormatGUID(raw); err != nil {
				return nil, fmt.Errorf("DATABASE_ID: %w", err)
			}
			inf.Flags |= FlagValidGUID
		case code == tags.RuntimePlatform && !seenPlatform:
			seenPlatform = true
			if inf.RuntimePlatform, err = db.ReadDWord(id); err != nil {
				return nil, err
			}
		}
	}
	inf.PlatformLabel = annotate.DecodeFlags(uint64(inf.RuntimePlatform), annotate.PolicyFor("RUNTIME_PLATFORM").Flags)
	return inf, nil
}

func findDatabase(db types.Database) (types.TagID, error) {
	root, err := db.Root()
	if err != nil {
		return 0, err
	}
	top, err := db.Children(root)
	if err != nil {
		return 0, err
	}
	for _, id := range top {
		code, err := db.Tag(id)
		if err != nil {
			return 0, err
		}
		if code == tags.Database {
			return id, nil
		}
	}
	return 0, &types.Error{Kind: types.ErrKindNotFound, Msg: "no DATABASE tag at the top level"}
}
