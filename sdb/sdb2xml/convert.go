// Package sdb2xml renders the tag tree of a shim database as XML.
//
// Every tag becomes one element named after the tag. Leaf values are written
// as element text (decimal numbers, base64 binary, verbatim strings) and,
// when annotations are enabled, a decoded form follows as a comment:
//
//	<INDEX_FLAGS type="xs:unsignedInt">3<!-- SHIMDB_INDEX_UNIQUE_KEY | SHIMDB_INDEX_TRAILING_CHARACTERS --></INDEX_FLAGS>
//
// The document is written to the sink as the tree is walked. Output written
// before an error is not rolled back.
package sdb2xml

import (
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/joshuapare/sdbkit/pkg/types"
	"github.com/joshuapare/sdbkit/sdb"
	"github.com/joshuapare/sdbkit/sdb/annotate"
	"github.com/joshuapare/sdbkit/sdb/tags"
	"github.com/joshuapare/sdbkit/sdb/xmlw"
)

const (
	rootElement = "SDB"
	schemaNS    = "http://www.w3.org/2001/XMLSchema"
)

// ConvertFile opens the database at path and converts it to w, labelling
// the document with the base name of path. The database is closed on every
// return path.
func ConvertFile(path string, w io.Writer, opts Options) (err error) {
	db, err := sdb.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); err == nil {
			err = cerr
		}
	}()
	return Convert(db, w, filepath.Base(path), opts)
}

// Convert writes the XML rendering of db to w. file is used for the file
// attribute of the SDB element.
func Convert(db types.Database, w io.Writer, file string, opts Options) error {
	opts, err := opts.normalized()
	if err != nil {
		return err
	}
	c := &converter{
		db:      db,
		x:       xmlw.New(w),
		opts:    opts,
		log:     opts.Logger,
		exclude: make(map[string]struct{}, len(opts.ExcludeTags)),
	}
	for _, name := range opts.ExcludeTags {
		c.exclude[name] = struct{}{}
	}

	if err := c.x.Declaration(); err != nil {
		return err
	}
	if err := c.x.Open(rootElement, xmlw.Attr{Key: "xmlns:xs", Value: schemaNS}, xmlw.Attr{Key: "file", Value: file}); err != nil {
		return err
	}
	root, err := db.Root()
	if err != nil {
		return err
	}
	top, err := db.Children(root)
	if err != nil {
		return fmt.Errorf("read top-level tags: %w", err)
	}
	for _, id := range top {
		if err := c.visit(id, 1); err != nil {
			return err
		}
	}
	if err := c.x.Close(rootElement); err != nil {
		return err
	}
	c.log.Debug("converted database", "file", file, "tags", c.written, "skipped", c.skipped)
	return nil
}

type converter struct {
	db      types.Database
	x       *xmlw.Writer
	opts    Options
	log     *slog.Logger
	exclude map[string]struct{}

	written int // elements written
	skipped int // excluded subtrees
}

func (c *converter) visit(id types.TagID, depth int) error {
	if depth > c.opts.MaxDepth {
		return &types.Error{
			Kind: types.ErrKindCorrupt,
			Msg:  fmt.Sprintf("tag 0x%x nested deeper than %d levels", uint32(id), c.opts.MaxDepth),
		}
	}
	code, err := c.db.Tag(id)
	if err != nil {
		return err
	}
	name := tags.Name(code)
	if _, skip := c.exclude[name]; skip {
		c.skipped++
		c.log.Debug("excluded tag", "name", name, "tagid", uint32(id))
		return nil
	}
	typ, err := tags.Classify(code)
	if err != nil {
		return fmt.Errorf("tag at 0x%x: %w", uint32(id), err)
	}

	attrs := c.attrs(id, code, typ)
	c.written++
	switch typ {
	case types.TagTypeList:
		return c.visitList(id, name, attrs, depth)
	case types.TagTypeNull:
		return c.x.Empty(name, attrs...)
	default:
		return c.visitLeaf(id, name, typ, attrs)
	}
}

// visitList writes a container. A list whose children are all excluded
// renders as an empty pair, the same as a list without children.
func (c *converter) visitList(id types.TagID, name string, attrs []xmlw.Attr, depth int) error {
	kids, err := c.db.Children(id)
	if err != nil {
		return err
	}
	if err := c.x.Open(name, attrs...); err != nil {
		return err
	}
	for _, kid := range kids {
		if err := c.visit(kid, depth+1); err != nil {
			return err
		}
	}
	return c.x.Close(name)
}

func (c *converter) visitLeaf(id types.TagID, name string, typ types.TagType, attrs []xmlw.Attr) error {
	v, err := types.ReadValue(c.db, id, typ)
	if err != nil {
		return err
	}
	if err := c.x.Open(name, attrs...); err != nil {
		return err
	}
	if err := c.x.Text(valueText(v)); err != nil {
		return err
	}
	if c.opts.Annotations == Comment {
		note, err := annotate.Annotate(name, v)
		if err != nil {
			return err
		}
		if note != "" {
			if err := c.x.Comment(note); err != nil {
				return err
			}
		}
	}
	return c.x.Close(name)
}

func (c *converter) attrs(id types.TagID, code types.Tag, typ types.TagType) []xmlw.Attr {
	var attrs []xmlw.Attr
	if xt, ok := tags.XMLType(typ); ok {
		attrs = append(attrs, xmlw.Attr{Key: "type", Value: xt})
	}
	if c.opts.WithTagID {
		attrs = append(attrs, xmlw.Attr{Key: "tagid", Value: strconv.FormatUint(uint64(id), 10)})
	}
	if c.opts.WithTag {
		attrs = append(attrs, xmlw.Attr{Key: "tag", Value: fmt.Sprintf("0x%04X", uint16(code))})
	}
	return attrs
}

// valueText renders a leaf value as element text.
func valueText(v types.Value) string {
	switch v.Type {
	case types.TagTypeBinary:
		return base64.StdEncoding.EncodeToString(v.Bytes)
	case types.TagTypeString, types.TagTypeStringRef:
		return v.Str
	default:
		return strconv.FormatUint(v.Num, 10)
	}
}
