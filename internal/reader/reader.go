// Package reader provides the concrete types.Database implementation over a
// memory-mapped sdbf file. The exported entry points are used by the public
// sdb package and the CLI; the parsing machinery stays internal.
package reader

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joshuapare/sdbkit/internal/buf"
	"github.com/joshuapare/sdbkit/internal/format"
	"github.com/joshuapare/sdbkit/internal/mmfile"
	"github.com/joshuapare/sdbkit/pkg/types"
	"github.com/joshuapare/sdbkit/sdb/tags"
)

// rootName is how the virtual root is named in error messages.
const rootName = "SDB"

// Open maps the database at path and returns an implementation of
// types.Database.
func Open(path string, opts types.OpenOptions) (types.Database, error) {
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, wrapIOErr(path, err)
	}
	r, err := newReader(data, unmap, opts)
	if err != nil {
		if unmap != nil {
			_ = unmap()
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return r, nil
}

// OpenBytes creates a reader backed by the provided buffer. The buffer must
// not be modified while the reader is in use.
func OpenBytes(b []byte, opts types.OpenOptions) (types.Database, error) {
	return newReader(b, nil, opts)
}

type reader struct {
	buf         []byte
	unmap       func() error
	opts        types.OpenOptions
	head        format.Header
	closed      bool
	stringTable types.TagID // 0 when the database has no STRINGTABLE
}

func newReader(b []byte, unmap func() error, opts types.OpenOptions) (*reader, error) {
	head, err := format.ParseHeader(b)
	if err != nil {
		// Both a bad magic and a file shorter than the header mean the
		// input is not a database at all.
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "not an sdb database", Err: err}
	}
	if opts.MaxPayloadSize <= 0 {
		opts.MaxPayloadSize = types.MaxPayloadSize
	}
	r := &reader{buf: b, unmap: unmap, opts: opts, head: head}

	top, err := r.Children(types.TagIDRoot)
	if err != nil {
		return nil, err
	}
	for _, id := range top {
		rec, _ := r.record(id) // already decoded by Children
		if rec.Code == tags.StringTable {
			r.stringTable = id
			break
		}
	}
	return r, nil
}

// Close releases resources (unmaps the buffer if necessary).
func (r *reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.buf = nil
	if r.unmap != nil {
		return r.unmap()
	}
	return nil
}

func (r *reader) ensureOpen() error {
	if r.closed {
		return types.ErrClosed
	}
	return nil
}

func (r *reader) Header() types.Header {
	return types.Header{MajorVersion: r.head.MajorVersion, MinorVersion: r.head.MinorVersion}
}

func (r *reader) Root() (types.TagID, error) {
	if err := r.ensureOpen(); err != nil {
		return 0, err
	}
	return types.TagIDRoot, nil
}

func (r *reader) Tag(id types.TagID) (types.Tag, error) {
	if err := r.ensureOpen(); err != nil {
		return 0, err
	}
	if id == types.TagIDRoot {
		return 0, &types.Error{Kind: types.ErrKindType, Msg: "the root tag has no tag code"}
	}
	rec, err := r.record(id)
	if err != nil {
		return 0, err
	}
	return rec.Code, nil
}

// Children walks the siblings inside a LIST payload (or the whole file after
// the header for the root). Sibling records must lie within their parent.
func (r *reader) Children(id types.TagID) ([]types.TagID, error) {
	if err := r.ensureOpen(); err != nil {
		return nil, err
	}
	start, end := format.HeaderSize, len(r.buf)
	if id != types.TagIDRoot {
		rec, err := r.record(id)
		if err != nil {
			return nil, err
		}
		if rec.Type != types.TagTypeList {
			return nil, r.typeErr(id, rec, "LIST")
		}
		start, end = rec.DataOff, rec.DataOff+rec.DataLen
	}

	scope := r.buf[:end]
	var out []types.TagID
	for off := start; end-off >= format.TagSize; {
		rec, err := format.DecodeTag(scope, off, r.opts.MaxPayloadSize)
		if err != nil {
			return nil, wrapFormatErr(err)
		}
		out = append(out, types.TagID(off))
		off = rec.Next
	}
	return out, nil
}

func (r *reader) ReadByte(id types.TagID) (uint8, error) {
	rec, err := r.typed(id, types.TagTypeByte, "BYTE")
	if err != nil {
		return 0, err
	}
	return rec.Payload(r.buf)[0], nil
}

func (r *reader) ReadWord(id types.TagID) (uint16, error) {
	rec, err := r.typed(id, types.TagTypeWord, "WORD")
	if err != nil {
		return 0, err
	}
	return buf.U16LE(rec.Payload(r.buf)), nil
}

func (r *reader) ReadDWord(id types.TagID) (uint32, error) {
	rec, err := r.typed(id, types.TagTypeDWord, "DWORD")
	if err != nil {
		return 0, err
	}
	return buf.U32LE(rec.Payload(r.buf)), nil
}

func (r *reader) ReadQWord(id types.TagID) (uint64, error) {
	rec, err := r.typed(id, types.TagTypeQWord, "QWORD")
	if err != nil {
		return 0, err
	}
	return buf.U64LE(rec.Payload(r.buf)), nil
}

// ReadBinary returns a copy of the payload so it stays valid after Close.
func (r *reader) ReadBinary(id types.TagID) ([]byte, error) {
	rec, err := r.typed(id, types.TagTypeBinary, "BINARY")
	if err != nil {
		return nil, err
	}
	return append([]byte{}, rec.Payload(r.buf)...), nil
}

func (r *reader) ReadString(id types.TagID) (string, error) {
	if err := r.ensureOpen(); err != nil {
		return "", err
	}
	if id == types.TagIDRoot {
		return "", r.typeErr(id, format.Record{}, "STRING or STRINGREF")
	}
	rec, err := r.record(id)
	if err != nil {
		return "", err
	}
	switch rec.Type {
	case types.TagTypeString:
		return decodeUTF16LE(rec.Payload(r.buf))
	case types.TagTypeStringRef:
		return r.resolveStringRef(rec)
	default:
		return "", r.typeErr(id, rec, "STRING or STRINGREF")
	}
}

// resolveStringRef follows a STRINGREF into the STRINGTABLE. The stored
// value is the offset of a STRINGTABLE_ITEM relative to the table tag.
// Databases without a string table yield empty strings, matching apphelp.
func (r *reader) resolveStringRef(rec format.Record) (string, error) {
	if r.stringTable == 0 {
		return "", nil
	}
	ref := buf.U32LE(rec.Payload(r.buf))
	target := uint64(r.stringTable) + uint64(ref)
	if target >= uint64(len(r.buf)) {
		return "", &types.Error{
			Kind: types.ErrKindCorrupt,
			Msg:  fmt.Sprintf("string reference 0x%x at 0x%x points outside the file", ref, rec.Offset),
		}
	}
	item, err := r.record(types.TagID(target))
	if err != nil {
		return "", err
	}
	if item.Type != types.TagTypeString {
		return "", &types.Error{
			Kind: types.ErrKindCorrupt,
			Msg:  fmt.Sprintf("string reference 0x%x at 0x%x resolves to a %s tag", ref, rec.Offset, item.Type),
		}
	}
	return decodeUTF16LE(item.Payload(r.buf))
}

func (r *reader) typed(id types.TagID, want types.TagType, label string) (format.Record, error) {
	if err := r.ensureOpen(); err != nil {
		return format.Record{}, err
	}
	if id == types.TagIDRoot {
		return format.Record{}, r.typeErr(id, format.Record{}, label)
	}
	rec, err := r.record(id)
	if err != nil {
		return format.Record{}, err
	}
	if rec.Type != want {
		return format.Record{}, r.typeErr(id, rec, label)
	}
	return rec, nil
}

func (r *reader) record(id types.TagID) (format.Record, error) {
	if id == types.TagIDRoot || int64(id) < format.HeaderSize {
		return format.Record{}, &types.Error{
			Kind: types.ErrKindNotFound,
			Msg:  fmt.Sprintf("tag id 0x%x is not a tag record", uint32(id)),
		}
	}
	rec, err := format.DecodeTag(r.buf, int(id), r.opts.MaxPayloadSize)
	if err != nil {
		return format.Record{}, wrapFormatErr(err)
	}
	return rec, nil
}

func (r *reader) typeErr(id types.TagID, rec format.Record, label string) error {
	name := rootName
	if id != types.TagIDRoot {
		name = tags.Name(rec.Code)
	}
	return &types.Error{Kind: types.ErrKindType, Msg: fmt.Sprintf("tag %s is not a %s type", name, label)}
}

func wrapIOErr(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &types.Error{Kind: types.ErrKindNotFound, Msg: "open " + path, Err: err}
	}
	return &types.Error{Kind: types.ErrKindState, Msg: "open " + path, Err: err}
}

func wrapFormatErr(err error) error {
	switch {
	case errors.Is(err, format.ErrUnknownType):
		return &types.Error{Kind: types.ErrKindUnknownType, Msg: "unknown tag type", Err: err}
	case errors.Is(err, format.ErrTruncated):
		return &types.Error{Kind: types.ErrKindCorrupt, Msg: "tag truncated", Err: err}
	default:
		return &types.Error{Kind: types.ErrKindCorrupt, Msg: "corrupt tag", Err: err}
	}
}
