package sdb2xml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/sdbkit/internal/testutil"
	"github.com/joshuapare/sdbkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const allTagsResult = `<?xml version="1.0" encoding="utf-8" standalone="yes"?>
<SDB xmlns:xs="http://www.w3.org/2001/XMLSchema" file="all_tagtypes.sdb">
  <DATABASE>
    <InvalidTag></InvalidTag>
    <InvalidTag />
    <InvalidTag type="xs:byte">255</InvalidTag>
    <InvalidTag type="xs:unsignedShort">65535</InvalidTag>
    <InvalidTag type="xs:unsignedInt">4294967295</InvalidTag>
    <InvalidTag type="xs:unsignedLong">18446744073709551615</InvalidTag>
    <InvalidTag type="xs:base64Binary">//////////8=</InvalidTag>
    <InvalidTag type="xs:string"></InvalidTag>
    <InvalidTag type="xs:string"></InvalidTag>
    <DATABASE></DATABASE>
    <INCLUDE />
    <InvalidTag type="xs:byte">0</InvalidTag>
    <MATCH_MODE type="xs:unsignedShort">0</MATCH_MODE>
    <SIZE type="xs:unsignedInt">0</SIZE>
    <BIN_FILE_VERSION type="xs:unsignedLong">0</BIN_FILE_VERSION>
    <InvalidTag type="xs:base64Binary">AAAAAAAAAAA=</InvalidTag>
    <InvalidTag type="xs:string">val</InvalidTag>
    <NAME type="xs:string"></NAME>
    <LIBRARY>
      <INDEX_TAG type="xs:unsignedShort">14338<!-- INDEX_TAG --></INDEX_TAG>
      <INDEX_KEY type="xs:unsignedShort">14339<!-- INDEX_KEY --></INDEX_KEY>
      <INDEX_FLAGS type="xs:unsignedInt">3<!-- SHIMDB_INDEX_UNIQUE_KEY | SHIMDB_INDEX_TRAILING_CHARACTERS --></INDEX_FLAGS>
      <GUEST_TARGET_PLATFORM type="xs:unsignedInt">17<!-- X86 | ARM64 --></GUEST_TARGET_PLATFORM>
      <RUNTIME_PLATFORM type="xs:unsignedInt">34<!-- AMD64 | 0x20 --></RUNTIME_PLATFORM>
    </LIBRARY>
    <PATCH>
      <APP>
        <EXE>
          <LINK_DATE type="xs:unsignedInt">0</LINK_DATE>
          <UPTO_LINK_DATE type="xs:unsignedInt">1<!-- 1970-01-01 00:00:01 UTC --></UPTO_LINK_DATE>
          <FROM_LINK_DATE type="xs:unsignedInt">69922<!-- 1970-01-01 19:25:22 UTC --></FROM_LINK_DATE>
        </EXE>
        <TIME type="xs:unsignedLong">0</TIME>
        <TIME type="xs:unsignedLong">131560831927601799<!-- 2017-11-25T11:33:12.7601799Z --></TIME>
        <EXE_ID type="xs:base64Binary"></EXE_ID>
        <EXE_ID type="xs:base64Binary">iHdmVSIRIhERIjNEVWZ3iA==<!-- {55667788-1122-1122-1122-334455667788} --></EXE_ID>
      </APP>
    </PATCH>
  </DATABASE>
</SDB>`

const strippedTagTagIDResult = `<?xml version="1.0" encoding="utf-8" standalone="yes"?>
<SDB xmlns:xs="http://www.w3.org/2001/XMLSchema" file="all_tagtypes.sdb">
  <DATABASE tagid="12" tag="0x7001">
    <DATABASE tagid="78" tag="0x7001"></DATABASE>
    <INCLUDE tagid="84" tag="0x1001" />
    <MATCH_MODE type="xs:unsignedShort" tagid="90" tag="0x3001">0</MATCH_MODE>
    <SIZE type="xs:unsignedInt" tagid="94" tag="0x4001">0</SIZE>
    <BIN_FILE_VERSION type="xs:unsignedLong" tagid="100" tag="0x5002">0</BIN_FILE_VERSION>
    <NAME type="xs:string" tagid="138" tag="0x6001"></NAME>
    <LIBRARY tagid="144" tag="0x7002">
      <INDEX_TAG type="xs:unsignedShort" tagid="150" tag="0x3802">14338</INDEX_TAG>
      <INDEX_KEY type="xs:unsignedShort" tagid="154" tag="0x3803">14339</INDEX_KEY>
      <INDEX_FLAGS type="xs:unsignedInt" tagid="158" tag="0x4016">3</INDEX_FLAGS>
      <GUEST_TARGET_PLATFORM type="xs:unsignedInt" tagid="164" tag="0x4023">17</GUEST_TARGET_PLATFORM>
      <RUNTIME_PLATFORM type="xs:unsignedInt" tagid="170" tag="0x4021">34</RUNTIME_PLATFORM>
    </LIBRARY>
  </DATABASE>
</SDB>`

func convertAllTagTypes(t *testing.T, opts Options) string {
	t.Helper()
	path := testutil.WriteDatabase(t, "all_tagtypes.sdb", testutil.AllTagTypes())
	var out bytes.Buffer
	require.NoError(t, ConvertFile(path, &out, opts))
	return out.String()
}

func convertMem(t *testing.T, opts Options, top ...testutil.Node) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, Convert(testutil.NewMemDB(top...), &out, "mem.sdb", opts))
	return out.String()
}

func TestConvertFile_AllTagTypes(t *testing.T) {
	got := convertAllTagTypes(t, DefaultOptions())
	require.Equal(t, allTagsResult, got)
}

func TestConvertFile_ZeroOptionsMatchDefaults(t *testing.T) {
	got := convertAllTagTypes(t, Options{})
	require.Equal(t, allTagsResult, got)
}

func TestConvertFile_StrippedWithTagIDs(t *testing.T) {
	got := convertAllTagTypes(t, Options{
		ExcludeTags: []string{"PATCH", "InvalidTag"},
		Annotations: Disabled,
		WithTagID:   true,
		WithTag:     true,
	})
	require.Equal(t, strippedTagTagIDResult, got)
}

func TestConvertFile_ExcludeIsTransitive(t *testing.T) {
	got := convertAllTagTypes(t, Options{
		ExcludeTags: []string{"PATCH", "APP", "BIN_FILE_VERSION", "TIME"},
	})
	assert.NotContains(t, got, "BIN_FILE_VERSION")
	assert.NotContains(t, got, "LINK_DATE")
	assert.NotContains(t, got, "EXE_ID")
	assert.NotContains(t, got, "<!-- PATCH")
	assert.Contains(t, got, `<INDEX_TAG type="xs:unsignedShort">14338<!-- INDEX_TAG --></INDEX_TAG>`)
}

func TestConvertFile_AnnotationsDisabled(t *testing.T) {
	got := convertAllTagTypes(t, Options{Annotations: Disabled})
	assert.Contains(t, got, `<INDEX_TAG type="xs:unsignedShort">14338</INDEX_TAG>`)
	assert.NotContains(t, got, "<!--")
}

func TestConvertFile_StringTable(t *testing.T) {
	path := testutil.WriteDatabase(t, "app.sdb", testutil.AppDatabase())
	var out bytes.Buffer
	require.NoError(t, ConvertFile(path, &out, Options{ExcludeTags: []string{"STRINGTABLE"}}))

	got := out.String()
	assert.Contains(t, got, `file="app.sdb"`)
	assert.Contains(t, got, `<NAME type="xs:string">app_x32</NAME>`)
	assert.Contains(t, got, `<NAME type="xs:string">notepad.exe</NAME>`)
	assert.Contains(t, got, `<!-- {`+testutil.AppDatabaseID+`} -->`)
	assert.Contains(t, got, `<FLAGS type="xs:unsignedInt">268435457</FLAGS>`)
	assert.Contains(t, got, `<RUNTIME_PLATFORM type="xs:unsignedInt">4<!-- IA64 --></RUNTIME_PLATFORM>`)
	assert.NotContains(t, got, "STRINGTABLE")
}

func TestConvertFile_NotFound(t *testing.T) {
	var out bytes.Buffer
	err := ConvertFile(filepath.Join(t.TempDir(), "non_existent.sdb"), &out, DefaultOptions())
	require.ErrorIs(t, err, types.ErrNotFound)
	require.Zero(t, out.Len())
}

func TestConvertFile_InvalidFormat(t *testing.T) {
	path := testutil.WriteDatabase(t, "bad.sdb", []byte("this is not an sdbf file"))
	var out bytes.Buffer
	err := ConvertFile(path, &out, DefaultOptions())
	require.ErrorIs(t, err, types.ErrInvalidFormat)
}

func TestConvert_WellFormed(t *testing.T) {
	got := convertAllTagTypes(t, DefaultOptions())
	dec := xml.NewDecoder(strings.NewReader(got))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
	}
}

func TestConvert_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		top  []testutil.Node
		want string
	}{
		{
			name: "tag reference comment",
			top:  []testutil.Node{testutil.Word(0x3802, 0x3802)},
			want: `<INDEX_TAG type="xs:unsignedShort">14338<!-- INDEX_TAG --></INDEX_TAG>`,
		},
		{
			name: "empty list with diagnostics",
			opts: Options{WithTagID: true, WithTag: true},
			top:  []testutil.Node{testutil.List(0x7001)},
			want: `<DATABASE tagid="1" tag="0x7001"></DATABASE>`,
		},
		{
			name: "unnamed null",
			top:  []testutil.Node{testutil.Null(0x1000)},
			want: `<InvalidTag />`,
		},
		{
			name: "guest platform flags",
			top:  []testutil.Node{testutil.DWord(0x4023, 17)},
			want: `<GUEST_TARGET_PLATFORM type="xs:unsignedInt">17<!-- X86 | ARM64 --></GUEST_TARGET_PLATFORM>`,
		},
		{
			name: "tag id only",
			opts: Options{WithTagID: true},
			top:  []testutil.Node{testutil.Null(0x1001)},
			want: `<INCLUDE tagid="1" />`,
		},
		{
			name: "tag code only",
			opts: Options{WithTag: true},
			top:  []testutil.Node{testutil.Word(0x3001, 2)},
			want: `<MATCH_MODE type="xs:unsignedShort" tag="0x3001">2</MATCH_MODE>`,
		},
		{
			name: "string escaping",
			top:  []testutil.Node{testutil.String(0x8801, `a<b & "c">`)},
			want: `<STRINGTABLE_ITEM type="xs:string">a&lt;b &amp; "c"&gt;</STRINGTABLE_ITEM>`,
		},
		{
			name: "all children excluded",
			opts: Options{ExcludeTags: []string{"INCLUDE"}},
			top:  []testutil.Node{testutil.List(0x7001, testutil.Null(0x1001), testutil.Null(0x1001))},
			want: `<DATABASE></DATABASE>`,
		},
		{
			name: "zero timestamp has no comment",
			top:  []testutil.Node{testutil.QWord(0x5001, 0)},
			want: `<TIME type="xs:unsignedLong">0</TIME>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertMem(t, tt.opts, tt.top...)
			require.Contains(t, got, "\n  "+tt.want+"\n</SDB>")
		})
	}
}

func TestConvert_EmptyDatabase(t *testing.T) {
	got := convertMem(t, Options{})
	require.Equal(t, `<?xml version="1.0" encoding="utf-8" standalone="yes"?>`+"\n"+
		`<SDB xmlns:xs="http://www.w3.org/2001/XMLSchema" file="mem.sdb"></SDB>`, got)
}

func TestConvert_FileLabelIsEscaped(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Convert(testutil.NewMemDB(), &out, `a&b".sdb`, Options{}))
	require.Contains(t, out.String(), `file="a&amp;b&quot;.sdb"`)
}

func TestConvert_UnknownTagType(t *testing.T) {
	db := testutil.NewMemDB(testutil.List(0x7001, testutil.Null(0x1001), testutil.Node{Code: 0xA001}))
	var out bytes.Buffer
	err := Convert(db, &out, "mem.sdb", Options{})
	require.ErrorIs(t, err, types.ErrUnknownTagType)
	// Output written before the failure stays in the sink.
	require.Contains(t, out.String(), "<INCLUDE />")
}

func TestConvert_UnknownTagTypeInsideExcludedSubtree(t *testing.T) {
	db := testutil.NewMemDB(testutil.List(0x7005, testutil.Node{Code: 0xA001}))
	var out bytes.Buffer
	require.NoError(t, Convert(db, &out, "mem.sdb", Options{ExcludeTags: []string{"PATCH"}}))
}

func TestConvert_BadGUID(t *testing.T) {
	db := testutil.NewMemDB(testutil.Binary(0x9004, []byte{1, 2, 3}))
	var out bytes.Buffer
	err := Convert(db, &out, "mem.sdb", Options{})
	require.ErrorIs(t, err, types.ErrTypeMismatch)

	out.Reset()
	require.NoError(t, Convert(testutil.NewMemDB(testutil.Binary(0x9004, []byte{1, 2, 3})), &out, "mem.sdb", Options{Annotations: Disabled}))
	require.Contains(t, out.String(), `<EXE_ID type="xs:base64Binary">AQID</EXE_ID>`)
}

func TestConvert_MaxDepth(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Convert(testutil.NewMemDB(testutil.Nest(8)), &out, "mem.sdb", Options{MaxDepth: 8}))

	out.Reset()
	err := Convert(testutil.NewMemDB(testutil.Nest(9)), &out, "mem.sdb", Options{MaxDepth: 8})
	require.ErrorIs(t, err, types.ErrCorrupt)
}

func TestConvert_DefaultMaxDepth(t *testing.T) {
	data := testutil.Build(3, 0, testutil.Nest(types.MaxTagDepth))
	path := testutil.WriteDatabase(t, "deep.sdb", data)
	require.NoError(t, ConvertFile(path, io.Discard, Options{}))

	data = testutil.Build(3, 0, testutil.Nest(types.MaxTagDepth+1))
	path = testutil.WriteDatabase(t, "deeper.sdb", data)
	require.ErrorIs(t, ConvertFile(path, io.Discard, Options{}), types.ErrCorrupt)
}

func TestConvert_InvalidAnnotations(t *testing.T) {
	db := testutil.NewMemDB()
	var out bytes.Buffer
	err := Convert(db, &out, "mem.sdb", Options{Annotations: "verbose"})
	require.Error(t, err)
	require.Zero(t, out.Len())
}

func TestConvert_SinkErrorIsReturned(t *testing.T) {
	db := testutil.NewMemDB(testutil.List(0x7001, testutil.Null(0x1001)))
	err := Convert(db, failingWriter{}, "mem.sdb", Options{})
	require.ErrorIs(t, err, errSink)
}

func TestConvert_LogsExclusions(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	db := testutil.NewMemDB(testutil.List(0x7001, testutil.Null(0x1001)))

	require.NoError(t, Convert(db, io.Discard, "mem.sdb", Options{ExcludeTags: []string{"INCLUDE"}, Logger: logger}))
	assert.Contains(t, logs.String(), "excluded tag")
	assert.Contains(t, logs.String(), "name=INCLUDE")
}

func TestParseAnnotations(t *testing.T) {
	a, err := ParseAnnotations("comment")
	require.NoError(t, err)
	require.Equal(t, Comment, a)

	a, err = ParseAnnotations("disabled")
	require.NoError(t, err)
	require.Equal(t, Disabled, a)

	_, err = ParseAnnotations("Comment")
	require.ErrorIs(t, err, &types.Error{Kind: types.ErrKindUnsupported})
}

var errSink = errors.New("sink closed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }
