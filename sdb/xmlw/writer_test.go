package xmlw

import (
	"bytes"
	"encoding/xml"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_Document(t *testing.T) {
	var out bytes.Buffer
	w := New(&out)

	require.NoError(t, w.Declaration())
	require.NoError(t, w.Open("root", Attr{"attr", "value&tag<test>"}))
	require.NoError(t, w.Open("child"))
	require.NoError(t, w.Text("Content&tag<test>"))
	require.NoError(t, w.Close("child"))
	require.NoError(t, w.Empty("empty"))
	require.NoError(t, w.Comment("This is a comment with special characters: & < >"))
	require.NoError(t, w.Close("root"))

	expected := `<?xml version="1.0" encoding="utf-8" standalone="yes"?>` + "\n" +
		`<root attr="value&amp;tag&lt;test&gt;">` + "\n" +
		`  <child>Content&amp;tag&lt;test&gt;</child>` + "\n" +
		`  <empty /><!-- This is a comment with special characters: &amp; &lt; &gt; -->` + "\n" +
		`</root>`
	require.Equal(t, expected, out.String())
	require.Zero(t, w.Depth())
}

func TestWriter_NestedIndentation(t *testing.T) {
	var out bytes.Buffer
	w := New(&out)

	require.NoError(t, w.Open("a"))
	require.NoError(t, w.Open("b", Attr{"type", "xs:string"}, Attr{"tag", "0x6001"}))
	require.NoError(t, w.Open("c"))
	require.NoError(t, w.Text("1"))
	require.NoError(t, w.Comment("one"))
	require.NoError(t, w.Close("c"))
	require.NoError(t, w.Open("d"))
	require.NoError(t, w.Close("d"))
	require.NoError(t, w.Close("b"))
	require.NoError(t, w.Close("a"))

	expected := "<a>\n" +
		"  <b type=\"xs:string\" tag=\"0x6001\">\n" +
		"    <c>1<!-- one --></c>\n" +
		"    <d></d>\n" +
		"  </b>\n" +
		"</a>"
	require.Equal(t, expected, out.String())
}

func TestWriter_EmptyTextStaysInline(t *testing.T) {
	var out bytes.Buffer
	w := New(&out)
	require.NoError(t, w.Open("NAME", Attr{"type", "xs:string"}))
	require.NoError(t, w.Text(""))
	require.NoError(t, w.Close("NAME"))
	require.Equal(t, `<NAME type="xs:string"></NAME>`, out.String())
}

func TestWriter_AttrEscapesQuotes(t *testing.T) {
	var out bytes.Buffer
	w := New(&out)
	require.NoError(t, w.Empty("x", Attr{"file", `a"b&c.sdb`}))
	require.Equal(t, `<x file="a&quot;b&amp;c.sdb" />`, out.String())
}

func TestWriter_CloseMismatch(t *testing.T) {
	var out bytes.Buffer
	w := New(&out)
	require.NoError(t, w.Open("a"))

	err := w.Close("b")
	require.ErrorIs(t, err, ErrUnbalanced)
	// Errors are sticky.
	require.ErrorIs(t, w.Close("a"), ErrUnbalanced)
	require.ErrorIs(t, w.Err(), ErrUnbalanced)
}

func TestWriter_CloseWithNothingOpen(t *testing.T) {
	w := New(&bytes.Buffer{})
	require.ErrorIs(t, w.Close("a"), ErrUnbalanced)
}

func TestWriter_TextOutsideElement(t *testing.T) {
	w := New(&bytes.Buffer{})
	require.ErrorIs(t, w.Text("x"), ErrUnbalanced)
}

type failWriter struct{ n int }

func (f *failWriter) Write(p []byte) (int, error) {
	if f.n == 0 {
		return 0, errors.New("disk full")
	}
	f.n--
	return len(p), nil
}

func TestWriter_WriteErrorIsSticky(t *testing.T) {
	w := New(&failWriter{n: 2})
	require.NoError(t, w.Declaration())
	require.EqualError(t, w.Open("a"), "disk full")
	require.EqualError(t, w.Text("x"), "disk full")
}

func TestEscapeText_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"a & b",
		"<tag>",
		"&amp; already escaped",
		"1 < 2 > 0 && true",
		"unicode ✓ ñ",
	}
	for _, in := range inputs {
		var decoded struct {
			Text string `xml:",chardata"`
		}
		doc := "<v>" + EscapeText(in) + "</v>"
		require.NoError(t, xml.Unmarshal([]byte(doc), &decoded), doc)
		require.Equal(t, in, decoded.Text)
	}
}

func TestEscapeAttr_RoundTrip(t *testing.T) {
	for _, in := range []string{`say "hi"`, "a&b<c>d", ""} {
		var decoded struct {
			V string `xml:"v,attr"`
		}
		doc := `<x v="` + EscapeAttr(in) + `"/>`
		require.NoError(t, xml.Unmarshal([]byte(doc), &decoded), doc)
		require.Equal(t, in, decoded.V)
	}
}
