// Package xmlw is a small stack-based XML emitter with the exact layout used
// by sdb2xml: two-space indentation, inline text and comments, self-closing
// empty elements, and no trailing newline.
package xmlw

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Declaration is the XML declaration written by (*Writer).Declaration.
const Declaration = `<?xml version="1.0" encoding="utf-8" standalone="yes"?>`

const indentUnit = "  "

// ErrUnbalanced indicates a Close that does not match the open element, or
// content written outside any element.
var ErrUnbalanced = errors.New("xmlw: unbalanced element")

// Attr is one attribute. Attributes are written in the order given.
type Attr struct {
	Key   string
	Value string
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// EscapeText escapes the characters that may not appear literally in
// character data or comments.
func EscapeText(s string) string { return textEscaper.Replace(s) }

// EscapeAttr escapes an attribute value for use inside double quotes.
func EscapeAttr(s string) string { return attrEscaper.Replace(s) }

type frame struct {
	name     string
	children bool // a child element was written inside this one
}

// Writer emits XML to an io.Writer. The first write error is sticky and
// returned by every later call.
type Writer struct {
	w        io.Writer
	stack    []frame
	wroteTop bool // a top-level element has been written
	err      error
}

// New creates a Writer that owns w for the duration of one document.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Depth returns the number of open elements.
func (x *Writer) Depth() int { return len(x.stack) }

// Err returns the first error encountered.
func (x *Writer) Err() error { return x.err }

// Declaration writes the XML declaration followed by a newline.
func (x *Writer) Declaration() error {
	return x.write(Declaration, "\n")
}

// Open writes a start tag on its own indented line and pushes it.
func (x *Writer) Open(name string, attrs ...Attr) error {
	x.startElement(name, attrs)
	x.write(">")
	x.stack = append(x.stack, frame{name: name})
	return x.err
}

// Empty writes a self-closing element on its own indented line.
func (x *Writer) Empty(name string, attrs ...Attr) error {
	x.startElement(name, attrs)
	return x.write(" />")
}

// Text writes escaped character data directly after the current content.
func (x *Writer) Text(s string) error {
	if len(x.stack) == 0 {
		return x.fail(fmt.Errorf("%w: text outside of an element", ErrUnbalanced))
	}
	return x.write(EscapeText(s))
}

// Comment writes an escaped comment directly after the current content.
func (x *Writer) Comment(s string) error {
	return x.write("<!-- ", EscapeText(s), " -->")
}

// Close pops the open element, which must be name. The end tag goes on its
// own line when child elements were written, otherwise it follows the
// content inline.
func (x *Writer) Close(name string) error {
	if x.err != nil {
		return x.err
	}
	n := len(x.stack)
	if n == 0 || x.stack[n-1].name != name {
		open := "<none>"
		if n > 0 {
			open = x.stack[n-1].name
		}
		return x.fail(fmt.Errorf("%w: close %q while %q is open", ErrUnbalanced, name, open))
	}
	top := x.stack[n-1]
	x.stack = x.stack[:n-1]
	if top.children {
		x.newline(len(x.stack))
	}
	return x.write("</", name, ">")
}

func (x *Writer) startElement(name string, attrs []Attr) {
	depth := len(x.stack)
	if depth > 0 {
		x.stack[depth-1].children = true
		x.newline(depth)
	} else if x.wroteTop {
		x.newline(0)
	}
	if depth == 0 {
		x.wroteTop = true
	}
	x.write("<", name)
	for _, a := range attrs {
		x.write(" ", a.Key, `="`, EscapeAttr(a.Value), `"`)
	}
}

func (x *Writer) newline(depth int) {
	x.write("\n", strings.Repeat(indentUnit, depth))
}

func (x *Writer) write(parts ...string) error {
	for _, p := range parts {
		if x.err != nil {
			return x.err
		}
		if _, err := io.WriteString(x.w, p); err != nil {
			x.err = err
		}
	}
	return x.err
}

func (x *Writer) fail(err error) error {
	if x.err == nil {
		x.err = err
	}
	return x.err
}
