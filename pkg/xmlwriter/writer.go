// Package xmlwriter provides a minimal streaming XML emitter.
//
// The writer emits elements as they are opened and closed, deferring
// each opening tag until the first child write so that childless
// elements collapse to self-closing form (`<node id="n0" />`). It
// handles character escaping, optional two-space indentation, and
// element balancing; it knows nothing about any particular document
// format.
//
// Write errors from the underlying sink are sticky: after the first
// failure all further output is suppressed and the error is reported
// by [Writer.Err] and [Writer.Flush]. Misuse of the element stack
// (closing more elements than were opened) panics, since it indicates
// a bug in the caller rather than a runtime condition.
package xmlwriter

import (
	"fmt"
	"io"
	"strings"
)

// Attr is a single attribute on an element opening tag.
type Attr struct {
	Name  string
	Value string
}

// Options configures a Writer.
type Options struct {
	// Indent enables pretty-printing: two spaces per nesting level
	// and a line break before every element. When false no whitespace
	// is emitted between tags.
	Indent bool
}

// frame tracks one open element and what has been written inside it.
type frame struct {
	name     string
	children bool // at least one child element committed
}

// Writer streams XML to an underlying sink.
// The zero value is not usable - use New.
type Writer struct {
	w      io.Writer
	indent bool

	stack   []frame
	pending string // rendered but uncommitted opening tag, without ">"
	started bool   // anything written yet (controls leading newlines)
	err     error
}

// New creates a Writer emitting to w.
func New(w io.Writer, opts Options) *Writer {
	return &Writer{w: w, indent: opts.Indent}
}

// Err returns the first error encountered while writing to the sink,
// or nil. Once non-nil, all subsequent writes are no-ops.
func (x *Writer) Err() error { return x.err }

// Flush reports the sticky write error, if any. The Writer performs
// no buffering of its own, so there is nothing else to flush.
func (x *Writer) Flush() error { return x.err }

// WriteHeader emits the XML declaration:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//
// It must be called before any element is opened.
func (x *Writer) WriteHeader() {
	x.write(`<?xml version="1.0" encoding="UTF-8"?>`)
	x.started = true
}

// Start opens a new element with the given attributes. The opening
// tag is not committed to the sink until the first child write or the
// matching End, so that empty elements can be emitted self-closing.
func (x *Writer) Start(name string, attrs ...Attr) {
	x.commitPending()
	if len(x.stack) > 0 {
		x.stack[len(x.stack)-1].children = true
	}

	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(name)
	for _, a := range attrs {
		sb.WriteString(" ")
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(escapeAttr(a.Value))
		sb.WriteString(`"`)
	}

	x.breakLine(len(x.stack))
	x.pending = sb.String()
	x.stack = append(x.stack, frame{name: name})
	x.started = true
}

// Text writes escaped character data inside the current element.
// Text is emitted inline, without surrounding indentation, so that
// `<data key="weight">petgraph</data>` stays on one line.
func (x *Writer) Text(s string) {
	if len(x.stack) == 0 {
		panic("xmlwriter: Text outside of any element")
	}
	x.commitPending()
	x.write(escapeText(s))
}

// End closes the most recently opened element. An element with no
// children is emitted self-closing; an element containing child
// elements gets its end tag on its own indented line; an element
// containing only text keeps the end tag inline.
func (x *Writer) End() {
	if len(x.stack) == 0 {
		panic("xmlwriter: End without matching Start")
	}
	top := x.stack[len(x.stack)-1]
	x.stack = x.stack[:len(x.stack)-1]

	if x.pending != "" {
		x.write(x.pending + " />")
		x.pending = ""
		return
	}
	if top.children {
		x.breakLine(len(x.stack))
	}
	x.write("</" + top.name + ">")
}

// commitPending terminates a deferred opening tag with ">" once the
// element turns out to have content.
func (x *Writer) commitPending() {
	if x.pending != "" {
		x.write(x.pending + ">")
		x.pending = ""
	}
}

// breakLine starts a fresh indented line when pretty-printing.
func (x *Writer) breakLine(depth int) {
	if !x.indent || !x.started {
		return
	}
	x.write("\n" + strings.Repeat("  ", depth))
}

func (x *Writer) write(s string) {
	if x.err != nil {
		return
	}
	if _, err := io.WriteString(x.w, s); err != nil {
		x.err = fmt.Errorf("write: %w", err)
	}
}

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
)

func escapeText(s string) string { return textEscaper.Replace(s) }
func escapeAttr(s string) string { return attrEscaper.Replace(s) }
