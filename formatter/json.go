package formatter

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultIndent is the number of spaces per nesting level
const DefaultIndent = 2

// Writer serializes Node trees as indented JSON
type Writer struct {
	indent  string
	compact bool
}

// NewWriter creates a writer using indent spaces per level.
// Values below 1 fall back to DefaultIndent.
func NewWriter(indent int) *Writer {
	if indent < 1 {
		indent = DefaultIndent
	}
	return &Writer{indent: strings.Repeat(" ", indent)}
}

// Compact returns n as single-line JSON with no whitespace, e.g. for log
// messages
func Compact(n *Node) string {
	w := &Writer{compact: true}
	return string(w.BuildJSON(n))
}

// BuildJSON serializes a document. Non-ASCII characters are written as-is,
// only quotes, backslashes and control characters are escaped. No trailing
// newline is written.
func (w *Writer) BuildJSON(n *Node) []byte {
	var b strings.Builder
	w.writeNode(&b, n, 0)
	return []byte(b.String())
}

func (w *Writer) writeNode(b *strings.Builder, n *Node, depth int) {
	if n == nil {
		b.WriteString("null")
		return
	}
	switch n.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		b.WriteString(strconv.FormatBool(n.b))
	case KindNumber:
		b.WriteString(n.text)
	case KindString:
		writeString(b, n.text)
	case KindArray:
		if len(n.items) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				b.WriteByte(',')
			}
			w.newline(b, depth+1)
			w.writeNode(b, item, depth+1)
		}
		w.newline(b, depth)
		b.WriteByte(']')
	case KindObject:
		if len(n.fields) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteByte('{')
		for i, f := range n.fields {
			if i > 0 {
				b.WriteByte(',')
			}
			w.newline(b, depth+1)
			writeString(b, f.key)
			if w.compact {
				b.WriteByte(':')
			} else {
				b.WriteString(": ")
			}
			w.writeNode(b, f.value, depth+1)
		}
		w.newline(b, depth)
		b.WriteByte('}')
	}
}

func (w *Writer) newline(b *strings.Builder, depth int) {
	if w.compact {
		return
	}
	b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		b.WriteString(w.indent)
	}
}

const hexDigits = "0123456789abcdef"

func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c >= utf8.RuneSelf {
			// multi-byte sequences are copied through untouched
			_, size := utf8.DecodeRuneInString(s[i:])
			b.WriteString(s[i : i+size])
			i += size
			continue
		}
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if c < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[c>>4])
				b.WriteByte(hexDigits[c&0xF])
			} else {
				b.WriteByte(c)
			}
		}
		i++
	}
	b.WriteByte('"')
}
