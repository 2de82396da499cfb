package format

import (
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/minij/lang/tree"
)

// TextEncoder prints a tree one node per line, indented by depth.
// Error placeholders are marked with ERROR and the tokens they hold.
type TextEncoder struct {
	w             io.Writer
	showPositions bool
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

// WithPositions makes the encoder print each node's span.
func (e *TextEncoder) WithPositions() *TextEncoder {
	e.showPositions = true
	return e
}

func (e *TextEncoder) Encode(n tree.Node) error {
	text, err := e.MarshalText(n)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText(n tree.Node) ([]byte, error) {
	var sb strings.Builder
	e.writeNode(&sb, n, 0)
	return []byte(sb.String()), nil
}

func (e *TextEncoder) writeNode(sb *strings.Builder, n tree.Node, indent int) {
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString(tree.KindName(n))
	if e.showPositions {
		span := n.Span()
		sb.WriteString(" [" + span.Start.String() + "-" + span.End.String() + "]")
	}
	if l := label(n); l != "" {
		sb.WriteString(" " + l)
	}
	if bad, ok := tree.BadOf(n); ok {
		sb.WriteString(" ERROR " + strconv.Quote(bad.Text()))
	}
	sb.WriteString("\n")

	for _, child := range tree.Children(n) {
		e.writeNode(sb, child, indent+1)
	}
}

// String renders n with a TextEncoder.
func String(n tree.Node) string {
	text, _ := NewTextEncoder(nil).MarshalText(n)
	return string(text)
}
