package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/dhamidi/minij/lang/parser"
	"github.com/dhamidi/minij/lang/scanner"
)

// DiagnosticPrinter renders diagnostics with the offending source line and
// a caret under the token that triggered recovery:
//
//	error in A.mj at 1:21: expected ";", found "}"
//
//	   1 | class A { int x = 1 }
//	     |                     ^
type DiagnosticPrinter struct {
	w     io.Writer
	name  string
	lines []string

	severity map[parser.Severity]*color.Color
	caret    *color.Color
	gutter   *color.Color
}

func NewDiagnosticPrinter(w io.Writer, name string, src []byte) *DiagnosticPrinter {
	p := &DiagnosticPrinter{
		w:     w,
		name:  name,
		lines: strings.Split(string(src), "\n"),
		severity: map[parser.Severity]*color.Color{
			parser.SeverityError:   color.New(color.FgRed, color.Bold),
			parser.SeverityWarning: color.New(color.FgYellow, color.Bold),
		},
		caret:  color.New(color.FgGreen, color.Bold),
		gutter: color.New(color.FgBlue),
	}
	return p
}

// WithColor forces colored output on or off, overriding the terminal
// detection done by the color package.
func (p *DiagnosticPrinter) WithColor(on bool) *DiagnosticPrinter {
	for _, c := range p.allColors() {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *DiagnosticPrinter) allColors() []*color.Color {
	colors := []*color.Color{p.caret, p.gutter}
	for _, c := range p.severity {
		colors = append(colors, c)
	}
	return colors
}

func (p *DiagnosticPrinter) Print(diags []parser.Diagnostic) error {
	for _, d := range diags {
		if _, err := io.WriteString(p.w, p.Render(d)); err != nil {
			return err
		}
	}
	return nil
}

func (p *DiagnosticPrinter) Render(d parser.Diagnostic) string {
	line, col := d.Pos.Line, d.Pos.Column
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if line > len(p.lines) {
		line = len(p.lines)
	}
	text := p.lines[line-1]

	header := d.Severity.String()
	if c, ok := p.severity[d.Severity]; ok {
		header = c.Sprint(header)
	}

	var b strings.Builder
	if p.name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, p.name, line, col, d.Message)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, d.Message)
	}
	if line > 1 {
		p.writeLine(&b, line-1)
	}
	p.writeLine(&b, line)
	fmt.Fprintf(&b, "%s%s%s\n", p.gutter.Sprint("     | "), caretPad(text, col), p.caret.Sprint(carets(d.Found)))
	if line < len(p.lines) {
		p.writeLine(&b, line+1)
	}
	b.WriteString("\n")
	return b.String()
}

func (p *DiagnosticPrinter) writeLine(b *strings.Builder, line int) {
	fmt.Fprintf(b, "%s%s\n", p.gutter.Sprintf("%4d | ", line), p.lines[line-1])
}

// caretPad returns the whitespace that puts a caret under column col of
// text, keeping tabs so the caret lines up in a terminal.
func caretPad(text string, col int) string {
	var pad strings.Builder
	for i := 0; i < col-1; i++ {
		if i < len(text) && text[i] == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	return pad.String()
}

func carets(tok scanner.Token) string {
	width := tok.Span.End.Offset - tok.Span.Start.Offset
	if width < 1 || tok.Span.End.Line != tok.Span.Start.Line {
		width = 1
	}
	return strings.Repeat("^", width)
}

// Summary counts diagnostics by severity, e.g. "2 errors, 1 warning".
func Summary(diags []parser.Diagnostic) string {
	var errors, warnings int
	for _, d := range diags {
		switch d.Severity {
		case parser.SeverityError:
			errors++
		case parser.SeverityWarning:
			warnings++
		}
	}
	return plural(errors, "error") + ", " + plural(warnings, "warning")
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
