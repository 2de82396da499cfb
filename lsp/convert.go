package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/minij/lang/parser"
	"github.com/dhamidi/minij/lang/scanner"
	"github.com/dhamidi/minij/lang/tree"
)

// Diagnostics converts parser diagnostics to LSP diagnostics. The result is
// never nil, so an empty list clears the client's markers.
func Diagnostics(diags []parser.Diagnostic) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(diags))
	source := lsName
	for _, d := range diags {
		severity := protocol.DiagnosticSeverityError
		if d.Severity == parser.SeverityWarning {
			severity = protocol.DiagnosticSeverityWarning
		}

		end := d.Pos
		if d.Found.Kind != scanner.TokenEOF && d.Found.Span.End.Line == d.Pos.Line {
			end = d.Found.Span.End
		}

		out = append(out, protocol.Diagnostic{
			Range:    protocol.Range{Start: toPosition(d.Pos), End: toPosition(end)},
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		})
	}
	return out
}

// toPosition converts a 1-based scanner position to a 0-based LSP position.
// Columns count bytes.
func toPosition(pos scanner.Position) protocol.Position {
	line, col := pos.Line-1, pos.Column-1
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(col)}
}

func toRange(span scanner.Span) protocol.Range {
	return protocol.Range{Start: toPosition(span.Start), End: toPosition(span.End)}
}

// Symbols returns the document outline: classes with their fields and
// methods. Declarations that failed to parse are left out.
func Symbols(unit *tree.CompilationUnit) []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}
	for _, c := range unit.Classes {
		class, ok := c.(*tree.ClassDecl)
		if !ok {
			continue
		}
		sym := protocol.DocumentSymbol{
			Name:           class.Name,
			Kind:           protocol.SymbolKindClass,
			Range:          toRange(class.Span()),
			SelectionRange: toRange(class.Span()),
		}
		for _, m := range class.Members {
			switch m := m.(type) {
			case *tree.MethodDecl:
				detail := m.Result.Kind.String()
				sym.Children = append(sym.Children, protocol.DocumentSymbol{
					Name:           m.Name,
					Detail:         &detail,
					Kind:           protocol.SymbolKindMethod,
					Range:          toRange(m.Span()),
					SelectionRange: toRange(m.Span()),
				})
			case *tree.VarDecl:
				detail := m.Type.Kind.String()
				sym.Children = append(sym.Children, protocol.DocumentSymbol{
					Name:           m.Name,
					Detail:         &detail,
					Kind:           protocol.SymbolKindField,
					Range:          toRange(m.Span()),
					SelectionRange: toRange(m.Span()),
				})
			}
		}
		symbols = append(symbols, sym)
	}
	return symbols
}
