package parser

import (
	"strconv"

	"github.com/dhamidi/minij/lang/recovery"
	"github.com/dhamidi/minij/lang/scanner"
	"github.com/dhamidi/minij/lang/tree"
)

func startsExpression(kind scanner.TokenKind) bool {
	switch kind {
	case scanner.TokenIdent, scanner.TokenIntLiteral, scanner.TokenBoolLiteral:
		return true
	}
	return false
}

// parseExpression parses an expression or returns a *tree.BadExpr. When the
// expression is simply missing, e.g. "x = ;", nothing is skipped: the
// upcoming token already belongs to the enclosing statement.
func (p *Parser) parseExpression() tree.Expr {
	from := p.mark()
	x, err := p.expression()
	if err == nil {
		return x
	}
	if serr, ok := err.(*SyntaxError); ok && recovery.Expression.Syncs(p.tok.Kind) && p.mark() == from {
		return &tree.BadExpr{Bad: p.missing(recovery.Expression, serr)}
	}
	return &tree.BadExpr{Bad: p.recover(from, recovery.Expression, err)}
}

func (p *Parser) expression() (tree.Expr, error) {
	start := p.tok.Span.Start

	switch p.tok.Kind {
	case scanner.TokenIdent:
		tok := p.next()
		ident := &tree.Ident{Parsed: tree.Parsed{Range: tok.Span}, Name: tok.Literal}
		if !p.check(scanner.TokenAssign) {
			return ident, nil
		}
		p.next()
		value := p.parseExpression()
		return &tree.AssignExpr{
			Parsed: tree.Parsed{Range: p.spanFrom(start)},
			Target: ident,
			Value:  value,
		}, nil

	case scanner.TokenIntLiteral:
		n, err := strconv.ParseInt(p.tok.Literal, 10, 32)
		if err != nil {
			return nil, p.fail("expression")
		}
		tok := p.next()
		return &tree.Literal{
			Parsed: tree.Parsed{Range: tok.Span},
			Type:   tree.TypeInt,
			Value:  int32(n),
		}, nil

	case scanner.TokenBoolLiteral:
		tok := p.next()
		return &tree.Literal{
			Parsed: tree.Parsed{Range: tok.Span},
			Type:   tree.TypeBoolean,
			Value:  tok.Literal == "true",
		}, nil
	}

	return nil, p.fail("expression")
}
