package parser

import (
	"github.com/dhamidi/minij/lang/recovery"
	"github.com/dhamidi/minij/lang/scanner"
	"github.com/dhamidi/minij/lang/tree"
)

func (p *Parser) parseStatement() tree.Stmt {
	switch {
	case p.check(scanner.TokenLBrace):
		return p.parseBlock()
	case p.check(scanner.TokenIf):
		return p.parseIfStmt()
	case p.tok.Kind.IsPrimitiveType():
		return p.parseLocalVarDecl()
	case startsExpression(p.tok.Kind):
		return p.parseExprStmt()
	}
	from := p.mark()
	return &tree.BadStmt{Bad: p.recover(from, recovery.Statement, p.fail("statement"))}
}

func (p *Parser) parseBlock() tree.Stmt {
	from := p.mark()
	block, err := p.block()
	if err != nil {
		return &tree.BadStmt{Bad: p.recover(from, recovery.Statement, err)}
	}
	return block
}

func (p *Parser) block() (*tree.Block, error) {
	start := p.tok.Span.Start
	if _, err := p.expect(scanner.TokenLBrace); err != nil {
		return nil, err
	}
	block := &tree.Block{Stmts: []tree.Stmt{}}
	for !p.check(scanner.TokenRBrace) && !p.check(scanner.TokenEOF) {
		block.Stmts = append(block.Stmts, p.parseStatement())
	}
	if _, err := p.expect(scanner.TokenRBrace); err != nil {
		return nil, err
	}
	block.Range = p.spanFrom(start)
	return block, nil
}

func (p *Parser) parseIfStmt() tree.Stmt {
	from := p.mark()
	stmt, err := p.ifStmt()
	if err != nil {
		return &tree.BadStmt{Bad: p.recover(from, recovery.Statement, err)}
	}
	return stmt
}

// ifStmt fails only on its own tokens. Each branch recovers on its own, so a
// malformed branch leaves the if-statement itself intact.
func (p *Parser) ifStmt() (*tree.IfStmt, error) {
	start := p.tok.Span.Start
	if _, err := p.expect(scanner.TokenIf); err != nil {
		return nil, err
	}
	if _, err := p.expect(scanner.TokenLParen); err != nil {
		return nil, err
	}
	stmt := &tree.IfStmt{Cond: p.parseExpression()}
	if _, err := p.expect(scanner.TokenRParen); err != nil {
		return nil, err
	}

	stmt.Then = p.parseBranch()
	if p.check(scanner.TokenElse) {
		p.next()
		stmt.Else = p.parseBranch()
	}

	stmt.Range = p.spanFrom(start)
	return stmt, nil
}

// parseBranch parses the body of an if or else. A missing body is reported
// and replaced by an empty placeholder instead of failing the if-statement.
func (p *Parser) parseBranch() tree.Stmt {
	if p.check(scanner.TokenEOF) || p.check(scanner.TokenRBrace) {
		return &tree.BadStmt{Bad: p.missing(recovery.Statement, p.fail("statement"))}
	}
	return p.parseStatement()
}

func (p *Parser) parseLocalVarDecl() tree.Stmt {
	from := p.mark()
	decl, err := p.varDecl(p.tok.Span.Start, "type")
	if err != nil {
		return &tree.BadVarDecl{Bad: p.recover(from, recovery.Statement, err)}
	}
	return decl
}

func (p *Parser) parseExprStmt() tree.Stmt {
	from := p.mark()
	stmt, err := p.exprStmt()
	if err != nil {
		return &tree.BadStmt{Bad: p.recover(from, recovery.Statement, err)}
	}
	return stmt
}

func (p *Parser) exprStmt() (*tree.ExprStmt, error) {
	start := p.tok.Span.Start
	x := p.parseExpression()
	if _, err := p.expect(scanner.TokenSemicolon); err != nil {
		return nil, err
	}
	return &tree.ExprStmt{
		Parsed: tree.Parsed{Range: p.spanFrom(start)},
		X:      x,
	}, nil
}
