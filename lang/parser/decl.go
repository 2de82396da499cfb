package parser

import (
	"github.com/dhamidi/minij/lang/recovery"
	"github.com/dhamidi/minij/lang/scanner"
	"github.com/dhamidi/minij/lang/tree"
)

func (p *Parser) parseCompilationUnit() *tree.CompilationUnit {
	start := p.tok.Span.Start
	unit := &tree.CompilationUnit{}

	if p.check(scanner.TokenPackage) {
		unit.Package = p.parsePackageDecl()
	}

	for !p.check(scanner.TokenEOF) {
		unit.Classes = append(unit.Classes, p.parseClassDecl())
	}

	unit.Range = p.spanFrom(start)
	return unit
}

func (p *Parser) parsePackageDecl() tree.PackageClause {
	from := p.mark()
	decl, err := p.packageDecl()
	if err != nil {
		return &tree.BadPackageDecl{Bad: p.recover(from, recovery.TopLevel, err)}
	}
	return decl
}

func (p *Parser) packageDecl() (*tree.PackageDecl, error) {
	start := p.tok.Span.Start
	if _, err := p.expect(scanner.TokenPackage); err != nil {
		return nil, err
	}
	name, err := p.expect(scanner.TokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(scanner.TokenSemicolon); err != nil {
		return nil, err
	}
	return &tree.PackageDecl{
		Parsed: tree.Parsed{Range: p.spanFrom(start)},
		Name:   name.Literal,
	}, nil
}

func (p *Parser) parseClassDecl() tree.Class {
	from := p.mark()
	decl, err := p.classDecl()
	if err != nil {
		return &tree.BadClassDecl{Bad: p.recover(from, recovery.TopLevel, err)}
	}
	return decl
}

func (p *Parser) classDecl() (*tree.ClassDecl, error) {
	start := p.tok.Span.Start
	decl := &tree.ClassDecl{Access: p.parseAccess()}

	if _, err := p.expect(scanner.TokenClass); err != nil {
		if decl.Access == tree.AccessNone {
			err = p.fail("class declaration")
		}
		return nil, err
	}
	name, err := p.expect(scanner.TokenIdent)
	if err != nil {
		return nil, err
	}
	decl.Name = name.Literal

	if p.check(scanner.TokenExtends) {
		p.next()
		super, err := p.expect(scanner.TokenIdent)
		if err != nil {
			return nil, err
		}
		decl.Super = super.Literal
	}

	if _, err := p.expect(scanner.TokenLBrace); err != nil {
		return nil, err
	}
	decl.Members = []tree.Member{}
	for !p.check(scanner.TokenRBrace) && !p.check(scanner.TokenEOF) {
		decl.Members = append(decl.Members, p.parseMember())
	}
	if _, err := p.expect(scanner.TokenRBrace); err != nil {
		return nil, err
	}

	decl.Range = p.spanFrom(start)
	return decl, nil
}

// parseAccess consumes an optional access modifier.
func (p *Parser) parseAccess() tree.Access {
	if p.tok.Kind.IsAccessModifier() {
		return tree.AccessOf(p.next().Kind)
	}
	return tree.AccessNone
}

// parseMember parses a method or a field. The lookahead that picks between
// them also picks the placeholder kind when the member fails to parse.
func (p *Parser) parseMember() tree.Member {
	from := p.mark()
	if p.isMethodAhead() {
		method, err := p.methodDecl()
		if err != nil {
			return &tree.BadMethodDecl{Bad: p.recover(from, recovery.ClassMember, err)}
		}
		return method
	}
	field, err := p.fieldDecl()
	if err != nil {
		return &tree.BadVarDecl{Bad: p.recover(from, recovery.ClassMember, err)}
	}
	return field
}

// isMethodAhead reports whether the upcoming tokens read
// [modifier] type identifier "(". Nothing is consumed.
func (p *Parser) isMethodAhead() bool {
	saved := p.save()
	defer p.restore(saved)

	if p.tok.Kind.IsAccessModifier() {
		p.next()
	}
	if !p.tok.Kind.IsPrimitiveType() {
		return false
	}
	p.next()
	if !p.check(scanner.TokenIdent) {
		return false
	}
	p.next()
	return p.check(scanner.TokenLParen)
}

func (p *Parser) parseType(what string) (*tree.PrimitiveType, error) {
	kind, ok := tree.TypeOf(p.tok.Kind)
	if !ok {
		return nil, p.fail(what)
	}
	tok := p.next()
	return &tree.PrimitiveType{Parsed: tree.Parsed{Range: tok.Span}, Kind: kind}, nil
}

func (p *Parser) methodDecl() (*tree.MethodDecl, error) {
	start := p.tok.Span.Start
	method := &tree.MethodDecl{Access: p.parseAccess()}

	result, err := p.parseType("return type")
	if err != nil {
		return nil, err
	}
	method.Result = result

	name, err := p.expect(scanner.TokenIdent)
	if err != nil {
		return nil, err
	}
	method.Name = name.Literal

	params, err := p.params()
	if err != nil {
		return nil, err
	}
	method.Params = params

	if !p.check(scanner.TokenLBrace) {
		return nil, p.fail("method body")
	}
	method.Body = p.parseBlock()

	method.Range = p.spanFrom(start)
	return method, nil
}

func (p *Parser) params() ([]*tree.VarDecl, error) {
	if _, err := p.expect(scanner.TokenLParen); err != nil {
		return nil, err
	}
	params := []*tree.VarDecl{}
	if p.check(scanner.TokenRParen) {
		p.next()
		return params, nil
	}
	for {
		param, err := p.param()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.check(scanner.TokenComma) {
			break
		}
		p.next()
	}
	if _, err := p.expect(scanner.TokenRParen); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) param() (*tree.VarDecl, error) {
	start := p.tok.Span.Start
	if p.check(scanner.TokenVoid) {
		return nil, p.fail("parameter type")
	}
	typ, err := p.parseType("parameter type")
	if err != nil {
		return nil, err
	}
	name, err := p.expect(scanner.TokenIdent)
	if err != nil {
		return nil, err
	}
	return &tree.VarDecl{
		Parsed: tree.Parsed{Range: p.spanFrom(start)},
		Type:   typ,
		Name:   name.Literal,
	}, nil
}

func (p *Parser) fieldDecl() (*tree.VarDecl, error) {
	start := p.tok.Span.Start
	access := p.parseAccess()
	decl, err := p.varDecl(start, "field type")
	if err != nil {
		return nil, err
	}
	decl.Access = access
	return decl, nil
}

// varDecl parses type identifier [ "=" Expression ] ";" for fields and
// locals alike.
func (p *Parser) varDecl(start scanner.Position, what string) (*tree.VarDecl, error) {
	if p.check(scanner.TokenVoid) {
		return nil, p.fail(what)
	}
	typ, err := p.parseType(what)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(scanner.TokenIdent)
	if err != nil {
		return nil, err
	}
	decl := &tree.VarDecl{Type: typ, Name: name.Literal}

	if p.check(scanner.TokenAssign) {
		p.next()
		decl.Init = p.parseExpression()
	}
	if _, err := p.expect(scanner.TokenSemicolon); err != nil {
		return nil, err
	}

	decl.Range = p.spanFrom(start)
	return decl, nil
}
