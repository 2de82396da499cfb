package parser

import (
	"strconv"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/minij/lang/recovery"
	"github.com/dhamidi/minij/lang/scanner"
	"github.com/dhamidi/minij/lang/tree"
)

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

func WithStartLine(line int) Option {
	return func(p *Parser) {
		p.startLine = line
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

type Parser struct {
	file      string
	startLine int
	input     []byte
	log       commonlog.Logger
	scanner   *scanner.Scanner
	tok       scanner.Token
	// trail holds every consumed token; error placeholders take their
	// spans from it.
	trail   []scanner.Token
	lastEnd scanner.Position
	diags   []Diagnostic
	used    bool
}

func New(input []byte, opts ...Option) *Parser {
	p := &Parser{
		startLine: 1,
		input:     input,
		log:       commonlog.GetLogger("minij.parser"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile parses a complete source file and returns its tree together
// with the diagnostics produced on the way.
func ParseFile(file string, input []byte) (*tree.CompilationUnit, []Diagnostic) {
	p := New(input, WithFile(file))
	unit := p.ParseCompilationUnit()
	return unit, p.Diagnostics()
}

func (p *Parser) Diagnostics() []Diagnostic {
	return p.diags
}

// ParseCompilationUnit parses a whole source file. It always returns a
// tree, however degraded.
func (p *Parser) ParseCompilationUnit() *tree.CompilationUnit {
	p.start()
	return p.parseCompilationUnit()
}

// ParseStatement parses a single statement. Input left over after the
// statement is reported as a warning.
func (p *Parser) ParseStatement() tree.Stmt {
	p.start()
	stmt := p.parseStatement()
	p.expectEnd()
	return stmt
}

// ParseExpression parses a single expression. Input left over after the
// expression is reported as a warning.
func (p *Parser) ParseExpression() tree.Expr {
	p.start()
	x := p.parseExpression()
	p.expectEnd()
	return x
}

func (p *Parser) start() {
	if p.used {
		panic("parser: a Parser can only be used once")
	}
	p.used = true
	p.scanner = scanner.New(p.input, p.file).WithStartLine(p.startLine)
	p.tok = p.scanner.Next()
	p.lastEnd = p.tok.Span.Start
}

func (p *Parser) expectEnd() {
	if p.check(scanner.TokenEOF) {
		return
	}
	p.diags = append(p.diags, Diagnostic{
		Severity: SeverityWarning,
		Message:  "unexpected input after end, found " + p.tok.String(),
		Expected: "end of input",
		Found:    p.tok,
		Pos:      p.tok.Span.Start,
	})
}

func (p *Parser) check(kind scanner.TokenKind) bool {
	return p.tok.Kind == kind
}

// next consumes the lookahead token and returns it. At end of input it
// keeps returning EOF without recording it.
func (p *Parser) next() scanner.Token {
	tok := p.tok
	if tok.Kind == scanner.TokenEOF {
		return tok
	}
	p.trail = append(p.trail, tok)
	p.lastEnd = tok.Span.End
	p.tok = p.scanner.Next()
	return tok
}

func (p *Parser) fail(expected string) *SyntaxError {
	return &SyntaxError{Expected: expected, Found: p.tok}
}

func (p *Parser) expect(kind scanner.TokenKind) (scanner.Token, error) {
	if !p.check(kind) {
		return p.tok, p.fail(quote(kind))
	}
	return p.next(), nil
}

func quote(kind scanner.TokenKind) string {
	switch kind {
	case scanner.TokenIdent:
		return "identifier"
	case scanner.TokenEOF:
		return "end of input"
	}
	return strconv.Quote(kind.String())
}

func (p *Parser) mark() int {
	return len(p.trail)
}

func (p *Parser) spanFrom(start scanner.Position) scanner.Span {
	return scanner.Span{Start: start, End: p.lastEnd}
}

// lookahead is a saved parser position that can be returned to.
type lookahead struct {
	tok   scanner.Token
	pos   scanner.Position
	trail int
	end   scanner.Position
}

func (p *Parser) save() lookahead {
	return lookahead{tok: p.tok, pos: p.scanner.Position(), trail: len(p.trail), end: p.lastEnd}
}

func (p *Parser) restore(l lookahead) {
	p.tok = l.tok
	p.scanner.Seek(l.pos)
	p.trail = p.trail[:l.trail]
	p.lastEnd = l.end
}

// stream adapts the parser's lookahead to recovery.TokenStream so that
// skipped tokens land in the trail like any other consumed token.
type stream struct{ p *Parser }

func (s stream) Peek() scanner.Token { return s.p.tok }
func (s stream) Next() scanner.Token { return s.p.next() }

// recover turns a failed production that started at trail index from into
// an error span, resynchronizing the token stream with policy.
func (p *Parser) recover(from int, policy recovery.Policy, err error) tree.Bad {
	serr, ok := err.(*SyntaxError)
	if !ok {
		serr = &SyntaxError{Expected: err.Error(), Found: p.tok}
	}

	progressed := len(p.trail) > from
	skipped := recovery.Recover(stream{p}, policy, progressed)

	// Placeholders share the trail. The capped slice keeps later appends
	// from writing into it.
	tokens := p.trail[from:len(p.trail):len(p.trail)]

	d := Diagnostic{
		Severity: SeverityError,
		Message:  serr.message(),
		Expected: serr.Expected,
		Found:    serr.Found,
		Pos:      serr.Found.Span.Start,
		Policy:   policy,
		Skipped:  len(skipped),
	}
	p.diags = append(p.diags, d)
	p.log.Debugf("%s: %s; %s recovery skipped %d token(s), resuming at %s",
		d.Pos, d.Message, policy, len(skipped), p.tok)

	return tree.Bad{Tokens: tokens, At: serr.Found.Span.Start}
}

// missing reports a construct that is absent at a token the enclosing
// production can resume from, and returns an empty error span without
// consuming anything.
func (p *Parser) missing(policy recovery.Policy, serr *SyntaxError) tree.Bad {
	p.diags = append(p.diags, Diagnostic{
		Severity: SeverityError,
		Message:  serr.message(),
		Expected: serr.Expected,
		Found:    serr.Found,
		Pos:      serr.Found.Span.Start,
		Policy:   policy,
	})
	p.log.Debugf("%s: %s; nothing skipped", serr.Found.Span.Start, serr.message())
	return tree.Bad{At: serr.Found.Span.Start}
}
