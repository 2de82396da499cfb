// Package scanner turns minij source text into tokens.
//
// The scanner never fails. Malformed numeric literals are consumed up to the
// next structural delimiter and reported as a single TokenIllegal, which the
// parser then treats like any other unexpected token.
package scanner

import "strconv"

type Scanner struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func New(input []byte, file string) *Scanner {
	return &Scanner{
		input:  input,
		file:   file,
		line:   1,
		column: 1,
	}
}

// WithStartLine shifts reported line numbers so that the first line of input
// is line n. It must be called before the first call to Next.
func (s *Scanner) WithStartLine(n int) *Scanner {
	if n > 0 && s.pos == 0 {
		s.line = n
	}
	return s
}

func (s *Scanner) Position() Position {
	return Position{
		File:   s.file,
		Offset: s.pos,
		Line:   s.line,
		Column: s.column,
	}
}

// Seek moves the scanner to a position previously returned by Position.
// Line and column are restored together with the offset, so tokens scanned
// after a seek carry the same spans as the first time around.
func (s *Scanner) Seek(p Position) {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Offset > len(s.input) {
		p.Offset = len(s.input)
	}
	s.pos = p.Offset
	s.line = p.Line
	s.column = p.Column
}

func (s *Scanner) peek() byte {
	if s.pos >= len(s.input) {
		return 0
	}
	return s.input[s.pos]
}

func (s *Scanner) peekN(n int) byte {
	if s.pos+n >= len(s.input) {
		return 0
	}
	return s.input[s.pos+n]
}

func (s *Scanner) atEnd() bool {
	return s.pos >= len(s.input)
}

func (s *Scanner) advance() byte {
	if s.pos >= len(s.input) {
		return 0
	}
	ch := s.input[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return ch
}

func (s *Scanner) advanceN(n int) {
	for i := 0; i < n; i++ {
		s.advance()
	}
}

func (s *Scanner) skipTrivia() {
	for !s.atEnd() {
		ch := s.peek()
		switch {
		case isSpace(ch):
			s.advance()
		case ch == '/' && s.peekN(1) == '/':
			for !s.atEnd() && s.peek() != '\n' {
				s.advance()
			}
		case ch == '/' && s.peekN(1) == '*':
			s.advanceN(2)
			for !s.atEnd() && !(s.peek() == '*' && s.peekN(1) == '/') {
				s.advance()
			}
			s.advanceN(2)
		default:
			return
		}
	}
}

// Next returns the next token. Once the input is exhausted every call
// returns a TokenEOF positioned at the end of input.
func (s *Scanner) Next() Token {
	s.skipTrivia()
	start := s.Position()

	if s.atEnd() {
		return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}
	}

	ch := s.peek()
	if kind, ok := punctuation[ch]; ok {
		s.advance()
		return s.token(kind, start)
	}
	if isDigit(ch) {
		return s.scanInt(start)
	}
	return s.scanWord(start)
}

func (s *Scanner) scanInt(start Position) Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.atEnd() || isDelimiter(s.peek()) {
		tok := s.token(TokenIntLiteral, start)
		if _, err := strconv.ParseInt(tok.Literal, 10, 32); err != nil {
			tok.Kind = TokenIllegal
		}
		return tok
	}
	s.skipToDelimiter()
	return s.token(TokenIllegal, start)
}

func (s *Scanner) scanWord(start Position) Token {
	s.skipToDelimiter()
	tok := s.token(TokenIdent, start)
	tok.Kind = LookupKeyword(tok.Literal)
	return tok
}

func (s *Scanner) skipToDelimiter() {
	for !s.atEnd() && !isDelimiter(s.peek()) {
		s.advance()
	}
}

func (s *Scanner) token(kind TokenKind, start Position) Token {
	end := s.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(s.input[start.Offset:end.Offset]),
	}
}

// All scans the remaining input and returns every token, ending with EOF.
func (s *Scanner) All() []Token {
	var tokens []Token
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

var punctuation = map[byte]TokenKind{
	'(': TokenLParen,
	')': TokenRParen,
	'{': TokenLBrace,
	'}': TokenRBrace,
	'=': TokenAssign,
	';': TokenSemicolon,
	',': TokenComma,
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDelimiter(ch byte) bool {
	_, ok := punctuation[ch]
	return ok || isSpace(ch)
}
