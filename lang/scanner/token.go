package scanner

import "fmt"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIllegal

	// Literals
	TokenIdent
	TokenIntLiteral
	TokenBoolLiteral

	// Keywords
	TokenPackage
	TokenClass
	TokenExtends
	TokenPublic
	TokenProtected
	TokenPrivate
	TokenVoid
	TokenInt
	TokenBoolean
	TokenIf
	TokenElse

	// Punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenAssign
	TokenSemicolon
	TokenComma
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:         "EOF",
	TokenIllegal:     "Illegal",
	TokenIdent:       "Identifier",
	TokenIntLiteral:  "IntLiteral",
	TokenBoolLiteral: "BoolLiteral",
	TokenPackage:     "package",
	TokenClass:       "class",
	TokenExtends:     "extends",
	TokenPublic:      "public",
	TokenProtected:   "protected",
	TokenPrivate:     "private",
	TokenVoid:        "void",
	TokenInt:         "int",
	TokenBoolean:     "boolean",
	TokenIf:          "if",
	TokenElse:        "else",
	TokenLParen:      "(",
	TokenRParen:      ")",
	TokenLBrace:      "{",
	TokenRBrace:      "}",
	TokenAssign:      "=",
	TokenSemicolon:   ";",
	TokenComma:       ",",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsAccessModifier reports whether k is public, protected or private.
func (k TokenKind) IsAccessModifier() bool {
	return k == TokenPublic || k == TokenProtected || k == TokenPrivate
}

// IsPrimitiveType reports whether k names one of the built-in types.
func (k TokenKind) IsPrimitiveType() bool {
	return k == TokenInt || k == TokenBoolean || k == TokenVoid
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

func (t Token) String() string {
	switch t.Kind {
	case TokenEOF:
		return "end of input"
	case TokenIdent, TokenIntLiteral, TokenBoolLiteral, TokenIllegal:
		return fmt.Sprintf("%s %q", t.Kind, t.Literal)
	}
	return fmt.Sprintf("%q", t.Literal)
}

var keywords = map[string]TokenKind{
	"package":   TokenPackage,
	"class":     TokenClass,
	"extends":   TokenExtends,
	"public":    TokenPublic,
	"protected": TokenProtected,
	"private":   TokenPrivate,
	"void":      TokenVoid,
	"int":       TokenInt,
	"boolean":   TokenBoolean,
	"if":        TokenIf,
	"else":      TokenElse,
	"true":      TokenBoolLiteral,
	"false":     TokenBoolLiteral,
}

func LookupKeyword(word string) TokenKind {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	return TokenIdent
}
