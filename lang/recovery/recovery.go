// Package recovery implements panic-mode error recovery for the minij parser.
//
// After a grammar production fails, Recover skips tokens until the upcoming
// token is a safe place to resume for the grammar level that failed. The set
// of such tokens depends on the level, see Policy.
package recovery

import (
	"github.com/dhamidi/minij/lang/scanner"
)

// TokenStream is the view of the parser's input that recovery needs: one
// token of lookahead and a way to consume it.
type TokenStream interface {
	Peek() scanner.Token
	Next() scanner.Token
}

type Policy int

const (
	// TopLevel resumes at the start of a class declaration.
	TopLevel Policy = iota
	// ClassMember resumes at the start of a field or method, or at the
	// brace closing the class body.
	ClassMember
	// Statement resumes at the start of a statement or at the brace closing
	// the block. A terminating semicolon is consumed, not resumed at.
	Statement
	// Expression resumes at a token that may follow an expression.
	Expression
)

var policyNames = map[Policy]string{
	TopLevel:    "top-level",
	ClassMember: "class-member",
	Statement:   "statement",
	Expression:  "expression",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return "unknown"
}

var syncSets = map[Policy][]scanner.TokenKind{
	TopLevel: {
		scanner.TokenPublic, scanner.TokenProtected, scanner.TokenPrivate,
		scanner.TokenClass,
	},
	ClassMember: {
		scanner.TokenPublic, scanner.TokenProtected, scanner.TokenPrivate,
		scanner.TokenInt, scanner.TokenBoolean, scanner.TokenVoid,
		scanner.TokenRBrace,
	},
	Statement: {
		scanner.TokenIf, scanner.TokenLBrace,
		scanner.TokenInt, scanner.TokenBoolean, scanner.TokenVoid,
		scanner.TokenRBrace,
	},
	Expression: {
		scanner.TokenSemicolon, scanner.TokenRParen, scanner.TokenRBrace,
	},
}

// SyncSet returns the token kinds p resynchronizes at, end of input included.
func SyncSet(p Policy) []scanner.TokenKind {
	set := append([]scanner.TokenKind(nil), syncSets[p]...)
	return append(set, scanner.TokenEOF)
}

// Syncs reports whether kind is a resumption point for p.
func (p Policy) Syncs(kind scanner.TokenKind) bool {
	if kind == scanner.TokenEOF {
		return true
	}
	for _, k := range syncSets[p] {
		if k == kind {
			return true
		}
	}
	return false
}

// terminates reports whether consuming kind at depth zero ends recovery
// for p, leaving the parser just past it.
func (p Policy) terminates(kind scanner.TokenKind) bool {
	return p == Statement && kind == scanner.TokenSemicolon
}

// Recover consumes tokens from ts until the upcoming token is in the
// synchronization set of policy, and returns every token it consumed. The
// synchronizing token itself is left in the stream.
//
// Tokens inside a brace pair opened during recovery are skipped as a unit,
// so a malformed member's body does not end recovery at its own closing
// brace.
//
// progressed tells Recover whether the failed production consumed any
// tokens. If it did not, the upcoming token is consumed unconditionally so
// that the caller cannot fail again on the same token.
func Recover(ts TokenStream, policy Policy, progressed bool) []scanner.Token {
	var skipped []scanner.Token
	depth := 0

	consume := func() scanner.Token {
		tok := ts.Next()
		skipped = append(skipped, tok)
		switch tok.Kind {
		case scanner.TokenLBrace:
			depth++
		case scanner.TokenRBrace:
			if depth > 0 {
				depth--
			}
		}
		return tok
	}

	if !progressed && ts.Peek().Kind != scanner.TokenEOF {
		tok := consume()
		if depth == 0 && policy.terminates(tok.Kind) {
			return skipped
		}
	}

	for {
		next := ts.Peek()
		if next.Kind == scanner.TokenEOF {
			return skipped
		}
		if depth == 0 && policy.Syncs(next.Kind) {
			return skipped
		}
		tok := consume()
		if depth == 0 && policy.terminates(tok.Kind) {
			return skipped
		}
	}
}
