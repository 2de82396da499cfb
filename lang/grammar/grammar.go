// Package grammar holds the EBNF description of the minij language and the
// FIRST and FOLLOW sets derived from it.
//
// Productions with a lowercase name are lexical. Set computations treat a
// reference to a lexical production as a single terminal named after it, so
// FIRST(Expression) contains "identifier", "intLiteral" and "boolLiteral" rather
// than individual characters.
//
// The lexical productions describe well-formed words only. The scanner
// accepts more: a word such as "a-b" or "@" scans as an identifier because
// words end only at a delimiter or whitespace. The tests use Match to check
// the direction that holds: every word the grammar derives scans to the
// matching kind.
package grammar

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"maps"
	"slices"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/minij/lang/scanner"
)

// Start is the start production of the language.
const Start = "CompilationUnit"

//go:embed minij.ebnf
var source []byte

// Source returns the EBNF text of the language.
func Source() []byte {
	return bytes.Clone(source)
}

type set map[string]struct{}

func (s set) addAll(other set) bool {
	changed := false
	for term := range other {
		if _, ok := s[term]; !ok {
			s[term] = struct{}{}
			changed = true
		}
	}
	return changed
}

func (s set) sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

type Grammar struct {
	productions ebnf.Grammar
	first       map[string]set
	nullable    map[string]bool
	follow      map[string]set
}

// Load parses and verifies the embedded grammar.
func Load() (*Grammar, error) {
	return Parse("minij.ebnf", bytes.NewReader(source), Start)
}

// Parse reads an EBNF grammar from r, verifies it against start and
// computes its FIRST and FOLLOW sets. An empty start only checks syntax.
func Parse(filename string, r io.Reader, start string) (*Grammar, error) {
	productions, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if start != "" {
		if err := ebnf.Verify(productions, start); err != nil {
			return nil, fmt.Errorf("verify grammar: %w", err)
		}
	}

	g := &Grammar{
		productions: productions,
		first:       map[string]set{},
		nullable:    map[string]bool{},
		follow:      map[string]set{},
	}
	for name := range productions {
		if !IsLexical(name) {
			g.first[name] = set{}
			g.follow[name] = set{}
		}
	}
	g.computeFirst()
	g.computeFollow()
	return g, nil
}

// IsLexical reports whether name is a lexical production.
func IsLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return unicode.IsLower(ch)
}

// Productions returns the names of all syntactic productions, sorted.
func (g *Grammar) Productions() []string {
	return slices.Sorted(maps.Keys(g.first))
}

// First returns the terminals that can begin production name and whether
// the production can derive the empty string.
func (g *Grammar) First(name string) ([]string, bool) {
	first, ok := g.first[name]
	if !ok {
		return nil, false
	}
	return first.sorted(), g.nullable[name]
}

// Follow returns the terminals that can appear directly after production
// name. The end of input is not included.
func (g *Grammar) Follow(name string) []string {
	follow, ok := g.follow[name]
	if !ok {
		return nil
	}
	return follow.sorted()
}

func (g *Grammar) computeFirst() {
	for changed := true; changed; {
		changed = false
		for name, first := range g.first {
			terms, nullable := g.firstOf(g.productions[name].Expr)
			if first.addAll(terms) {
				changed = true
			}
			if nullable && !g.nullable[name] {
				g.nullable[name] = true
				changed = true
			}
		}
	}
}

// firstOf computes FIRST of an expression from the current production
// approximations.
func (g *Grammar) firstOf(expr ebnf.Expression) (set, bool) {
	switch x := expr.(type) {
	case nil:
		return set{}, true
	case *ebnf.Token:
		return set{x.String: {}}, false
	case *ebnf.Range:
		return set{x.Begin.String + "…" + x.End.String: {}}, false
	case *ebnf.Name:
		if IsLexical(x.String) {
			return set{x.String: {}}, false
		}
		return g.first[x.String], g.nullable[x.String]
	case ebnf.Alternative:
		out, nullable := set{}, false
		for _, alt := range x {
			terms, n := g.firstOf(alt)
			out.addAll(terms)
			nullable = nullable || n
		}
		return out, nullable
	case ebnf.Sequence:
		out := set{}
		for _, item := range x {
			terms, n := g.firstOf(item)
			out.addAll(terms)
			if !n {
				return out, false
			}
		}
		return out, true
	case *ebnf.Group:
		return g.firstOf(x.Body)
	case *ebnf.Option:
		terms, _ := g.firstOf(x.Body)
		return terms, true
	case *ebnf.Repetition:
		terms, _ := g.firstOf(x.Body)
		return terms, true
	}
	return set{}, false
}

func (g *Grammar) computeFollow() {
	for changed := true; changed; {
		changed = false
		for name := range g.first {
			if g.followIn(g.productions[name].Expr, g.follow[name]) {
				changed = true
			}
		}
	}
}

// followIn adds to the FOLLOW set of every production referenced in expr,
// given the terminals that can come after expr. It reports whether any set
// grew.
func (g *Grammar) followIn(expr ebnf.Expression, after set) bool {
	switch x := expr.(type) {
	case *ebnf.Name:
		follow, ok := g.follow[x.String]
		if !ok {
			return false
		}
		return follow.addAll(after)
	case ebnf.Alternative:
		changed := false
		for _, alt := range x {
			changed = g.followIn(alt, after) || changed
		}
		return changed
	case ebnf.Sequence:
		changed := false
		for i := len(x) - 1; i >= 0; i-- {
			changed = g.followIn(x[i], after) || changed
			terms, nullable := g.firstOf(x[i])
			next := set{}
			next.addAll(terms)
			if nullable {
				next.addAll(after)
			}
			after = next
		}
		return changed
	case *ebnf.Group:
		return g.followIn(x.Body, after)
	case *ebnf.Option:
		return g.followIn(x.Body, after)
	case *ebnf.Repetition:
		terms, _ := g.firstOf(x.Body)
		loop := set{}
		loop.addAll(after)
		loop.addAll(terms)
		return g.followIn(x.Body, loop)
	}
	return false
}

var lexicalKinds = map[string]scanner.TokenKind{
	"identifier":  scanner.TokenIdent,
	"intLiteral":  scanner.TokenIntLiteral,
	"boolLiteral": scanner.TokenBoolLiteral,
}

// Kinds maps grammar terminals to the token kinds the scanner produces for
// them. Terminals without a token kind are left out.
func Kinds(terms []string) []scanner.TokenKind {
	var kinds []scanner.TokenKind
	for _, term := range terms {
		if kind, ok := lexicalKinds[term]; ok {
			kinds = append(kinds, kind)
			continue
		}
		tok := scanner.New([]byte(term), "").Next()
		if tok.Literal != term || tok.Kind == scanner.TokenIdent || tok.Kind == scanner.TokenIllegal {
			continue
		}
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}
