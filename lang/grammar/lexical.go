package grammar

import (
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

type matchKey struct {
	name   string
	offset int
}

// matcher runs lexical productions directly against text.
type matcher struct {
	productions ebnf.Grammar
	input       string
	memo        map[matchKey]int
	visiting    map[matchKey]bool
}

// Match returns the length of the longest prefix of input that lexical
// production name derives, or -1 if it derives none. Repetitions are greedy.
func (g *Grammar) Match(name, input string) int {
	m := &matcher{
		productions: g.productions,
		input:       input,
		memo:        map[matchKey]int{},
		visiting:    map[matchKey]bool{},
	}
	return m.matchName(name, 0)
}

// Matches reports whether production name derives all of input.
func (g *Grammar) Matches(name, input string) bool {
	return g.Match(name, input) == len(input)
}

func (m *matcher) match(expr ebnf.Expression, offset int) int {
	switch x := expr.(type) {
	case nil:
		return 0
	case *ebnf.Token:
		if len(m.input)-offset >= len(x.String) && m.input[offset:offset+len(x.String)] == x.String {
			return len(x.String)
		}
		return -1
	case *ebnf.Range:
		return m.matchRange(x, offset)
	case ebnf.Sequence:
		total := 0
		for _, item := range x {
			n := m.match(item, offset+total)
			if n < 0 {
				return -1
			}
			total += n
		}
		return total
	case ebnf.Alternative:
		best := -1
		for _, alt := range x {
			if n := m.match(alt, offset); n > best {
				best = n
			}
		}
		return best
	case *ebnf.Group:
		return m.match(x.Body, offset)
	case *ebnf.Option:
		if n := m.match(x.Body, offset); n > 0 {
			return n
		}
		return 0
	case *ebnf.Repetition:
		total := 0
		for {
			n := m.match(x.Body, offset+total)
			if n <= 0 {
				return total
			}
			total += n
		}
	case *ebnf.Name:
		return m.matchName(x.String, offset)
	}
	return -1
}

func (m *matcher) matchName(name string, offset int) int {
	key := matchKey{name: name, offset: offset}
	if n, ok := m.memo[key]; ok {
		return n
	}
	// Left recursion matches nothing.
	if m.visiting[key] {
		return -1
	}
	prod, ok := m.productions[name]
	if !ok {
		return -1
	}

	m.visiting[key] = true
	n := m.match(prod.Expr, offset)
	delete(m.visiting, key)

	m.memo[key] = n
	return n
}

func (m *matcher) matchRange(r *ebnf.Range, offset int) int {
	if offset >= len(m.input) {
		return -1
	}
	lo, _ := utf8.DecodeRuneInString(r.Begin.String)
	hi, _ := utf8.DecodeRuneInString(r.End.String)
	ch, size := utf8.DecodeRuneInString(m.input[offset:])
	if ch >= lo && ch <= hi {
		return size
	}
	return -1
}
