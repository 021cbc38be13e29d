package grammar

import (
	"fmt"
	"strings"
)

// NonTermID identifies a nonterminal of a grammar store. IDs are handed out
// by the builder and never re-used.
type NonTermID uint64

// SymbolKind tags the variants of Symbol.
type SymbolKind uint8

// Kinds of symbols. The order of the constants determines the order of symbols
// within symbol sets.
const (
	EmptySymbol    SymbolKind = iota // the empty word, epsilon
	WildcardSymbol                   // reserved for automaton construction
	NonTermSymbol                    // reference to a nonterminal
	TerminalSymbol                   // a single character
)

func (k SymbolKind) String() string {
	switch k {
	case EmptySymbol:
		return "empty"
	case WildcardSymbol:
		return "wildcard"
	case NonTermSymbol:
		return "nonterminal"
	case TerminalSymbol:
		return "terminal"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Symbol is a symbol of a normalized grammar. Symbols are values and may be
// compared with == and used as map keys.
type Symbol struct {
	kind SymbolKind
	id   NonTermID
	char rune
}

// Epsilon returns the empty symbol.
func Epsilon() Symbol {
	return Symbol{kind: EmptySymbol}
}

// Wildcard returns the wildcard symbol.
func Wildcard() Symbol {
	return Symbol{kind: WildcardSymbol}
}

// NonTerm returns a symbol referencing nonterminal id.
func NonTerm(id NonTermID) Symbol {
	return Symbol{kind: NonTermSymbol, id: id}
}

// Terminal returns a symbol for character c.
func Terminal(c rune) Symbol {
	return Symbol{kind: TerminalSymbol, char: c}
}

// Kind returns the variant of a symbol.
func (sym Symbol) Kind() SymbolKind {
	return sym.kind
}

// IsEmpty is true for epsilon.
func (sym Symbol) IsEmpty() bool {
	return sym.kind == EmptySymbol
}

// IsTerminal is true for character symbols.
func (sym Symbol) IsTerminal() bool {
	return sym.kind == TerminalSymbol
}

// IsNonTerm is true for nonterminal references.
func (sym Symbol) IsNonTerm() bool {
	return sym.kind == NonTermSymbol
}

// ID returns the nonterminal id of a nonterminal reference. For other
// symbols the result is meaningless and ok is false.
func (sym Symbol) ID() (id NonTermID, ok bool) {
	return sym.id, sym.kind == NonTermSymbol
}

// Char returns the character of a terminal. For other symbols ok is false.
func (sym Symbol) Char() (c rune, ok bool) {
	return sym.char, sym.kind == TerminalSymbol
}

func (sym Symbol) String() string {
	switch sym.kind {
	case EmptySymbol:
		return "ε"
	case WildcardSymbol:
		return "*"
	case NonTermSymbol:
		return fmt.Sprintf("<%d>", sym.id)
	case TerminalSymbol:
		return fmt.Sprintf("%q", sym.char)
	}
	return "?"
}

// compareSymbols orders symbols by kind first, then by id or character.
func compareSymbols(a, b Symbol) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	switch a.kind {
	case NonTermSymbol:
		switch {
		case a.id < b.id:
			return -1
		case a.id > b.id:
			return 1
		}
	case TerminalSymbol:
		switch {
		case a.char < b.char:
			return -1
		case a.char > b.char:
			return 1
		}
	}
	return 0
}

// --- Productions -----------------------------------------------------------

// Production is one right-hand side alternative of a nonterminal.
// A production matching the empty word consists of the single symbol ε.
type Production []Symbol

// IsEpsilon is true for the production [ε].
func (p Production) IsEpsilon() bool {
	return len(p) == 1 && p[0].IsEmpty()
}

func (p Production) String() string {
	s := make([]string, len(p))
	for i, sym := range p {
		s[i] = sym.String()
	}
	return strings.Join(s, " ")
}

// Equals compares two productions symbol by symbol.
func (p Production) Equals(other Production) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}
