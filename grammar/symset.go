package grammar

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// SymbolSet is an ordered set of symbols, used for FIRST and FOLLOW sets.
// Clients see symbol sets read-only; they are filled during analysis.
type SymbolSet struct {
	set *treeset.Set
}

func symbolComparator(a, b interface{}) int {
	return compareSymbols(a.(Symbol), b.(Symbol))
}

func newSymbolSet(syms ...Symbol) *SymbolSet {
	S := &SymbolSet{set: treeset.NewWith(symbolComparator)}
	for _, sym := range syms {
		S.set.Add(sym)
	}
	return S
}

// Contains checks for membership of sym.
func (S *SymbolSet) Contains(sym Symbol) bool {
	if S == nil {
		return false
	}
	return S.set.Contains(sym)
}

// Size returns the number of symbols in S.
func (S *SymbolSet) Size() int {
	if S == nil {
		return 0
	}
	return S.set.Size()
}

// Empty is true if S has no members. Do not confuse with S.Contains(Epsilon()).
func (S *SymbolSet) Empty() bool {
	return S.Size() == 0
}

// Values returns the members of S in symbol order.
func (S *SymbolSet) Values() []Symbol {
	if S == nil {
		return nil
	}
	syms := make([]Symbol, 0, S.set.Size())
	it := S.set.Iterator()
	for it.Next() {
		syms = append(syms, it.Value().(Symbol))
	}
	return syms
}

// Equals is true if S and other contain the same symbols.
func (S *SymbolSet) Equals(other *SymbolSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	for _, sym := range S.Values() {
		if !other.Contains(sym) {
			return false
		}
	}
	return true
}

func (S *SymbolSet) String() string {
	syms := S.Values()
	s := make([]string, len(syms))
	for i, sym := range syms {
		s[i] = sym.String()
	}
	return "{" + strings.Join(s, ", ") + "}"
}

// add inserts sym and reports whether S changed.
func (S *SymbolSet) add(sym Symbol) bool {
	if S.set.Contains(sym) {
		return false
	}
	S.set.Add(sym)
	return true
}

// merge adds all members of other to S, except ε if withEmpty is false.
// It reports whether S changed.
func (S *SymbolSet) merge(other *SymbolSet, withEmpty bool) bool {
	if other == nil || other == S {
		return false
	}
	changed := false
	it := other.set.Iterator()
	for it.Next() {
		sym := it.Value().(Symbol)
		if sym.IsEmpty() && !withEmpty {
			continue
		}
		if S.add(sym) {
			changed = true
		}
	}
	return changed
}

func (S *SymbolSet) copy() *SymbolSet {
	C := newSymbolSet()
	C.merge(S, true)
	return C
}
