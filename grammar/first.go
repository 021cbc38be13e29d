package grammar

import (
	"fmt"

	"github.com/npillmayer/schuko/gconf"
)

// firstSets holds the FIRST sets of all nonterminals of a store.
//
// FIRST(A) is the union over A's productions of FIRST of the production,
// scanning each production from left to right until a symbol is found which
// is not nullable. As nonterminals may be (left-)recursive, the sets are
// computed as a fixed point: every pass re-evaluates all productions against
// the sets of the previous passes, until no set grows any more.
type firstSets struct {
	G    *Store
	sets map[NonTermID]*SymbolSet
}

func computeFirstSets(G *Store) (*firstSets, error) {
	F := &firstSets{G: G, sets: make(map[NonTermID]*SymbolSet, G.Size())}
	for _, id := range G.NonTerminals() {
		F.sets[id] = newSymbolSet()
	}
	passes := 0
	for changed := true; changed; {
		changed = false
		passes++
		var err error
		G.Each(func(id NonTermID, alts []Production) {
			for _, p := range alts {
				if err != nil {
					return
				}
				var S *SymbolSet
				if S, err = F.ofProduction(id, p); err == nil && F.sets[id].merge(S, true) {
					changed = true
				}
			}
		})
		if err != nil {
			return nil, err
		}
	}
	tracer().Debugf("FIRST sets of %q stable after %d passes", G.Name, passes)
	return F, nil
}

// ofSymbol returns FIRST(sym). For nonterminals the current state of the
// fixed-point iteration is returned, which must not be modified by the caller.
func (F *firstSets) ofSymbol(owner NonTermID, sym Symbol) (*SymbolSet, error) {
	switch sym.kind {
	case EmptySymbol:
		return newSymbolSet(Epsilon()), nil
	case TerminalSymbol:
		return newSymbolSet(sym), nil
	case NonTermSymbol:
		if S, ok := F.sets[sym.id]; ok {
			return S, nil
		}
		return nil, violation(owner, fmt.Sprintf("reference to undefined nonterminal %v", sym))
	}
	return nil, violation(owner, fmt.Sprintf("cannot compute FIRST of %v symbol", sym.kind))
}

// ofProduction returns FIRST of a production. ε is included only if every
// symbol of p is nullable.
func (F *firstSets) ofProduction(owner NonTermID, p Production) (*SymbolSet, error) {
	if len(p) == 0 {
		return nil, violation(owner, "empty production")
	}
	S := newSymbolSet()
	for _, sym := range p {
		f, err := F.ofSymbol(owner, sym)
		if err != nil {
			return nil, err
		}
		S.merge(f, false)
		if !f.Contains(Epsilon()) {
			return S, nil
		}
	}
	S.add(Epsilon())
	return S, nil
}

// First computes FIRST(sym) for a symbol of store G. FIRST(ε) is {ε},
// FIRST of a terminal is the terminal itself. FIRST of a nonterminal A
// contains ε if and only if A is nullable.
//
// Clients needing FIRST sets of more than one symbol should use Analyze,
// which computes all of them at once.
func First(G *Store, sym Symbol) (*SymbolSet, error) {
	if sym.kind != NonTermSymbol {
		F := &firstSets{G: G}
		return F.ofSymbol(0, sym)
	}
	if !G.Has(sym.id) {
		return nil, violation(sym.id, "nonterminal not present in store")
	}
	F, err := computeFirstSets(G)
	if err != nil {
		return nil, err
	}
	return F.sets[sym.id].copy(), nil
}

// violation creates an error for a malformed store. If configuration
// flag panic-on-invariant-violation is set, it panics instead.
func violation(id NonTermID, reason string) error {
	err := &InvariantViolationError{ID: id, Reason: reason}
	tracer().Errorf(err.Error())
	if gconf.GetBool("panic-on-invariant-violation") {
		panic(`Grammar store is malformed.

Configuration flag panic-on-invariant-violation is set to true. It is aimed at
helping to debug the code producing a grammar store. If you did not expect this
to panic, please unset panic-on-invariant-violation to its default (false).

` + err.Error())
	}
	return err
}
