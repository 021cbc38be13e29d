package grammar

import "fmt"

// Follow computes the FOLLOW sets for all nonterminals of store G.
//
// FOLLOW(A) receives FIRST of whatever follows an occurrence of A in any
// production, and FOLLOW of the production's owner if everything after the
// occurrence is nullable. As FOLLOW sets depend on each other in recursive
// grammars, the computation iterates over the complete store until a
// pass leaves every set unchanged.
//
// FOLLOW sets contain terminals only.
func Follow(G *Store) (map[NonTermID]*SymbolSet, error) {
	F, err := computeFirstSets(G)
	if err != nil {
		return nil, err
	}
	return computeFollowSets(G, F)
}

func computeFollowSets(G *Store, F *firstSets) (map[NonTermID]*SymbolSet, error) {
	follow := make(map[NonTermID]*SymbolSet, G.Size())
	for _, id := range G.NonTerminals() {
		follow[id] = newSymbolSet()
	}
	passes := 0
	for {
		passes++
		changed, err := followPass(G, F, follow)
		if err != nil {
			return nil, err
		}
		if !changed {
			break
		}
	}
	tracer().Debugf("FOLLOW sets of %q stable after %d passes", G.Name, passes)
	return follow, nil
}

// followPass performs one pass over every production of G, merging into
// follow. It reports whether any set changed.
func followPass(G *Store, F *firstSets, follow map[NonTermID]*SymbolSet) (bool, error) {
	changed := false
	var err error
	G.Each(func(owner NonTermID, alts []Production) {
		for _, p := range alts {
			if err != nil {
				return
			}
			var c bool
			if c, err = followProduction(owner, p, F, follow); c {
				changed = true
			}
		}
	})
	return changed, err
}

func followProduction(owner NonTermID, p Production, F *firstSets,
	follow map[NonTermID]*SymbolSet) (bool, error) {
	//
	changed := false
	for i, sym := range p {
		target, ok := sym.ID()
		if !ok {
			continue
		}
		T, ok := follow[target]
		if !ok {
			return changed, violation(owner, fmt.Sprintf("reference to undefined nonterminal %v", sym))
		}
		blocked := false // found a non-nullable symbol after target
		for _, next := range p[i+1:] {
			if next.IsEmpty() {
				return changed, violation(owner, fmt.Sprintf("ε is not the sole symbol of production %v", p))
			}
			f, err := F.ofSymbol(owner, next)
			if err != nil {
				return changed, err
			}
			if T.merge(f, false) {
				changed = true
			}
			if !f.Contains(Epsilon()) {
				blocked = true
				break
			}
		}
		if !blocked && T.merge(follow[owner], false) {
			changed = true
		}
	}
	return changed, nil
}
