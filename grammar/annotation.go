package grammar

import "fmt"

// Annotation is the result of analysing a grammar store: the terminal
// alphabet, the universe of nonterminals, and FIRST and FOLLOW sets.
// Annotations are immutable and do not modify the store they are
// computed from.
type Annotation struct {
	G           *Store
	alphabet    []rune
	nonterms    []NonTermID
	first       map[Symbol]*SymbolSet
	follow      map[NonTermID]*SymbolSet
	fingerprint string
}

// Analyze computes the annotation for store G. G has to be a complete store,
// as produced by a Builder. Errors are of type *InvariantViolationError and
// point to a defect in the code which produced G.
func Analyze(G *Store) (*Annotation, error) {
	tracer().Debugf("=== analysing grammar %q ===", G.Name)
	nonterms, err := checkStore(G)
	if err != nil {
		return nil, err
	}
	F, err := computeFirstSets(G)
	if err != nil {
		return nil, err
	}
	follow, err := computeFollowSets(G, F)
	if err != nil {
		return nil, err
	}
	A := &Annotation{
		G:           G,
		alphabet:    G.Alphabet(),
		nonterms:    nonterms,
		first:       make(map[Symbol]*SymbolSet, len(nonterms)+G.alphabet.Size()),
		follow:      follow,
		fingerprint: G.Fingerprint(),
	}
	for _, c := range A.alphabet {
		A.first[Terminal(c)] = newSymbolSet(Terminal(c))
	}
	for _, id := range nonterms {
		A.first[NonTerm(id)] = F.sets[id]
	}
	A.Dump()
	return A, nil
}

// checkStore verifies the shape of all productions and returns the ids
// of all nonterminals, in ascending order.
func checkStore(G *Store) ([]NonTermID, error) {
	for _, id := range G.universe {
		if !G.Has(id) {
			return nil, violation(id, "issued id without productions")
		}
	}
	var err error
	G.Each(func(id NonTermID, alts []Production) {
		if err != nil {
			return
		}
		if len(alts) == 0 {
			err = violation(id, "nonterminal without productions")
			return
		}
		for _, p := range alts {
			if err = checkProduction(G, id, p); err != nil {
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return G.NonTerminals(), nil
}

func checkProduction(G *Store, id NonTermID, p Production) error {
	if len(p) == 0 {
		return violation(id, "empty production")
	}
	for _, sym := range p {
		switch sym.kind {
		case EmptySymbol:
			if len(p) > 1 {
				return violation(id, fmt.Sprintf("ε is not the sole symbol of production %v", p))
			}
		case WildcardSymbol:
			return violation(id, fmt.Sprintf("wildcard in production %v", p))
		case NonTermSymbol:
			if !G.Has(sym.id) {
				return violation(id, fmt.Sprintf("reference to undefined nonterminal %v", sym))
			}
		}
	}
	return nil
}

// Store returns the analysed grammar store.
func (A *Annotation) Store() *Store {
	return A.G
}

// Alphabet returns the terminal characters of the grammar, in ascending order.
func (A *Annotation) Alphabet() []rune {
	return append([]rune(nil), A.alphabet...)
}

// NonTerminals returns the ids of all nonterminals, named and synthetic,
// in ascending order.
func (A *Annotation) NonTerminals() []NonTermID {
	return append([]NonTermID(nil), A.nonterms...)
}

// First returns FIRST(sym), or nil if sym is not a symbol of the grammar.
func (A *Annotation) First(sym Symbol) *SymbolSet {
	if sym.IsEmpty() {
		return newSymbolSet(Epsilon())
	}
	return A.first[sym]
}

// Follow returns FOLLOW(id), or nil if id is not a nonterminal of the grammar.
// The FOLLOW set of a nonterminal which is never referenced is empty.
func (A *Annotation) Follow(id NonTermID) *SymbolSet {
	return A.follow[id]
}

// Nullable is true if nonterminal id is able to derive the empty word.
func (A *Annotation) Nullable(id NonTermID) bool {
	return A.first[NonTerm(id)].Contains(Epsilon())
}

// Fingerprint returns the fingerprint of the analysed store.
func (A *Annotation) Fingerprint() string {
	return A.fingerprint
}
