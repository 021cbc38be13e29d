package grammar

import (
	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Store is a normalized grammar: a table from nonterminal ids to alternative
// productions. Nonterminals reference each other by id only, which allows for
// arbitrary recursion between rules.
//
// A store is created by a Builder and is read-only afterwards.
type Store struct {
	Name     string
	rules    *treemap.Map         // NonTermID → []Production
	names    map[NonTermID]string // named rules only
	ids      map[string]NonTermID // reverse of names
	alphabet *treeset.Set         // runes occuring in any production
	universe []NonTermID          // all ids issued by the builder
}

func newStore(name string) *Store {
	return &Store{
		Name:     name,
		rules:    treemap.NewWith(nonTermComparator),
		names:    make(map[NonTermID]string),
		ids:      make(map[string]NonTermID),
		alphabet: treeset.NewWith(utils.RuneComparator),
	}
}

// appendProduction adds an alternative for nonterminal id.
func (G *Store) appendProduction(id NonTermID, p Production) {
	var alts []Production
	if v, found := G.rules.Get(id); found {
		alts = v.([]Production)
	}
	G.rules.Put(id, append(alts, p))
}

func (G *Store) addTerminal(c rune) {
	G.alphabet.Add(c)
}

func (G *Store) name(id NonTermID, name string) {
	G.names[id] = name
	G.ids[name] = id
}

// Alternatives returns the productions of nonterminal id, in the order
// they have been added. The result is a copy.
func (G *Store) Alternatives(id NonTermID) []Production {
	v, found := G.rules.Get(id)
	if !found {
		return nil
	}
	alts := v.([]Production)
	r := make([]Production, len(alts))
	for i, p := range alts {
		r[i] = append(Production(nil), p...)
	}
	return r
}

// alternatives returns the productions of id without copying.
func (G *Store) alternatives(id NonTermID) ([]Production, bool) {
	v, found := G.rules.Get(id)
	if !found {
		return nil, false
	}
	return v.([]Production), true
}

// Has is true if id is a key of the store.
func (G *Store) Has(id NonTermID) bool {
	_, found := G.rules.Get(id)
	return found
}

// NonTerminals returns the ids of all nonterminals with productions, in
// ascending order.
func (G *Store) NonTerminals() []NonTermID {
	keys := G.rules.Keys()
	ids := make([]NonTermID, len(keys))
	for i, k := range keys {
		ids[i] = k.(NonTermID)
	}
	return ids
}

// Universe returns every id the builder has issued, named and synthetic,
// in ascending order.
func (G *Store) Universe() []NonTermID {
	return append([]NonTermID(nil), G.universe...)
}

// Alphabet returns all characters occuring as terminals, in ascending order.
func (G *Store) Alphabet() []rune {
	chars := make([]rune, 0, G.alphabet.Size())
	it := G.alphabet.Iterator()
	for it.Next() {
		chars = append(chars, it.Value().(rune))
	}
	return chars
}

// Size returns the number of nonterminals with productions.
func (G *Store) Size() int {
	return G.rules.Size()
}

// IDOf returns the id of a named rule.
func (G *Store) IDOf(name string) (NonTermID, bool) {
	id, ok := G.ids[name]
	return id, ok
}

// NameOf returns the name of a named rule. Synthetic nonterminals do
// not have a name.
func (G *Store) NameOf(id NonTermID) (string, bool) {
	name, ok := G.names[id]
	return name, ok
}

// IsNamed is true for nonterminals of user-named rules, false for
// synthetic ones.
func (G *Store) IsNamed(id NonTermID) bool {
	_, ok := G.names[id]
	return ok
}

// Each calls mapper for every nonterminal in ascending id order.
// Mappers must not modify the productions handed to them.
func (G *Store) Each(mapper func(id NonTermID, alts []Production)) {
	it := G.rules.Iterator()
	for it.Next() {
		mapper(it.Key().(NonTermID), it.Value().([]Production))
	}
}

// --- Fingerprints ----------------------------------------------------------

// storeDigest is the hashable content of a store.
type storeDigest struct {
	Rules    []ruleDigest
	Alphabet string
}

type ruleDigest struct {
	ID           uint64
	Name         string
	Alternatives []string
}

// Fingerprint returns a content hash of the store. Stores with equal
// productions and names have equal fingerprints.
func (G *Store) Fingerprint() string {
	digest := storeDigest{Alphabet: string(G.Alphabet())}
	G.Each(func(id NonTermID, alts []Production) {
		rd := ruleDigest{ID: uint64(id), Name: G.names[id]}
		for _, p := range alts {
			rd.Alternatives = append(rd.Alternatives, p.String())
		}
		digest.Rules = append(digest.Rules, rd)
	})
	hash, err := structhash.Hash(digest, 1)
	if err != nil {
		tracer().Errorf("cannot hash grammar store %q: %v", G.Name, err)
		return ""
	}
	return hash
}
