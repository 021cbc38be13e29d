package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// idAllocator hands out nonterminal ids. Named rules are assigned ids
// 0…N-1 in declaration order up front, which makes forward references
// resolvable. Synthetic ids start at N+1, slot N stays unused.
type idAllocator struct {
	names    map[string]NonTermID // named rules
	counter  NonTermID            // next synthetic id
	universe *treeset.Set         // all ids handed out so far
}

func nonTermComparator(a, b interface{}) int {
	return utils.UInt64Comparator(uint64(a.(NonTermID)), uint64(b.(NonTermID)))
}

func newIDAllocator() *idAllocator {
	return &idAllocator{
		names:    make(map[string]NonTermID),
		universe: treeset.NewWith(nonTermComparator),
	}
}

// declare pre-assigns ids to named rules. It returns the offending name
// if a name occurs twice. declare has to be called once, before any call
// to next.
func (a *idAllocator) declare(names []string) (string, bool) {
	for i, name := range names {
		if _, dup := a.names[name]; dup {
			return name, false
		}
		id := NonTermID(i)
		a.names[name] = id
		a.universe.Add(id)
	}
	a.counter = NonTermID(len(names) + 1)
	return "", true
}

// resolve finds the id of a named rule.
func (a *idAllocator) resolve(name string) (NonTermID, bool) {
	id, ok := a.names[name]
	return id, ok
}

// next returns a fresh synthetic id.
func (a *idAllocator) next() NonTermID {
	id := a.counter
	a.counter++
	a.universe.Add(id)
	return id
}

// issued returns all ids handed out, in ascending order.
func (a *idAllocator) issued() []NonTermID {
	ids := make([]NonTermID, 0, a.universe.Size())
	it := a.universe.Iterator()
	for it.Next() {
		ids = append(ids, it.Value().(NonTermID))
	}
	return ids
}
