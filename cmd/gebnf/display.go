package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/gebnf/grammar"
	"github.com/pterm/pterm"
)

// printTree displays a grammar store as a tree on a terminal: nonterminals
// on the first level, their productions below.
func (intp *Intp) printTree(G *grammar.Store) error {
	pterm.Println(G.Name)
	ll := leveledStore(G, intp.session.Label)
	tracer().Debugf("|ll| = %d", len(ll))
	root := pterm.NewTreeFromLeveledList(ll)
	return pterm.DefaultTree.WithRoot(root).Render()
}

func leveledStore(G *grammar.Store, label func(grammar.NonTermID) string) pterm.LeveledList {
	ll := pterm.LeveledList{}
	G.Each(func(id grammar.NonTermID, alts []grammar.Production) {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: label(id)})
		for _, p := range alts {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: productionText(p, label)})
		}
	})
	return ll
}

// productionText renders a production with nonterminals replaced by their labels.
func productionText(p grammar.Production, label func(grammar.NonTermID) string) string {
	s := make([]string, len(p))
	for i, sym := range p {
		if id, ok := sym.ID(); ok {
			s[i] = label(id)
			continue
		}
		s[i] = sym.String()
	}
	return strings.Join(s, " ")
}

// printSets displays FIRST and FOLLOW sets of all nonterminals as a table.
func (intp *Intp) printSets(A *grammar.Annotation) error {
	data := [][]string{{"Nonterminal", "Nullable", "FIRST", "FOLLOW"}}
	for _, id := range A.NonTerminals() {
		data = append(data, []string{
			intp.session.Label(id),
			fmt.Sprintf("%v", A.Nullable(id)),
			A.First(grammar.NonTerm(id)).String(),
			A.Follow(id).String(),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
