/*
Package grammar normalizes EBNF grammars and computes FIRST and FOLLOW sets.

Building a Grammar

EBNF definitions (see package ebnf) are desugared into a grammar store:
a table from nonterminal identifiers to alternative productions, each
production a plain sequence of symbols. Every repetition, option, group and
nested alternation introduces a fresh synthetic nonterminal.

Example:

    defs := []*ebnf.Definition{
        ebnf.Def("Digit",  ebnf.Alt(ebnf.T('0'), ebnf.T('1'))),
        ebnf.Def("Number", ebnf.Seq(ebnf.N("Digit"), ebnf.Rep(ebnf.N("Digit")))),
    }
    G, err := grammar.Build(defs)

This results in the following store:

    G.Render(os.Stdout)

    0 = '0'
    0 = '1'
    1 = <0> <3>
    3 = <0> <3>
    3 = ε

Named rules receive ids in declaration order. Id 2 is reserved, synthetic
ids start at 3. The repetition { Digit } is encoded as right recursion
3 → Digit 3 | ε.

Static Grammar Analysis

After the store is complete, it has to be analysed. Analyze computes FIRST
sets for every terminal and nonterminal, and FOLLOW sets for every nonterminal.

    A, err := grammar.Analyze(G)
    for _, N := range A.NonTerminals() {
        fmt.Printf("FIRST(%d) = %v\n", N, A.First(grammar.NonTerm(N)))
    }

    // Output:
    FIRST(0) = {'0', '1'}
    FIRST(1) = {'0', '1'}
    FIRST(3) = {ε, '0', '1'}

FOLLOW sets are computed over the whole store by fixed-point iteration.
They contain terminals only; an empty FOLLOW set means that nothing is
known to follow a nonterminal (e.g., for a start symbol).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gebnf.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("gebnf.grammar")
}
