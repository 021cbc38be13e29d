/*
Package gebnf is a grammar-analysis toolbox for parser-generator front ends.

It reads grammars written in EBNF, normalizes them into plain context-free
productions and computes the FIRST and FOLLOW sets needed for building
LL(1) or SLR parsing tables. Package structure is as follows:

■ ebnf: Package ebnf defines the rule-expression tree of EBNF definitions.
Sub-package ebnflang reads textual EBNF into such trees.

■ grammar: Package grammar desugars EBNF definitions into a normalized grammar
store and annotates it with FIRST and FOLLOW sets.

■ scanner: Package scanner defines a tokenizer interface and default
implementations, including an adapter for lexmachine.

■ cmd/gebnf: An interactive tool for experimenting with EBNF grammars.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gebnf
