/*
Package ebnf defines the rule-expression tree for EBNF grammar definitions.

A grammar is an ordered list of named definitions. Each definition pairs
an identifier with a rule expression built from literal characters,
references to other definitions, sequences, alternations, repetitions,
options, groups and exceptions (set-difference).

Rule trees are usually produced by package ebnflang from textual EBNF, but
clients may build them directly:

    defs := []*ebnf.Definition{
        ebnf.Def("Digit",  ebnf.Alt(ebnf.T('0'), ebnf.T('1'))),      // Digit  = "0" | "1" ;
        ebnf.Def("Number", ebnf.Seq(ebnf.N("Digit"),                 // Number = Digit , { Digit } ;
                                    ebnf.Rep(ebnf.N("Digit")))),
    }

Package grammar converts such definitions into a normalized grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ebnf
