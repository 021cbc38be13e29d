/*
Package ebnflang reads grammars written in textual EBNF.

The accepted notation follows ISO 14977 in spirit:

    Syntax     = { Definition } ;
    Definition = Ident ( "=" | "::=" ) DefList ( ";" | "." ) ;
    DefList    = SingleDef { "|" SingleDef } ;
    SingleDef  = Term { [ "," ] Term } ;
    Term       = Factor [ "-" Factor ] ;
    Factor     = Ident | String | "(" DefList ")" | "[" DefList "]" | "{" DefList "}" ;

Strings are enclosed in single or double quotes and do not support escapes.
Identifiers consist of letters, digits and underscores and may contain
inner blanks ("digit excluding zero"). Comments are written as (* … *).
A definition list may be empty, which denotes the empty sequence.

Parse tokenizes with lexmachine (see package scanner/lexmach). ParseTokens
accepts any scanner.Tokenizer, for example the Go-like default tokenizer,
which additionally skips Go comments:

    defs, err := ebnflang.ParseTokens(scanner.GoTokenizer("numbers", r))

The notation itself is declared as a participle grammar on a small set of
parse-tree structs, which are then converted to ebnf.Rules. The result is a
list of ebnf.Definitions, ready to be handed to grammar.Build.
Parsing stops at the first syntax error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ebnflang

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'gebnf.ebnf'.
func tracer() tracing.Trace {
	return tracing.Select("gebnf.ebnf")
}
