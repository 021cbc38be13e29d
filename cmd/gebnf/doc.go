/*
Command gebnf provides an interactive command line tool for EBNF grammars.
Users enter EBNF definitions, which are normalized into a grammar store and
analysed for FIRST and FOLLOW sets. gebnf serves as a sandbox for experiments
with grammars during early stages of parser development.

    gebnf [-trace level] [-init file] [-export out.yaml] [grammar-file]

Definitions may span several lines; a definition is complete as soon as a
line ends with ';' or '.'. Re-entering a definition for an existing name
replaces it. Lines starting with a colon are commands:

    :dump           show the normalized grammar as a tree
    :first NAME     show FIRST(NAME)
    :follow NAME    show FOLLOW(NAME)
    :sets           show FIRST and FOLLOW for all nonterminals
    :reset          forget all definitions
    :help           list commands
    :quit           leave gebnf

NAME is either the name of a definition or a nonterminal id (e.g. 3 or <3>).
With flag -export, gebnf analyses the grammar file, writes the result as YAML
and exits.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gebnf.cli'
func tracer() tracing.Trace {
	return tracing.Select("gebnf.cli")
}
