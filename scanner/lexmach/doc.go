/*
Package lexmach wraps the lexmachine scanner generator
(https://github.com/timtadh/lexmachine) into a scanner.Tokenizer.

Package ebnflang uses it for its default lexer. Set-up is done in two steps.
First an LMAdapter is created from an init function, which adds the regular
expressions of a language, plus lists of literals and keywords:

	LM, err := lexmach.NewLMAdapter(func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`'[^']*'`), lexmach.MakeToken("STRING", scanner.String))
		lexer.Add([]byte(`( |\t|\n)+`), lexmach.Skip)
	}, []string{"=", "|", ";"}, nil, tokenIds)

Compiling the DFA happens in NewLMAdapter and is therefore done once per
language. Afterwards, LM.Scanner(input) creates a tokenizer per input.

Token spans are byte offsets into the input. The EOF token is positioned at
the end of input. Input which no pattern matches is reported to the error
handler and skipped.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
