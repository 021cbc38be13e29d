package ebnflang

import (
	"fmt"
	"sync"

	"github.com/npillmayer/gebnf/scanner"
	"github.com/npillmayer/gebnf/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// The tokens representing literal lexemes
var literals = []string{"=", "::=", "|", ",", ";", ".", "-", "(", ")", "[", "]", "{", "}"}

// Token types other than literals
var tokens = []string{"ID", "STRING"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["ID"] = scanner.Ident
		tokenIds["STRING"] = scanner.String
		for _, lit := range literals {
			tokenIds[lit] = int(lit[0])
		}
		tokenIds["::="] = '=' // the same as "=", as for the Go tokenizer
	})
}

// Token returns a token name and its type.
func Token(t string) (string, int) {
	initTokens()
	id, ok := tokenIds[t]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", t))
	}
	return t, id
}

var lm *lexmach.LMAdapter
var lmErr error
var lmOnce sync.Once

// Lexer returns the lexmachine lexer for EBNF. The DFA is compiled once.
func Lexer() (*lexmach.LMAdapter, error) {
	lmOnce.Do(func() {
		initTokens()
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`\(\*([^*]|\*+[^*\)])*\*+\)`), lexmach.Skip) // skip comments
			lexer.Add([]byte(`\"[^"]*\"`), makeToken("STRING"))
			lexer.Add([]byte(`'[^']*'`), makeToken("STRING"))
			lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*( +([a-z]|[A-Z]|[0-9]|_)+)*`), makeToken("ID"))
			lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		}
		tracer().Debugf("compiling EBNF lexer")
		lm, lmErr = lexmach.NewLMAdapter(init, literals, nil, tokenIds)
	})
	return lm, lmErr
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return lexmach.MakeToken(s, id)
}
