package lexmach

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/gebnf"
	"github.com/npillmayer/gebnf/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"Digit",
	`Digit = "0" | '1' ;`,
	"Number ::= Digit, {Digit}.",
	`X = "x" (* commented *)`,
	"a?b",
}

var tokenCounts = []int{1, 6, 8, 3, 2}

var literals = []string{"=", "::=", "|", ",", ";", ".", "(", ")", "[", "]", "{", "}", "-"}

var tokenIds map[string]int // A map from the token names to their int ids

func initTokens() {
	tokenIds = map[string]int{
		"ID":     scanner.Ident,
		"STRING": scanner.String,
		"::=":    '=',
	}
	for _, lit := range literals {
		if _, ok := tokenIds[lit]; !ok {
			tokenIds[lit] = int(lit[0])
		}
	}
}

func makeAdapter(t *testing.T) *LMAdapter {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`\(\*([^*]|\*+[^*\)])*\*+\)`), Skip)
		lexer.Add([]byte(`\"[^"]*\"`), MakeToken("STRING", tokenIds["STRING"]))
		lexer.Add([]byte(`'[^']*'`), MakeToken("STRING", tokenIds["STRING"]))
		lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), MakeToken("ID", tokenIds["ID"]))
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, nil, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	return LM
}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gebnf.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		errcnt := 0
		sc.SetErrorHandler(func(error) { errcnt++ })
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
		if token.Span() != (gebnf.Span{uint64(len(input)), uint64(len(input))}) {
			t.Errorf("Expected EOF token for #%d to be positioned at end of input, is %v", i, token.Span())
		}
		if input == "a?b" && errcnt != 1 {
			t.Errorf("Expected 1 scanner error for #%d, have %d", i, errcnt)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMSpansAndTypes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gebnf.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	sc, err := LM.Scanner(`N ::= 'ab' | M ;`)
	if err != nil {
		t.Fatal(err)
	}
	var types []gebnf.TokType
	var spans []gebnf.Span
	for tok := sc.NextToken(); tok.TokType() != scanner.EOF; tok = sc.NextToken() {
		types = append(types, tok.TokType())
		spans = append(spans, tok.Span())
	}
	expectedTypes := []gebnf.TokType{scanner.Ident, '=', scanner.String, '|', scanner.Ident, ';'}
	if diff := cmp.Diff(expectedTypes, types); diff != "" {
		t.Errorf("unexpected token types (-want +got):\n%s", diff)
	}
	expectedSpans := []gebnf.Span{{0, 1}, {2, 5}, {6, 10}, {11, 12}, {13, 14}, {15, 16}}
	if diff := cmp.Diff(expectedSpans, spans); diff != "" {
		t.Errorf("unexpected token spans (-want +got):\n%s", diff)
	}
}
