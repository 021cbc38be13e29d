package ebnflang

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
	"github.com/npillmayer/gebnf"
	"github.com/npillmayer/gebnf/ebnf"
	"github.com/npillmayer/gebnf/scanner"
)

// SyntaxError is returned for EBNF input which does not conform to the
// EBNF notation, or which the tokenizer is unable to read.
type SyntaxError struct {
	Span gebnf.Span // position of the offending token
	Line int        // 1-based line of Span.From(), 0 if unknown
	Col  int        // 1-based column (in characters) of Span.From(), 0 if unknown
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("syntax error at offset %d: %s", e.Span.From(), e.Msg)
}

// --- Grammar of the EBNF notation ------------------------------------------

type ebnfSyntax struct {
	Definitions []*ebnfDefinition `@@*`
}

type ebnfDefinition struct {
	Pos  lexer.Position
	Name []string        `@Ident+ ( "=" | "::=" | ":" ":" "=" )`
	Body *ebnfDefList    `@@`
	End  *ebnfTerminator `@@`
}

type ebnfTerminator struct {
	Pos  lexer.Position
	Mark string `@( ";" | "." )`
}

type ebnfDefList struct {
	Alternatives []*ebnfSingleDef `@@ ( "|" @@ )*`
}

// An empty single definition is legal and denotes the empty sequence.
type ebnfSingleDef struct {
	Terms []*ebnfTerm `( @@ ( ","? @@ )* )?`
}

type ebnfTerm struct {
	Factor *ebnfFactor `@@`
	Except *ebnfFactor `( "-" @@ )?`
}

type ebnfFactor struct {
	Ref    []string     `(   @Ident+`
	Str    string       `  | @String`
	Group  *ebnfDefList `  | "(" @@ ")"`
	Option *ebnfDefList `  | "[" @@ "]"`
	Repeat *ebnfDefList `  | "{" @@ "}" )`
}

var ebnfParser *participle.Parser
var ebnfParserErr error
var ebnfParserOnce sync.Once

// parser returns the participle parser for EBNF. The EBNF grammar is LL(1),
// so the parser commits to a branch as soon as the branch has consumed a token.
func parser() (*participle.Parser, error) {
	ebnfParserOnce.Do(func() {
		ebnfParser, ebnfParserErr = participle.Build(&ebnfSyntax{},
			participle.Lexer(tokenizerDefinition{}),
			participle.UseLookahead(0))
		if ebnfParserErr != nil {
			tracer().Errorf("cannot build EBNF parser: %v", ebnfParserErr)
		}
	})
	return ebnfParser, ebnfParserErr
}

// --- Parsing ----------------------------------------------------------------

// Parse parses EBNF source text into a list of definitions, in the order
// of their appearance.
func Parse(source string) ([]*ebnf.Definition, error) {
	lm, err := Lexer()
	if err != nil {
		return nil, err
	}
	scan, err := lm.Scanner(source)
	if err != nil {
		return nil, err
	}
	defs, err := ParseTokens(scan)
	var serr *SyntaxError
	if errors.As(err, &serr) {
		serr.Line, serr.Col = lineCol(source, serr.Span.From())
	}
	return defs, err
}

// ParseTokens parses a stream of tokens into a list of definitions.
// Token types are expected to follow the conventions of package scanner:
// identifiers and strings are of type scanner.Ident and scanner.String, and
// all other tokens are typed by their first character. A string token
// includes its quotes; everything in between is taken literally.
// "::=" may be delivered either as a single token or as the sequence
// ':' ':' '='. Comment tokens are ignored.
//
// If the tokenizer is able to tell line and column of its most recent token
// (as scanner.DefaultTokenizer is), syntax errors carry them.
func ParseTokens(tokenizer scanner.Tokenizer) ([]*ebnf.Definition, error) {
	p, err := parser()
	if err != nil {
		return nil, err
	}
	defer tokenizer.SetErrorHandler(nil)
	tokens, err := lexer.Upgrade(newTokenLexer(tokenizer))
	if err != nil {
		err = scanError(err)
		tracer().Errorf(err.Error())
		return nil, err
	}
	tree := &ebnfSyntax{}
	if err = p.ParseFromLexer(tokens, tree); err != nil {
		err = parseError(err)
		tracer().Errorf(err.Error())
		return nil, err
	}
	defs := make([]*ebnf.Definition, 0, len(tree.Definitions))
	for _, d := range tree.Definitions {
		def := d.definition()
		tracer().Debugf("EBNF %v", def)
		defs = append(defs, def)
	}
	tracer().Debugf("parsed %d EBNF definitions", len(defs))
	return defs, nil
}

// scanError converts an error reported by the tokenizer.
func scanError(err error) error {
	var lerr *lexer.Error
	if !errors.As(err, &lerr) {
		return err
	}
	return makeSyntaxError(lerr.Tok, lerr.Msg)
}

// parseError converts an error of the participle parser.
func parseError(err error) error {
	var perr participle.Error
	if !errors.As(err, &perr) {
		return err
	}
	tok := perr.Token()
	msg := "unexpected end of input"
	if !tok.EOF() {
		msg = fmt.Sprintf("unexpected %q", tok.Value)
	}
	var unexpected participle.UnexpectedTokenError
	if errors.As(err, &unexpected) && unexpected.Expected != "" {
		msg += fmt.Sprintf(" (expected %s)", unexpected.Expected)
	}
	return makeSyntaxError(tok, msg)
}

func makeSyntaxError(tok lexer.Token, msg string) *SyntaxError {
	from := uint64(tok.Pos.Offset)
	return &SyntaxError{
		Span: gebnf.Span{from, from + uint64(len(tok.Value))},
		Line: tok.Pos.Line,
		Col:  tok.Pos.Column,
		Msg:  msg,
	}
}

// lineCol converts a byte offset into 1-based line and column numbers.
// Columns count characters.
func lineCol(source string, offset uint64) (int, int) {
	if offset > uint64(len(source)) {
		offset = uint64(len(source))
	}
	before := source[:offset]
	line := strings.Count(before, "\n") + 1
	col := utf8.RuneCountInString(before[strings.LastIndex(before, "\n")+1:]) + 1
	return line, col
}

// --- From parse tree to EBNF rules -----------------------------------------

func (d *ebnfDefinition) definition() *ebnf.Definition {
	def := ebnf.Def(identifier(d.Name), d.Body.rule())
	def.Span = gebnf.Span{
		uint64(d.Pos.Offset),
		uint64(d.End.Pos.Offset + len(d.End.Mark)),
	}
	return def
}

// identifier joins consecutive identifier tokens with single blanks, as
// identifiers may contain inner blanks.
func identifier(parts []string) string {
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

func (l *ebnfDefList) rule() ebnf.Rule {
	if len(l.Alternatives) == 1 {
		return l.Alternatives[0].rule()
	}
	alts := make([]ebnf.Rule, len(l.Alternatives))
	for i, a := range l.Alternatives {
		alts[i] = a.rule()
	}
	return ebnf.Alt(alts...)
}

func (s *ebnfSingleDef) rule() ebnf.Rule {
	if len(s.Terms) == 1 {
		return s.Terms[0].rule()
	}
	items := make([]ebnf.Rule, len(s.Terms))
	for i, t := range s.Terms {
		items[i] = t.rule()
	}
	return ebnf.Seq(items...)
}

func (t *ebnfTerm) rule() ebnf.Rule {
	if t.Except == nil {
		return t.Factor.rule()
	}
	return ebnf.Except(t.Factor.rule(), t.Except.rule())
}

func (f *ebnfFactor) rule() ebnf.Rule {
	switch {
	case len(f.Ref) > 0:
		return ebnf.N(identifier(f.Ref))
	case f.Group != nil:
		return ebnf.Grp(f.Group.rule())
	case f.Option != nil:
		return ebnf.Opt(f.Option.rule())
	case f.Repeat != nil:
		return ebnf.Rep(f.Repeat.rule())
	}
	if len(f.Str) < 2 { // tokenizers deliver strings including the quotes
		return ebnf.Lit(f.Str)
	}
	return ebnf.Lit(f.Str[1 : len(f.Str)-1])
}

// --- Tokenizers as participle lexers ----------------------------------------

type lineColer interface {
	LineCol() (int, int)
}

// tokenLexer feeds tokens of a scanner.Tokenizer to participle. The first
// error reported by the tokenizer ends the token stream.
type tokenLexer struct {
	tokenizer scanner.Tokenizer
	err       error
}

func newTokenLexer(tokenizer scanner.Tokenizer) *tokenLexer {
	l := &tokenLexer{tokenizer: tokenizer}
	tokenizer.SetErrorHandler(func(e error) {
		if l.err == nil {
			l.err = e
		}
	})
	return l
}

func (l *tokenLexer) Next() (lexer.Token, error) {
	tok := l.tokenizer.NextToken()
	for tok.TokType() == scanner.Comment {
		tok = l.tokenizer.NextToken()
	}
	t := lexer.Token{
		Type:  rune(tok.TokType()),
		Value: tok.Lexeme(),
		Pos:   lexer.Position{Offset: int(tok.Span().From())},
	}
	if lc, ok := l.tokenizer.(lineColer); ok {
		t.Pos.Line, t.Pos.Column = lc.LineCol()
	}
	if l.err != nil {
		return t, lexer.ErrorWithTokenf(t, "%s", l.err.Error())
	}
	return t, nil
}

// tokenizerDefinition tells participle about the token types of package
// scanner. Lex reads with the Go tokenizer.
type tokenizerDefinition struct{}

func (tokenizerDefinition) Lex(r io.Reader) (lexer.Lexer, error) {
	return newTokenLexer(scanner.GoTokenizer(lexer.NameOfReader(r), r)), nil
}

func (tokenizerDefinition) Symbols() map[string]rune {
	return map[string]rune{
		"EOF":     scanner.EOF,
		"Ident":   scanner.Ident,
		"String":  scanner.String,
		"Comment": scanner.Comment,
	}
}
