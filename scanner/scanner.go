/*
Package scanner defines the tokenizer interface used by the EBNF front end
of package ebnflang.

There are two implementations. GoTokenizer builds on 'text/scanner' from the
standard library and is found in this package. An adapter for lexmachine
lives in sub-package `lexmach`. Both type tokens with the 'text/scanner'
constants for identifiers and strings, and type every other token with the
rune value of its first character.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"

	"github.com/npillmayer/gebnf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gebnf.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gebnf.scanner")
}

// Token types, taken over from text/scanner.
const (
	EOF     = scanner.EOF
	Ident   = scanner.Ident
	Int     = scanner.Int
	Float   = scanner.Float
	String  = scanner.String
	Comment = scanner.Comment
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() gebnf.Token
	SetErrorHandler(func(error))
}

// DefaultTokenizer is a tokenizer backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	Error func(error) // error handler
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// GoTokenizer creates a tokenizer for EBNF text. Identifiers, numbers and
// comments follow the conventions of Go. Deviating from Go, strings are
// enclosed in either '…' or "…" and are taken literally: there are no escape
// sequences. EBNF comments (* … *) are recognized, too, and are skipped
// together with Go comments unless SkipComments(false) is given.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Mode &^= scanner.ScanChars | scanner.ScanStrings | scanner.ScanRawStrings
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(fmt.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
//
// At the end of input, an EOF token positioned at the end of input is returned.
func (t *DefaultTokenizer) NextToken() gebnf.Token {
	for {
		tok := t.Scan()
		switch {
		case tok == scanner.EOF:
			tracer().Debugf("DefaultTokenizer reached end of input")
			at := uint64(t.Position.Offset)
			return MakeDefaultToken(EOF, "", gebnf.Span{at, at})
		case tok == '"' || tok == '\'':
			return t.quoted(tok)
		case tok == '(' && t.Peek() == '*':
			c := t.comment()
			if c.kind == Comment && t.Mode&scanner.SkipComments != 0 {
				continue
			}
			return c
		}
		return MakeDefaultToken(gebnf.TokType(tok), t.TokenText(),
			gebnf.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)})
	}
}

// LineCol returns the 1-based line and column of the most recent token.
func (t *DefaultTokenizer) LineCol() (int, int) {
	return t.Position.Line, t.Position.Column
}

// quoted reads the rest of a string literal after its opening quote q.
func (t *DefaultTokenizer) quoted(q rune) DefaultToken {
	return t.readUntil(String, string(q), func(prev, ch rune) bool {
		return ch == q
	}, "literal not terminated")
}

// comment reads the rest of a comment (* … *) after its opening parenthesis.
func (t *DefaultTokenizer) comment() DefaultToken {
	t.Next() // '*'
	return t.readUntil(Comment, "(*", func(prev, ch rune) bool {
		return prev == '*' && ch == ')'
	}, "comment not terminated")
}

// readUntil collects raw characters until done reports the closing character.
// The token position set by Scan is kept. If input ends first, the error is
// reported and an EOF token is returned.
func (t *DefaultTokenizer) readUntil(kind rune, opening string, done func(prev, ch rune) bool,
	unterminated string) DefaultToken {
	//
	start := t.Position
	defer func() { t.Position = start }() // Next() invalidates the position
	var b strings.Builder
	b.WriteString(opening)
	prev := rune(0)
	for {
		ch := t.Next()
		if ch == scanner.EOF {
			t.Error(fmt.Errorf("%s: %s", start, unterminated))
			return MakeDefaultToken(EOF, b.String(),
				gebnf.Span{uint64(start.Offset), uint64(t.Pos().Offset)})
		}
		b.WriteRune(ch)
		if done(prev, ch) {
			break
		}
		prev = ch
	}
	return MakeDefaultToken(gebnf.TokType(kind), b.String(),
		gebnf.Span{uint64(start.Offset), uint64(t.Pos().Offset)})
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the Go
// tokenizer as well as the lexmachine scanner.
type DefaultToken struct {
	kind   gebnf.TokType
	lexeme string
	Val    interface{}
	span   gebnf.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ gebnf.TokType, lexeme string, span gebnf.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() gebnf.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() gebnf.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%s@%s", TokenName(t.kind), t.span)
}

// TokenName returns a printable name for a token type. Types which are not
// one of the 'text/scanner' classes are shown as characters.
func TokenName(typ gebnf.TokType) string {
	if typ < 0 {
		return scanner.TokenString(rune(typ))
	}
	return fmt.Sprintf("%q", rune(typ))
}

// Option configures a default tokenizer.
type Option func(p *DefaultTokenizer)

// SkipComments sets or clears mode-flag SkipComments.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}
