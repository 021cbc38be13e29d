package ebnf

import (
	"fmt"
	"strings"

	"github.com/npillmayer/gebnf"
)

// Rule is a node of a rule-expression tree.
type Rule interface {
	fmt.Stringer
	isRule()
}

// Definition is a named rule, i.e. one `Name = … ;` statement of a grammar.
type Definition struct {
	Name string
	Rule Rule
	Span gebnf.Span // position within the EBNF source, if known
}

func (d *Definition) String() string {
	if d.Rule == nil {
		return d.Name + " = ;"
	}
	return d.Name + " = " + d.Rule.String() + " ;"
}

// Char is a literal character.
type Char struct {
	C rune
}

// Ref is a reference to a named definition.
type Ref struct {
	Name string
}

// Sequence is a concatenation of sub-rules.
type Sequence struct {
	Items []Rule
}

// Alternation is a choice between sub-rules.
type Alternation struct {
	Alternatives []Rule
}

// Repetition matches its body zero or more times.
type Repetition struct {
	Body Rule
}

// Option matches its body zero times or once.
type Option struct {
	Body Rule
}

// Group is a parenthesized sub-rule.
type Group struct {
	Body Rule
}

// Exception is the set-difference `From - Except`.
type Exception struct {
	From   Rule
	Except Rule
}

func (*Char) isRule()        {}
func (*Ref) isRule()         {}
func (*Sequence) isRule()    {}
func (*Alternation) isRule() {}
func (*Repetition) isRule()  {}
func (*Option) isRule()      {}
func (*Group) isRule()       {}
func (*Exception) isRule()   {}

func (c *Char) String() string {
	return fmt.Sprintf("%q", string(c.C))
}

func (r *Ref) String() string {
	return r.Name
}

func (s *Sequence) String() string {
	return join(s.Items, " , ")
}

func (a *Alternation) String() string {
	return join(a.Alternatives, " | ")
}

func (r *Repetition) String() string {
	return "{ " + str(r.Body) + " }"
}

func (o *Option) String() string {
	return "[ " + str(o.Body) + " ]"
}

func (g *Group) String() string {
	return "( " + str(g.Body) + " )"
}

func (e *Exception) String() string {
	return str(e.From) + " - " + str(e.Except)
}

func join(rules []Rule, sep string) string {
	s := make([]string, len(rules))
	for i, r := range rules {
		s[i] = str(r)
	}
	return strings.Join(s, sep)
}

func str(r Rule) string {
	if r == nil {
		return "<nil>"
	}
	return r.String()
}

// --- Constructors ----------------------------------------------------------

// Def creates a named definition.
func Def(name string, rule Rule) *Definition {
	return &Definition{Name: name, Rule: rule}
}

// T creates a literal character.
func T(c rune) Rule {
	return &Char{C: c}
}

// Lit creates a literal string, i.e. a sequence of characters.
// Single-character strings result in a plain character rule.
func Lit(s string) Rule {
	runes := []rune(s)
	if len(runes) == 1 {
		return &Char{C: runes[0]}
	}
	items := make([]Rule, len(runes))
	for i, r := range runes {
		items[i] = &Char{C: r}
	}
	return &Sequence{Items: items}
}

// N creates a reference to a named definition.
func N(name string) Rule {
	return &Ref{Name: name}
}

// Seq creates a sequence.
func Seq(items ...Rule) Rule {
	return &Sequence{Items: items}
}

// Alt creates an alternation.
func Alt(alts ...Rule) Rule {
	return &Alternation{Alternatives: alts}
}

// Rep creates a zero-or-more repetition.
func Rep(body Rule) Rule {
	return &Repetition{Body: body}
}

// Opt creates an option.
func Opt(body Rule) Rule {
	return &Option{Body: body}
}

// Grp creates a group.
func Grp(body Rule) Rule {
	return &Group{Body: body}
}

// Except creates a set-difference `from - except`.
func Except(from, except Rule) Rule {
	return &Exception{From: from, Except: except}
}
