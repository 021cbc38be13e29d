package grammar

import (
	"fmt"

	"github.com/npillmayer/gebnf/ebnf"
)

// Builder desugars EBNF definitions into a grammar store. Create one with
// NewBuilder and call Build, or use the shortcut function Build.
//
//    b := grammar.NewBuilder("Numbers")
//    G, err := b.Build(defs)
//
// Every repetition, option, group and nested alternation is replaced by
// a fresh nonterminal:
//
//    ( X )      N → X
//    [ X ]      N → X | ε
//    { X }      N → X N | ε
//    X | Y      N → X | Y
//
// An alternation at the top level of a definition does not introduce a new
// nonterminal; its alternatives become productions of the defined name.
type Builder struct {
	name string
	G    *Store
	ids  *idAllocator
	def  string // name of the definition currently desugared
}

// NewBuilder creates a builder for a grammar with a given name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Build desugars an ordered list of definitions. Definitions may reference
// each other regardless of their order.
//
// Either the complete store is returned, or an error. Errors are
// *UnknownIdentifierError, *UnsupportedConstructError,
// *DuplicateDefinitionError or *MalformedRuleError.
func (b *Builder) Build(defs []*ebnf.Definition) (*Store, error) {
	b.G = newStore(b.name)
	b.ids = newIDAllocator()
	G, err := b.build(defs)
	b.G, b.ids = nil, nil
	if err != nil {
		tracer().Errorf("grammar %q: %v", b.name, err)
		return nil, err
	}
	return G, nil
}

// Build desugars definitions into a grammar store named "G".
func Build(defs []*ebnf.Definition) (*Store, error) {
	return NewBuilder("G").Build(defs)
}

func (b *Builder) build(defs []*ebnf.Definition) (*Store, error) {
	names := make([]string, len(defs))
	for i, def := range defs {
		if def == nil {
			return nil, &MalformedRuleError{Reason: fmt.Sprintf("definition #%d is nil", i)}
		}
		names[i] = def.Name
	}
	if dup, ok := b.ids.declare(names); !ok {
		return nil, &DuplicateDefinitionError{Name: dup}
	}
	for i, name := range names {
		b.G.name(NonTermID(i), name)
	}
	for _, def := range defs {
		b.def = def.Name
		id, _ := b.ids.resolve(def.Name)
		tracer().Debugf("desugar %s = <%d>", def.Name, id)
		if alt, ok := def.Rule.(*ebnf.Alternation); ok {
			if err := b.alternatives(id, alt); err != nil {
				return nil, err
			}
			continue
		}
		p, err := b.production(def.Rule)
		if err != nil {
			return nil, err
		}
		b.G.appendProduction(id, p)
	}
	b.G.universe = b.ids.issued()
	b.G.Dump()
	return b.G, nil
}

// production desugars rule into a fresh production. An empty result is
// encoded as [ε].
func (b *Builder) production(rule ebnf.Rule) (Production, error) {
	p := Production{}
	if err := b.desugar(&p, rule); err != nil {
		return nil, err
	}
	if len(p) == 0 {
		p = Production{Epsilon()}
	}
	return p, nil
}

// alternatives stores one production per alternative under id.
func (b *Builder) alternatives(id NonTermID, alt *ebnf.Alternation) error {
	if len(alt.Alternatives) == 0 {
		return &MalformedRuleError{Definition: b.def, Reason: "alternation without alternatives"}
	}
	for _, rule := range alt.Alternatives {
		p, err := b.production(rule)
		if err != nil {
			return err
		}
		b.G.appendProduction(id, p)
	}
	return nil
}

// desugar appends the symbols for rule to acc, storing productions for
// synthetic nonterminals as it goes.
func (b *Builder) desugar(acc *Production, rule ebnf.Rule) error {
	switch r := rule.(type) {
	case nil:
		return &MalformedRuleError{Definition: b.def, Reason: "missing rule"}
	case *ebnf.Char:
		b.G.addTerminal(r.C)
		*acc = append(*acc, Terminal(r.C))
	case *ebnf.Ref:
		id, ok := b.ids.resolve(r.Name)
		if !ok {
			return &UnknownIdentifierError{Name: r.Name}
		}
		*acc = append(*acc, NonTerm(id))
	case *ebnf.Sequence:
		for _, item := range r.Items {
			if err := b.desugar(acc, item); err != nil {
				return err
			}
		}
	case *ebnf.Alternation:
		N := b.ids.next()
		tracer().Debugf("<%d> for alternation %v", N, r)
		if err := b.alternatives(N, r); err != nil {
			return err
		}
		*acc = append(*acc, NonTerm(N))
	case *ebnf.Repetition: // N → X N | ε
		N := b.ids.next()
		tracer().Debugf("<%d> for repetition %v", N, r)
		p := Production{}
		if err := b.desugar(&p, r.Body); err != nil {
			return err
		}
		b.G.appendProduction(N, append(p, NonTerm(N)))
		b.G.appendProduction(N, Production{Epsilon()})
		*acc = append(*acc, NonTerm(N))
	case *ebnf.Option: // N → X | ε
		N := b.ids.next()
		tracer().Debugf("<%d> for option %v", N, r)
		p, err := b.production(r.Body)
		if err != nil {
			return err
		}
		b.G.appendProduction(N, p)
		b.G.appendProduction(N, Production{Epsilon()})
		*acc = append(*acc, NonTerm(N))
	case *ebnf.Group: // N → X
		N := b.ids.next()
		tracer().Debugf("<%d> for group %v", N, r)
		p, err := b.production(r.Body)
		if err != nil {
			return err
		}
		b.G.appendProduction(N, p)
		*acc = append(*acc, NonTerm(N))
	case *ebnf.Exception:
		return &UnsupportedConstructError{Definition: b.def, Rule: r}
	default:
		return &MalformedRuleError{Definition: b.def, Reason: fmt.Sprintf("unknown rule type %T", rule)}
	}
	return nil
}
