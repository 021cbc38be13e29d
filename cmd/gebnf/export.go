package main

import (
	"io"

	"github.com/npillmayer/gebnf/grammar"
	"gopkg.in/yaml.v3"
)

// exportDoc is the YAML form of an analysed grammar, meant as input for
// table builders and other downstream tools.
type exportDoc struct {
	Grammar      string          `yaml:"grammar"`
	Fingerprint  string          `yaml:"fingerprint"`
	Alphabet     []string        `yaml:"alphabet,flow"`
	NonTerminals []exportNonTerm `yaml:"nonterminals"`
}

type exportNonTerm struct {
	ID          uint64   `yaml:"id"`
	Name        string   `yaml:"name,omitempty"`
	Nullable    bool     `yaml:"nullable"`
	Productions []string `yaml:"productions"`
	First       []string `yaml:"first,flow"`
	Follow      []string `yaml:"follow,flow"`
}

func makeExportDoc(A *grammar.Annotation) *exportDoc {
	G := A.Store()
	doc := &exportDoc{
		Grammar:     G.Name,
		Fingerprint: A.Fingerprint(),
		Alphabet:    []string{},
	}
	for _, c := range A.Alphabet() {
		doc.Alphabet = append(doc.Alphabet, string(c))
	}
	for _, id := range A.NonTerminals() {
		nt := exportNonTerm{
			ID:       uint64(id),
			Nullable: A.Nullable(id),
			First:    symbolStrings(A.First(grammar.NonTerm(id))),
			Follow:   symbolStrings(A.Follow(id)),
		}
		nt.Name, _ = G.NameOf(id)
		for _, p := range G.Alternatives(id) {
			nt.Productions = append(nt.Productions, p.String())
		}
		doc.NonTerminals = append(doc.NonTerminals, nt)
	}
	return doc
}

func symbolStrings(S *grammar.SymbolSet) []string {
	syms := []string{}
	for _, sym := range S.Values() {
		if c, ok := sym.Char(); ok {
			syms = append(syms, string(c))
			continue
		}
		syms = append(syms, sym.String())
	}
	return syms
}

// exportAnnotation writes an annotation as YAML.
func exportAnnotation(A *grammar.Annotation, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(makeExportDoc(A)); err != nil {
		return err
	}
	return enc.Close()
}
