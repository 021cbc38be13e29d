package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/gebnf/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"gopkg.in/yaml.v3"
)

func TestSessionRedefinition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gebnf.cli")
	defer teardown()
	//
	s := NewSession("numbers")
	if err := s.Add(`Digit = "0" | "1" ; Number = Digit , { Digit } ;`); err != nil {
		t.Fatal(err)
	}
	A1, err := s.Analysis()
	if err != nil {
		t.Fatal(err)
	}
	if err = s.Add(`Digit = "0" | "1" | "2" ;`); err != nil {
		t.Fatal(err)
	}
	if n := len(s.Definitions()); n != 2 {
		t.Fatalf("expected redefinition to replace Digit, have %d definitions", n)
	}
	A2, err := s.Analysis()
	if err != nil {
		t.Fatal(err)
	}
	if A1 == A2 || A2.Alphabet()[2] != '2' {
		t.Errorf("expected a new analysis for the changed grammar")
	}
	if err = s.Add(`Digit = "0" | "1" ;`); err != nil {
		t.Fatal(err)
	}
	A3, err := s.Analysis()
	if err != nil {
		t.Fatal(err)
	}
	if A3 != A1 {
		t.Errorf("expected analysis to be re-used from cache for an equal grammar")
	}
}

func TestSessionIncomplete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gebnf.cli")
	defer teardown()
	//
	s := NewSession("G")
	if _, err := s.Store(); !errors.Is(err, errIncomplete) {
		t.Errorf("expected empty session to be incomplete, got %v", err)
	}
	err := s.Add(`S = A , "s" ;`)
	if !errors.Is(err, grammar.ErrUnknownIdentifier) {
		t.Fatalf("expected unknown identifier A, got %v", err)
	}
	if _, err = s.Analysis(); !errors.Is(err, errIncomplete) {
		t.Errorf("expected grammar to be incomplete, got %v", err)
	}
	if err = s.Add(`A = [ "a" ] ;`); err != nil {
		t.Fatalf("expected grammar to be complete, got %v", err)
	}
	id, err := s.Lookup("A")
	if err != nil || id != 1 {
		t.Errorf("expected A to have id 1, is %d (%v)", id, err)
	}
	if id, err = s.Lookup("<3>"); err != nil || id != 3 {
		t.Errorf("expected to find synthetic nonterminal 3, got %d (%v)", id, err)
	}
	if _, err = s.Lookup("2"); err == nil {
		t.Errorf("expected reserved id 2 not to be found")
	}
	if l := s.Label(1); l != "A <1>" {
		t.Errorf("expected label of A to be 'A <1>', is %q", l)
	}
}

func TestEvalCollectsLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gebnf.cli")
	defer teardown()
	//
	var out bytes.Buffer
	intp := &Intp{session: NewSession("G"), out: &out}
	for _, line := range []string{`Expr = Term`, `  | Expr , "+" , Term ;`, `Term = "x" ;`} {
		if _, err := intp.Eval(line); err != nil {
			t.Fatalf("unexpected error for %q: %v", line, err)
		}
	}
	if len(intp.pending) != 0 {
		t.Errorf("expected no pending input, have %v", intp.pending)
	}
	G, err := intp.session.Store()
	if err != nil {
		t.Fatal(err)
	}
	if n := len(G.Alternatives(0)); n != 2 {
		t.Errorf("expected Expr to have 2 productions, has %d", n)
	}
	if quit, err := intp.Eval(":follow Term"); quit || err != nil {
		t.Errorf("unexpected result for :follow: %v, %v", quit, err)
	}
	if _, err := intp.Eval(":nonsense"); err == nil {
		t.Errorf("expected unknown command to be reported")
	}
	if quit, _ := intp.Eval(":quit"); !quit {
		t.Errorf("expected :quit to quit")
	}
}

func TestExport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gebnf.cli")
	defer teardown()
	//
	s := NewSession("numbers")
	if err := s.Add(`Digit = "0" | "1" ; Number = Digit , { Digit } ;`); err != nil {
		t.Fatal(err)
	}
	A, err := s.Analysis()
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err = exportAnnotation(A, &b); err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", b.String())
	doc := exportDoc{}
	if err = yaml.Unmarshal(b.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	expected := exportDoc{
		Grammar:     "numbers",
		Fingerprint: A.Fingerprint(),
		Alphabet:    []string{"0", "1"},
		NonTerminals: []exportNonTerm{
			{ID: 0, Name: "Digit", Productions: []string{"'0'", "'1'"},
				First: []string{"0", "1"}, Follow: []string{"0", "1"}},
			{ID: 1, Name: "Number", Productions: []string{"<0> <3>"},
				First: []string{"0", "1"}, Follow: []string{}},
			{ID: 3, Nullable: true, Productions: []string{"<0> <3>", "ε"},
				First: []string{"ε", "0", "1"}, Follow: []string{}},
		},
	}
	if diff := cmp.Diff(expected, doc); diff != "" {
		t.Errorf("unexpected export (-want +got):\n%s", diff)
	}
}
