package grammar

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/gebnf/ebnf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var symbolCmp = cmp.Comparer(func(a, b Symbol) bool { return a == b })

func mustBuild(t *testing.T, defs ...*ebnf.Definition) *Store {
	t.Helper()
	G, err := NewBuilder(t.Name()).Build(defs)
	if err != nil {
		t.Fatalf("cannot build grammar: %v", err)
	}
	return G
}

func expectAlternatives(t *testing.T, G *Store, id NonTermID, expected ...Production) {
	t.Helper()
	if diff := cmp.Diff(expected, G.Alternatives(id), symbolCmp); diff != "" {
		t.Errorf("productions of <%d> differ (-want +got):\n%s", id, diff)
	}
}

func TestBuildPlainRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gebnf.grammar")
	defer teardown()
	//
	G := mustBuild(t,
		ebnf.Def("A", ebnf.Seq(ebnf.T('a'), ebnf.N("B"))), // A = "a" , B ;
		ebnf.Def("B", ebnf.Lit("bc")),                     // B = "bc" ;
		ebnf.Def("C", ebnf.N("A")),                        // C = A ;
	)
	if G.Size() != 3 {
		t.Fatalf("expected 3 nonterminals, have %d", G.Size())
	}
	for _, id := range G.NonTerminals() {
		if n := len(G.Alternatives(id)); n != 1 {
			t.Errorf("expected <%d> to have exactly 1 production, has %d", id, n)
		}
	}
	expectAlternatives(t, G, 0, Production{Terminal('a'), NonTerm(1)})
	expectAlternatives(t, G, 1, Production{Terminal('b'), Terminal('c')})
	expectAlternatives(t, G, 2, Production{NonTerm(0)})
	if diff := cmp.Diff([]rune{'a', 'b', 'c'}, G.Alphabet()); diff != "" {
		t.Errorf("unexpected alphabet (-want +got):\n%s", diff)
	}
}

func TestBuildNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gebnf.grammar")
	defer teardown()
	//
	G := mustBuild(t,
		ebnf.Def("Digit", ebnf.Alt(ebnf.T('0'), ebnf.T('1'))),                // Digit = "0" | "1" ;
		ebnf.Def("Number", ebnf.Seq(ebnf.N("Digit"), ebnf.Rep(ebnf.N("Digit")))), // Number = Digit , { Digit } ;
	)
	digit, _ := G.IDOf("Digit")
	number, _ := G.IDOf("Number")
	expectAlternatives(t, G, digit,
		Production{Terminal('0')},
		Production{Terminal('1')})
	alts := G.Alternatives(number)
	if len(alts) != 1 || len(alts[0]) != 2 || alts[0][0] != NonTerm(digit) {
		t.Fatalf("unexpected productions for Number: %v", alts)
	}
	R, ok := alts[0][1].ID()
	if !ok || G.IsNamed(R) {
		t.Fatalf("expected second symbol of Number to be a synthetic nonterminal, is %v", alts[0][1])
	}
	expectAlternatives(t, G, R,
		Production{NonTerm(digit), NonTerm(R)},
		Production{Epsilon()})
}

func TestRepetitionEncoding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gebnf.grammar")
	defer teardown()
	//
	G := mustBuild(t,
		ebnf.Def("L", ebnf.Rep(ebnf.Seq(ebnf.T('a'), ebnf.N("M")))), // L = { "a" , M } ;
		ebnf.Def("M", ebnf.T('m')),                                  // M = "m" ;
	)
	N := NonTermID(3) // 2 named rules, slot 2 reserved
	expectAlternatives(t, G, 0, Production{NonTerm(N)})
	expectAlternatives(t, G, N,
		Production{Terminal('a'), NonTerm(1), NonTerm(N)},
		Production{Epsilon()})
}

func TestOptionGroupAlternation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gebnf.grammar")
	defer teardown()
	//
	// S = [ "a" ] , ( "b" , "c" ) , ( "d" | "e" , "f" ) ;
	G := mustBuild(t,
		ebnf.Def("S", ebnf.Seq(
			ebnf.Opt(ebnf.T('a')),
			ebnf.Grp(ebnf.Lit("bc")),
			ebnf.Grp(ebnf.Alt(ebnf.T('d'), ebnf.Lit("ef"))),
		)),
	)
	// ids: S=0, reserved=1, option=2, group=3, group=4, alternation=5
	expectAlternatives(t, G, 0, Production{NonTerm(2), NonTerm(3), NonTerm(4)})
	expectAlternatives(t, G, 2, Production{Terminal('a')}, Production{Epsilon()})
	expectAlternatives(t, G, 3, Production{Terminal('b'), Terminal('c')})
	expectAlternatives(t, G, 4, Production{NonTerm(5)})
	expectAlternatives(t, G, 5,
		Production{Terminal('d')},
		Production{Terminal('e'), Terminal('f')})
	if diff := cmp.Diff([]NonTermID{0, 2, 3, 4, 5}, G.Universe()); diff != "" {
		t.Errorf("unexpected id universe (-want +got):\n%s", diff)
	}
}

func TestFreshIDsDisjoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gebnf.grammar")
	defer teardown()
	//
	G := mustBuild(t,
		ebnf.Def("A", ebnf.Alt(ebnf.Rep(ebnf.N("B")), ebnf.Opt(ebnf.N("C")))),
		ebnf.Def("B", ebnf.Grp(ebnf.Alt(ebnf.T('x'), ebnf.Rep(ebnf.T('y'))))),
		ebnf.Def("C", ebnf.Seq(ebnf.N("A"), ebnf.Opt(ebnf.Grp(ebnf.T('z'))))),
	)
	named := map[NonTermID]bool{}
	for _, name := range []string{"A", "B", "C"} {
		id, ok := G.IDOf(name)
		if !ok {
			t.Fatalf("no id for named rule %s", name)
		}
		named[id] = true
	}
	synthetic := 0
	for _, id := range G.Universe() {
		if G.IsNamed(id) != named[id] {
			t.Errorf("id <%d> is both named and synthetic", id)
		}
		if !G.IsNamed(id) {
			synthetic++
			if id <= 3 {
				t.Errorf("synthetic id <%d> collides with named id range", id)
			}
		}
		if !G.Has(id) {
			t.Errorf("issued id <%d> has no productions", id)
		}
	}
	if synthetic != 7 {
		t.Errorf("expected 7 synthetic nonterminals, have %d", synthetic)
	}
}

func TestForwardReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gebnf.grammar")
	defer teardown()
	//
	G := mustBuild(t,
		ebnf.Def("S", ebnf.Seq(ebnf.N("Later"), ebnf.T(';'))),
		ebnf.Def("Later", ebnf.T('l')),
	)
	expectAlternatives(t, G, 0, Production{NonTerm(1), Terminal(';')})
}

func TestEmptyProductions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gebnf.grammar")
	defer teardown()
	//
	G := mustBuild(t,
		ebnf.Def("E", ebnf.Alt(ebnf.Lit(""), ebnf.T('e'))), // E = "" | "e" ;
		ebnf.Def("F", ebnf.Seq()),                          // F = ;
	)
	expectAlternatives(t, G, 0, Production{Epsilon()}, Production{Terminal('e')})
	expectAlternatives(t, G, 1, Production{Epsilon()})
}

func TestUnknownIdentifier(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gebnf.grammar")
	defer teardown()
	//
	G, err := Build([]*ebnf.Definition{ebnf.Def("X", ebnf.N("Y"))})
	if G != nil {
		t.Errorf("expected no store for erroneous grammar")
	}
	var unknown *UnknownIdentifierError
	if !errors.As(err, &unknown) || unknown.Name != "Y" {
		t.Fatalf("expected UnknownIdentifierError for Y, got %v", err)
	}
	if !errors.Is(err, ErrUnknownIdentifier) {
		t.Errorf("expected error to match ErrUnknownIdentifier")
	}
}

func TestUnsupportedException(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gebnf.grammar")
	defer teardown()
	//
	G, err := Build([]*ebnf.Definition{
		ebnf.Def("Letter", ebnf.Alt(ebnf.T('a'), ebnf.T('b'))),
		ebnf.Def("NotA", ebnf.Except(ebnf.N("Letter"), ebnf.T('a'))),
	})
	if G != nil || !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected unsupported construct error, got %v", err)
	}
	var unsupp *UnsupportedConstructError
	if errors.As(err, &unsupp) && unsupp.Definition != "NotA" {
		t.Errorf("expected error to name definition NotA, is %q", unsupp.Definition)
	}
}

func TestDuplicateDefinition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gebnf.grammar")
	defer teardown()
	//
	_, err := Build([]*ebnf.Definition{
		ebnf.Def("A", ebnf.T('a')),
		ebnf.Def("A", ebnf.T('b')),
	})
	var dup *DuplicateDefinitionError
	if !errors.As(err, &dup) || dup.Name != "A" {
		t.Errorf("expected duplicate definition error for A, got %v", err)
	}
}

func TestMalformedRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gebnf.grammar")
	defer teardown()
	//
	for _, def := range []*ebnf.Definition{
		ebnf.Def("A", nil),
		ebnf.Def("A", ebnf.Alt()),
		ebnf.Def("A", ebnf.Seq(ebnf.T('a'), ebnf.Rep(nil))),
	} {
		if _, err := Build([]*ebnf.Definition{def}); !errors.Is(err, ErrMalformedRule) {
			t.Errorf("expected malformed rule error for %v, got %v", def, err)
		}
	}
}

func TestBuilderReuse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gebnf.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	defs := []*ebnf.Definition{ebnf.Def("A", ebnf.Rep(ebnf.T('a')))}
	G1, err1 := b.Build(defs)
	G2, err2 := b.Build(defs)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if G1 == G2 || G1.String() != G2.String() {
		t.Errorf("expected two equal but distinct stores, got\n%s\nand\n%s", G1, G2)
	}
}
