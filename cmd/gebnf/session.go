package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/gebnf/ebnf"
	"github.com/npillmayer/gebnf/ebnf/ebnflang"
	"github.com/npillmayer/gebnf/grammar"
)

// errIncomplete is returned when a grammar store is requested while the
// definitions entered so far do not form a complete grammar.
var errIncomplete = errors.New("grammar is incomplete")

// Session holds the definitions entered so far and the grammar built from them.
// Annotations are cached by the fingerprint of the store they were computed for.
type Session struct {
	name     string
	defs     []*ebnf.Definition
	G        *grammar.Store
	buildErr error
	cache    map[string]*grammar.Annotation
}

// NewSession creates an empty session for a grammar with a given name.
func NewSession(name string) *Session {
	return &Session{
		name:  name,
		cache: make(map[string]*grammar.Annotation),
	}
}

// Add parses EBNF text and adds its definitions. A definition for a name
// already present replaces the earlier one. Syntax errors leave the session
// unchanged. Build errors (e.g. references to rules not yet entered) are
// returned, but the definitions are kept.
func (s *Session) Add(text string) error {
	defs, err := ebnflang.Parse(text)
	if err != nil {
		return err
	}
	for _, def := range defs {
		s.define(def)
	}
	return s.rebuild()
}

func (s *Session) define(def *ebnf.Definition) {
	for i, d := range s.defs {
		if d.Name == def.Name {
			tracer().Infof("redefining %s", def.Name)
			s.defs[i] = def
			return
		}
	}
	s.defs = append(s.defs, def)
}

func (s *Session) rebuild() error {
	s.G, s.buildErr = nil, nil
	if len(s.defs) == 0 {
		return nil
	}
	G, err := grammar.NewBuilder(s.name).Build(s.defs)
	if err != nil {
		s.buildErr = err
		return err
	}
	s.G = G
	return nil
}

// Reset forgets all definitions. Cached annotations are kept, as they are
// keyed by content.
func (s *Session) Reset() {
	s.defs = nil
	s.G, s.buildErr = nil, nil
}

// Definitions returns the definitions in the order of their first appearance.
func (s *Session) Definitions() []*ebnf.Definition {
	return append([]*ebnf.Definition(nil), s.defs...)
}

// Store returns the grammar store for the current definitions.
func (s *Session) Store() (*grammar.Store, error) {
	if s.G == nil {
		if s.buildErr != nil {
			return nil, fmt.Errorf("%w: %v", errIncomplete, s.buildErr)
		}
		return nil, fmt.Errorf("%w: no definitions", errIncomplete)
	}
	return s.G, nil
}

// Analysis returns the annotation for the current grammar store.
func (s *Session) Analysis() (*grammar.Annotation, error) {
	G, err := s.Store()
	if err != nil {
		return nil, err
	}
	fp := G.Fingerprint()
	if A, ok := s.cache[fp]; ok && fp != "" {
		tracer().Debugf("using cached analysis for %s", fp)
		return A, nil
	}
	A, err := grammar.Analyze(G)
	if err != nil {
		return nil, err
	}
	if fp != "" {
		s.cache[fp] = A
	}
	return A, nil
}

// Lookup finds a nonterminal by name or by id. Ids may be written as
// 3 or <3>.
func (s *Session) Lookup(name string) (grammar.NonTermID, error) {
	G, err := s.Store()
	if err != nil {
		return 0, err
	}
	name = strings.TrimSpace(name)
	if id, ok := G.IDOf(name); ok {
		return id, nil
	}
	digits := strings.TrimSuffix(strings.TrimPrefix(name, "<"), ">")
	if n, err := strconv.ParseUint(digits, 10, 64); err == nil && G.Has(grammar.NonTermID(n)) {
		return grammar.NonTermID(n), nil
	}
	return 0, fmt.Errorf("no nonterminal %q in grammar", name)
}

// Label returns a printable name for a nonterminal, e.g. "Number <1>".
func (s *Session) Label(id grammar.NonTermID) string {
	if s.G != nil {
		if name, ok := s.G.NameOf(id); ok {
			return fmt.Sprintf("%s <%d>", name, id)
		}
	}
	return fmt.Sprintf("<%d>", id)
}
