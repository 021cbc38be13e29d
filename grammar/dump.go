package grammar

import (
	"bytes"
	"fmt"
	"io"
)

// Render writes a human readable form of the store, one line per
// alternative:
//
//    1 = <0> <3>
//    3 = <0> <3>
//    3 = ε
//
// This is for diagnostics only; the format may change at any time.
func (G *Store) Render(w io.Writer) error {
	var err error
	G.Each(func(id NonTermID, alts []Production) {
		for _, p := range alts {
			if err != nil {
				return
			}
			_, err = fmt.Fprintf(w, "%d = %s\n", id, p)
		}
	})
	return err
}

func (G *Store) String() string {
	var b bytes.Buffer
	G.Render(&b)
	return b.String()
}

// Dump is a debugging helper, tracing the store at debug level.
func (G *Store) Dump() {
	tracer().Debugf("--- grammar %s ------------------------", G.Name)
	G.Each(func(id NonTermID, alts []Production) {
		label := fmt.Sprintf("%d", id)
		if name, ok := G.names[id]; ok {
			label = fmt.Sprintf("%d (%s)", id, name)
		}
		for _, p := range alts {
			tracer().Debugf("%s = %s", label, p)
		}
	})
	tracer().Debugf("----------------------------------------")
}

// Dump is a debugging helper, tracing FIRST and FOLLOW sets at debug level.
func (A *Annotation) Dump() {
	tracer().Debugf("--- annotation %s ---------------------", A.G.Name)
	for _, id := range A.nonterms {
		tracer().Debugf("FIRST(%d)  = %v", id, A.first[NonTerm(id)])
		tracer().Debugf("FOLLOW(%d) = %v", id, A.follow[id])
	}
	tracer().Debugf("----------------------------------------")
}
