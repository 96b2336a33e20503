// Package render turns automaton snapshots into human-readable output:
// a Graphviz DOT digraph and a plain-text transition table. It only
// ever sees a Snapshot, never the automaton itself.
package render

import (
	"fmt"
	"io"
	"strings"

	"automata"
)

// DOT renders the snapshot as a Graphviz digraph. Accept states are
// doublecircles, the start state is marked by an unlabeled point node.
// Snapshots are sorted, so the output is deterministic.
func DOT(snap automata.Snapshot) string {
	accept := automata.NewStateSet(snap.Accept...)

	var b strings.Builder
	b.WriteString("digraph automaton {\n")
	b.WriteString("    rankdir=LR;\n")
	for _, s := range snap.States {
		shape := "circle"
		if accept.Contains(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "    %q [shape=%s];\n", string(s), shape)
	}
	for _, t := range snap.Transitions {
		fmt.Fprintf(&b, "    %q -> %q [label=%q];\n", string(t.From), string(t.To), string(t.Input))
	}
	fmt.Fprintf(&b, "    _start [shape=point]; _start -> %q;\n", string(snap.Start))
	b.WriteString("}\n")
	return b.String()
}

// WriteDOT writes the DOT rendering of snap to w.
func WriteDOT(w io.Writer, snap automata.Snapshot) error {
	_, err := io.WriteString(w, DOT(snap))
	return err
}
