package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"automata"
)

// WriteTable writes the transition table of snap to w, one row per
// (state, symbol) pair with the destinations joined by commas.
func WriteTable(w io.Writer, snap automata.Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "State\tSymbol\tNext states")

	// Snapshot transitions are sorted by (From, Input, To), so equal
	// (state, symbol) rows are adjacent.
	i := 0
	for i < len(snap.Transitions) {
		t := snap.Transitions[i]
		var dests []string
		for i < len(snap.Transitions) && snap.Transitions[i].From == t.From && snap.Transitions[i].Input == t.Input {
			dests = append(dests, string(snap.Transitions[i].To))
			i++
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", string(t.From), string(t.Input), strings.Join(dests, ", "))
	}
	return tw.Flush()
}
