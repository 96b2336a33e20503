package automata

import "fmt"

// DFA is a deterministic finite automaton: every (state, symbol) pair
// has at most one destination.
type DFA struct {
	automaton
}

// NewDFA validates the five structural fields and returns a DFA. On top
// of the shared invariants it enforces determinism: a destination set
// with more than one member is ErrNondeterministic.
func NewDFA(states []State, alphabet []Symbol, transitions Transitions, start State, accept []State) (*DFA, error) {
	base, err := newAutomaton(states, alphabet, transitions, start, accept)
	if err != nil {
		return nil, err
	}
	for _, from := range sortedSources(base.transitions) {
		row := base.transitions[from]
		for _, sym := range sortedRowSymbols(row) {
			if len(row[sym]) > 1 {
				return nil, fmt.Errorf("%w: state %q on %q has %d destinations",
					ErrNondeterministic, from, sym, len(row[sym]))
			}
		}
	}
	return &DFA{base}, nil
}

// Accepts reports whether the DFA accepts the input. A symbol outside
// the alphabet is ErrUnknownSymbol. A missing transition rejects the
// string immediately; symbols after that point are not examined.
func (d *DFA) Accepts(input []Symbol) (bool, error) {
	current := d.start
	for _, sym := range input {
		if err := d.checkSymbol(sym); err != nil {
			return false, err
		}
		dests := d.transitions[current][sym]
		if len(dests) == 0 {
			return false, nil
		}
		for to := range dests {
			current = to
		}
	}
	return d.accept.Contains(current), nil
}

// AcceptsString is Accepts with one symbol per rune of s.
func (d *DFA) AcceptsString(s string) (bool, error) {
	return d.Accepts(symbolsOf(s))
}
