package automata

// NFA is a nondeterministic finite automaton without epsilon
// transitions of its own semantics: acceptance tracks a set of current
// states and takes the union of destinations on every symbol.
type NFA struct {
	automaton
}

// NewNFA validates the five structural fields and returns an NFA.
func NewNFA(states []State, alphabet []Symbol, transitions Transitions, start State, accept []State) (*NFA, error) {
	base, err := newAutomaton(states, alphabet, transitions, start, accept)
	if err != nil {
		return nil, err
	}
	return &NFA{base}, nil
}

// Accepts reports whether any run of the NFA over the input ends in an
// accept state. An empty current-state set rejects, but the remaining
// symbols are still validated against the alphabet.
func (n *NFA) Accepts(input []Symbol) (bool, error) {
	return n.runSet(input, NewStateSet(n.start), n.move)
}

// AcceptsString is Accepts with one symbol per rune of s.
func (n *NFA) AcceptsString(s string) (bool, error) {
	return n.Accepts(symbolsOf(s))
}
