package automata

import "strings"

// NFAE is a nondeterministic finite automaton extended with epsilon
// transitions. It is the only variant that computes closures and
// converts to the other two.
type NFAE struct {
	automaton
}

// NewNFAE validates the five structural fields and returns an NFA-ε.
// The epsilon subgraph must be acyclic (ErrCircularEpsilon otherwise).
func NewNFAE(states []State, alphabet []Symbol, transitions Transitions, start State, accept []State) (*NFAE, error) {
	base, err := newAutomaton(states, alphabet, transitions, start, accept)
	if err != nil {
		return nil, err
	}
	return &NFAE{base}, nil
}

// closure grows set to the smallest superset closed under epsilon
// transitions, by worklist. Terminates because the epsilon graph is
// finite and acyclic.
func (n *NFAE) closure(set StateSet) StateSet {
	out := set.clone()
	stack := make([]State, 0, len(out))
	for s := range out {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for to := range n.transitions[s][Epsilon] {
			if !out.Contains(to) {
				out[to] = struct{}{}
				stack = append(stack, to)
			}
		}
	}
	return out
}

// EpsilonClosure returns the epsilon-closure of the given states in
// sorted order. The closure of a closure is itself.
func (n *NFAE) EpsilonClosure(states ...State) []State {
	return n.closure(NewStateSet(states...)).sorted()
}

// Accepts reports whether the NFA-ε accepts the input. The current set
// starts as the closure of the start state and is re-closed after every
// consumed symbol.
func (n *NFAE) Accepts(input []Symbol) (bool, error) {
	seed := n.closure(NewStateSet(n.start))
	return n.runSet(input, seed, func(current StateSet, sym Symbol) StateSet {
		return n.closure(n.move(current, sym))
	})
}

// AcceptsString is Accepts with one symbol per rune of s.
func (n *NFAE) AcceptsString(s string) (bool, error) {
	return n.Accepts(symbolsOf(s))
}

// ToNFA eliminates epsilon transitions: each state's transition on a
// symbol becomes the union of that symbol's transitions from every
// state in its closure, and a state accepts when its closure meets the
// original accept set. The result is validated independently; an
// automaton held together only by epsilon transitions can fail its
// reachability invariant here, and that error is returned rather than
// patched over.
func (n *NFAE) ToNFA() (*NFA, error) {
	transitions := make(Transitions)
	for _, q := range n.states.sorted() {
		c := n.closure(NewStateSet(q))
		for _, sym := range n.alphabet.sorted() {
			dests := make(StateSet)
			for member := range c {
				for to := range n.transitions[member][sym] {
					dests[to] = struct{}{}
				}
			}
			if len(dests) > 0 {
				transitions.add(q, sym, dests.sorted()...)
			}
		}
	}

	var accept []State
	for _, q := range n.states.sorted() {
		if n.closure(NewStateSet(q)).intersects(n.accept) {
			accept = append(accept, q)
		}
	}

	return NewNFA(n.states.sorted(), n.alphabet.sorted(), transitions, n.start, accept)
}

// ToDFA determinizes the NFA-ε by subset construction. Composite states
// are identified by value: the canonical name built from the sorted
// member list is both the deduplication key and the new state
// identifier, so two paths reaching the same member set meet in the
// same DFA state. An empty successor set is expressed by omitting the
// transition, matching the DFA rule that a missing transition rejects.
func (n *NFAE) ToDFA() (*DFA, error) {
	startSet := n.closure(NewStateSet(n.start))
	startName := compositeName(startSet)

	composites := map[State]StateSet{startName: startSet}
	order := []State{startName}
	queue := []StateSet{startSet}
	transitions := make(Transitions)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		currentName := compositeName(current)
		for _, sym := range n.alphabet.sorted() {
			next := n.closure(n.move(current, sym))
			if len(next) == 0 {
				continue
			}
			nextName := compositeName(next)
			if _, seen := composites[nextName]; !seen {
				composites[nextName] = next
				order = append(order, nextName)
				queue = append(queue, next)
			}
			transitions.add(currentName, sym, nextName)
		}
	}

	var accept []State
	for _, name := range order {
		if composites[name].intersects(n.accept) {
			accept = append(accept, name)
		}
	}

	return NewDFA(order, n.alphabet.sorted(), transitions, startName, accept)
}

// compositeName renders a state set as a canonical identifier, e.g.
// {q0,q2}. Equal sets always render identically.
func compositeName(set StateSet) State {
	members := set.sorted()
	parts := make([]string, len(members))
	for i, s := range members {
		parts[i] = string(s)
	}
	return State("{" + strings.Join(parts, ",") + "}")
}
