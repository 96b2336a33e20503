package automata

import (
	"errors"
	"fmt"
)

// Construction-time errors. All are fatal: no automaton is produced.
// ErrUnknownSymbol is the only runtime error, raised by Accepts when an
// input symbol is outside the alphabet.
var (
	ErrInvalidStartState   = errors.New("start state is not a declared state")
	ErrInvalidAcceptStates = errors.New("accept states are not a subset of the declared states")
	ErrUndeclaredState     = errors.New("transition references an undeclared state")
	ErrUndeclaredSymbol    = errors.New("undeclared symbol")
	ErrUnusedState         = errors.New("unused state")
	ErrUnreachableState    = errors.New("unreachable state")
	ErrCircularEpsilon     = errors.New("circular epsilon transitions")
	ErrNondeterministic    = errors.New("nondeterministic transition")
	ErrUnknownSymbol       = errors.New("symbol not in alphabet")
	ErrMalformedPattern    = errors.New("malformed pattern")
)

// validate checks the shared structural invariants. Checks run in a
// fixed order over sorted keys so that the same invalid input always
// reports the same error.
func (a *automaton) validate() error {
	if !a.states.Contains(a.start) {
		return fmt.Errorf("%w: %q", ErrInvalidStartState, a.start)
	}
	for _, s := range a.accept.sorted() {
		if !a.states.Contains(s) {
			return fmt.Errorf("%w: %q", ErrInvalidAcceptStates, s)
		}
	}
	if a.alphabet.Contains(Epsilon) {
		return fmt.Errorf("%w: %q is reserved for spontaneous transitions", ErrUndeclaredSymbol, Epsilon)
	}
	for _, from := range sortedSources(a.transitions) {
		if !a.states.Contains(from) {
			return fmt.Errorf("%w: source %q", ErrUndeclaredState, from)
		}
		row := a.transitions[from]
		for _, sym := range sortedRowSymbols(row) {
			if sym != Epsilon && !a.alphabet.Contains(sym) {
				return fmt.Errorf("%w: %q on state %q", ErrUndeclaredSymbol, sym, from)
			}
			for _, to := range row[sym].sorted() {
				if !a.states.Contains(to) {
					return fmt.Errorf("%w: destination %q", ErrUndeclaredState, to)
				}
			}
		}
	}
	if err := a.checkUsage(); err != nil {
		return err
	}
	if err := a.checkReachability(); err != nil {
		return err
	}
	if a.hasEpsilon() {
		if err := a.checkEpsilonCycles(); err != nil {
			return err
		}
	}
	return nil
}

// checkUsage rejects declared states that appear nowhere: not in any
// transition (as source or destination), not the start state and not an
// accept state.
func (a *automaton) checkUsage() error {
	used := a.accept.clone()
	used[a.start] = struct{}{}
	for from, row := range a.transitions {
		used[from] = struct{}{}
		for _, dests := range row {
			for to := range dests {
				used[to] = struct{}{}
			}
		}
	}
	var unused []State
	for _, s := range a.states.sorted() {
		if !used.Contains(s) {
			unused = append(unused, s)
		}
	}
	if len(unused) > 0 {
		return fmt.Errorf("%w: %v", ErrUnusedState, unused)
	}
	return nil
}

// checkReachability walks every transition (epsilon included) from the
// start state, iteratively, and rejects states the walk never visits.
func (a *automaton) checkReachability() error {
	reachable := NewStateSet(a.start)
	stack := []State{a.start}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, dests := range a.transitions[s] {
			for to := range dests {
				if !reachable.Contains(to) {
					reachable[to] = struct{}{}
					stack = append(stack, to)
				}
			}
		}
	}
	var unreachable []State
	for _, s := range a.states.sorted() {
		if !reachable.Contains(s) {
			unreachable = append(unreachable, s)
		}
	}
	if len(unreachable) > 0 {
		return fmt.Errorf("%w: %v", ErrUnreachableState, unreachable)
	}
	return nil
}

func (a *automaton) hasEpsilon() bool {
	for _, row := range a.transitions {
		if _, ok := row[Epsilon]; ok {
			return true
		}
	}
	return false
}

// checkEpsilonCycles runs a per-path depth-first search over the
// epsilon subgraph. A cyclic epsilon graph still has a well-defined
// closure, but the contract forbids it outright.
func (a *automaton) checkEpsilonCycles() error {
	visited := make(StateSet)
	onPath := make(StateSet)

	var visit func(s State) error
	visit = func(s State) error {
		visited[s] = struct{}{}
		onPath[s] = struct{}{}
		for _, to := range a.transitions[s][Epsilon].sorted() {
			if onPath.Contains(to) {
				return fmt.Errorf("%w: cycle through %q", ErrCircularEpsilon, to)
			}
			if !visited.Contains(to) {
				if err := visit(to); err != nil {
					return err
				}
			}
		}
		delete(onPath, s)
		return nil
	}

	for _, s := range a.states.sorted() {
		if !visited.Contains(s) {
			if err := visit(s); err != nil {
				return err
			}
		}
	}
	return nil
}
