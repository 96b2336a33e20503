// Package automata models deterministic and nondeterministic finite
// automata, the classical conversions between them (epsilon elimination
// and subset construction), and Thompson's construction of an automaton
// from a minimal postfix regular-expression notation.
//
// Every automaton is immutable once constructed: conversions allocate a
// fresh, independently validated automaton and never touch the source.
package automata

import "fmt"

// State identifies a single automaton state. Identifiers are opaque and
// carry no meaning beyond equality.
type State string

// Symbol is a single input symbol.
type Symbol string

// Epsilon labels a spontaneous transition. It is reserved: it may occur
// in a transition table but never in a declared alphabet.
const Epsilon Symbol = "ε"

// Transitions maps state -> symbol -> destination states. A missing
// entry means the automaton has no transition for that pair.
type Transitions map[State]map[Symbol]StateSet

func (t Transitions) add(from State, sym Symbol, dests ...State) {
	row := t[from]
	if row == nil {
		row = make(map[Symbol]StateSet)
		t[from] = row
	}
	set := row[sym]
	if set == nil {
		set = make(StateSet)
		row[sym] = set
	}
	set.add(dests...)
}

func (t Transitions) clone() Transitions {
	out := make(Transitions, len(t))
	for from, row := range t {
		for sym, dests := range row {
			out.add(from, sym, dests.sorted()...)
		}
	}
	return out
}

// automaton is the structural base shared by DFA, NFA and NFAE. The
// three exported variants differ only in construction-time invariants
// and in how a step resolves transitions.
type automaton struct {
	states      StateSet
	alphabet    SymbolSet
	transitions Transitions
	start       State
	accept      StateSet
}

func newAutomaton(states []State, alphabet []Symbol, transitions Transitions, start State, accept []State) (automaton, error) {
	a := automaton{
		states:      NewStateSet(states...),
		alphabet:    NewSymbolSet(alphabet...),
		transitions: transitions.clone(),
		start:       start,
		accept:      NewStateSet(accept...),
	}
	if err := a.validate(); err != nil {
		return automaton{}, err
	}
	return a, nil
}

// StartState returns the designated initial state.
func (a *automaton) StartState() State { return a.start }

// States returns the declared states in sorted order.
func (a *automaton) States() []State { return a.states.sorted() }

// Alphabet returns the declared alphabet in sorted order. It never
// contains Epsilon.
func (a *automaton) Alphabet() []Symbol { return a.alphabet.sorted() }

// AcceptStates returns the accepting states in sorted order.
func (a *automaton) AcceptStates() []State { return a.accept.sorted() }

// move returns the union of destinations reachable from current on sym.
func (a *automaton) move(current StateSet, sym Symbol) StateSet {
	next := make(StateSet)
	for s := range current {
		for d := range a.transitions[s][sym] {
			next[d] = struct{}{}
		}
	}
	return next
}

func (a *automaton) checkSymbol(sym Symbol) error {
	if !a.alphabet.Contains(sym) {
		return fmt.Errorf("%w: %q", ErrUnknownSymbol, sym)
	}
	return nil
}

// runSet drives set-based acceptance for NFA and NFAE. An empty current
// set is kept so that every remaining input symbol is still validated
// against the alphabet before the rejection is reported.
func (a *automaton) runSet(input []Symbol, seed StateSet, step func(StateSet, Symbol) StateSet) (bool, error) {
	current := seed
	for _, sym := range input {
		if err := a.checkSymbol(sym); err != nil {
			return false, err
		}
		current = step(current, sym)
	}
	return current.intersects(a.accept), nil
}

// symbolsOf splits s into one Symbol per rune.
func symbolsOf(s string) []Symbol {
	out := make([]Symbol, 0, len(s))
	for _, r := range s {
		out = append(out, Symbol(r))
	}
	return out
}

// Transition is a single edge of a Snapshot.
type Transition struct {
	From  State
	Input Symbol
	To    State
}

// Snapshot is a read-only structural copy of an automaton, ordered
// deterministically. Rendering and serialization collaborators consume
// it; mutating a snapshot never affects the automaton it came from.
type Snapshot struct {
	States      []State
	Alphabet    []Symbol
	Transitions []Transition
	Start       State
	Accept      []State
}

// Snapshot returns a deterministic structural copy of the automaton.
// States, alphabet and accept states are sorted; transitions are sorted
// by source, then symbol, then destination.
func (a *automaton) Snapshot() Snapshot {
	snap := Snapshot{
		States:   a.states.sorted(),
		Alphabet: a.alphabet.sorted(),
		Start:    a.start,
		Accept:   a.accept.sorted(),
	}
	for _, from := range sortedSources(a.transitions) {
		row := a.transitions[from]
		for _, sym := range sortedRowSymbols(row) {
			for _, to := range row[sym].sorted() {
				snap.Transitions = append(snap.Transitions, Transition{From: from, Input: sym, To: to})
			}
		}
	}
	return snap
}
