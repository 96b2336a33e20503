package automata

import "sort"

// StateSet is an unordered collection of states.
type StateSet map[State]struct{}

// SymbolSet is an unordered collection of input symbols.
type SymbolSet map[Symbol]struct{}

// NewStateSet builds a StateSet from its members.
func NewStateSet(members ...State) StateSet {
	set := make(StateSet, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	return set
}

// NewSymbolSet builds a SymbolSet from its members.
func NewSymbolSet(members ...Symbol) SymbolSet {
	set := make(SymbolSet, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	return set
}

// Contains reports whether s is a member of the set.
func (set StateSet) Contains(s State) bool {
	_, ok := set[s]
	return ok
}

// Contains reports whether s is a member of the set.
func (set SymbolSet) Contains(s Symbol) bool {
	_, ok := set[s]
	return ok
}

func (set StateSet) add(members ...State) {
	for _, m := range members {
		set[m] = struct{}{}
	}
}

func (set StateSet) intersects(other StateSet) bool {
	for s := range set {
		if other.Contains(s) {
			return true
		}
	}
	return false
}

func (set StateSet) clone() StateSet {
	out := make(StateSet, len(set))
	for s := range set {
		out[s] = struct{}{}
	}
	return out
}

func (set StateSet) sorted() []State {
	out := make([]State, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (set SymbolSet) sorted() []Symbol {
	out := make([]Symbol, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedSources(t Transitions) []State {
	out := make([]State, 0, len(t))
	for s := range t {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedRowSymbols(row map[Symbol]StateSet) []Symbol {
	out := make([]Symbol, 0, len(row))
	for s := range row {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
