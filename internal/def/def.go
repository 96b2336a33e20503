// Package def loads and saves automaton definitions as plain data. A
// Definition carries the five structural fields in a codec-friendly
// shape and converts to and from core automata; it is the only place
// that knows about JSON and TOML.
package def

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"automata"
)

// Definition kinds.
const (
	KindDFA  = "dfa"
	KindNFA  = "nfa"
	KindNFAE = "nfa-e"
)

// Definition is the serialized form of an automaton.
type Definition struct {
	Kind         string                         `json:"kind" toml:"kind"`
	States       []string                       `json:"states" toml:"states"`
	Alphabet     []string                       `json:"alphabet" toml:"alphabet"`
	Transitions  map[string]map[string][]string `json:"transitions" toml:"transitions"`
	StartState   string                         `json:"start_state" toml:"start_state"`
	AcceptStates []string                       `json:"accept_states" toml:"accept_states"`
}

// Machine is the acceptance surface shared by all three automaton
// variants.
type Machine interface {
	Accepts(input []automata.Symbol) (bool, error)
	AcceptsString(s string) (bool, error)
	Snapshot() automata.Snapshot
}

// ParseJSON decodes a JSON definition.
func ParseJSON(data []byte) (Definition, error) {
	var d Definition
	if err := json.Unmarshal(data, &d); err != nil {
		return Definition{}, fmt.Errorf("parse json definition: %w", err)
	}
	return d, nil
}

// ParseTOML decodes a TOML definition.
func ParseTOML(data []byte) (Definition, error) {
	var d Definition
	if err := toml.Unmarshal(data, &d); err != nil {
		return Definition{}, fmt.Errorf("parse toml definition: %w", err)
	}
	return d, nil
}

// Load reads a definition file, choosing the codec by extension:
// .toml is TOML, .json is JSON.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return Definition{}, fmt.Errorf("unsupported definition file extension %q", filepath.Ext(path))
	}
}

// JSON encodes the definition as indented JSON.
func (d Definition) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Build constructs the automaton variant named by Kind.
func (d Definition) Build() (Machine, error) {
	switch d.Kind {
	case KindDFA:
		return d.DFA()
	case KindNFA:
		return d.NFA()
	case KindNFAE:
		return d.NFAE()
	default:
		return nil, fmt.Errorf("unknown automaton kind %q", d.Kind)
	}
}

// DFA builds a deterministic automaton from the definition.
func (d Definition) DFA() (*automata.DFA, error) {
	return automata.NewDFA(d.states(), d.symbols(), d.transitions(), automata.State(d.StartState), d.acceptStates())
}

// NFA builds a nondeterministic automaton from the definition.
func (d Definition) NFA() (*automata.NFA, error) {
	return automata.NewNFA(d.states(), d.symbols(), d.transitions(), automata.State(d.StartState), d.acceptStates())
}

// NFAE builds an epsilon-NFA from the definition.
func (d Definition) NFAE() (*automata.NFAE, error) {
	return automata.NewNFAE(d.states(), d.symbols(), d.transitions(), automata.State(d.StartState), d.acceptStates())
}

func (d Definition) states() []automata.State {
	out := make([]automata.State, len(d.States))
	for i, s := range d.States {
		out[i] = automata.State(s)
	}
	return out
}

func (d Definition) symbols() []automata.Symbol {
	out := make([]automata.Symbol, len(d.Alphabet))
	for i, s := range d.Alphabet {
		out[i] = automata.Symbol(s)
	}
	return out
}

func (d Definition) acceptStates() []automata.State {
	out := make([]automata.State, len(d.AcceptStates))
	for i, s := range d.AcceptStates {
		out[i] = automata.State(s)
	}
	return out
}

func (d Definition) transitions() automata.Transitions {
	t := make(automata.Transitions)
	for from, row := range d.Transitions {
		converted := make(map[automata.Symbol]automata.StateSet, len(row))
		for sym, dests := range row {
			states := make([]automata.State, len(dests))
			for i, to := range dests {
				states[i] = automata.State(to)
			}
			converted[automata.Symbol(sym)] = automata.NewStateSet(states...)
		}
		t[automata.State(from)] = converted
	}
	return t
}

// FromSnapshot converts a snapshot back into a serializable definition
// of the given kind.
func FromSnapshot(kind string, snap automata.Snapshot) Definition {
	d := Definition{
		Kind:         kind,
		States:       make([]string, len(snap.States)),
		Alphabet:     make([]string, len(snap.Alphabet)),
		Transitions:  make(map[string]map[string][]string),
		StartState:   string(snap.Start),
		AcceptStates: make([]string, len(snap.Accept)),
	}
	for i, s := range snap.States {
		d.States[i] = string(s)
	}
	for i, s := range snap.Alphabet {
		d.Alphabet[i] = string(s)
	}
	for i, s := range snap.Accept {
		d.AcceptStates[i] = string(s)
	}
	for _, t := range snap.Transitions {
		row := d.Transitions[string(t.From)]
		if row == nil {
			row = make(map[string][]string)
			d.Transitions[string(t.From)] = row
		}
		row[string(t.Input)] = append(row[string(t.Input)], string(t.To))
	}
	return d
}
