/*
Automata checks input strings against a finite automaton and converts
between automaton variants.

Usage:

	automata -f FILE [flags] [STRING ...]
	automata -p PATTERN [flags] [STRING ...]

The automaton comes either from a definition file (-f, TOML or JSON by
extension, with a "kind" of dfa, nfa or nfa-e) or from a regular
expression pattern (-p) in postfix notation: alphanumeric literals,
'*' star, '|' union and '.' explicit concatenation, e.g. "abc*.|" for
a|bc*. A pattern always builds an NFA-ε first.

The flags are:

	--to-nfa
		Eliminate epsilon transitions (requires an nfa-e input).

	--to-dfa
		Determinize by subset construction (requires an nfa-e input).

	--table
		Print the transition table.

	--dot
		Print a Graphviz DOT rendering.

Each positional argument is checked against the (possibly converted)
automaton and reported as accept or reject.
*/
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"automata"
	"automata/internal/def"
	"automata/render"
)

var (
	flagFile    = pflag.StringP("file", "f", "", "automaton definition file (.toml or .json)")
	flagPattern = pflag.StringP("pattern", "p", "", "postfix regular expression pattern")
	flagToNFA   = pflag.Bool("to-nfa", false, "eliminate epsilon transitions before use")
	flagToDFA   = pflag.Bool("to-dfa", false, "determinize by subset construction before use")
	flagTable   = pflag.Bool("table", false, "print the transition table")
	flagDOT     = pflag.Bool("dot", false, "print a Graphviz DOT rendering")
)

func main() {
	pflag.Parse()

	m, err := buildMachine()
	if err != nil {
		log.Fatal(err)
	}
	m, err = convert(m)
	if err != nil {
		log.Fatal(err)
	}

	for _, input := range pflag.Args() {
		ok, err := m.AcceptsString(input)
		if err != nil {
			log.Fatal(err)
		}
		verdict := "reject"
		if ok {
			verdict = "accept"
		}
		fmt.Printf("%s\t%q\n", verdict, input)
	}

	if *flagTable {
		if err := render.WriteTable(os.Stdout, m.Snapshot()); err != nil {
			log.Fatal(err)
		}
	}
	if *flagDOT {
		if err := render.WriteDOT(os.Stdout, m.Snapshot()); err != nil {
			log.Fatal(err)
		}
	}
}

func buildMachine() (def.Machine, error) {
	switch {
	case *flagFile != "" && *flagPattern != "":
		return nil, fmt.Errorf("use either --file or --pattern, not both")
	case *flagFile != "":
		d, err := def.Load(*flagFile)
		if err != nil {
			return nil, err
		}
		return d.Build()
	case *flagPattern != "":
		re, err := automata.Compile(*flagPattern)
		if err != nil {
			return nil, err
		}
		return re.ToNFAE()
	default:
		return nil, fmt.Errorf("an automaton is required: pass --file or --pattern")
	}
}

func convert(m def.Machine) (def.Machine, error) {
	if !*flagToNFA && !*flagToDFA {
		return m, nil
	}
	if *flagToNFA && *flagToDFA {
		return nil, fmt.Errorf("use either --to-nfa or --to-dfa, not both")
	}
	e, ok := m.(*automata.NFAE)
	if !ok {
		return nil, fmt.Errorf("conversion flags require an nfa-e input")
	}
	if *flagToNFA {
		return e.ToNFA()
	}
	return e.ToDFA()
}
