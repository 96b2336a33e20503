package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// an NFA-ε where the start state spontaneously reaches q1, and q2
// spontaneously reaches q3 on the way to the accept state.
func newChainNFAE(t *testing.T) *NFAE {
	t.Helper()
	n, err := NewNFAE(
		[]State{"q0", "q1", "q2", "q3", "q_accept"},
		[]Symbol{"a", "b"},
		Transitions{
			"q0": {Epsilon: NewStateSet("q1"), "a": NewStateSet("q2")},
			"q1": {"b": NewStateSet("q2")},
			"q2": {Epsilon: NewStateSet("q3")},
			"q3": {"a": NewStateSet("q_accept")},
		},
		"q0",
		[]State{"q_accept"},
	)
	require.NoError(t, err)
	return n
}

// an NFA-ε whose epsilon elimination stays fully reachable: the start
// state keeps a non-epsilon self loop.
func newLoopNFAE(t *testing.T) *NFAE {
	t.Helper()
	n, err := NewNFAE(
		[]State{"q0", "q1", "q2"},
		[]Symbol{"a", "b"},
		Transitions{
			"q0": {"a": NewStateSet("q0"), Epsilon: NewStateSet("q1")},
			"q1": {"b": NewStateSet("q2")},
			"q2": {"a": NewStateSet("q1")},
		},
		"q0",
		[]State{"q2"},
	)
	require.NoError(t, err)
	return n
}

func Test_NFAE_Accepts(t *testing.T) {
	testCases := []struct {
		input  string
		expect bool
	}{
		{input: "ba", expect: true},
		{input: "aa", expect: true},
		{input: "bb", expect: false},
		{input: "b", expect: false},
		{input: "baa", expect: false},
		{input: "", expect: false},
	}

	n := newChainNFAE(t)
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			actual, err := n.AcceptsString(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, actual)
		})
	}
}

func Test_NFAE_Accepts_unknownSymbol(t *testing.T) {
	n := newChainNFAE(t)
	_, err := n.AcceptsString("bac")
	assert.ErrorIs(t, err, ErrUnknownSymbol)
}

func Test_NFAE_emptyInputFollowsEpsilon(t *testing.T) {
	require := require.New(t)

	n, err := NewNFAE(
		[]State{"q0", "q1", "q_accept"},
		[]Symbol{"a", "b"},
		Transitions{
			"q0": {Epsilon: NewStateSet("q1")},
			"q1": {Epsilon: NewStateSet("q_accept")},
		},
		"q0",
		[]State{"q_accept"},
	)
	require.NoError(err)

	ok, err := n.AcceptsString("")
	require.NoError(err)
	require.True(ok)
}

func Test_NFAE_EpsilonClosure(t *testing.T) {
	assert := assert.New(t)

	n := newChainNFAE(t)
	assert.Equal([]State{"q0", "q1"}, n.EpsilonClosure("q0"))
	assert.Equal([]State{"q2", "q3"}, n.EpsilonClosure("q2"))
	assert.Equal([]State{"q_accept"}, n.EpsilonClosure("q_accept"))
	assert.Equal([]State{"q0", "q1", "q2", "q3"}, n.EpsilonClosure("q0", "q2"))
}

func Test_NFAE_EpsilonClosure_idempotent(t *testing.T) {
	assert := assert.New(t)

	n := newChainNFAE(t)
	for _, s := range n.States() {
		once := n.EpsilonClosure(s)
		assert.Equal(once, n.EpsilonClosure(once...))
	}
}

// all strings over alphabet up to length max, empty string included
func allStrings(alphabet []Symbol, max int) []string {
	out := []string{""}
	prev := []string{""}
	for i := 0; i < max; i++ {
		var next []string
		for _, p := range prev {
			for _, sym := range alphabet {
				next = append(next, p+string(sym))
			}
		}
		out = append(out, next...)
		prev = next
	}
	return out
}

func Test_NFAE_conversionsPreserveLanguage(t *testing.T) {
	require := require.New(t)

	e := newLoopNFAE(t)
	n, err := e.ToNFA()
	require.NoError(err)
	d, err := e.ToDFA()
	require.NoError(err)

	for _, w := range allStrings(e.Alphabet(), 4) {
		want, err := e.AcceptsString(w)
		require.NoError(err)

		fromNFA, err := n.AcceptsString(w)
		require.NoError(err)
		require.Equal(want, fromNFA, "NFA disagrees on %q", w)

		fromDFA, err := d.AcceptsString(w)
		require.NoError(err)
		require.Equal(want, fromDFA, "DFA disagrees on %q", w)
	}
}

func Test_NFAE_ToNFA(t *testing.T) {
	require := require.New(t)

	e := newLoopNFAE(t)
	n, err := e.ToNFA()
	require.NoError(err)

	snap := n.Snapshot()
	require.Equal(e.States(), snap.States)
	require.Equal([]Symbol{"a", "b"}, snap.Alphabet)
	require.Equal([]State{"q2"}, snap.Accept)
	// q0 inherits q1's b-transition through the closure, and no
	// epsilon edge survives
	require.Equal([]Transition{
		{From: "q0", Input: "a", To: "q0"},
		{From: "q0", Input: "b", To: "q2"},
		{From: "q1", Input: "b", To: "q2"},
		{From: "q2", Input: "a", To: "q1"},
	}, snap.Transitions)
}

func Test_NFAE_ToNFA_resultIsRevalidated(t *testing.T) {
	require := require.New(t)

	// held together purely by epsilon transitions: after elimination
	// nothing reaches q1 or q_accept, and the validator says so
	e, err := NewNFAE(
		[]State{"q0", "q1", "q_accept"},
		[]Symbol{"a", "b"},
		Transitions{
			"q0": {Epsilon: NewStateSet("q1")},
			"q1": {Epsilon: NewStateSet("q_accept")},
		},
		"q0",
		[]State{"q_accept"},
	)
	require.NoError(err)

	n, err := e.ToNFA()
	require.ErrorIs(err, ErrUnreachableState)
	require.Nil(n)
}

func Test_NFAE_ToDFA(t *testing.T) {
	require := require.New(t)

	e := newLoopNFAE(t)
	d, err := e.ToDFA()
	require.NoError(err)

	snap := d.Snapshot()
	require.Equal(State("{q0,q1}"), snap.Start)

	// determinism by construction: one destination per (state, symbol)
	type key struct {
		from State
		sym  Symbol
	}
	seen := map[key]int{}
	for _, tr := range snap.Transitions {
		seen[key{tr.From, tr.Input}]++
		require.LessOrEqual(seen[key{tr.From, tr.Input}], 1)
	}
}

func Test_NFAE_ToDFA_compositeStatesDedupedByValue(t *testing.T) {
	require := require.New(t)

	// both branches of the start fork converge on the same member set;
	// subset construction must produce one composite state for it
	e, err := NewNFAE(
		[]State{"q0", "q1", "q2"},
		[]Symbol{"a"},
		Transitions{
			"q0": {"a": NewStateSet("q1", "q2")},
			"q1": {"a": NewStateSet("q1", "q2")},
			"q2": {"a": NewStateSet("q2", "q1")},
		},
		"q0",
		[]State{"q2"},
	)
	require.NoError(err)

	d, err := e.ToDFA()
	require.NoError(err)
	require.Equal([]State{"{q0}", "{q1,q2}"}, d.States())
}

func Test_NFAE_conversionsDoNotMutateSource(t *testing.T) {
	require := require.New(t)

	e := newLoopNFAE(t)
	before := e.Snapshot()

	_, err := e.ToNFA()
	require.NoError(err)
	_, err = e.ToDFA()
	require.NoError(err)

	require.Equal(before, e.Snapshot())
}
