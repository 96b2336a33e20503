package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// an NFA accepting strings that reach q_accept through the b-b tail:
// q2 forks on b between looping back to q0 and advancing.
func newForkNFA(t *testing.T) *NFA {
	t.Helper()
	n, err := NewNFA(
		[]State{"q0", "q1", "q2", "q_mid", "q_accept"},
		[]Symbol{"a", "b"},
		Transitions{
			"q0":    {"b": NewStateSet("q1"), "a": NewStateSet("q2")},
			"q1":    {"a": NewStateSet("q2")},
			"q2":    {"b": NewStateSet("q0", "q_mid")},
			"q_mid": {"b": NewStateSet("q_accept"), "a": NewStateSet("q2")},
		},
		"q0",
		[]State{"q_accept"},
	)
	require.NoError(t, err)
	return n
}

func Test_NFA_Accepts(t *testing.T) {
	testCases := []struct {
		input  string
		expect bool
	}{
		{input: "abb", expect: true},
		{input: "babb", expect: true},
		{input: "aaa", expect: false},
		{input: "", expect: false},
		{input: "ab", expect: false},
		{input: "abab", expect: false},
	}

	n := newForkNFA(t)
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			actual, err := n.AcceptsString(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, actual)
		})
	}
}

func Test_NFA_Accepts_unknownSymbol(t *testing.T) {
	n := newForkNFA(t)
	_, err := n.AcceptsString("abc")
	assert.ErrorIs(t, err, ErrUnknownSymbol)
}

func Test_NFA_Accepts_emptySetStillValidatesInput(t *testing.T) {
	require := require.New(t)

	n := newForkNFA(t)

	// after "aa" no state remains, yet the rest of the input is still
	// checked against the alphabet
	ok, err := n.AcceptsString("aab")
	require.NoError(err)
	require.False(ok)

	_, err = n.AcceptsString("aac")
	require.ErrorIs(err, ErrUnknownSymbol)
}

func Test_NFA_emptyInputAcceptedIffStartAccepts(t *testing.T) {
	require := require.New(t)

	n, err := NewNFA(
		[]State{"q0", "q1"},
		[]Symbol{"a"},
		Transitions{
			"q0": {"a": NewStateSet("q0", "q1")},
		},
		"q0",
		[]State{"q0"},
	)
	require.NoError(err)

	ok, err := n.AcceptsString("")
	require.NoError(err)
	require.True(ok)
}
