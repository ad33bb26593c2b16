package ahocorasick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPatternLiteralAttachesMatchAtTerminal(t *testing.T) {
	a := NewAutomaton(DefaultConfig())
	p := &Pattern{ID: 1, Bytes: []byte("needle"), Flags: FlagASCII}

	minLen, err := a.AddPattern(p)
	require.NoError(t, err)
	assert.Equal(t, 4, minLen) // truncated to MaxToken

	terminal := walkPath(t, a, "need")
	matches := a.MatchesAt(terminal)
	require.Len(t, matches, 1)
	assert.Equal(t, p, matches[0].Pattern)
	assert.Equal(t, int32(4), matches[0].Backtrack) // depth 4 + token.backtrack 0
}

func TestAddPatternSharedPrefixReusesStates(t *testing.T) {
	a := NewAutomaton(DefaultConfig())
	p1 := &Pattern{ID: 1, Bytes: []byte("cat"), Flags: FlagASCII}
	p2 := &Pattern{ID: 2, Bytes: []byte("car"), Flags: FlagASCII}

	_, err := a.AddPattern(p1)
	require.NoError(t, err)
	_, err = a.AddPattern(p2)
	require.NoError(t, err)

	ca := a.NextState(RootState, 'c')
	require.NotEqual(t, NoState, ca)
	// root, c, ca, cat, car: the "ca" prefix exists once, not twice.
	assert.Equal(t, 5, a.states.Len(), "inserting a second pattern sharing a prefix must reuse the existing path")
}

func TestAddPatternZeroTokenDegradesToRoot(t *testing.T) {
	a := NewAutomaton(DefaultConfig())
	p := &Pattern{ID: 9, Flags: FlagRegexp, Regex: mustParseRegex(t, ".*"), Bytes: []byte(".*")}

	minLen, err := a.AddPattern(p)
	require.NoError(t, err)
	assert.Equal(t, 0, minLen)

	matches := a.MatchesAt(RootState)
	require.Len(t, matches, 1)
	assert.Equal(t, p, matches[0].Pattern)
	assert.Equal(t, int32(0), matches[0].Backtrack)
}

func TestAddPatternSamePatternTwiceProducesTwoMatches(t *testing.T) {
	a := NewAutomaton(DefaultConfig())
	p := &Pattern{ID: 1, Bytes: []byte("dup"), Flags: FlagASCII}

	_, err := a.AddPattern(p)
	require.NoError(t, err)
	_, err = a.AddPattern(p)
	require.NoError(t, err)

	terminal := walkPath(t, a, "dup")
	matches := a.MatchesAt(terminal)
	require.Len(t, matches, 2)
	assert.Equal(t, p, matches[0].Pattern)
	assert.Equal(t, p, matches[1].Pattern)
}

func TestAddPatternAfterFreezePanics(t *testing.T) {
	a := NewAutomaton(DefaultConfig())
	a.CreateFailureLinks()

	assert.Panics(t, func() {
		_, _ = a.AddPattern(&Pattern{ID: 1, Bytes: []byte("x"), Flags: FlagASCII})
	})
}

// walkPath follows bytes from the root, failing the test if any edge is
// missing.
func walkPath(t *testing.T, a *Automaton, bytes string) StateID {
	t.Helper()
	current := RootState
	for _, b := range []byte(bytes) {
		next := a.NextState(current, b)
		require.NotEqual(t, NoState, next, "missing edge for byte %q", b)
		current = next
	}
	return current
}
