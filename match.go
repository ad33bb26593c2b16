package ahocorasick

import "github.com/endorses/acsig/arena"

// matchID indexes into an automaton's match arena. noMatch means "empty
// list".
type matchID = arena.Ref

const noMatch = arena.NoRef

// matchNode is one link in a state's singly linked match list.
type matchNode struct {
	pattern   *Pattern
	backtrack int32
	next      matchID
}

// Match describes one pattern anchored at a state, exposed to callers
// walking the results of Automaton.MatchesAt.
type Match struct {
	Pattern   *Pattern
	Backtrack int32
}
