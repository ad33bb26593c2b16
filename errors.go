package ahocorasick

import "github.com/endorses/acsig/arena"

// ErrArenaCapacityExceeded is returned by AddPattern when a bounded arena
// (see Config.MaxStates, MaxTransitions, MaxMatches) has no room left for a
// new state, transition, or match. States and matches inserted by earlier
// AddPattern calls remain valid; the automaton simply has not finished
// growing. This stands in for the OutOfMemory error kind of a systems-level
// implementation, where allocation failure is a recoverable, tested-for
// condition rather than a Go runtime panic.
//
// It is an alias for arena.ErrCapacityExceeded so callers can match on
// either name; the arena package cannot reference this one without an
// import cycle, so the alias lives here instead.
var ErrArenaCapacityExceeded = arena.ErrCapacityExceeded
