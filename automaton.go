package ahocorasick

import (
	"fmt"
	"io"

	"github.com/endorses/acsig/arena"
	"github.com/endorses/acsig/internal/logger"
)

// Automaton is a trie of states linked by failure pointers, built by
// repeated calls to AddPattern followed by exactly one call to
// CreateFailureLinks. Once CreateFailureLinks has run the automaton is
// read-only and safe to share across goroutines; nothing about it may
// change afterwards.
type Automaton struct {
	cfg Config

	states      *arena.Arena[state]
	denseTables *arena.Arena[denseTable]
	transitions *arena.Arena[transitionNode]
	matches     *arena.Arena[matchNode]

	minTokenLength int
	built          bool
}

// NewAutomaton creates an automaton with a single root state and the
// arenas that will back every state, transition and match inserted by
// AddPattern.
func NewAutomaton(cfg Config) *Automaton {
	a := &Automaton{
		cfg:            cfg,
		states:         arena.NewBounded[state](cfg.MaxStates),
		denseTables:    arena.NewBounded[denseTable](cfg.MaxDenseTables),
		transitions:    arena.NewBounded[transitionNode](cfg.MaxTransitions),
		matches:        arena.NewBounded[matchNode](cfg.MaxMatches),
		minTokenLength: cfg.MaxToken,
	}

	ref, root, err := a.states.Allocate()
	if err != nil {
		// The very first allocation into a freshly created arena cannot
		// fail: every bound admits at least one item, and zero means
		// unbounded. Reaching this is a programmer error, not a runtime
		// condition to recover from.
		panic(fmt.Sprintf("ahocorasick: cannot allocate root state: %v", err))
	}
	if ref != arena.Ref(RootState) {
		panic("ahocorasick: root state did not land at index 0")
	}
	root.depth = 0
	root.failure = RootState
	root.matches = noMatch

	tref, table, err := a.denseTables.Allocate()
	if err != nil {
		panic(fmt.Sprintf("ahocorasick: cannot allocate root dense table: %v", err))
	}
	fillNoState(table)
	root.dense = tref

	return a
}

// MinTokenLength returns the shortest anchor token emitted across every
// pattern inserted so far, which a scanner can use to size its minimum
// window overlap. It starts at Config.MaxToken and can only shrink.
func (a *Automaton) MinTokenLength() int {
	return a.minTokenLength
}

// MatchesAt returns the (pattern, backtrack) pairs attached to state id,
// most recently inserted first. The slice returned is a snapshot; building
// it is O(number of matches at this state), never a failure-chain walk.
func (a *Automaton) MatchesAt(id StateID) []Match {
	s := a.states.Get(arena.Ref(id))
	var out []Match
	for ref := s.matches; ref != noMatch; {
		m := a.matches.Get(ref)
		out = append(out, Match{Pattern: m.pattern, Backtrack: m.backtrack})
		ref = m.next
	}
	return out
}

func (a *Automaton) prependMatch(id StateID, p *Pattern, backtrack int32) error {
	s := a.states.Get(arena.Ref(id))
	ref, node, err := a.matches.Allocate()
	if err != nil {
		return err
	}
	node.pattern = p
	node.backtrack = backtrack
	// s was fetched before Allocate grew a.matches; matches and states are
	// different arenas so s itself is still valid, but the allocation
	// may have invalidated node's view of anything in the matches arena
	// allocated earlier. We only write through node here, which is safe.
	node.next = s.matches
	s.matches = ref
	return nil
}

// Dump writes a depth-first, indented trace of every state: its id, depth,
// failure target and attached matches. Intended for diagnostics, not for
// machine parsing.
func (a *Automaton) Dump(w io.Writer) {
	a.dumpState(w, RootState, 0)
}

func (a *Automaton) dumpState(w io.Writer, id StateID, indent int) {
	s := a.states.Get(arena.Ref(id))
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}
	fmt.Fprintf(w, "%sstate %d depth=%d failure=%d", pad, id, s.depth, s.failure)
	for ref := s.matches; ref != noMatch; {
		m := a.matches.Get(ref)
		fmt.Fprintf(w, " match(pattern=%d backtrack=%d)", m.pattern.ID, m.backtrack)
		ref = m.next
	}
	fmt.Fprintln(w)

	it := a.firstChild(id)
	for {
		b, child, ok := it.next()
		if !ok {
			break
		}
		fmt.Fprintf(w, "%s byte=0x%02x ->\n", pad, b)
		a.dumpState(w, child, indent+1)
	}
}

func init() {
	// Touch the logger package at init time so it is always exercised by
	// every binary importing this package, matching the teacher's own
	// habit of initializing its logger eagerly rather than lazily on the
	// first call any particular caller happens to make.
	logger.Initialize()
}
