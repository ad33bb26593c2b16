package ahocorasick

import "github.com/endorses/acsig/arena"

// StateID is a stable index into an Automaton's state arena, used wherever
// a systems-level implementation would use a raw pointer. NoState is the
// "no such state" sentinel used in place of a null pointer.
type StateID int32

// NoState represents the absence of a state, e.g. the result of NextState
// when no transition exists.
const NoState StateID = -1

// RootState is always the first state allocated by NewAutomaton.
const RootState StateID = 0

// denseTable is the 256-slot transition table backing a shallow state.
type denseTable [256]StateID

// transID indexes into an automaton's transition arena.
type transID = arena.Ref

const noTrans = arena.NoRef

// transitionNode is one link in a sparse state's transition list.
type transitionNode struct {
	b    byte
	next StateID
	link transID
}

// state is the logical header shared by every node regardless of physical
// shape. dense >= 0 selects a row in the automaton's dense-table arena;
// dense == arena.NoRef means this state is sparse and sparseHead is the
// head of its transition list.
type state struct {
	depth      uint32
	failure    StateID
	matches    matchID
	dense      arena.Ref
	sparseHead transID
}

// NextState is the pure transition function a scanner drives one input
// byte at a time. It performs no failure-link fallback; that loop belongs
// to the scanner.
func (a *Automaton) NextState(id StateID, b byte) StateID {
	s := a.states.Get(arena.Ref(id))
	if s.dense != arena.NoRef {
		table := a.denseTables.Get(s.dense)
		return table[b]
	}
	for ref := s.sparseHead; ref != noTrans; {
		node := a.transitions.Get(ref)
		if node.b == b {
			return node.next
		}
		ref = node.link
	}
	return NoState
}

func (a *Automaton) isDense(id StateID) bool {
	return a.states.Get(arena.Ref(id)).dense != arena.NoRef
}

func (a *Automaton) depthOf(id StateID) uint32 {
	return a.states.Get(arena.Ref(id)).depth
}

// createState allocates a new child of parent reached via byte b, wiring
// the transition into parent's table or list as appropriate for parent's
// shape, and returns the new state's id.
func (a *Automaton) createState(parent StateID, b byte) (StateID, error) {
	parentState := a.states.Get(arena.Ref(parent))
	depth := parentState.depth + 1

	ref, row, err := a.states.Allocate()
	if err != nil {
		return NoState, err
	}
	newID := StateID(ref)
	row.failure = RootState
	row.matches = noMatch

	if depth <= a.cfg.MaxTableBasedStatesDepth {
		tref, table, err := a.denseTables.Allocate()
		if err != nil {
			return NoState, err
		}
		fillNoState(table)
		row.dense = tref
	} else {
		row.dense = arena.NoRef
		row.sparseHead = noTrans
	}
	row.depth = depth

	// Re-fetch parentState: allocating from a's arenas above may have
	// grown the states or dense-table backing slices and invalidated the
	// pointer obtained before those calls.
	parentState = a.states.Get(arena.Ref(parent))
	if parentState.dense != arena.NoRef {
		table := a.denseTables.Get(parentState.dense)
		table[b] = newID
	} else {
		tref, node, err := a.transitions.Allocate()
		if err != nil {
			return NoState, err
		}
		node.b = b
		node.next = newID
		node.link = parentState.sparseHead
		parentState.sparseHead = tref
	}

	return newID, nil
}

// childIter walks a state's outgoing transitions regardless of its
// physical shape, mirroring the original implementation's opaque
// first-child/next-child cursor.
type childIter struct {
	a     *Automaton
	dense bool
	table *denseTable
	idx   int
	ref   transID
}

func (a *Automaton) firstChild(id StateID) childIter {
	s := a.states.Get(arena.Ref(id))
	if s.dense != arena.NoRef {
		return childIter{a: a, dense: true, table: a.denseTables.Get(s.dense), idx: 0}
	}
	return childIter{a: a, dense: false, ref: s.sparseHead}
}

// next returns the next (byte, child) pair and true, or false when
// exhausted.
func (it *childIter) next() (byte, StateID, bool) {
	if it.dense {
		for ; it.idx < 256; it.idx++ {
			if (*it.table)[it.idx] != NoState {
				b := byte(it.idx)
				child := (*it.table)[it.idx]
				it.idx++
				return b, child, true
			}
		}
		return 0, NoState, false
	}
	if it.ref == noTrans {
		return 0, NoState, false
	}
	node := it.a.transitions.Get(it.ref)
	it.ref = node.link
	return node.b, node.next, true
}

