package ahocorasick

import (
	"github.com/endorses/acsig/arena"
	"github.com/endorses/acsig/internal/logger"
)

// CreateFailureLinks computes the failure link of every state via a BFS
// over the trie and collapses each state's match list with the match
// list reachable through its failure link, so a scanner never needs to
// walk failure links at scan time to gather matches.
//
// Two details deliberately diverge from the original C implementation,
// both resolved the way the design this automaton follows instructs:
//
//  1. The probe that looks for a transition out of an ancestor along the
//     failure chain must use the actual byte that labels the edge being
//     resolved. This is threaded explicitly through the BFS here; the
//     original source read a stray loop variable at the equivalent site
//     instead of the edge byte, which is a bug, not a convention to
//     preserve.
//  2. A state's failure target's matches are chained onto the end of the
//     state's own matches unconditionally, regardless of whether the
//     state's own matches have a zero backtrack. The original only chained when backtrack was
//     greater than zero, silently dropping root-level zero-backtrack
//     matches from inheritance; this implementation always chains.
//
// CreateFailureLinks may be called exactly once; calling it again panics,
// as does any subsequent call to AddPattern.
func (a *Automaton) CreateFailureLinks() {
	if a.built {
		panic("ahocorasick: CreateFailureLinks called more than once")
	}

	var queue []StateID

	// Depth-1 states always fail to the root; this is the base case the
	// generic probe below cannot handle (probing root with the edge byte
	// that created the child would just find the child itself).
	it := a.firstChild(RootState)
	for {
		b, child, ok := it.next()
		if !ok {
			break
		}
		_ = b
		a.states.Get(arena.Ref(child)).failure = RootState
		a.chainMatches(child, RootState)
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		cit := a.firstChild(s)
		for {
			b, child, ok := cit.next()
			if !ok {
				break
			}
			queue = append(queue, child)

			target := a.probeFailure(s, b)
			a.states.Get(arena.Ref(child)).failure = target
			a.chainMatches(child, target)
		}
	}

	a.built = true
	logger.Info("automaton build complete",
		"states", a.states.Len(),
		"transitions", a.transitions.Len(),
		"matches", a.matches.Len(),
	)
}

// probeFailure finds the state that a transition on byte b from state s's
// own failure chain lands on, falling back to the root. b is always the
// literal edge byte that leads from s to the child whose failure link is
// being resolved.
func (a *Automaton) probeFailure(s StateID, b byte) StateID {
	failureState := a.states.Get(arena.Ref(s)).failure
	for {
		if next := a.NextState(failureState, b); next != NoState {
			return next
		}
		if failureState == RootState {
			return RootState
		}
		failureState = a.states.Get(arena.Ref(failureState)).failure
	}
}

// chainMatches appends target's (already-collapsed) match list to the end
// of child's own match list. Because the BFS processes states in
// increasing depth order and a state's failure target is always shallower,
// target's match list is already fully collapsed by the time this runs.
func (a *Automaton) chainMatches(child, target StateID) {
	childState := a.states.Get(arena.Ref(child))
	targetMatches := a.states.Get(arena.Ref(target)).matches

	if childState.matches == noMatch {
		childState.matches = targetMatches
		return
	}

	ref := childState.matches
	for {
		node := a.matches.Get(ref)
		if node.next == noMatch {
			node.next = targetMatches
			return
		}
		ref = node.next
	}
}
