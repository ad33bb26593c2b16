package ahocorasick

import (
	"fmt"

	"github.com/endorses/acsig/internal/logger"
)

// AddPattern inserts one pattern's anchor tokens into the trie, creating
// states as needed and attaching a match descriptor (pattern + backtrack)
// at each token's terminal state. It returns the shortest token length
// emitted for this pattern (0 if the pattern degraded to a root-anchored
// match because it had no usable literal prefix), and an error only when
// a bounded arena has no room left.
//
// AddPattern panics if called after CreateFailureLinks: once failure links
// exist the automaton is frozen and read-only.
func (a *Automaton) AddPattern(p *Pattern) (int, error) {
	if a.built {
		panic("ahocorasick: AddPattern called on a frozen automaton")
	}

	tokens := generateTokens(p, a.cfg)

	if len(tokens) == 0 {
		logger.Debug("pattern anchored at root, no usable token", "pattern", p.ID)
		if err := a.prependMatch(RootState, p, 0); err != nil {
			return 0, err
		}
		a.updateMinTokenLength(0)
		return 0, nil
	}

	minLen := a.cfg.MaxToken
	for _, t := range tokens {
		terminal, err := a.insertToken(t.bytes)
		if err != nil {
			return 0, err
		}
		backtrack := int32(a.depthOf(terminal)) + t.backtrack
		if err := a.prependMatch(terminal, p, backtrack); err != nil {
			return 0, err
		}
		if len(t.bytes) < minLen {
			minLen = len(t.bytes)
		}
	}

	a.updateMinTokenLength(minLen)
	return minLen, nil
}

func (a *Automaton) updateMinTokenLength(n int) {
	if n < a.minTokenLength {
		a.minTokenLength = n
	}
}

// insertToken walks (creating states as needed) the path spelled out by
// bytes starting at the root, returning the terminal state.
func (a *Automaton) insertToken(bytes []byte) (StateID, error) {
	current := RootState
	for _, b := range bytes {
		next := a.NextState(current, b)
		if next == NoState {
			created, err := a.createState(current, b)
			if err != nil {
				return NoState, fmt.Errorf("ahocorasick: inserting token: %w", err)
			}
			next = created
		}
		current = next
	}
	return current, nil
}
