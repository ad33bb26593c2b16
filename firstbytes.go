package ahocorasick

import (
	"regexp/syntax"
	"unicode"
	"unicode/utf8"
)

// GetFirstBytes enumerates the set of bytes a regex could possibly start
// matching with, used as the token generator's fallback when a regex has
// no usable literal prefix (e.g. it starts with a character class or a
// quantified group). It returns nil when the regex can match the empty
// string at its start, as in ".*", in which case the caller degrades the
// pattern to a root-anchored match rather than guessing. A leading "." or
// a very wide character class contributes every byte value. Adapted from the first-byte-set extraction
// used by the regex literal-prefix analysis in the coregx-coregex pack
// member's nfa package, simplified to the byte (not rune) granularity this
// automaton operates at.
func GetFirstBytes(re *syntax.Regexp) []byte {
	if re == nil {
		return nil
	}
	set := map[byte]bool{}
	if !collectFirstBytes(re, set) {
		return nil
	}
	if len(set) == 0 {
		return nil
	}
	out := make([]byte, 0, len(set))
	for b := range set {
		out = append(out, b)
	}
	return out
}

// collectFirstBytes adds every possible first byte of re into set and
// reports whether the set is complete (false means "could also match
// nothing here", i.e. re is nullable and the caller cannot trust the set
// in isolation).
func collectFirstBytes(re *syntax.Regexp, set map[byte]bool) bool {
	switch re.Op {
	case syntax.OpLiteral:
		if len(re.Rune) == 0 {
			return false
		}
		addRuneBytes(re.Rune[0], set)
		if re.Flags&syntax.FoldCase != 0 {
			for f := unicode.SimpleFold(re.Rune[0]); f != re.Rune[0]; f = unicode.SimpleFold(f) {
				addRuneBytes(f, set)
			}
		}
		return true

	case syntax.OpCharClass:
		for i := 0; i+1 < len(re.Rune); i += 2 {
			lo, hi := re.Rune[i], re.Rune[i+1]
			if hi-lo > 255 {
				// Pathologically wide class: rather than enumerate tens of
				// thousands of runes, take every byte value, a superset of
				// the real first bytes.
				for c := 0; c < 256; c++ {
					set[byte(c)] = true
				}
				return true
			}
			for r := lo; r <= hi; r++ {
				addRuneBytes(r, set)
			}
		}
		return len(re.Rune) > 0

	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		// Exactly one character of any value: every byte value is a
		// candidate, and the sub-expression is not nullable.
		for c := 0; c < 256; c++ {
			set[byte(c)] = true
		}
		return true

	case syntax.OpCapture:
		if len(re.Sub) == 0 {
			return false
		}
		return collectFirstBytes(re.Sub[0], set)

	case syntax.OpConcat:
		for _, sub := range re.Sub {
			complete := collectFirstBytes(sub, set)
			if complete {
				return true
			}
			// sub can match empty at this position; its own first bytes
			// are still valid candidates, but we must also see what
			// follows before declaring the set complete.
		}
		return false

	case syntax.OpAlternate:
		allComplete := true
		for _, sub := range re.Sub {
			if !collectFirstBytes(sub, set) {
				allComplete = false
			}
		}
		return allComplete

	case syntax.OpPlus:
		if len(re.Sub) == 0 {
			return false
		}
		return collectFirstBytes(re.Sub[0], set)

	case syntax.OpRepeat:
		if len(re.Sub) == 0 {
			return false
		}
		complete := collectFirstBytes(re.Sub[0], set)
		return complete && re.Min > 0

	case syntax.OpStar, syntax.OpQuest:
		if len(re.Sub) > 0 {
			collectFirstBytes(re.Sub[0], set)
		}
		return false

	case syntax.OpBeginText, syntax.OpBeginLine, syntax.OpEmptyMatch,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return false

	default:
		return false
	}
}

func addRuneBytes(r rune, set map[byte]bool) {
	if r < 0x80 {
		set[byte(r)] = true
		return
	}
	// Multi-byte UTF-8 encodings: only the leading byte is a useful
	// anchor candidate at this granularity.
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, r)
	if n > 0 {
		set[buf[0]] = true
	}
}
