package ahocorasick

// genRegexpTokens walks a regex pattern's source looking for a literal
// prefix it can use as an anchor, stopping at the first metacharacter, the
// first escape it does not recognize as a literal escape, or the first
// character whose repeat count is unknown (it is immediately followed by a
// quantifier). When no literal prefix exists at all it falls back to
// GetFirstBytes, emitting one single-byte, backtrack-0 token per possible
// first byte.
func genRegexpTokens(p *Pattern, cfg Config) []token {
	src := p.Bytes
	i := 0
	if len(src) > 0 && src[0] == '^' {
		i = 1
	}

	lit := make([]byte, 0, cfg.MaxToken)
	for i < len(src) && len(lit) < cfg.MaxToken {
		var c byte
		if src[i] == '\\' {
			if i+1 >= len(src) || !isRegexEscapable(src[i+1]) {
				break
			}
			c = src[i+1]
			i += 2
		} else {
			if !isRegexHashable(src[i]) {
				break
			}
			c = src[i]
			i++
		}
		if i < len(src) && isQuantifier(src[i]) {
			break
		}
		lit = append(lit, c)
	}

	if len(lit) > 0 {
		base := token{bytes: lit, backtrack: 0}
		out := []token{base}
		if p.isNoCase() {
			out = append(out, caseVariants(base)...)
		}
		return out
	}

	firstBytes := GetFirstBytes(p.Regex)
	out := make([]token, 0, len(firstBytes))
	for _, b := range firstBytes {
		out = append(out, token{bytes: []byte{b}, backtrack: 0})
	}
	return out
}

// isQuantifier reports whether c makes the presence of the character it
// follows uncertain. '+' is deliberately excluded: it guarantees at least
// one occurrence of the preceding character, so that character is still
// safe to fold into a literal anchor.
func isQuantifier(c byte) bool {
	return c == '*' || c == '?' || c == '{'
}

func isRegexMeta(c byte) bool {
	switch c {
	case '.', '*', '+', '?', '(', ')', '[', ']', '{', '}', '|', '^', '$', '\\':
		return true
	}
	return false
}

// isRegexHashable reports whether c can be folded directly into a literal
// anchor token when it appears unescaped.
func isRegexHashable(c byte) bool {
	return !isRegexMeta(c)
}

// isRegexEscapable reports whether c is a character that, when preceded
// by a backslash, denotes itself literally rather than a character class
// shorthand (\d, \w, \s, ...) or some other non-literal escape.
func isRegexEscapable(c byte) bool {
	return isRegexMeta(c) || c == '/' || c == '-'
}
