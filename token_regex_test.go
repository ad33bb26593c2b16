package ahocorasick

import (
	"regexp/syntax"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseRegex(t *testing.T, src string) *syntax.Regexp {
	t.Helper()
	re, err := syntax.Parse(src, syntax.Perl)
	require.NoError(t, err)
	return re
}

func TestGenRegexpTokensLiteralPrefix(t *testing.T) {
	p := &Pattern{Bytes: []byte("abc.*"), Flags: FlagRegexp, Regex: mustParseRegex(t, "abc.*")}
	tokens := genRegexpTokens(p, DefaultConfig())
	require.Len(t, tokens, 1)
	assert.Equal(t, []byte("abc"), tokens[0].bytes)
	assert.Equal(t, int32(0), tokens[0].backtrack)
}

func TestGenRegexpTokensStripsLeadingAnchor(t *testing.T) {
	p := &Pattern{Bytes: []byte("^GET "), Flags: FlagRegexp, Regex: mustParseRegex(t, "^GET ")}
	tokens := genRegexpTokens(p, DefaultConfig())
	require.Len(t, tokens, 1)
	assert.Equal(t, []byte("GET "), tokens[0].bytes)
}

func TestGenRegexpTokensStopsAtQuantifiedChar(t *testing.T) {
	p := &Pattern{Bytes: []byte("ab*cd"), Flags: FlagRegexp, Regex: mustParseRegex(t, "ab*cd")}
	tokens := genRegexpTokens(p, DefaultConfig())
	require.Len(t, tokens, 1)
	assert.Equal(t, []byte("a"), tokens[0].bytes)
}

func TestGenRegexpTokensPlusKeepsPrecedingChar(t *testing.T) {
	// '+' guarantees at least one occurrence of 'b', so 'b' is still safe
	// to fold into the literal anchor, unlike '*' and '?'.
	p := &Pattern{Bytes: []byte("ab+cd"), Flags: FlagRegexp, Regex: mustParseRegex(t, "ab+cd")}
	tokens := genRegexpTokens(p, DefaultConfig())
	require.Len(t, tokens, 1)
	assert.Equal(t, []byte("ab"), tokens[0].bytes)
}

func TestGenRegexpTokensFallsBackToFirstBytes(t *testing.T) {
	p := &Pattern{Bytes: []byte("[abc]def"), Flags: FlagRegexp, Regex: mustParseRegex(t, "[abc]def")}
	tokens := genRegexpTokens(p, DefaultConfig())
	require.Len(t, tokens, 3)
	var seen []byte
	for _, tok := range tokens {
		require.Len(t, tok.bytes, 1)
		seen = append(seen, tok.bytes[0])
	}
	assert.ElementsMatch(t, []byte("abc"), seen)
}

func TestGenRegexpTokensUnanchorableDegrades(t *testing.T) {
	p := &Pattern{Bytes: []byte(".*"), Flags: FlagRegexp, Regex: mustParseRegex(t, ".*")}
	tokens := genRegexpTokens(p, DefaultConfig())
	assert.Empty(t, tokens)
}

func TestGenRegexpTokensNoCaseExpandsPrefix(t *testing.T) {
	p := &Pattern{Bytes: []byte("gE.*"), Flags: FlagRegexp | FlagNoCase, Regex: mustParseRegex(t, "gE.*")}
	tokens := genRegexpTokens(p, DefaultConfig())
	// "gE" has two letter positions -> 1 base + 3 case variants.
	assert.Len(t, tokens, 4)
}
