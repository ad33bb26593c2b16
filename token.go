package ahocorasick

// token is an anchor candidate emitted by the token generator: a short run
// of bytes together with the distance (backtrack) from its first byte back
// to the true start of the pattern it anchors. This is the idiomatic-Go
// replacement for a self-describing flat byte buffer: a plain slice already
// knows its own length and needs no terminator record.
type token struct {
	bytes     []byte
	backtrack int32
}

// generateTokens dispatches to the token generator appropriate for p's
// flags. For a text pattern the returned slice is pre-sized to the worst
// case (2 * 2^MaxToken: ASCII and wide, each with every case permutation)
// so appending never has to grow it.
func generateTokens(p *Pattern, cfg Config) []token {
	switch {
	case p.isHex():
		return genHexTokens(p, cfg)
	case p.isRegexp():
		return genRegexpTokens(p, cfg)
	default:
		return genTextTokens(p, cfg)
	}
}
