package ahocorasick

import "regexp/syntax"

// Flags describes the shape of a Pattern's matching semantics. ASCII and
// Wide are independent bits: a text pattern can request either, or both.
type Flags uint8

const (
	// FlagHex marks a pattern whose Bytes/Mask pair encodes a hex string
	// with optional wildcards and alternations.
	FlagHex Flags = 1 << iota
	// FlagRegexp marks a pattern whose Bytes is a regular expression source
	// and whose Regex holds its parsed syntax tree.
	FlagRegexp
	// FlagASCII requests literal-byte matching of Bytes.
	FlagASCII
	// FlagWide requests matching of Bytes with each byte interleaved with
	// a zero byte (UTF-16LE-shaped "wide" strings).
	FlagWide
	// FlagNoCase requests case-insensitive matching of ASCII letters in
	// Bytes. Never applies to FlagHex patterns.
	FlagNoCase
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }

// MaskCode is a sentinel byte used in a hex Pattern's Mask stream to encode
// wildcards, alternations and skips alongside concrete bytes.
type MaskCode = byte

const (
	// MaskConcrete marks a position in Mask whose corresponding Bytes
	// entry is a literal byte to match exactly.
	MaskConcrete MaskCode = 0xFF
	// MaskOr begins one branch of a byte alternation, e.g. hex ( 01 | 02 ).
	MaskOr MaskCode = 0x01
	// MaskOrEnd closes the alternation opened by the most recent MaskOr.
	MaskOrEnd MaskCode = 0x02
	// MaskExactSkip takes its exact skip count from the Bytes entry at the
	// same index, e.g. hex [4] meaning "skip exactly 4 arbitrary bytes".
	MaskExactSkip MaskCode = 0x03
	// MaskRangeSkip marks a bounded or unbounded skip range, e.g. [4-8]
	// or [4-]. Ends anchor-token consideration at this position.
	MaskRangeSkip MaskCode = 0x04
	// MaskEnd terminates the mask stream.
	MaskEnd MaskCode = 0x05
)

// Pattern is one entry a caller wants the automaton to recognize.
type Pattern struct {
	// ID identifies the pattern to the caller; carried through to every
	// Match produced against it.
	ID uint32

	// Bytes holds the pattern payload. For FlagHex it pairs with Mask
	// (same length, MaskConcrete positions hold the literal byte). For
	// FlagRegexp it holds the regex source text. Otherwise it is the
	// literal (or case-insensitive) string to match.
	Bytes []byte

	// Mask is the parallel mask stream for a FlagHex pattern; nil
	// otherwise.
	Mask []byte

	Flags Flags

	// Regex is the parsed syntax tree for a FlagRegexp pattern. Callers
	// are expected to have parsed it (e.g. via regexp/syntax.Parse) since
	// this package never executes a regex, only inspects its structure.
	Regex *syntax.Regexp
}

func (p *Pattern) isHex() bool    { return p.Flags.has(FlagHex) }
func (p *Pattern) isRegexp() bool { return p.Flags.has(FlagRegexp) }
func (p *Pattern) isASCII() bool  { return p.Flags.has(FlagASCII) }
func (p *Pattern) isWide() bool   { return p.Flags.has(FlagWide) }
func (p *Pattern) isNoCase() bool { return p.Flags.has(FlagNoCase) }
