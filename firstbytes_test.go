package ahocorasick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFirstBytesLiteral(t *testing.T) {
	re := mustParseRegex(t, "abc")
	bytes := GetFirstBytes(re)
	assert.Equal(t, []byte{'a'}, bytes)
}

func TestGetFirstBytesAlternation(t *testing.T) {
	re := mustParseRegex(t, "cat|dog")
	bytes := GetFirstBytes(re)
	assert.ElementsMatch(t, []byte{'c', 'd'}, bytes)
}

func TestGetFirstBytesCharClass(t *testing.T) {
	re := mustParseRegex(t, "[a-c]foo")
	bytes := GetFirstBytes(re)
	assert.ElementsMatch(t, []byte{'a', 'b', 'c'}, bytes)
}

func TestGetFirstBytesNullablePrefixIncludesNextElement(t *testing.T) {
	re := mustParseRegex(t, "a*bc")
	// "a*bc" can start matching at 'b' without ever seeing 'a', so a
	// first-byte set that only contains 'a' would be a lie; because the
	// star is skippable, collectFirstBytes continues to the next element,
	// so the set ends up complete and contains both.
	bytes := GetFirstBytes(re)
	assert.ElementsMatch(t, []byte{'a', 'b'}, bytes)
}

func TestGetFirstBytesNilRegex(t *testing.T) {
	assert.Nil(t, GetFirstBytes(nil))
}
