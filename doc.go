// Package ahocorasick implements the multi-pattern matching core of a
// signature-matching engine: an Aho-Corasick automaton specialized for
// scanning binary data against literal, case-insensitive, wide, hex-wildcard
// and regular-expression patterns.
//
// The package builds an automaton from a set of Pattern values, extracting a
// short anchor token from each one, inserting the tokens into a shared trie,
// and computing failure links so the trie can be walked one byte at a time.
// Verifying that a candidate match is real (re-checking a hex mask, running
// a regex, re-checking case) is left to the caller; this package exposes
// only the pure state-transition step and the match descriptors attached to
// each state.
package ahocorasick
