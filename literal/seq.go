// Package literal provides types and operations for representing and
// manipulating literal byte sequences extracted from glob patterns.
//
// The primary use case is prefilter optimization in a globbing engine: by
// extracting the literal parts of a pattern (e.g. "src/" from "src/*.go"),
// candidate paths can be rejected cheaply before the full matcher runs.
//
// Key concepts:
//   - A Literal is a concrete byte sequence that may appear in matches
//   - A Seq is a set of alternative literals (e.g. from a class like [abc])
//   - Minimize, LongestCommonPrefix and LongestCommonSuffix help choose a
//     prefilter strategy
package literal

import (
	"bytes"
	"sort"
)

// Literal represents a literal byte sequence extracted from a glob pattern.
// The Complete flag indicates whether the literal covers the entire pattern
// (true) or only a prefix/suffix of potential matches (false).
//
// Example:
//   - Pattern "foo"      → Literal{[]byte("foo"), true}
//   - Pattern "foo*.txt" → Literal{[]byte("foo"), false} (prefix only)
type Literal struct {
	// Bytes contains the actual literal byte sequence.
	Bytes []byte

	// Complete indicates whether this literal represents the entire match.
	// If true, comparing against this literal is sufficient and no matcher
	// is needed.
	Complete bool
}

// NewLiteral creates a new Literal from the given byte sequence and
// completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a debugging representation of the literal.
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq represents a set of alternative literals extracted from one pattern.
// A pattern yields more than one literal when a small character class is
// expanded: "[ab]c" produces ["ac", "bc"].
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at the specified index.
// Panics if the index is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// AllComplete reports whether every literal in the sequence covers its
// entire pattern. An empty sequence reports false.
func (s *Seq) AllComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, lit := range s.literals {
		if !lit.Complete {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the sequence.
func (s *Seq) Clone() *Seq {
	if s == nil {
		return nil
	}
	cloned := make([]Literal, len(s.literals))
	for i, lit := range s.literals {
		cloned[i] = Literal{
			Bytes:    bytes.Clone(lit.Bytes),
			Complete: lit.Complete,
		}
	}
	return &Seq{literals: cloned}
}

// Minimize removes redundant literals from the sequence.
//
// For candidate filtering, a literal is redundant if a shorter literal in
// the sequence is a prefix of it: any haystack containing "foobar" also
// contains "foo", so keeping "foo" alone finds at least the same candidate
// positions.
//
// The sequence is sorted shortest-first as a side effect.
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}

	sort.Slice(s.literals, func(i, j int) bool {
		return len(s.literals[i].Bytes) < len(s.literals[j].Bytes)
	})

	kept := s.literals[:0]
	for _, lit := range s.literals {
		redundant := false
		for _, k := range kept {
			if bytes.HasPrefix(lit.Bytes, k.Bytes) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, lit)
		}
	}
	s.literals = kept
}

// LongestCommonPrefix returns the longest common prefix of all literals in
// the sequence, or an empty slice if there is none.
func (s *Seq) LongestCommonPrefix() []byte {
	if s.IsEmpty() {
		return []byte{}
	}

	prefix := s.literals[0].Bytes
	for _, lit := range s.literals[1:] {
		prefix = prefix[:sharedPrefixLen(prefix, lit.Bytes)]
		if len(prefix) == 0 {
			return []byte{}
		}
	}
	return bytes.Clone(prefix)
}

// LongestCommonSuffix returns the longest common suffix of all literals in
// the sequence, or an empty slice if there is none.
func (s *Seq) LongestCommonSuffix() []byte {
	if s.IsEmpty() {
		return []byte{}
	}

	suffix := s.literals[0].Bytes
	for _, lit := range s.literals[1:] {
		n := sharedSuffixLen(suffix, lit.Bytes)
		suffix = suffix[len(suffix)-n:]
		if len(suffix) == 0 {
			return []byte{}
		}
	}
	return bytes.Clone(suffix)
}

// sharedPrefixLen returns the length of the longest common prefix of a and b.
func sharedPrefixLen(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// sharedSuffixLen returns the length of the longest common suffix of a and b.
func sharedSuffixLen(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[len(a)-1-i] != b[len(b)-1-i] {
			return i
		}
	}
	return n
}
