// Package prefilter provides fast candidate filtering for glob matching
// using literal sequences extracted from patterns.
//
// A prefilter quickly rejects paths that cannot possibly match the full
// pattern. Matching the pattern against every path in a large tree is
// wasteful when the pattern pins down literal text; scanning for that text
// first discards most candidates before the matcher runs.
//
// The package selects a strategy from the shape of the extracted literals:
//   - a single literal → substring search
//   - several literals → Aho-Corasick multi-pattern automaton
//
// Example usage:
//
//	p := coreglob.Optimize(pattern)
//	e := literal.New(literal.DefaultConfig())
//	pf := prefilter.NewBuilder(e.ExtractPrefixes(p)).Build()
//	if pf != nil && pf.Find(path, 0) == -1 {
//	    // path cannot match; skip the matcher
//	}
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/coreglob/literal"
)

// Prefilter is used to quickly find candidate positions before running the
// full glob matcher.
type Prefilter interface {
	// Find returns the index of the first candidate at or after start, or
	// -1 if none exists. A candidate position is one where an extracted
	// literal occurs; unless IsComplete reports true, the caller must still
	// verify the match with the full matcher.
	Find(haystack []byte, start int) int

	// IsComplete returns true if a prefilter hit guarantees a full match,
	// making verification unnecessary. This holds when every literal covers
	// its entire pattern and none were dropped while building.
	IsComplete() bool

	// HeapBytes returns the approximate heap memory held by the prefilter,
	// for profiling and strategy diagnostics.
	HeapBytes() int
}

// Builder constructs a Prefilter from extracted literals.
type Builder struct {
	literals *literal.Seq
}

// NewBuilder creates a builder over the given literal sequence. The
// sequence is typically the output of literal.Extractor.ExtractPrefixes.
func NewBuilder(literals *literal.Seq) *Builder {
	return &Builder{literals: literals}
}

// Build selects and constructs the prefilter strategy, or returns nil when
// the literals give nothing to filter on (empty sequence, or an empty
// literal that would match everywhere).
func (b *Builder) Build() Prefilter {
	if b.literals.IsEmpty() {
		return nil
	}

	seq := b.literals.Clone()
	before := seq.Len()
	seq.Minimize()
	// Dropping a redundant literal widens the candidate set, so a hit no
	// longer proves a full match.
	complete := seq.AllComplete() && seq.Len() == before

	for i := 0; i < seq.Len(); i++ {
		if seq.Get(i).Len() == 0 {
			return nil
		}
	}

	if seq.Len() == 1 {
		return &substringPrefilter{needle: seq.Get(0).Bytes, complete: complete}
	}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		// Fall back to the literals' common prefix; weaker but still a
		// valid candidate filter.
		if lcp := seq.LongestCommonPrefix(); len(lcp) > 0 {
			return &substringPrefilter{needle: lcp, complete: false}
		}
		return nil
	}
	return &ahoCorasickPrefilter{auto: auto, patternBytes: totalBytes(seq), complete: complete}
}

// substringPrefilter scans for a single literal.
type substringPrefilter struct {
	needle   []byte
	complete bool
}

func (p *substringPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	i := bytes.Index(haystack[start:], p.needle)
	if i < 0 {
		return -1
	}
	return start + i
}

func (p *substringPrefilter) IsComplete() bool {
	return p.complete
}

func (p *substringPrefilter) HeapBytes() int {
	return len(p.needle)
}

// ahoCorasickPrefilter scans for any of several literals at once.
type ahoCorasickPrefilter struct {
	auto         *ahocorasick.Automaton
	patternBytes int
	complete     bool
}

func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

func (p *ahoCorasickPrefilter) IsComplete() bool {
	return p.complete
}

// HeapBytes reports the pattern bytes fed to the automaton; the automaton's
// own state is not included.
func (p *ahoCorasickPrefilter) HeapBytes() int {
	return p.patternBytes
}

func totalBytes(seq *literal.Seq) int {
	n := 0
	for i := 0; i < seq.Len(); i++ {
		n += seq.Get(i).Len()
	}
	return n
}
