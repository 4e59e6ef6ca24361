package literal

import (
	"unicode/utf8"

	"github.com/coregx/coreglob"
)

// Config configures literal extraction limits.
//
// These limits prevent excessive extraction from pathological patterns:
//   - MaxLiterals: caps the alternatives produced by class expansion
//   - MaxLiteralLen: caps the length of each extracted literal
//   - MaxClassSize: caps the size of character classes to expand
type Config struct {
	// MaxLiterals limits the number of alternative literals to extract.
	// Expanding several classes multiplies alternatives ("[ab][cd]" yields
	// four); extraction stops before exceeding this. Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the length in bytes of each extracted literal.
	// Very long literals hurt prefilter cache locality. Default: 64.
	MaxLiteralLen int

	// MaxClassSize limits the number of characters a class may cover and
	// still be expanded into alternatives. "[abc]" (3) expands, "[a-z]"
	// (26) does not. Default: 10.
	MaxClassSize int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() Config {
	return Config{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  10,
	}
}

// Extractor extracts literal sequences from compiled glob patterns.
//
// It walks the pattern's token sequence and collects:
//   - Prefix literals: fixed text every match must start with
//   - Suffix literals: fixed text every match must end with
//   - Complete literals: the whole pattern, when it is purely literal
//
// Patterns should be optimized first (coreglob.Optimize) so that literal
// runs arrive coalesced and degenerate classes and numeric ranges have
// already collapsed into literals.
//
// Example:
//
//	p := coreglob.Optimize(pattern) // compiled from "src/[ab]*.go"
//	e := literal.New(literal.DefaultConfig())
//	prefixes := e.ExtractPrefixes(p)
//	// prefixes = ["src/a", "src/b"]
type Extractor struct {
	config Config
}

// New creates a new Extractor with the given configuration.
func New(config Config) *Extractor {
	return &Extractor{config: config}
}

// ExtractComplete returns the pattern's full text as a single complete
// literal when the pattern is purely literal, and an empty sequence
// otherwise. Callers use this to bypass matching entirely.
func (e *Extractor) ExtractComplete(p coreglob.Pattern) *Seq {
	if !p.IsLiteral() {
		return NewSeq()
	}
	var text []byte
	for _, t := range p.Tokens() {
		b, ok := literalText(t)
		if !ok {
			return NewSeq()
		}
		text = append(text, b...)
	}
	return NewSeq(NewLiteral(text, true))
}

// ExtractPrefixes extracts the literals every match must start with.
//
// The walk consumes tokens left to right: literal tokens extend every
// alternative, small non-negated character classes multiply them, and the
// first wildcard, numeric range or oversized class stops the walk. Literals
// are marked complete only when the walk consumed the whole pattern.
//
// Examples:
//
//	"foo"       → ["foo"] (complete)
//	"foo*.go"   → ["foo"]
//	"[ab]x"     → ["ax", "bx"] (complete)
//	"*.go"      → [] (no prefix requirement)
//
// Returns an empty Seq when no prefix literal exists.
func (e *Extractor) ExtractPrefixes(p coreglob.Pattern) *Seq {
	alts := [][]byte{nil}
	complete := true

	for _, t := range p.Tokens() {
		if b, ok := literalText(t); ok {
			for i := range alts {
				alts[i] = append(alts[i], b...)
			}
			// Class alternatives with mixed UTF-8 widths grow at different
			// rates, so the limit is checked against the longest one.
			if maxAltLen(alts) >= e.config.MaxLiteralLen {
				alts = truncatePrefixes(alts, e.config.MaxLiteralLen)
				complete = false
				break
			}
			continue
		}
		if chars, ok := e.classAlternatives(t); ok {
			if len(alts)*len(chars) > e.config.MaxLiterals {
				complete = false
				break
			}
			expanded := make([][]byte, 0, len(alts)*len(chars))
			for _, a := range alts {
				for _, c := range chars {
					ext := append(append([]byte{}, a...), c...)
					expanded = append(expanded, ext)
				}
			}
			alts = expanded
			if maxAltLen(alts) >= e.config.MaxLiteralLen {
				alts = truncatePrefixes(alts, e.config.MaxLiteralLen)
				complete = false
				break
			}
			continue
		}
		complete = false
		break
	}

	return buildSeq(alts, complete)
}

// ExtractSuffixes extracts the literals every match must end with, walking
// the pattern right to left. It mirrors ExtractPrefixes.
//
// Examples:
//
//	"*.go"     → [".go"]
//	"a/**/b"   → ["b"]
//	"foo*"     → [] (no suffix requirement)
func (e *Extractor) ExtractSuffixes(p coreglob.Pattern) *Seq {
	alts := [][]byte{nil}
	complete := true

	tokens := p.Tokens()
	for i := len(tokens) - 1; i >= 0; i-- {
		t := tokens[i]
		if b, ok := literalText(t); ok {
			for j := range alts {
				alts[j] = append(append([]byte{}, b...), alts[j]...)
			}
			if maxAltLen(alts) >= e.config.MaxLiteralLen {
				alts = truncateSuffixes(alts, e.config.MaxLiteralLen)
				complete = false
				break
			}
			continue
		}
		if chars, ok := e.classAlternatives(t); ok {
			if len(alts)*len(chars) > e.config.MaxLiterals {
				complete = false
				break
			}
			expanded := make([][]byte, 0, len(alts)*len(chars))
			for _, a := range alts {
				for _, c := range chars {
					ext := append(append([]byte{}, c...), a...)
					expanded = append(expanded, ext)
				}
			}
			alts = expanded
			if maxAltLen(alts) >= e.config.MaxLiteralLen {
				alts = truncateSuffixes(alts, e.config.MaxLiteralLen)
				complete = false
				break
			}
			continue
		}
		complete = false
		break
	}

	return buildSeq(alts, complete)
}

// classAlternatives expands a small non-negated character class into the
// encoded characters it covers. Returns false for any other token, for
// negated classes, and for classes covering more than MaxClassSize
// characters.
func (e *Extractor) classAlternatives(t coreglob.Token) ([][]byte, bool) {
	if t.Op != coreglob.OpCharClass || t.Negated {
		return nil, false
	}
	size := 0
	for _, it := range t.Class {
		if it.IsRange {
			size += int(it.Hi-it.Lo) + 1
		} else {
			size++
		}
		if size > e.config.MaxClassSize {
			return nil, false
		}
	}
	chars := make([][]byte, 0, size)
	for _, it := range t.Class {
		for r := it.Lo; r <= it.Hi; r++ {
			chars = append(chars, utf8.AppendRune(nil, r))
		}
	}
	return chars, true
}

// literalText returns the fixed byte sequence a token matches, if it has one.
func literalText(t coreglob.Token) ([]byte, bool) {
	switch t.Op {
	case coreglob.OpLiteral:
		return utf8.AppendRune(nil, t.Ch), true
	case coreglob.OpLongLiteral:
		var b []byte
		for _, r := range t.Text {
			b = utf8.AppendRune(b, r)
		}
		return b, true
	case coreglob.OpExtSeparator:
		return []byte{'.'}, true
	case coreglob.OpPathSeparator:
		return utf8.AppendRune(nil, coreglob.Separator), true
	}
	return nil, false
}

// buildSeq turns raw alternatives into a Seq, dropping the degenerate case
// where nothing literal was collected.
func buildSeq(alts [][]byte, complete bool) *Seq {
	if len(alts) == 0 || len(alts[0]) == 0 {
		return NewSeq()
	}
	lits := make([]Literal, len(alts))
	for i, a := range alts {
		lits[i] = NewLiteral(a, complete)
	}
	return NewSeq(lits...)
}

// maxAltLen returns the length in bytes of the longest alternative.
func maxAltLen(alts [][]byte) int {
	n := 0
	for _, a := range alts {
		n = max(n, len(a))
	}
	return n
}

// truncatePrefixes clips every alternative longer than n bytes to its first
// n bytes. Alternatives already within the limit are left alone.
func truncatePrefixes(alts [][]byte, n int) [][]byte {
	for i := range alts {
		if len(alts[i]) > n {
			alts[i] = alts[i][:n]
		}
	}
	return alts
}

// truncateSuffixes clips every alternative longer than n bytes to its last
// n bytes. Alternatives already within the limit are left alone.
func truncateSuffixes(alts [][]byte, n int) [][]byte {
	for i := range alts {
		if len(alts[i]) > n {
			alts[i] = alts[i][len(alts[i])-n:]
		}
	}
	return alts
}
