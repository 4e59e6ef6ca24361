package coreglob

import "strings"

// Pattern is a compiled glob pattern: an ordered token sequence plus a
// derived flag recording whether the pattern is purely literal.
//
// Patterns are immutable. The rewrite passes accept a Pattern and return a
// new one; the input is never modified.
type Pattern struct {
	tokens  []Token
	literal bool
}

// NewPattern builds a Pattern from the given token sequence. The slice is
// copied, so the caller may reuse it afterwards.
func NewPattern(tokens []Token) Pattern {
	ts := make([]Token, len(tokens))
	copy(ts, tokens)
	return newPattern(ts)
}

// newPattern wraps a token slice the caller relinquishes ownership of,
// re-deriving the literal-ness flag.
func newPattern(tokens []Token) Pattern {
	return Pattern{tokens: tokens, literal: allLiteral(tokens)}
}

// allLiteral reports whether every token matches fixed text: literals, long
// literals, extension separators and path separators.
func allLiteral(tokens []Token) bool {
	for _, t := range tokens {
		switch t.Op {
		case OpLiteral, OpLongLiteral, OpExtSeparator, OpPathSeparator:
		default:
			return false
		}
	}
	return true
}

// Len returns the number of tokens in the pattern.
func (p Pattern) Len() int {
	return len(p.tokens)
}

// Tokens returns a copy of the pattern's token sequence.
func (p Pattern) Tokens() []Token {
	ts := make([]Token, len(p.tokens))
	copy(ts, p.tokens)
	return ts
}

// IsLiteral reports whether the pattern matches exactly one fixed path, with
// no wildcards, classes or numeric ranges. Callers use this to bypass the
// matcher entirely and compare paths directly.
func (p Pattern) IsLiteral() bool {
	return p.literal
}

// Equal reports whether two patterns hold structurally identical token
// sequences.
func (p Pattern) Equal(q Pattern) bool {
	if len(p.tokens) != len(q.tokens) {
		return false
	}
	for i := range p.tokens {
		if !p.tokens[i].Equal(q.tokens[i]) {
			return false
		}
	}
	return true
}

// String renders the pattern back into glob syntax for debugging.
func (p Pattern) String() string {
	var sb strings.Builder
	for _, t := range p.tokens {
		sb.WriteString(t.String())
	}
	return sb.String()
}
