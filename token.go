// Package coreglob provides the optimizer core for compiled glob patterns.
//
// A glob pattern arrives here already compiled into an ordered sequence of
// tokens (literals, wildcards, character classes, numeric ranges, path
// separators). coreglob rewrites that sequence into a semantically equivalent
// but smaller and faster form through two independent passes:
//   - Simplify removes redundant structure: leading "./" prefixes, interior
//     "/./" sequences, and duplicated separator/wildcard runs.
//   - Optimize normalizes degenerate numeric ranges, merges character-class
//     members into maximal sorted ranges, and coalesces literal runs into
//     run-length literal blocks.
//
// Parsing glob text into tokens, matching tokens against paths, and walking
// directories are all external collaborators; this package only consumes and
// produces the token sequence.
//
// Basic usage:
//
//	p := coreglob.NewPattern(tokens)
//	p = coreglob.Optimize(coreglob.Simplify(p))
//	// hand p to the matcher
//
// Both passes are pure: they never mutate their input and are safe to run
// concurrently over distinct patterns.
package coreglob

import (
	"strings"

	"github.com/coregx/coreglob/internal/conv"
)

// Separator is the path separator character that tokens such as
// PathSeparator match and that wildcards and character classes exclude.
const Separator rune = '/'

// Op identifies the kind of a pattern token.
type Op uint8

const (
	// OpLiteral matches exactly one character.
	OpLiteral Op = iota

	// OpLongLiteral matches a fixed multi-character text verbatim.
	OpLongLiteral

	// OpPathSeparator matches the path separator.
	OpPathSeparator

	// OpExtSeparator matches a literal '.'. A leading '.' is excluded from
	// some wildcard matches, so the matcher treats this distinctly from a
	// plain literal at position zero.
	OpExtSeparator

	// OpAnyNonPathSeparator is the '*' wildcard: any run (possibly empty)
	// of characters that are not the path separator.
	OpAnyNonPathSeparator

	// OpNonPathSeparator is the '?' wildcard: exactly one character that is
	// not the path separator. It is also what a character class optimizes
	// to when it covers the entire character domain.
	OpNonPathSeparator

	// OpAnyDirectory is the '**/' wildcard: any number of directory levels.
	OpAnyDirectory

	// OpCharClass is a character class: an optionally negated set of single
	// characters and inclusive ranges.
	OpCharClass

	// OpOpenRange is a numeric range wildcard with optional lower and upper
	// digit-string bounds.
	OpOpenRange
)

// String returns a human-readable name for the op.
func (op Op) String() string {
	switch op {
	case OpLiteral:
		return "Literal"
	case OpLongLiteral:
		return "LongLiteral"
	case OpPathSeparator:
		return "PathSeparator"
	case OpExtSeparator:
		return "ExtSeparator"
	case OpAnyNonPathSeparator:
		return "AnyNonPathSeparator"
	case OpNonPathSeparator:
		return "NonPathSeparator"
	case OpAnyDirectory:
		return "AnyDirectory"
	case OpCharClass:
		return "CharClass"
	case OpOpenRange:
		return "OpenRange"
	}
	return "Unknown"
}

// ClassItem is one member of a character class: either a single character
// (IsRange false, value in Lo) or an inclusive range Lo..Hi (IsRange true).
type ClassItem struct {
	Lo, Hi  rune
	IsRange bool
}

// Single returns a class member matching exactly r.
func Single(r rune) ClassItem {
	return ClassItem{Lo: r, Hi: r}
}

// Range returns a class member matching every character in lo..hi inclusive.
func Range(lo, hi rune) ClassItem {
	return ClassItem{Lo: lo, Hi: hi, IsRange: true}
}

// Token is one element of a compiled glob pattern. The Op field selects the
// variant; only the payload fields documented for that variant are meaningful.
type Token struct {
	Op Op

	// Ch is the character of an OpLiteral token.
	Ch rune

	// Text and Length belong to OpLongLiteral. Length always equals
	// len(Text); every constructor and merge re-derives it.
	Text   []rune
	Length uint32

	// Negated and Class belong to OpCharClass.
	Negated bool
	Class   []ClassItem

	// LowerBound and UpperBound belong to OpOpenRange. Each is a digit
	// string; nil means the bound is absent (unbounded).
	LowerBound []byte
	UpperBound []byte
}

// Literal returns a token matching exactly the character c.
func Literal(c rune) Token {
	return Token{Op: OpLiteral, Ch: c}
}

// LongLiteral returns a token matching text verbatim.
func LongLiteral(text string) Token {
	return longLiteral([]rune(text))
}

// longLiteral builds an OpLongLiteral over runes it takes ownership of.
func longLiteral(text []rune) Token {
	return Token{Op: OpLongLiteral, Text: text, Length: conv.IntToUint32(len(text))}
}

// PathSeparator returns a token matching the path separator.
func PathSeparator() Token {
	return Token{Op: OpPathSeparator}
}

// ExtSeparator returns a token matching a literal '.' with extension
// separator semantics.
func ExtSeparator() Token {
	return Token{Op: OpExtSeparator}
}

// AnyNonPathSeparator returns the '*' wildcard token.
func AnyNonPathSeparator() Token {
	return Token{Op: OpAnyNonPathSeparator}
}

// NonPathSeparator returns the '?' wildcard token.
func NonPathSeparator() Token {
	return Token{Op: OpNonPathSeparator}
}

// AnyDirectory returns the '**/' wildcard token.
func AnyDirectory() Token {
	return Token{Op: OpAnyDirectory}
}

// CharClass returns a character class token over the given members.
// Negated classes match any non-separator character outside the members.
func CharClass(negated bool, members ...ClassItem) Token {
	return Token{Op: OpCharClass, Negated: negated, Class: members}
}

// OpenRange returns a numeric range wildcard. A nil bound is unbounded, so
// OpenRange(nil, nil) matches any number.
func OpenRange(lower, upper []byte) Token {
	return Token{Op: OpOpenRange, LowerBound: lower, UpperBound: upper}
}

// Equal reports whether two tokens are structurally identical.
func (t Token) Equal(u Token) bool {
	if t.Op != u.Op {
		return false
	}
	switch t.Op {
	case OpLiteral:
		return t.Ch == u.Ch
	case OpLongLiteral:
		if t.Length != u.Length || len(t.Text) != len(u.Text) {
			return false
		}
		for i := range t.Text {
			if t.Text[i] != u.Text[i] {
				return false
			}
		}
		return true
	case OpCharClass:
		if t.Negated != u.Negated || len(t.Class) != len(u.Class) {
			return false
		}
		for i := range t.Class {
			if t.Class[i] != u.Class[i] {
				return false
			}
		}
		return true
	case OpOpenRange:
		return digitsEqual(t.LowerBound, u.LowerBound) && digitsEqual(t.UpperBound, u.UpperBound)
	}
	return true
}

// digitsEqual compares optional digit-string bounds, distinguishing a nil
// (absent) bound from an empty one.
func digitsEqual(a, b []byte) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return string(a) == string(b)
}

// String renders the token back into glob syntax for debugging.
func (t Token) String() string {
	switch t.Op {
	case OpLiteral:
		return escapeRune(t.Ch)
	case OpLongLiteral:
		var sb strings.Builder
		for _, r := range t.Text {
			sb.WriteString(escapeRune(r))
		}
		return sb.String()
	case OpPathSeparator:
		return string(Separator)
	case OpExtSeparator:
		return "."
	case OpAnyNonPathSeparator:
		return "*"
	case OpNonPathSeparator:
		return "?"
	case OpAnyDirectory:
		return "**" + string(Separator)
	case OpCharClass:
		var sb strings.Builder
		sb.WriteByte('[')
		if t.Negated {
			sb.WriteByte('^')
		}
		for _, it := range t.Class {
			sb.WriteRune(it.Lo)
			if it.IsRange {
				sb.WriteByte('-')
				sb.WriteRune(it.Hi)
			}
		}
		sb.WriteByte(']')
		return sb.String()
	case OpOpenRange:
		var sb strings.Builder
		sb.WriteByte('<')
		sb.Write(t.LowerBound)
		sb.WriteByte('-')
		sb.Write(t.UpperBound)
		sb.WriteByte('>')
		return sb.String()
	}
	return "<invalid>"
}

// escapeRune renders a literal character, backslash-escaping glob
// metacharacters so the rendering round-trips through a compiler.
func escapeRune(r rune) string {
	if strings.ContainsRune(`*?[]<>\`, r) {
		return `\` + string(r)
	}
	return string(r)
}
