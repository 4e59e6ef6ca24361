package coreglob

import "slices"

// Optimize rewrites a pattern into an equivalent form that is cheaper to
// match. It runs two stages over the token sequence:
//
// Stage A normalizes individual tokens:
//   - character classes go through optimizeCharClass; when a class
//     degenerates to another token kind, the result re-enters the rules at
//     the same position;
//   - a numeric range whose bounds are present and equal becomes the literal
//     digit run itself;
//   - a numeric range with single-character bounds becomes a character class
//     spanning them, which the class rules may shrink further;
//   - duplicated fully-unbounded numeric ranges collapse to one.
//
// Stage B coalesces literals:
//   - a literal '.' anywhere but the head of the pattern is reclassified as
//     an extension separator;
//   - adjacent Literal and LongLiteral tokens merge into one LongLiteral
//     with its length recomputed.
//
// Unlike Simplify, Optimize preserves every structural token, so patterns
// fed to the directory-globbing engine keep their output fidelity.
//
// Optimize is pure and idempotent.
func Optimize(p Pattern) Pattern {
	ts := normalizeTokens(p.tokens)
	ts = coalesceLiterals(ts)
	return newPattern(ts)
}

// normalizeTokens is stage A. It rewrites tokens in place on a copy,
// revisiting a position whenever a rewrite can enable another rule there.
func normalizeTokens(in []Token) []Token {
	ts := slices.Clone(in)
	for i := 0; i < len(ts); {
		switch ts[i].Op {
		case OpCharClass:
			r := optimizeCharClass(ts[i])
			ts[i] = r
			if r.Op != OpCharClass {
				continue
			}
			i++

		case OpOpenRange:
			lo, hi := ts[i].LowerBound, ts[i].UpperBound
			switch {
			case lo != nil && hi != nil && string(lo) == string(hi):
				// A range of one value is that value.
				if len(lo) == 1 {
					ts[i] = Literal(rune(lo[0]))
				} else {
					ts[i] = LongLiteral(string(lo))
				}
				i++
			case lo != nil && hi != nil && len(lo) == 1 && len(hi) == 1 && hi[0] > lo[0]:
				// A single-digit numeric range is exactly a character
				// class; the class rules take over at this position.
				ts[i] = CharClass(false, Range(rune(lo[0]), rune(hi[0])))
			case lo == nil && hi == nil:
				// An unbounded number wildcard absorbs duplicates.
				j := i + 1
				for j < len(ts) && ts[j].Op == OpOpenRange && ts[j].LowerBound == nil && ts[j].UpperBound == nil {
					j++
				}
				if j > i+1 {
					ts = append(ts[:i+1], ts[j:]...)
				}
				i++
			default:
				i++
			}

		default:
			i++
		}
	}
	return ts
}

// coalesceLiterals is stage B: a single left-to-right pass that folds
// adjacent literal tokens into a pending run and flushes the run whenever a
// non-literal token interrupts it. Merging is local and left-associative, so
// one pass reaches the fixed point.
func coalesceLiterals(in []Token) []Token {
	out := make([]Token, 0, len(in))
	var run []rune

	flush := func() {
		switch {
		case len(run) == 0:
		case len(run) == 1 && run[0] == '.' && len(out) > 0:
			// A lone mid-pattern dot, however it was spelled, is an
			// extension separator.
			out = append(out, ExtSeparator())
		case len(run) == 1:
			out = append(out, Literal(run[0]))
		default:
			out = append(out, longLiteral(run))
		}
		run = nil
	}

	for _, t := range in {
		switch t.Op {
		case OpLiteral:
			if t.Ch == '.' && (len(out) > 0 || len(run) > 0) {
				// Mid-pattern literal dots participate in extension
				// separator semantics; only a dot at position zero keeps
				// its literal identity.
				flush()
				out = append(out, ExtSeparator())
				continue
			}
			run = append(run, t.Ch)
		case OpLongLiteral:
			run = append(run, t.Text...)
		default:
			flush()
			out = append(out, t)
		}
	}
	flush()
	return out
}
