package coreglob

// Simplify removes semantically redundant structure from a pattern:
//
//   - Leading "./" prefixes are stripped, including every path separator in
//     the run that follows the dot, repeatedly until the pattern no longer
//     starts with one. "././/foo" therefore reduces all the way to "foo".
//   - Interior "/./" sequences collapse to a single "/", chains included.
//   - A run of consecutive path separators, '*' wildcards or '**/' wildcards
//     collapses to a single occurrence.
//
// The result matches the same paths as the input, except that a pattern
// which named the current directory explicitly no longer reproduces the
// "./" prefix in match output. Use Optimize alone when that fidelity
// matters.
//
// Simplify is pure and idempotent: running it on its own output changes
// nothing.
func Simplify(p Pattern) Pattern {
	ts := stripLeadingDotSlash(p.tokens)

	out := make([]Token, 0, len(ts))
	for i := 0; i < len(ts); {
		t := ts[i]
		switch t.Op {
		case OpPathSeparator:
			// Consume everything this separator makes redundant: more
			// separators, and "./" units whose dot sits between two
			// separators. "/.//./" reduces to "/".
			j := i + 1
			for j < len(ts) {
				if ts[j].Op == OpPathSeparator {
					j++
					continue
				}
				if ts[j].Op == OpExtSeparator && j+1 < len(ts) && ts[j+1].Op == OpPathSeparator {
					j += 2
					continue
				}
				break
			}
			out = append(out, t)
			i = j

		case OpAnyNonPathSeparator, OpAnyDirectory:
			// Duplicated wildcards of the same kind are idempotent.
			j := i + 1
			for j < len(ts) && ts[j].Op == t.Op {
				j++
			}
			out = append(out, t)
			i = j

		default:
			out = append(out, t)
			i++
		}
	}
	return newPattern(out)
}

// stripLeadingDotSlash removes "./" prefixes from the start of the sequence.
// Each removal takes the dot and the maximal separator run after it, then the
// new head is checked again.
func stripLeadingDotSlash(ts []Token) []Token {
	for len(ts) >= 2 && ts[0].Op == OpExtSeparator && ts[1].Op == OpPathSeparator {
		i := 1
		for i < len(ts) && ts[i].Op == OpPathSeparator {
			i++
		}
		ts = ts[i:]
	}
	return ts
}
