package coreglob

import (
	"cmp"
	"slices"
	"unicode"
)

// optimizeCharClass rewrites an OpCharClass token into its minimal form: the
// members are sorted ascending by lower bound and merged so that no two
// neighbours overlap or touch, then the whole class degenerates to a simpler
// token where possible.
//
// Literalization rules for non-negated classes:
//   - a single remaining character other than the path separator becomes a
//     plain Literal (never an ExtSeparator, so class-born dots cannot pick
//     up leading-dot exclusion semantics);
//   - a single remaining range covering the entire character domain becomes
//     NonPathSeparator.
//
// Negated classes and every other shape stay OpCharClass.
//
// Calling this with any other token kind is a violated precondition and
// panics: only the optimizer pipeline reaches this code, so a non-class
// argument is a bug in the caller, not a data condition.
func optimizeCharClass(t Token) Token {
	if t.Op != OpCharClass {
		panic("coreglob: optimizeCharClass applied to " + t.Op.String() + " token")
	}

	items := normalizeClassItems(t.Class)
	slices.SortFunc(items, compareClassItems)
	merged := mergeClassItems(items)

	if !t.Negated && len(merged) == 1 {
		it := merged[0]
		if !it.IsRange && it.Lo != Separator {
			return Literal(it.Lo)
		}
		if it.IsRange && it.Lo == 0 && it.Hi == unicode.MaxRune {
			return NonPathSeparator()
		}
	}
	return CharClass(t.Negated, merged...)
}

// normalizeClassItems copies the member list, demoting single-character
// ranges to singles so that [b-b] and [b] optimize identically.
func normalizeClassItems(items []ClassItem) []ClassItem {
	out := make([]ClassItem, len(items))
	for i, it := range items {
		if it.IsRange && it.Lo == it.Hi {
			it = Single(it.Lo)
		}
		out[i] = it
	}
	return out
}

// compareClassItems orders members by lower bound; ties put singles before
// ranges and then order by upper bound, keeping the sort deterministic.
func compareClassItems(a, b ClassItem) int {
	if c := cmp.Compare(a.Lo, b.Lo); c != 0 {
		return c
	}
	if a.IsRange != b.IsRange {
		if a.IsRange {
			return 1
		}
		return -1
	}
	return cmp.Compare(a.Hi, b.Hi)
}

// mergeClassItems sweeps the sorted members left to right, grouping every
// chain of overlapping or touching elements. A group containing a range
// always comes out as one range. A group of singles is contiguous by
// construction: three or more distinct characters become a range, one or two
// stay as singles (duplicates collapse).
func mergeClassItems(items []ClassItem) []ClassItem {
	out := make([]ClassItem, 0, len(items))
	for i := 0; i < len(items); {
		lo, hi := items[i].Lo, items[i].Hi
		hasRange := items[i].IsRange

		j := i + 1
		for j < len(items) && items[j].Lo <= hi+1 {
			if items[j].Hi > hi {
				hi = items[j].Hi
			}
			hasRange = hasRange || items[j].IsRange
			j++
		}

		switch {
		case hasRange || hi-lo >= 2:
			out = append(out, Range(lo, hi))
		case hi == lo:
			out = append(out, Single(lo))
		default:
			out = append(out, Single(lo), Single(hi))
		}
		i = j
	}
	return out
}
