package coreglob

import "testing"

// TestOptimizeLiteralCoalescing covers stage B: literal run merging and the
// mid-pattern dot reclassification.
func TestOptimizeLiteralCoalescing(t *testing.T) {
	tests := []struct {
		name string
		in   []Token
		want []Token
	}{
		{
			name: "literal run merges into long literal",
			in:   []Token{Literal('f'), Literal('o'), Literal('o')},
			want: []Token{LongLiteral("foo")},
		},
		{
			name: "single literal stays single",
			in:   []Token{Literal('f')},
			want: []Token{Literal('f')},
		},
		{
			name: "long literal absorbs trailing literal",
			in:   []Token{LongLiteral("fo"), Literal('o')},
			want: []Token{LongLiteral("foo")},
		},
		{
			name: "literal absorbs into following long literal",
			in:   []Token{Literal('f'), LongLiteral("oo")},
			want: []Token{LongLiteral("foo")},
		},
		{
			name: "long literals concatenate",
			in:   []Token{LongLiteral("ab"), LongLiteral("cd"), LongLiteral("ef")},
			want: []Token{LongLiteral("abcdef")},
		},
		{
			name: "wildcard interrupts the run",
			in:   []Token{Literal('a'), Literal('b'), AnyNonPathSeparator(), Literal('c'), Literal('d')},
			want: []Token{LongLiteral("ab"), AnyNonPathSeparator(), LongLiteral("cd")},
		},
		{
			name: "mid pattern dot becomes ext separator",
			in:   []Token{Literal('a'), Literal('.'), Literal('b')},
			want: []Token{Literal('a'), ExtSeparator(), Literal('b')},
		},
		{
			name: "leading dot keeps literal identity and merges",
			in:   []Token{Literal('.'), Literal('r'), Literal('c')},
			want: []Token{LongLiteral(".rc")},
		},
		{
			name: "lone leading dot stays literal",
			in:   []Token{Literal('.')},
			want: []Token{Literal('.')},
		},
		{
			name: "dot after separator becomes ext separator",
			in:   []Token{PathSeparator(), Literal('.')},
			want: []Token{PathSeparator(), ExtSeparator()},
		},
		{
			name: "ext separator does not join literal runs",
			in:   []Token{LongLiteral("foo"), ExtSeparator(), LongLiteral("txt")},
			want: []Token{LongLiteral("foo"), ExtSeparator(), LongLiteral("txt")},
		},
		{
			name: "empty pattern",
			in:   []Token{},
			want: []Token{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Optimize(NewPattern(tt.in))
			want := NewPattern(tt.want)
			if !got.Equal(want) {
				t.Errorf("Optimize() = %q (%d tokens), want %q (%d tokens)",
					got, got.Len(), want, want.Len())
			}
			checkLongLiteralInvariant(t, got)
		})
	}
}

// TestOptimizeOpenRanges covers stage A's numeric range rules.
func TestOptimizeOpenRanges(t *testing.T) {
	tests := []struct {
		name string
		in   []Token
		want []Token
	}{
		{
			name: "equal single digit bounds become a literal",
			in:   []Token{OpenRange([]byte("5"), []byte("5"))},
			want: []Token{Literal('5')},
		},
		{
			name: "equal multi digit bounds become a long literal",
			in:   []Token{OpenRange([]byte("12"), []byte("12"))},
			want: []Token{LongLiteral("12")},
		},
		{
			name: "degenerated bounds join neighbouring literals",
			in:   []Token{Literal('v'), OpenRange([]byte("2"), []byte("2")), Literal('x')},
			want: []Token{LongLiteral("v2x")},
		},
		{
			name: "single digit bounds become a character class",
			in:   []Token{OpenRange([]byte("3"), []byte("7"))},
			want: []Token{CharClass(false, Range('3', '7'))},
		},
		{
			name: "single character bounds become a character class",
			in:   []Token{OpenRange([]byte("a"), []byte("d"))},
			want: []Token{CharClass(false, Range('a', 'd'))},
		},
		{
			name: "unbounded duplicates absorb",
			in:   []Token{OpenRange(nil, nil), OpenRange(nil, nil), OpenRange(nil, nil)},
			want: []Token{OpenRange(nil, nil)},
		},
		{
			name: "unbounded absorption stops at other tokens",
			in:   []Token{OpenRange(nil, nil), Literal('a'), OpenRange(nil, nil)},
			want: []Token{OpenRange(nil, nil), Literal('a'), OpenRange(nil, nil)},
		},
		{
			name: "half bounded ranges untouched",
			in:   []Token{OpenRange(nil, []byte("9")), OpenRange([]byte("1"), nil)},
			want: []Token{OpenRange(nil, []byte("9")), OpenRange([]byte("1"), nil)},
		},
		{
			name: "inverted bounds untouched",
			in:   []Token{OpenRange([]byte("7"), []byte("3"))},
			want: []Token{OpenRange([]byte("7"), []byte("3"))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Optimize(NewPattern(tt.in))
			want := NewPattern(tt.want)
			if !got.Equal(want) {
				t.Errorf("Optimize() = %q (%d tokens), want %q (%d tokens)",
					got, got.Len(), want, want.Len())
			}
			checkLongLiteralInvariant(t, got)
		})
	}
}

// TestOptimizeCharClassTokens covers stage A's class handling through the
// public entry point, including degeneration into neighbouring rules.
func TestOptimizeCharClassTokens(t *testing.T) {
	tests := []struct {
		name string
		in   []Token
		want []Token
	}{
		{
			name: "singleton class becomes a literal",
			in:   []Token{CharClass(false, Single('x'))},
			want: []Token{Literal('x')},
		},
		{
			name: "degenerated class joins a literal run",
			in:   []Token{Literal('a'), CharClass(false, Single('b')), Literal('c')},
			want: []Token{LongLiteral("abc")},
		},
		{
			name: "leading dot class stays a plain literal",
			in:   []Token{CharClass(false, Single('.'))},
			want: []Token{Literal('.')},
		},
		{
			name: "mid pattern dot class becomes ext separator",
			in:   []Token{PathSeparator(), CharClass(false, Single('.'))},
			want: []Token{PathSeparator(), ExtSeparator()},
		},
		{
			name: "separator class is not literalized",
			in:   []Token{CharClass(false, Single(Separator))},
			want: []Token{CharClass(false, Single(Separator))},
		},
		{
			name: "negated singleton stays a class",
			in:   []Token{CharClass(true, Single('x'))},
			want: []Token{CharClass(true, Single('x'))},
		},
		{
			name: "members merge and sort",
			in:   []Token{CharClass(false, Single('c'), Single('a'), Single('b'), Single('x'))},
			want: []Token{CharClass(false, Range('a', 'c'), Single('x'))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Optimize(NewPattern(tt.in))
			want := NewPattern(tt.want)
			if !got.Equal(want) {
				t.Errorf("Optimize() = %q (%d tokens), want %q (%d tokens)",
					got, got.Len(), want, want.Len())
			}
		})
	}
}

// TestOptimizeAfterSimplify pins the end-to-end scenario: "./foo" simplifies
// to "foo" and optimizes to one literal block.
func TestOptimizeAfterSimplify(t *testing.T) {
	p := NewPattern([]Token{
		ExtSeparator(), PathSeparator(),
		Literal('f'), Literal('o'), Literal('o'),
	})

	simplified := Simplify(p)
	want := NewPattern([]Token{Literal('f'), Literal('o'), Literal('o')})
	if !simplified.Equal(want) {
		t.Fatalf("Simplify() = %q, want %q", simplified, want)
	}

	optimized := Optimize(simplified)
	want = NewPattern([]Token{LongLiteral("foo")})
	if !optimized.Equal(want) {
		t.Fatalf("Optimize() = %q, want %q", optimized, want)
	}
	checkLongLiteralInvariant(t, optimized)
}

// TestOptimizeIdempotent verifies optimize(optimize(p)) == optimize(p).
func TestOptimizeIdempotent(t *testing.T) {
	for _, p := range testPatterns() {
		once := Optimize(p)
		twice := Optimize(once)
		if !once.Equal(twice) {
			t.Errorf("pattern %q: second Optimize changed %q to %q", p, once, twice)
		}
		checkLongLiteralInvariant(t, once)
	}
}

// TestOptimizeDoesNotMutateInput verifies the immutable-in contract.
func TestOptimizeDoesNotMutateInput(t *testing.T) {
	in := []Token{Literal('f'), Literal('o'), CharClass(false, Single('c'), Single('a'), Single('b'))}
	p := NewPattern(in)
	before := p.String()

	Optimize(p)

	if p.String() != before {
		t.Errorf("input pattern changed from %q to %q", before, p.String())
	}
}
