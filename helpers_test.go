package coreglob

import "testing"

// testPatterns returns a corpus of patterns exercising every token kind,
// used by the idempotence and invariant tests.
func testPatterns() []Pattern {
	seqs := [][]Token{
		{},
		{Literal('f'), Literal('o'), Literal('o')},
		{ExtSeparator(), PathSeparator(), Literal('f'), Literal('o'), Literal('o')},
		{ExtSeparator(), PathSeparator(), ExtSeparator(), PathSeparator(), PathSeparator(), Literal('a')},
		{Literal('a'), PathSeparator(), PathSeparator(), ExtSeparator(), PathSeparator(), Literal('b')},
		{LongLiteral("src"), PathSeparator(), AnyNonPathSeparator(), ExtSeparator(), LongLiteral("go")},
		{AnyDirectory(), AnyDirectory(), LongLiteral("main"), Literal('.'), Literal('g'), Literal('o')},
		{AnyNonPathSeparator(), AnyNonPathSeparator(), NonPathSeparator(), NonPathSeparator()},
		{CharClass(false, Single('c'), Single('a'), Single('b'))},
		{CharClass(false, Single('a'), Single('a'))},
		{CharClass(false, Single('a'), Single('c'))},
		{CharClass(false, Range('0', '4'), Range('3', '9'))},
		{CharClass(true, Single('a'), Single('b'), Single('c'))},
		{CharClass(false, Single('.'))},
		{PathSeparator(), CharClass(false, Single('.'))},
		{OpenRange([]byte("5"), []byte("5"))},
		{OpenRange([]byte("12"), []byte("12")), Literal('x')},
		{OpenRange([]byte("3"), []byte("7"))},
		{OpenRange(nil, nil), OpenRange(nil, nil), OpenRange(nil, nil)},
		{OpenRange(nil, []byte("9")), OpenRange([]byte("1"), nil)},
		{Literal('.'), LongLiteral("rc")},
		{Literal('a'), Literal('.'), LongLiteral("txt")},
		{LongLiteral("ab"), Literal('c'), LongLiteral("de")},
	}
	ps := make([]Pattern, len(seqs))
	for i, ts := range seqs {
		ps[i] = NewPattern(ts)
	}
	return ps
}

// checkLongLiteralInvariant fails the test if any LongLiteral in p carries a
// length field that disagrees with its text.
func checkLongLiteralInvariant(t *testing.T, p Pattern) {
	t.Helper()
	for i, tok := range p.Tokens() {
		if tok.Op == OpLongLiteral && int(tok.Length) != len(tok.Text) {
			t.Errorf("pattern %q token %d: Length = %d, len(Text) = %d",
				p, i, tok.Length, len(tok.Text))
		}
	}
}
