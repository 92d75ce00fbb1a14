package packrat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustTree(t *testing.T, tree *ParseTree, ok bool) *ParseTree {
	t.Helper()
	if !ok {
		t.Fatalf("expected a match, got none")
	}
	return tree
}

// TestSeqMatch is scenario 1 Seq<Char('a'),Char('b'),Char('b')>
// over "abb" matches, with the root covering the whole input and three
// length-1 leaf children.
func TestSeqMatch(t *testing.T) {
	rule := Seq(Char('a'), Char('b'), Char('b'))
	tree := mustTree(t, Parse(rule, "abb"))
	if tree.Region != "abb" {
		t.Errorf("root region = %q, want %q", tree.Region, "abb")
	}
	if len(tree.Subtrees) != 3 {
		t.Fatalf("len(Subtrees) = %d, want 3", len(tree.Subtrees))
	}
	for i, want := range []string{"a", "b", "b"} {
		if got := tree.Subtrees[i].Region; got != want {
			t.Errorf("child %d region = %q, want %q", i, got, want)
		}
	}
}

// TestSeqNoMatch is scenario 2: the same rule over "abc" does not match.
func TestSeqNoMatch(t *testing.T) {
	rule := Seq(Char('a'), Char('b'), Char('b'))
	if _, ok := Parse(rule, "abc"); ok {
		t.Fatalf("expected no match")
	}
}

// TestOrdWrapsWinner is scenario 3: Seq<Char('a'),Char('b'),Ord<Char('b'),Char('c')>>
// over "abc" matches, with the third child an Ord wrapper over a Char('c')
// leaf.
func TestOrdWrapsWinner(t *testing.T) {
	b, c := Char('b'), Char('c')
	rule := Seq(Char('a'), Char('b'), Ord(b, c))
	tree := mustTree(t, Parse(rule, "abc"))
	if tree.Region != "abc" {
		t.Errorf("root region = %q, want %q", tree.Region, "abc")
	}
	if len(tree.Subtrees) != 3 {
		t.Fatalf("len(Subtrees) = %d, want 3", len(tree.Subtrees))
	}
	ordNode := tree.Subtrees[2]
	if ordNode.Region != "c" {
		t.Errorf("Ord node region = %q, want %q", ordNode.Region, "c")
	}
	if len(ordNode.Subtrees) != 1 || ordNode.Subtrees[0].Region != "c" {
		t.Fatalf("Ord node should wrap a single Char('c') leaf, got %+v", ordNode.Subtrees)
	}
	if ordNode.Subtrees[0].Instance != c.Identity() {
		t.Errorf("wrapped leaf identity = %v, want %v", ordNode.Subtrees[0].Instance, c.Identity())
	}
}

// TestAsteriskEmptyMatch is scenario 4: Asterisk<Char('x')> over "" matches
// with zero children and zero length.
func TestAsteriskEmptyMatch(t *testing.T) {
	tree := mustTree(t, Parse(Asterisk(Char('x')), ""))
	if tree.Region != "" {
		t.Errorf("region = %q, want empty", tree.Region)
	}
	if len(tree.Subtrees) != 0 {
		t.Errorf("len(Subtrees) = %d, want 0", len(tree.Subtrees))
	}
}

// TestPlusEmptyNoMatch is scenario 5: Plus<Char('x')> over "" does not match.
func TestPlusEmptyNoMatch(t *testing.T) {
	if _, ok := Parse(Plus(Char('x')), ""); ok {
		t.Fatalf("expected no match")
	}
}

// TestNotPredicate is scenario 6: Seq<Not<Char('a')>,Any> over "b" matches
// with a zero-length first child and a length-1 second child; over "a" it
// does not match.
func TestNotPredicate(t *testing.T) {
	rule := Seq(Not(Char('a')), Any())
	tree := mustTree(t, Parse(rule, "b"))
	if tree.Region != "b" {
		t.Errorf("region = %q, want %q", tree.Region, "b")
	}
	if got := tree.Subtrees[0].Len(); got != 0 {
		t.Errorf("first child length = %d, want 0", got)
	}
	if got := tree.Subtrees[1].Len(); got != 1 {
		t.Errorf("second child length = %d, want 1", got)
	}
	if _, ok := Parse(rule, "a"); ok {
		t.Fatalf("expected no match over %q", "a")
	}
}

// TestOriginalBootstrapGrammar reuses the classic toy bootstrap grammar
// (Seq(Char('a'),Char('b'),Ord(Char('b'),Char('c'))) over "abc") as a
// fixture.
func TestOriginalBootstrapGrammar(t *testing.T) {
	rule := Seq(Char('a'), Char('b'), Ord(Char('b'), Char('c')))
	tree := mustTree(t, Parse(rule, "abc"))
	if tree.Region != "abc" {
		t.Errorf("region = %q, want %q", tree.Region, "abc")
	}
}

// TestOptionalNeverFails checks Optional's two shapes: a wrapped match
// when the child matches, and an empty childless match when it doesn't.
func TestOptionalNeverFails(t *testing.T) {
	matched := mustTree(t, Parse(Optional(Char('a')), "a"))
	if diff := cmp.Diff("a", matched.Region); diff != "" {
		t.Errorf("matched region mismatch (-want +got):\n%s", diff)
	}
	if len(matched.Subtrees) != 1 {
		t.Fatalf("expected one wrapped child, got %d", len(matched.Subtrees))
	}

	empty := mustTree(t, Parse(Optional(Char('a')), "b"))
	if empty.Region != "" || len(empty.Subtrees) != 0 {
		t.Errorf("expected empty childless match, got region=%q children=%d", empty.Region, len(empty.Subtrees))
	}
}

// TestStartEndPrimitives exercises the zero-length anchors.
func TestStartEndPrimitives(t *testing.T) {
	if _, ok := Parse(Start(), "abc"); !ok {
		t.Errorf("Start should match at position 0")
	}
	rule := Seq(Char('a'), Char('b'), Char('c'), End())
	if _, ok := Parse(rule, "abc"); !ok {
		t.Errorf("End should match once the whole input is consumed")
	}
	if _, ok := Parse(rule, "abcd"); ok {
		t.Errorf("End should reject trailing input")
	}
}

// TestCharRange exercises the inclusive-bounds primitive.
func TestCharRange(t *testing.T) {
	digit := CharRange('0', '9')
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"0", true}, {"9", true}, {"5", true}, {"a", false}, {"", false},
	} {
		_, ok := Parse(digit, tc.in)
		if ok != tc.want {
			t.Errorf("CharRange('0','9') over %q = %v, want %v", tc.in, ok, tc.want)
		}
	}
}

// TestPackratSingleInvocationPerPosition is the memoization-correctness
// invariant a rule is invoked at most once per distinct
// (position, rule) pair within one memo table, regardless of how many
// times siblings re-request it.
func TestPackratSingleInvocationPerPosition(t *testing.T) {
	var calls int
	counted := newRule("Counted", func(ctx ParseContext) (*ParseTree, bool) {
		calls++
		b, ok := ctx.byteAt(0)
		if !ok || b != 'a' {
			return nil, false
		}
		return newLeaf(ctx, intern("Counted"), 1), true
	})
	// Ord tries `counted` at the same position as Seq's first element
	// would, twice over, by referencing the same rule value from two
	// branches that both start at position 0.
	rule := Ord(Seq(counted, Char('z')), Seq(counted, Char('a')))
	ctx := NewParseContext("aa")
	if _, ok := rule.Match(ctx); !ok {
		t.Fatalf("expected a match")
	}
	if calls != 1 {
		t.Errorf("rule invoked %d times at the same position, want 1 (packrat memoization should have cached it)", calls)
	}
}
