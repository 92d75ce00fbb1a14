package packrat

import "strings"

// Seq returns a rule that matches iff every rule in rules matches in
// order, each one picking up where the previous left off. On any child's
// failure the whole sequence fails; the bytes provisionally consumed by
// earlier children are not retained in the context the caller sees
// (sequence matching is all-or-nothing).
func Seq(rules ...Rule) Rule {
	desc := seqDesc(rules)
	return newRule(desc, func(ctx ParseContext) (*ParseTree, bool) {
		children := make([]*ParseTree, 0, len(rules))
		child := ctx
		consumed := 0
		for _, r := range rules {
			tree, ok := r.Match(child.next())
			if !ok {
				return nil, false
			}
			children = append(children, tree)
			consumed += tree.Len()
			child.accum = consumed
		}
		return newNode(ctx, intern(desc), consumed, children), true
	})
}

func seqDesc(rules []Rule) string {
	return "Seq" + joinIdentities(rules)
}

// Ord returns a rule that tries each rule in rules in order and accepts
// the first that matches (prioritized choice). The winning child is
// wrapped in its own node tagged with Ord's identity, so compression can
// see — and elide — the wrapper independently of the child it picked.
func Ord(rules ...Rule) Rule {
	desc := "Ord" + joinIdentities(rules)
	return newRule(desc, func(ctx ParseContext) (*ParseTree, bool) {
		for _, r := range rules {
			if tree, ok := r.Match(ctx.next()); ok {
				return newNode(ctx, intern(desc), tree.Len(), []*ParseTree{tree}), true
			}
		}
		return nil, false
	})
}

// Optional returns a rule that matches r if possible, and otherwise
// succeeds anyway with an empty, childless match. Optional never fails.
func Optional(r Rule) Rule {
	desc := "Optional(" + r.Identity().String() + ")"
	return newRule(desc, func(ctx ParseContext) (*ParseTree, bool) {
		if tree, ok := r.Match(ctx.next()); ok {
			return newNode(ctx, intern(desc), tree.Len(), []*ParseTree{tree}), true
		}
		return newNode(ctx, intern(desc), 0, nil), true
	})
}

// Plus returns a rule that matches one or more repetitions of r,
// consuming greedily until r stops matching. Zero repetitions is a
// failure.
func Plus(r Rule) Rule {
	desc := "Plus(" + r.Identity().String() + ")"
	return newRule(desc, func(ctx ParseContext) (*ParseTree, bool) {
		children, consumed := repeat(ctx, r)
		if len(children) == 0 {
			return nil, false
		}
		return newNode(ctx, intern(desc), consumed, children), true
	})
}

// Asterisk returns a rule that matches zero or more repetitions of r. It
// never fails; zero repetitions produces an empty, childless match.
func Asterisk(r Rule) Rule {
	desc := "Asterisk(" + r.Identity().String() + ")"
	return newRule(desc, func(ctx ParseContext) (*ParseTree, bool) {
		children, consumed := repeat(ctx, r)
		return newNode(ctx, intern(desc), consumed, children), true
	})
}

// repeat drives r against ctx repeatedly, advancing past each match,
// until r fails to match. It is the shared consumption loop behind Plus
// and Asterisk; they differ only in whether zero matches is a failure.
func repeat(ctx ParseContext, r Rule) ([]*ParseTree, int) {
	var children []*ParseTree
	child := ctx
	consumed := 0
	for {
		tree, ok := r.Match(child.next())
		if !ok {
			break
		}
		children = append(children, tree)
		consumed += tree.Len()
		child.accum = consumed
	}
	return children, consumed
}

// Not returns a non-consuming negative-lookahead rule: it succeeds (with
// an empty match) iff r does not match here, and fails iff r does.
func Not(r Rule) Rule {
	desc := "Not(" + r.Identity().String() + ")"
	return newRule(desc, func(ctx ParseContext) (*ParseTree, bool) {
		if _, ok := r.Match(ctx.next()); ok {
			return nil, false
		}
		return newNode(ctx, intern(desc), 0, nil), true
	})
}

func joinIdentities(rules []Rule) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, r := range rules {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(r.Identity().String())
	}
	b.WriteByte(']')
	return b.String()
}
