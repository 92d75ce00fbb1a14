package packrat

// Rule is the single capability every primitive matcher and combinator
// implements: match a context, yielding a tree on success or no match.
// Every Rule carries an Identity — two rules with the same structural
// description (or the same user-assigned name) have equal Identities.
type Rule interface {
	// Identity returns the stable, equality-comparable token naming this
	// rule composition. Used as the memo key's rule component and as the
	// input to a compression predicate.
	Identity() Identity

	// Match attempts this rule against ctx. A returned tree t means the
	// rule consumed t.Len() bytes starting at ctx.Position(); a nil tree
	// with ok=false means the rule did not apply here.
	Match(ctx ParseContext) (tree *ParseTree, ok bool)
}

// matchFunc adapts a plain function to the Rule interface's Match method,
// used by every primitive/combinator constructor below so the packrat
// memoization protocol (consult the table, compute on miss, insert
// before returning) lives in one place instead of being hand-copied into
// every rule type.
type matchFunc func(ctx ParseContext) (*ParseTree, bool)

// rule is the common representation backing every primitive and
// combinator: an identity plus the logic to compute a result on a memo
// miss. It implements Rule by wrapping compute with the packrat protocol.
type rule struct {
	id      Identity
	compute matchFunc
}

func (r *rule) Identity() Identity { return r.id }

// Match implements the packrat protocol: consult the memo table at
// ctx.key(self), return a cached result if present, otherwise compute,
// memoize both outcomes, and return.
func (r *rule) Match(ctx ParseContext) (*ParseTree, bool) {
	key := ctx.key(r.id)
	if tree, matched, hit := ctx.table.lookup(key); hit {
		ctx.logger.Debugf("packrat: memo hit %s@%d matched=%v", r.id, ctx.start, matched)
		return tree, matched
	}
	tree, ok := r.compute(ctx)
	ctx.table.insert(key, tree, ok)
	ctx.logger.Debugf("packrat: %s@%d matched=%v len=%d", r.id, ctx.start, ok, tree.Len())
	return tree, ok
}

// newRule interns desc as this rule's Identity and pairs it with compute.
func newRule(desc string, compute matchFunc) Rule {
	return &rule{id: intern(desc), compute: compute}
}
