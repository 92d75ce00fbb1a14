package packrat

// Active reports whether a rule's Identity should survive compression.
// Grammar authors typically build one from a set membership check over
// the Named identities they consider semantically significant.
type Active func(id Identity) bool

// ActiveSet builds an Active predicate from a list of rules: their
// identities are the "active" set, everything else is silent.
func ActiveSet(rules ...Rule) Active {
	ids := make(map[Identity]struct{}, len(rules))
	for _, r := range rules {
		ids[r.Identity()] = struct{}{}
	}
	return func(id Identity) bool {
		_, ok := ids[id]
		return ok
	}
}

// Compress rewrites tree so that every node whose Instance is
// not active() is spliced out of the tree, promoting its (already
// compressed) children to its parent; active nodes are kept, with their
// children recursively compressed. A tree may compress to zero, one, or
// more roots — compressing a single silent leaf with no children yields
// an empty slice.
func Compress(tree *ParseTree, active Active) []*ParseTree {
	if tree == nil {
		return nil
	}
	var collected []*ParseTree
	for _, child := range tree.Subtrees {
		collected = append(collected, Compress(child, active)...)
	}
	if active(tree.Instance) {
		return []*ParseTree{{Region: tree.Region, Instance: tree.Instance, Subtrees: collected}}
	}
	return collected
}
