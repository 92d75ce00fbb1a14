package packrat

import "fmt"

// Start succeeds, consuming nothing, only at the very beginning of the
// input.
func Start() Rule {
	return newRule("Start", func(ctx ParseContext) (*ParseTree, bool) {
		if ctx.start != 0 {
			return nil, false
		}
		return newLeaf(ctx, startID, 0), true
	})
}

// End succeeds, consuming nothing, only at the end of the input.
func End() Rule {
	return newRule("End", func(ctx ParseContext) (*ParseTree, bool) {
		if ctx.start != ctx.Len() {
			return nil, false
		}
		return newLeaf(ctx, endID, 0), true
	})
}

// Nothing always succeeds, consuming nothing.
func Nothing() Rule {
	return newRule("Nothing", func(ctx ParseContext) (*ParseTree, bool) {
		return newLeaf(ctx, nothingID, 0), true
	})
}

// Any succeeds and consumes exactly one byte, provided one is available,
// matching PEG convention and the combinator's name.
func Any() Rule {
	return newRule("Any", func(ctx ParseContext) (*ParseTree, bool) {
		if ctx.start >= ctx.Len() {
			return nil, false
		}
		return newLeaf(ctx, anyID, 1), true
	})
}

// Char succeeds and consumes one byte if it equals c.
func Char(c byte) Rule {
	desc := fmt.Sprintf("Char(%q)", c)
	return newRule(desc, func(ctx ParseContext) (*ParseTree, bool) {
		b, ok := ctx.byteAt(0)
		if !ok || b != c {
			return nil, false
		}
		return newLeaf(ctx, intern(desc), 1), true
	})
}

// CharRange succeeds and consumes one byte if it falls within [lo, hi]
// inclusive.
func CharRange(lo, hi byte) Rule {
	desc := fmt.Sprintf("CharRange(%q,%q)", lo, hi)
	return newRule(desc, func(ctx ParseContext) (*ParseTree, bool) {
		b, ok := ctx.byteAt(0)
		if !ok || b < lo || b > hi {
			return nil, false
		}
		return newLeaf(ctx, intern(desc), 1), true
	})
}

// Identities for the fixed, argument-less primitives are interned once so
// that every Start()/End()/Nothing()/Any() call — however many times a
// grammar author writes it — shares one Identity: the same composition
// appearing in two places must compare equal.
var (
	startID   = intern("Start")
	endID     = intern("End")
	nothingID = intern("Nothing")
	anyID     = intern("Any")
)
