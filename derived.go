package packrat

// Separator matches zero or more ASCII whitespace bytes:
// tab, space, newline, carriage return, or vertical tab.
func Separator() Rule {
	return Asterisk(Ord(Char('\t'), Char(' '), Char('\n'), Char('\r'), Char('\v')))
}

// Interleaved builds Seq(rules[0], sep, rules[1], sep, ..., rules[n-1])
// from a separator rule and one or more grammar rules. With a single
// rule it degenerates to that rule, unwrapped.
func Interleaved(sep Rule, rules ...Rule) Rule {
	if len(rules) == 0 {
		return Nothing()
	}
	if len(rules) == 1 {
		return rules[0]
	}
	interleaved := make([]Rule, 0, len(rules)*2-1)
	for i, r := range rules {
		if i > 0 {
			interleaved = append(interleaved, sep)
		}
		interleaved = append(interleaved, r)
	}
	return Seq(interleaved...)
}

// SpaceInterleaved is Interleaved with Separator as the gap rule — the
// common case of whitespace-tolerant sequencing.
func SpaceInterleaved(rules ...Rule) Rule {
	return Interleaved(Separator(), rules...)
}

// Keyword matches the exact byte sequence s, as Seq(Char(s[0]), Char(s[1]), ...).
func Keyword(s string) Rule {
	chars := make([]Rule, len(s))
	for i := 0; i < len(s); i++ {
		chars[i] = Char(s[i])
	}
	return Seq(chars...)
}

// Named gives body a stable, user-chosen Identity, distinguishing it from
// an otherwise structurally-identical rule composed inline elsewhere in
// the grammar: the name itself becomes the rule identity. Named does not
// wrap body in an extra tree layer (unlike Ord's choice wrapper); the
// node it produces carries body's region and children, retagged with
// name's identity, so that grammar authors can target Named rules
// directly with a compression predicate.
func Named(name string, body Rule) Rule {
	id := intern(name)
	return &rule{
		id: id,
		compute: func(ctx ParseContext) (*ParseTree, bool) {
			ctx.logger.Debugf("packrat: entering named rule %q@%d", name, ctx.start)
			endSpan := ctx.tracer.StartSpan(name)
			defer endSpan()
			tree, ok := body.Match(ctx)
			if !ok {
				return nil, false
			}
			return &ParseTree{Region: tree.Region, Instance: id, Subtrees: tree.Subtrees}, true
		},
	}
}
