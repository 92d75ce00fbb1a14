package packrat

// Parse is the library's top-level convenience: it builds a
// ParseContext over text with a fresh memo table, invokes rule against
// it, and returns the resulting tree. ok is false if rule did not match
// at position 0 — a caller after a diagnostic beyond that should inspect
// the ParseContext it builds itself via NewParseContext instead.
func Parse(rule Rule, text string, opts ...Option) (tree *ParseTree, ok bool) {
	ctx := NewParseContext(text, opts...)
	end := ctx.tracer.StartSpan("Parse")
	defer end()
	return rule.Match(ctx)
}
