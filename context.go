package packrat

import "github.com/corvidlang/packrat/tracing"

// MemoKey identifies one memoized result: the absolute position a rule was
// tried at, paired with the rule's identity. The accumulator is
// intentionally excluded — memo keys are always absolute positions.
type MemoKey struct {
	Position int
	Rule     Identity
}

// ParseContext carries the input text, the current position, the shared
// memo table for the whole parse, and the in-progress sequence
// accumulator. It is value-typed and cheap to copy or derive: copying a
// ParseContext copies two ints, a string header, a memo-table pointer and
// two interface values.
type ParseContext struct {
	table  *MemoTable
	text   string
	start  int
	accum  int
	logger tracing.Logger
	tracer tracing.Tracer
}

// NewParseContext builds a ParseContext at the start of text with a fresh
// memo table. It is the entry point a caller uses to drive a grammar
// directly instead of going through the Parse convenience function.
func NewParseContext(text string, opts ...Option) ParseContext {
	ctx := ParseContext{
		table:  newMemoTable(),
		text:   text,
		logger: tracing.NopLogger(),
		tracer: tracing.NopTracer(),
	}
	for _, opt := range opts {
		opt(&ctx)
	}
	return ctx
}

// Option configures a ParseContext built by NewParseContext or Parse.
type Option func(*ParseContext)

// WithLogger attaches a structured logger that receives rule match
// diagnostics. Nil disables logging (the default).
func WithLogger(l tracing.Logger) Option {
	return func(c *ParseContext) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer attaches an OpenTelemetry-backed tracer that opens a span
// around Parse and around every Named rule's match.
func WithTracer(t tracing.Tracer) Option {
	return func(c *ParseContext) {
		if t != nil {
			c.tracer = t
		}
	}
}

// key returns the memo key for rule id at this context's current start
// position.
func (c ParseContext) key(id Identity) MemoKey {
	return MemoKey{Position: c.start, Rule: id}
}

// next returns a fresh context positioned past whatever this context's
// accumulator has consumed so far, with the accumulator reset to zero. It
// is how a sequence or repetition combinator advances its child context
// past siblings already matched.
func (c ParseContext) next() ParseContext {
	c.start += c.accum
	c.accum = 0
	return c
}

// Position returns the byte offset this context begins matching at.
func (c ParseContext) Position() int { return c.start }

// Len returns the length of the input text.
func (c ParseContext) Len() int { return len(c.text) }

// byteAt returns the byte offset bytes past the context's current
// position and whether that position is within bounds.
func (c ParseContext) byteAt(offset int) (byte, bool) {
	at := c.start + offset
	if at < 0 || at >= len(c.text) {
		return 0, false
	}
	return c.text[at], true
}

// region slices the context's text starting at start_position, for
// length bytes. The returned string shares the backing array of the
// original input — it is a view, not a copy.
//
// start_position+length exceeding the text length is a programmer error;
// a well-behaved rule never requests more bytes than remain, so this
// panics rather than silently truncating or reallocating.
func (c ParseContext) region(length int) string {
	if c.start+length > len(c.text) {
		panic(errStartPastEnd(c.start+length, len(c.text)))
	}
	return c.text[c.start : c.start+length]
}
