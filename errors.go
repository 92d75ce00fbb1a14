package packrat

import "golang.org/x/xerrors"

// errStartPastEnd reports a context region request that reaches past the
// end of its text. It is used only by the defensive assertion in
// ParseContext.region; callers should treat this error as a bug in a
// rule's own length bookkeeping, not a recoverable condition.
func errStartPastEnd(end, length int) error {
	return xerrors.Errorf("packrat: region end %d past end of text (length %d)", end, length)
}
