package conninfo

import "fmt"

// SyntaxError reports a structurally malformed conninfo string: a bare
// keyword with no "=", an unterminated quoted value, a truncated percent
// escape, an out-of-range port, and so on. Offset is the rune offset of the
// offending token within the input, or -1 when no single position applies
// (most URI-level errors).
type SyntaxError struct {
	Offset int
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.Offset < 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s (at offset %d)", e.Reason, e.Offset)
}

// UnknownKeywordError reports a keyword that was decoded successfully but is
// not a recognized connection option. The message matches libpq's wording.
type UnknownKeywordError struct {
	Keyword string
}

func (e *UnknownKeywordError) Error() string {
	return fmt.Sprintf("invalid connection option %q", e.Keyword)
}

func syntaxErrorf(offset int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}
