package hunk

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyInput           = errors.New("empty hunk file")
	ErrTruncatedInput       = errors.New("truncated input")
	ErrUnrecognizedHunkType = errors.New("unrecognized hunk type")
	ErrNotExecutable        = errors.New("not a loadable executable")
	ErrUnsupportedHunkKind  = errors.New("unsupported hunk kind")
	ErrUnsupportedMemFlags  = errors.New("unsupported memory flags")
	ErrTableSizeMismatch    = errors.New("hunk table size mismatch")
	ErrLengthMismatch       = errors.New("hunk length mismatch")
	ErrChipMemoryExhausted  = errors.New("chip memory exhausted")
	ErrFastMemoryExhausted  = errors.New("fast memory exhausted")
	ErrRelocationOrdering   = errors.New("relocation offsets out of order")
	ErrRelocationTarget     = errors.New("relocation target out of range")
	ErrAddressCollision     = errors.New("address collision")
	ErrInvalidConfig        = errors.New("invalid memory configuration")
)

// noHunk marks an Error that is not tied to a particular hunk.
const noHunk = -1

// An Error is a decoding failure with enough context to diagnose it without
// re-running. Kind is one of the Err* sentinels and is what errors.Is
// matches against.
type Error struct {
	Kind     error
	Hunk     int    // hunk index, or -1
	Offset   int    // byte offset in the input or within the hunk, or -1
	Tag      Tag    // offending tag, when Kind concerns a tag
	Expected uint64 // expected value, when HasValues is set
	Actual   uint64 // actual value, when HasValues is set
	Detail   string

	HasValues bool
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Hunk >= 0 {
		fmt.Fprintf(&b, ": hunk %d", e.Hunk)
	}
	if e.Offset >= 0 {
		fmt.Fprintf(&b, ": offset 0x%x", e.Offset)
	}
	if e.Tag != 0 {
		fmt.Fprintf(&b, ": tag %s", e.Tag)
	}
	if e.HasValues {
		fmt.Fprintf(&b, ": expected 0x%x, got 0x%x", e.Expected, e.Actual)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, hunk, offset int) *Error {
	return &Error{Kind: kind, Hunk: hunk, Offset: offset}
}

func (e *Error) withTag(t Tag) *Error {
	e.Tag = t
	return e
}

func (e *Error) withValues(expected, actual uint64) *Error {
	e.Expected = expected
	e.Actual = actual
	e.HasValues = true
	return e
}

func (e *Error) withDetail(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// inHunk attaches a hunk index to err if it is an *Error without one.
func inHunk(err error, index int) error {
	var e *Error
	if errors.As(err, &e) && e.Hunk < 0 {
		e.Hunk = index
	}
	return err
}
