package hunk

import (
	"bytes"
	"errors"
	"testing"
)

func TestCursorReads(t *testing.T) {
	c := NewCursor([]byte{0x00, 0x00, 0x03, 0xf3, 'a', 'b', 'c'})

	v, err := c.ReadU32()
	if err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	if v != 0x3f3 {
		t.Fatalf("ReadU32: got 0x%x, want 0x3f3", v)
	}
	if c.Offset() != 4 || c.Remaining() != 3 {
		t.Fatalf("position: offset=%d remaining=%d", c.Offset(), c.Remaining())
	}

	b, err := c.ReadBytes(2)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if !bytes.Equal(b, []byte("ab")) {
		t.Fatalf("ReadBytes: got %q", b)
	}

	if _, err := c.ReadU32(); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("ReadU32 past end: got %v, want ErrTruncatedInput", err)
	}
	if c.Remaining() != 1 {
		t.Fatalf("failed read moved cursor: remaining=%d", c.Remaining())
	}
	if _, err := c.ReadBytes(2); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("ReadBytes past end: got %v, want ErrTruncatedInput", err)
	}
	if err := c.Skip(1); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if c.Remaining() != 0 {
		t.Fatalf("Skip: remaining=%d", c.Remaining())
	}
}

func TestCursorTruncatedErrorOffset(t *testing.T) {
	c := NewCursor(make([]byte, 6))
	if _, err := c.ReadU32(); err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	_, err := c.ReadU32()
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}
	if e.Offset != 4 || e.Expected != 4 || e.Actual != 2 {
		t.Fatalf("unexpected context: %+v", e)
	}
}
