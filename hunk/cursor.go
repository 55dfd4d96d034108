package hunk

import "golang.org/x/crypto/cryptobyte"

// A Cursor reads big-endian fields sequentially from an in-memory buffer.
type Cursor struct {
	s    cryptobyte.String
	size int
}

// NewCursor returns a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{s: cryptobyte.String(data), size: len(data)}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.size - len(c.s)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.s)
}

// ReadU32 consumes one big-endian longword.
func (c *Cursor) ReadU32() (uint32, error) {
	var v uint32
	if !c.s.ReadUint32(&v) {
		return 0, c.truncated(4)
	}
	return v, nil
}

// ReadBytes consumes n bytes. The returned slice aliases the input buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	var out []byte
	if n < 0 || !c.s.ReadBytes(&out, n) {
		return nil, c.truncated(n)
	}
	return out, nil
}

// Skip advances past n bytes without returning them.
func (c *Cursor) Skip(n int) error {
	if n < 0 || !c.s.Skip(n) {
		return c.truncated(n)
	}
	return nil
}

func (c *Cursor) truncated(want int) error {
	return newError(ErrTruncatedInput, noHunk, c.Offset()).
		withValues(uint64(want), uint64(len(c.s)))
}
