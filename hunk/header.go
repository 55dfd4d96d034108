package hunk

import "bytes"

const (
	classShift = 30
	sizeMask   = 0x3FFFFFFF
)

// ParseHeader consumes the HUNK_HEADER block: the leading tag, the resident
// library list and the hunk size table.
func ParseHeader(c *Cursor) (*Header, error) {
	start := c.Offset()
	v, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	tag := Tag(v)
	if tag.Kind() != tag || !tag.Known() {
		return nil, newError(ErrUnrecognizedHunkType, noHunk, start).
			withDetail("leading tag 0x%x", v)
	}
	if tag != TagHeader {
		return nil, newError(ErrNotExecutable, noHunk, start).withTag(tag).
			withDetail("file starts with %s", tag)
	}

	h := new(Header)
	if h.Libraries, err = readLibraries(c); err != nil {
		return nil, err
	}

	if h.TableSize, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if h.First, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if h.Last, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if span := int64(h.Last) - int64(h.First) + 1; span != int64(h.TableSize) {
		return nil, newError(ErrTableSizeMismatch, noHunk, c.Offset()-12).
			withValues(uint64(h.TableSize), uint64(span)).
			withDetail("first hunk %d, last hunk %d", h.First, h.Last)
	}
	// Every entry takes at least one longword.
	if uint64(h.TableSize)*4 > uint64(c.Remaining()) {
		return nil, newError(ErrTruncatedInput, noHunk, c.Offset()).
			withValues(uint64(h.TableSize)*4, uint64(c.Remaining())).
			withDetail("hunk size table")
	}

	h.Hunks = make([]*Hunk, 0, h.TableSize)
	for i := 0; i < int(h.TableSize); i++ {
		hk, err := readSizeEntry(c, i)
		if err != nil {
			return nil, err
		}
		h.Hunks = append(h.Hunks, hk)
	}
	return h, nil
}

// readLibraries reads the zero-terminated list of length-prefixed resident
// library names. Names keep any padding bytes.
func readLibraries(c *Cursor) ([][]byte, error) {
	var libs [][]byte
	for {
		words, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		if words == 0 {
			return libs, nil
		}
		n := uint64(words) * 4
		if n > uint64(c.Remaining()) {
			return nil, newError(ErrTruncatedInput, noHunk, c.Offset()).
				withValues(n, uint64(c.Remaining())).
				withDetail("resident library name %d", len(libs))
		}
		name, err := c.ReadBytes(int(n))
		if err != nil {
			return nil, err
		}
		libs = append(libs, bytes.Clone(name))
	}
}

func readSizeEntry(c *Cursor, index int) (*Hunk, error) {
	at := c.Offset()
	v, err := c.ReadU32()
	if err != nil {
		return nil, inHunk(err, index)
	}
	class := MemoryClass(v >> classShift)
	if class == MemExtended {
		flags, err := c.ReadU32()
		if err != nil {
			return nil, inHunk(err, index)
		}
		return nil, newError(ErrUnsupportedMemFlags, index, at).
			withDetail("additional flags 0x%x", flags)
	}
	return &Hunk{
		Index:  index,
		Class:  class,
		Size:   (v & sizeMask) * 4,
		Offset: -1,
	}, nil
}
