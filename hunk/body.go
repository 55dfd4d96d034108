package hunk

// ReadBodies reads one body group per entry of the size table: a HUNK_CODE
// block, any number of HUNK_RELOC32 blocks and a closing HUNK_END. The
// records in h.Hunks are populated in place and returned.
func ReadBodies(c *Cursor, h *Header) ([]*Hunk, error) {
	for _, hk := range h.Hunks {
		if err := readBodyGroup(c, h, hk); err != nil {
			return nil, inHunk(err, hk.Index)
		}
	}
	return h.Hunks, nil
}

func readBodyGroup(c *Cursor, h *Header, hk *Hunk) error {
	for {
		at := c.Offset()
		v, err := c.ReadU32()
		if err != nil {
			return err
		}
		tag := Tag(v)
		switch tag.Kind() {
		case TagCode:
			if hk.hasCode {
				return newError(ErrUnsupportedHunkKind, hk.Index, at).withTag(tag).
					withDetail("second code block in one hunk")
			}
			if err := readCode(c, hk); err != nil {
				return err
			}
		case TagReloc32:
			if err := readReloc32(c, h, hk); err != nil {
				return err
			}
		case TagEnd:
			if !hk.hasCode {
				return newError(ErrLengthMismatch, hk.Index, at).
					withValues(uint64(hk.Size), 0).
					withDetail("hunk ended without a code block")
			}
			return nil
		default:
			return newError(ErrUnsupportedHunkKind, hk.Index, at).withTag(tag)
		}
	}
}

func readCode(c *Cursor, hk *Hunk) error {
	at := c.Offset()
	words, err := c.ReadU32()
	if err != nil {
		return err
	}
	n := uint64(words) * 4
	if n != uint64(hk.Size) {
		return newError(ErrLengthMismatch, hk.Index, at).withValues(uint64(hk.Size), n)
	}
	hk.Offset = c.Offset()
	if hk.Data, err = c.ReadBytes(int(n)); err != nil {
		return err
	}
	hk.hasCode = true
	return nil
}

// readReloc32 appends every (count, target, offsets) group of one
// HUNK_RELOC32 block to hk.Relocs.
func readReloc32(c *Cursor, h *Header, hk *Hunk) error {
	for {
		count, err := c.ReadU32()
		if err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		at := c.Offset()
		target, err := c.ReadU32()
		if err != nil {
			return err
		}
		rel := int64(target) - int64(h.First)
		if rel < 0 || rel >= int64(len(h.Hunks)) {
			return newError(ErrRelocationTarget, hk.Index, at).
				withDetail("target hunk %d outside table [%d, %d]", target, h.First, h.Last)
		}
		if uint64(count)*4 > uint64(c.Remaining()) {
			return newError(ErrTruncatedInput, hk.Index, c.Offset()).
				withValues(uint64(count)*4, uint64(c.Remaining()))
		}
		offsets := make([]uint32, count)
		for i := range offsets {
			if offsets[i], err = c.ReadU32(); err != nil {
				return err
			}
		}
		hk.Relocs = append(hk.Relocs, RelocGroup{Target: int(rel), Offsets: offsets})
	}
}

// Parse decodes the header and all hunk bodies of an executable.
func Parse(data []byte) (*File, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	c := NewCursor(data)
	h, err := ParseHeader(c)
	if err != nil {
		return nil, err
	}
	if _, err := ReadBodies(c, h); err != nil {
		return nil, err
	}
	return &File{Header: *h}, nil
}
