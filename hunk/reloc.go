package hunk

import (
	"cmp"
	"encoding/binary"
	"slices"
)

// A Fixup adds Value to the big-endian longword at Offset.
type Fixup struct {
	Offset uint32
	Value  uint32
}

// A Relocated hunk carries its contents patched for its final address.
type Relocated struct {
	Allocated
	Patched []byte
}

// Relocate patches every hunk of l. All target addresses come from l, so
// every hunk has been allocated before any is patched.
func Relocate(l *Layout) ([]Relocated, error) {
	out := make([]Relocated, 0, len(l.Hunks))
	for _, a := range l.Hunks {
		fixups, err := l.fixups(a)
		if err != nil {
			return nil, err
		}
		patched, err := RelocateHunk(a.Data, fixups)
		if err != nil {
			return nil, inHunk(err, a.Index)
		}
		out = append(out, Relocated{Allocated: a, Patched: patched})
	}
	return out, nil
}

// fixups flattens the relocation groups of a into absolute fixups.
func (l *Layout) fixups(a Allocated) ([]Fixup, error) {
	var fixups []Fixup
	for _, g := range a.Relocs {
		if g.Target < 0 || g.Target >= len(l.Hunks) {
			return nil, newError(ErrRelocationTarget, a.Index, noHunk).
				withDetail("target hunk %d of %d", g.Target, len(l.Hunks))
		}
		addr := l.Hunks[g.Target].Address
		for _, off := range g.Offsets {
			fixups = append(fixups, Fixup{Offset: off, Value: addr})
		}
	}
	return fixups, nil
}

// RelocateHunk returns a copy of data with fixups applied. Fixups are
// applied in offset order; an offset that overlaps the previous patch or
// runs past the end of data is an error.
func RelocateHunk(data []byte, fixups []Fixup) ([]byte, error) {
	sorted := slices.Clone(fixups)
	slices.SortStableFunc(sorted, func(a, b Fixup) int {
		return cmp.Compare(a.Offset, b.Offset)
	})

	out := make([]byte, 0, len(data))
	pos := uint64(0)
	for _, f := range sorted {
		off := uint64(f.Offset)
		if off < pos {
			return nil, newError(ErrRelocationOrdering, noHunk, int(off)).
				withDetail("overlaps patch ending at 0x%x", pos)
		}
		if off+4 > uint64(len(data)) {
			return nil, newError(ErrRelocationOrdering, noHunk, int(off)).
				withDetail("past end of hunk data (0x%x bytes)", len(data))
		}
		out = append(out, data[pos:off]...)
		v := binary.BigEndian.Uint32(data[off:])
		out = binary.BigEndian.AppendUint32(out, v+f.Value)
		pos = off + 4
	}
	return append(out, data[pos:]...), nil
}
