package hunk

import (
	"cmp"
	"slices"
)

// An Image is a flat memory image ready to be copied to Base.
type Image struct {
	Data  []byte
	Base  uint32      // address of Data[0]
	Entry uint32      // address of hunk 0
	Hunks []Allocated // placements, in hunk index order
}

// BuildImage lays out the patched hunks at their addresses, starting at
// l.Low, and fills gaps with zeros. Overlapping hunks are an error.
func BuildImage(l *Layout, hunks []Relocated) (*Image, error) {
	order := slices.Clone(hunks)
	slices.SortStableFunc(order, func(a, b Relocated) int {
		return cmp.Compare(a.Address, b.Address)
	})

	var size uint64
	for _, r := range order {
		if end := r.End(); end > uint64(l.Low) && end-uint64(l.Low) > size {
			size = end - uint64(l.Low)
		}
	}

	data := make([]byte, 0, size)
	pos := uint64(l.Low)
	for _, r := range order {
		addr := uint64(r.Address)
		if addr < pos {
			return nil, newError(ErrAddressCollision, r.Index, noHunk).
				withValues(pos, addr).
				withDetail("hunk at 0x%x overlaps bytes up to 0x%x", addr, pos)
		}
		data = append(data, make([]byte, addr-pos)...)
		data = append(data, r.Patched...)
		pos = r.End()
	}

	placed := make([]Allocated, len(hunks))
	for i, r := range hunks {
		placed[i] = r.Allocated
	}
	return &Image{Data: data, Base: l.Low, Entry: l.Entry, Hunks: placed}, nil
}

// Load runs the whole pipeline over an executable held in memory.
func Load(data []byte, cfg Config) (*Image, error) {
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	l, err := Allocate(f.Hunks, cfg)
	if err != nil {
		return nil, err
	}
	patched, err := Relocate(l)
	if err != nil {
		return nil, err
	}
	return BuildImage(l, patched)
}
