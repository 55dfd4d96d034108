package hunk

// An Allocated hunk has been assigned its load address.
type Allocated struct {
	*Hunk
	Address uint32
}

// End returns the first address past the hunk.
func (a Allocated) End() uint64 {
	return uint64(a.Address) + uint64(a.Size)
}

// A Layout is the result of address assignment for every hunk of a file.
type Layout struct {
	Hunks []Allocated // in hunk index order
	Low   uint32      // final chip cursor, the lowest allocated address
	High  uint32      // final fast cursor, one past the highest allocated byte
	Entry uint32      // address of hunk 0
}

// Allocate assigns addresses to hunks. Chip hunks are packed downward from
// cfg.Base and all other hunks upward from it, each class in index order.
func Allocate(hunks []*Hunk, cfg Config) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	chip, fast := cfg.Base, cfg.Base
	out := make([]Allocated, len(hunks))
	for i, hk := range hunks {
		switch hk.Class {
		case MemChip:
			if hk.Size > chip-cfg.ChipFloor {
				return nil, newError(ErrChipMemoryExhausted, hk.Index, noHunk).
					withValues(uint64(hk.Size), uint64(chip-cfg.ChipFloor)).
					withDetail("chip cursor 0x%x, floor 0x%x", chip, cfg.ChipFloor)
			}
			chip -= hk.Size
			out[i] = Allocated{Hunk: hk, Address: chip}
		case MemAny, MemFast:
			if uint64(fast)+uint64(hk.Size) > uint64(cfg.FastCeiling) {
				return nil, newError(ErrFastMemoryExhausted, hk.Index, noHunk).
					withValues(uint64(hk.Size), uint64(cfg.FastCeiling-fast)).
					withDetail("fast cursor 0x%x, ceiling 0x%x", fast, cfg.FastCeiling)
			}
			out[i] = Allocated{Hunk: hk, Address: fast}
			fast += hk.Size
		default:
			return nil, newError(ErrUnsupportedMemFlags, hk.Index, noHunk).
				withDetail("memory class %s", hk.Class)
		}
	}

	l := &Layout{Hunks: out, Low: chip, High: fast, Entry: cfg.Base}
	if len(out) > 0 {
		l.Entry = out[0].Address
	}
	return l, nil
}
