// Package hunk decodes Amiga hunk-format executables and links them into a
// flat, statically addressed memory image.
//
// Decoding is a strict pipeline: Parse produces Hunk records, Allocate
// assigns each one an address, Relocate patches their contents against
// those addresses and BuildImage lays the result out in one buffer. Each
// stage consumes the type produced by the previous one, so relocation can
// only happen once every hunk has an address.
package hunk

// A MemoryClass selects the memory region a hunk must be loaded into.
type MemoryClass uint8

const (
	MemAny  MemoryClass = 0
	MemChip MemoryClass = 1
	MemFast MemoryClass = 2
	// MemExtended means the size entry is followed by a word of extra flags.
	MemExtended MemoryClass = 3
)

func (c MemoryClass) String() string {
	switch c {
	case MemAny:
		return "any"
	case MemChip:
		return "chip"
	case MemFast:
		return "fast"
	case MemExtended:
		return "extended"
	default:
		return "invalid"
	}
}

// A RelocGroup lists the offsets in a hunk that hold absolute addresses into
// the Target hunk.
type RelocGroup struct {
	Target  int      // index of the referenced hunk in the size table
	Offsets []uint32 // byte offsets relative to the owning hunk's data
}

// A Hunk is one loadable unit declared in the header's size table.
type Hunk struct {
	Index  int
	Class  MemoryClass
	Size   uint32 // declared size in bytes
	Offset int    // position of the code bytes in the input
	Data   []byte // code bytes, len(Data) == Size once read
	Relocs []RelocGroup

	hasCode bool
}

// A Header is the HUNK_HEADER block at the start of an executable.
type Header struct {
	Libraries [][]byte // resident library names, bytes kept verbatim
	TableSize uint32
	First     uint32
	Last      uint32
	Hunks     []*Hunk // one empty record per size table entry
}

// A File is a fully parsed executable.
type File struct {
	Header
}
