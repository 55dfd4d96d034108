package hunk

import "encoding/binary"

func be(words ...uint32) []byte {
	out := make([]byte, 0, len(words)*4)
	for _, w := range words {
		out = binary.BigEndian.AppendUint32(out, w)
	}
	return out
}

type testHunk struct {
	class  MemoryClass
	code   []byte
	relocs []RelocGroup
}

// buildExe assembles a minimal executable: header, size table and one
// CODE[/RELOC32]/END group per hunk.
func buildExe(hunks ...testHunk) []byte {
	n := uint32(len(hunks))
	out := be(uint32(TagHeader), 0, n, 0, n-1)
	for _, h := range hunks {
		out = append(out, be(uint32(h.class)<<30|uint32(len(h.code)/4))...)
	}
	for _, h := range hunks {
		out = append(out, be(uint32(TagCode), uint32(len(h.code)/4))...)
		out = append(out, h.code...)
		if len(h.relocs) > 0 {
			out = append(out, relocBlock(h.relocs...)...)
		}
		out = append(out, be(uint32(TagEnd))...)
	}
	return out
}

func relocBlock(groups ...RelocGroup) []byte {
	out := be(uint32(TagReloc32))
	for _, g := range groups {
		out = append(out, be(uint32(len(g.Offsets)), uint32(g.Target))...)
		out = append(out, be(g.Offsets...)...)
	}
	return append(out, be(0)...)
}
