package hunk

import "fmt"

// A Tag identifies a block in a hunk file. Body tags may carry memory class
// bits in bits 30-31; those are stripped by Tag.Kind.
type Tag uint32

const (
	TagUnit         Tag = 0x3E7
	TagName         Tag = 0x3E8
	TagCode         Tag = 0x3E9
	TagData         Tag = 0x3EA
	TagBSS          Tag = 0x3EB
	TagReloc32      Tag = 0x3EC
	TagReloc16      Tag = 0x3ED
	TagReloc8       Tag = 0x3EE
	TagExt          Tag = 0x3EF
	TagSymbol       Tag = 0x3F0
	TagDebug        Tag = 0x3F1
	TagEnd          Tag = 0x3F2
	TagHeader       Tag = 0x3F3
	TagOverlay      Tag = 0x3F5
	TagBreak        Tag = 0x3F6
	TagDRel32       Tag = 0x3F7
	TagDRel16       Tag = 0x3F8
	TagDRel8        Tag = 0x3F9
	TagLib          Tag = 0x3FA
	TagIndex        Tag = 0x3FB
	TagReloc32Short Tag = 0x3FC
	TagRelReloc32   Tag = 0x3FD
	TagAbsReloc16   Tag = 0x3FE
)

const tagKindMask = 0x3FFFFFFF

var tagNames = map[Tag]string{
	TagUnit:         "HUNK_UNIT",
	TagName:         "HUNK_NAME",
	TagCode:         "HUNK_CODE",
	TagData:         "HUNK_DATA",
	TagBSS:          "HUNK_BSS",
	TagReloc32:      "HUNK_RELOC32",
	TagReloc16:      "HUNK_RELOC16",
	TagReloc8:       "HUNK_RELOC8",
	TagExt:          "HUNK_EXT",
	TagSymbol:       "HUNK_SYMBOL",
	TagDebug:        "HUNK_DEBUG",
	TagEnd:          "HUNK_END",
	TagHeader:       "HUNK_HEADER",
	TagOverlay:      "HUNK_OVERLAY",
	TagBreak:        "HUNK_BREAK",
	TagDRel32:       "HUNK_DREL32",
	TagDRel16:       "HUNK_DREL16",
	TagDRel8:        "HUNK_DREL8",
	TagLib:          "HUNK_LIB",
	TagIndex:        "HUNK_INDEX",
	TagReloc32Short: "HUNK_RELOC32SHORT",
	TagRelReloc32:   "HUNK_RELRELOC32",
	TagAbsReloc16:   "HUNK_ABSRELOC16",
}

// Kind returns the tag with the memory class bits cleared.
func (t Tag) Kind() Tag {
	return t & tagKindMask
}

// Known reports whether the tag names a block type of the hunk format.
func (t Tag) Known() bool {
	_, ok := tagNames[t.Kind()]
	return ok
}

func (t Tag) String() string {
	if name, ok := tagNames[t.Kind()]; ok {
		return name
	}
	return fmt.Sprintf("0x%x", uint32(t))
}
