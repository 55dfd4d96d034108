package emit

import (
	"fmt"
	"io"

	"github.com/marcinbor85/gohex"

	"github.com/sliverarmory/unhunker/hunk"
)

const ihexLineLength = 16

// WriteIntelHex writes img as Intel HEX records at its load base, with the
// entry point as the start linear address.
func WriteIntelHex(w io.Writer, img *hunk.Image) error {
	mem := gohex.NewMemory()
	mem.SetStartAddress(img.Entry)
	if len(img.Data) > 0 {
		if err := mem.AddBinary(img.Base, img.Data); err != nil {
			return fmt.Errorf("add image at 0x%x: %w", img.Base, err)
		}
	}
	return mem.DumpIntelHex(w, ihexLineLength)
}
