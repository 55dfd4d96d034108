package emit

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sliverarmory/unhunker/hunk"
)

// WriteReport prints the structure of a parsed executable: resident
// libraries, the size table and each hunk's relocations.
func WriteReport(w io.Writer, f *hunk.File) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "File starts with %s.\n", hunk.TagHeader)
	if len(f.Libraries) > 0 {
		names := make([]string, len(f.Libraries))
		for i, lib := range f.Libraries {
			names[i] = fmt.Sprintf("%q", LibraryName(lib))
		}
		fmt.Fprintf(tw, "Resident libraries: %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(tw, "Hunk table: %d hunks (%d..%d)\n\n", f.TableSize, f.First, f.Last)

	fmt.Fprintln(tw, "HUNK\tSIZE\tMEMORY\tFILE OFFSET\tRELOCS")
	for _, h := range f.Hunks {
		n := 0
		for _, g := range h.Relocs {
			n += len(g.Offsets)
		}
		fmt.Fprintf(tw, "%d\t0x%x\t%s\t0x%x\t%d\n", h.Index, h.Size, h.Class, h.Offset, n)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, h := range f.Hunks {
		for _, g := range h.Relocs {
			offs := make([]string, len(g.Offsets))
			for i, off := range g.Offsets {
				offs[i] = fmt.Sprintf("0x%x", off)
			}
			if _, err := fmt.Fprintf(w, "hunk %d -> hunk %d: %s\n", h.Index, g.Target, strings.Join(offs, " ")); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteSummary prints where each hunk of img was placed.
func WriteSummary(w io.Writer, img *hunk.Image) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Load base: 0x%x\nEntry point: 0x%x\nImage size: 0x%x\n\n", img.Base, img.Entry, len(img.Data))
	fmt.Fprintln(tw, "HUNK\tMEMORY\tADDRESS\tEND")
	for _, a := range img.Hunks {
		fmt.Fprintf(tw, "%d\t%s\t0x%x\t0x%x\n", a.Index, a.Class, a.Address, a.End())
	}
	return tw.Flush()
}

// LibraryName decodes a resident library name for display. Names are
// single-byte Latin-1 text padded with NULs to a longword boundary.
func LibraryName(raw []byte) string {
	raw = bytes.TrimRight(raw, "\x00")
	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return string(runes)
}
