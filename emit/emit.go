// Package emit persists decoded images and prints human-readable reports.
package emit

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/sliverarmory/unhunker/hunk"
)

// A Format selects how an image is written to disk.
type Format string

const (
	FormatMemdump  Format = "memdump"
	FormatIntelHex Format = "ihex"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatMemdump, FormatIntelHex:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected %s or %s)", s, FormatMemdump, FormatIntelHex)
	}
}

func (f Format) ext() string {
	if f == FormatIntelHex {
		return "hex"
	}
	return "memdump"
}

// OutputName returns "<name>-0x<base>.<ext>" for the executable at input.
func OutputName(input string, base uint32, f Format) string {
	return fmt.Sprintf("%s-0x%x.%s", filepath.Base(input), base, f.ext())
}

// MemdumpName returns the memdump file name for the executable at input.
func MemdumpName(input string, base uint32) string {
	return OutputName(input, base, FormatMemdump)
}

// Write stores img in dir using format f and returns the written path.
func Write(dir, input string, img *hunk.Image, f Format) (string, error) {
	var payload []byte
	switch f {
	case FormatMemdump:
		payload = img.Data
	case FormatIntelHex:
		var buf bytes.Buffer
		if err := WriteIntelHex(&buf, img); err != nil {
			return "", err
		}
		payload = buf.Bytes()
	default:
		return "", fmt.Errorf("unknown output format %q", f)
	}

	path := filepath.Join(dir, OutputName(input, img.Base, f))
	if err := writeFile(path, payload); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// WriteMemdump stores the raw image bytes in dir.
func WriteMemdump(dir, input string, img *hunk.Image) (string, error) {
	return Write(dir, input, img, FormatMemdump)
}
