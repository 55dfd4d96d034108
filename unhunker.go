package unhunker

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/sliverarmory/unhunker/hunk"
)

var ErrEmptyExecutable = errors.New("unhunker: empty executable")

type options struct {
	config hunk.Config
	logger log.FieldLogger
}

// An Option configures Decode.
type Option func(*options)

// WithConfig sets the memory limits used for address assignment.
func WithConfig(cfg hunk.Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithLogger routes per-stage debug output to logger.
func WithLogger(logger log.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	discard := log.New()
	discard.SetOutput(io.Discard)
	o := &options{config: hunk.DefaultConfig(), logger: discard}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Decode links a hunk executable held in memory into a flat image.
func Decode(data []byte, opts ...Option) (*hunk.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyExecutable
	}
	o := newOptions(opts)
	logger := o.logger

	f, err := hunk.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("unhunker: parse: %w", err)
	}
	logger.WithFields(log.Fields{
		"hunks":     len(f.Hunks),
		"libraries": len(f.Libraries),
	}).Debug("parsed hunk header")
	for _, h := range f.Hunks {
		logger.WithFields(log.Fields{
			"hunk":   h.Index,
			"class":  h.Class,
			"size":   h.Size,
			"offset": h.Offset,
			"relocs": len(h.Relocs),
		}).Debug("read hunk")
	}

	layout, err := hunk.Allocate(f.Hunks, o.config)
	if err != nil {
		return nil, fmt.Errorf("unhunker: allocate: %w", err)
	}
	for _, a := range layout.Hunks {
		logger.WithFields(log.Fields{
			"hunk":    a.Index,
			"class":   a.Class,
			"address": fmt.Sprintf("0x%x", a.Address),
			"size":    a.Size,
		}).Debug("assigned address")
	}

	patched, err := hunk.Relocate(layout)
	if err != nil {
		return nil, fmt.Errorf("unhunker: relocate: %w", err)
	}

	img, err := hunk.BuildImage(layout, patched)
	if err != nil {
		return nil, fmt.Errorf("unhunker: build image: %w", err)
	}
	logger.WithFields(log.Fields{
		"base":  fmt.Sprintf("0x%x", img.Base),
		"entry": fmt.Sprintf("0x%x", img.Entry),
		"size":  len(img.Data),
	}).Debug("built image")
	return img, nil
}

// DecodeFile reads an executable from disk and decodes it.
func DecodeFile(path string, opts ...Option) (*hunk.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unhunker: read executable: %w", err)
	}
	return Decode(data, opts...)
}

// Inspect parses an executable without assigning addresses.
func Inspect(data []byte) (*hunk.File, error) {
	if len(data) == 0 {
		return nil, ErrEmptyExecutable
	}
	f, err := hunk.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("unhunker: parse: %w", err)
	}
	return f, nil
}

// InspectFile reads an executable from disk and parses it.
func InspectFile(path string) (*hunk.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unhunker: read executable: %w", err)
	}
	return Inspect(data)
}
