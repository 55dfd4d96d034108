package hunk

import "fmt"

const (
	// DefaultBase is the boundary between chip and fast memory.
	DefaultBase uint32 = 0x100000
	// DefaultChipFloor is the lowest address chip hunks may occupy.
	DefaultChipFloor uint32 = 0
	// DefaultFastCeiling is the end of the fast/any region (10 MiB).
	DefaultFastCeiling uint32 = 0xA00000
)

// Config holds the address space limits used by Allocate.
type Config struct {
	Base        uint32 // chip hunks grow down from Base, others grow up
	ChipFloor   uint32
	FastCeiling uint32
}

// DefaultConfig returns the limits of the stock target machine.
func DefaultConfig() Config {
	return Config{
		Base:        DefaultBase,
		ChipFloor:   DefaultChipFloor,
		FastCeiling: DefaultFastCeiling,
	}
}

// Validate checks that ChipFloor <= Base <= FastCeiling.
func (cfg Config) Validate() error {
	if cfg.ChipFloor > cfg.Base || cfg.Base > cfg.FastCeiling {
		return fmt.Errorf("%w: chip floor 0x%x, base 0x%x, fast ceiling 0x%x",
			ErrInvalidConfig, cfg.ChipFloor, cfg.Base, cfg.FastCeiling)
	}
	return nil
}
