package rv32

import "fmt"

// FenceMask is the 4-bit predecessor/successor set of the fence
// instruction. Bit 0 is memory writes, bit 1 memory reads, bit 2 device
// output, bit 3 device input.
type FenceMask struct {
	value uint8
}

// fenceFlags maps flag characters to bit positions, LSB-first.
const fenceFlags = "wroi"

// FenceRW orders memory reads and writes, the set fence.tso uses.
var FenceRW = FenceMask{0b0011}

// NewFenceMask creates a FenceMask, failing if value does not fit 4 bits.
func NewFenceMask(value uint32) (FenceMask, error) {
	if !fitsUnsigned(uint64(value), 4) {
		return FenceMask{}, unsignedConvError("4-bit unsigned immediate", uint64(value), 32)
	}
	return FenceMask{uint8(value)}, nil
}

// ParseFenceMask builds a FenceMask from a flag string over the alphabet
// "wroi" (memory write/read, device output/input), in any order and
// without repetition.
func ParseFenceMask(mask string) (FenceMask, error) {
	var value uint8
	for pos, flag := range mask {
		var bit uint8
		switch flag {
		case 'w':
			bit = 1 << 0
		case 'r':
			bit = 1 << 1
		case 'o':
			bit = 1 << 2
		case 'i':
			bit = 1 << 3
		default:
			return FenceMask{}, &FenceMaskError{Mask: mask, Flag: flag, Pos: pos, Duplicate: false}
		}
		if value&bit != 0 {
			return FenceMask{}, &FenceMaskError{Mask: mask, Flag: flag, Pos: pos, Duplicate: true}
		}
		value |= bit
	}
	return FenceMask{value}, nil
}

// FenceMaskError reports an invalid or repeated flag character in a fence
// mask string, and where it occurred.
type FenceMaskError struct {
	Mask      string
	Flag      rune
	Pos       int
	Duplicate bool
}

func (e *FenceMaskError) Error() string {
	kind := "invalid"
	if e.Duplicate {
		kind = "duplicate"
	}
	return fmt.Sprintf("malformed fence mask %q: %s flag '%c' at position %d", e.Mask, kind, e.Flag, e.Pos)
}

// Uint32 returns the mask's bit pattern.
func (mask FenceMask) Uint32() uint32 {
	return uint32(mask.value)
}

// String renders the set flags in "wroi" bit order, e.g. "wr" for 0b0011.
func (mask FenceMask) String() string {
	var s []byte
	for i, flag := range []byte(fenceFlags) {
		if mask.value>>i&1 == 1 {
			s = append(s, flag)
		}
	}
	return string(s)
}

func (mask FenceMask) bits() uint32 {
	return uint32(mask.value)
}
