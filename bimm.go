package rv32

import "strconv"

// BImm is a 13-bit signed immediate used as a branch displacement.
// Range: -4096..4094. Branch targets are 16-bit aligned, so bit 0 is
// always zero; odd inputs are rounded down, matching the hardware's
// implicit doubling of the encoded offset.
type BImm struct {
	value int16
}

const bimmBits = 13

// MinBImm and MaxBImm are the bounds of the 13-bit even signed range.
var (
	MinBImm = BImm{-4096}
	MaxBImm = BImm{4094}
)

// NewBImm creates a BImm, failing if value does not fit 13 bits.
// Bit 0 of the value is cleared.
func NewBImm(value int32) (BImm, error) {
	if !fitsSigned(int64(value), bimmBits) {
		return BImm{}, signedConvError("13-bit signed immediate", int64(value), 32)
	}
	return BImm{int16(value) &^ 1}, nil
}

// BImmFromInt64 creates a BImm from a 64-bit value, failing if it does
// not fit 13 bits. Bit 0 of the value is cleared.
func BImmFromInt64(value int64) (BImm, error) {
	if !fitsSigned(value, bimmBits) {
		return BImm{}, signedConvError("13-bit signed immediate", value, 64)
	}
	return BImm{int16(value) &^ 1}, nil
}

// BImmFromInt8 creates a BImm from an int8, which always fits.
// Bit 0 of the value is cleared.
func BImmFromInt8(value int8) BImm {
	return BImm{int16(value) &^ 1}
}

// Int32 returns the immediate's value.
func (imm BImm) Int32() int32 {
	return int32(imm.value)
}

// Neg negates the immediate. The most negative value negates to itself.
func (imm BImm) Neg() BImm {
	if imm.value == -1<<(bimmBits-1) {
		return imm
	}
	return BImm{-imm.value}
}

func (imm BImm) String() string {
	return strconv.Itoa(int(imm.value))
}

func (imm BImm) bits() uint32 {
	return uint32(int32(imm.value)) & 0x1FFF
}
