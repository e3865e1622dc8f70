package rv32

import "strconv"

// Imm12 is a 12-bit signed immediate, used by the I- and S-format
// instructions. Range: -2048..2047.
type Imm12 struct {
	value int16
}

const imm12Bits = 12

// MinImm12 and MaxImm12 are the bounds of the 12-bit signed range.
var (
	MinImm12 = Imm12{-2048}
	MaxImm12 = Imm12{2047}
)

// NewImm12 creates an Imm12, failing if value does not fit 12 bits.
func NewImm12(value int32) (Imm12, error) {
	if !fitsSigned(int64(value), imm12Bits) {
		return Imm12{}, signedConvError("12-bit signed immediate", int64(value), 32)
	}
	return Imm12{int16(value)}, nil
}

// Imm12FromInt64 creates an Imm12 from a 64-bit value, failing if it does
// not fit 12 bits.
func Imm12FromInt64(value int64) (Imm12, error) {
	if !fitsSigned(value, imm12Bits) {
		return Imm12{}, signedConvError("12-bit signed immediate", value, 64)
	}
	return Imm12{int16(value)}, nil
}

// Imm12FromInt8 creates an Imm12 from an int8, which always fits.
func Imm12FromInt8(value int8) Imm12 {
	return Imm12{int16(value)}
}

// Int32 returns the immediate's value.
func (imm Imm12) Int32() int32 {
	return int32(imm.value)
}

// Neg negates the immediate. The most negative value has no positive
// counterpart in 12 bits and negates to itself.
func (imm Imm12) Neg() Imm12 {
	if imm.value == -1<<(imm12Bits-1) {
		return imm
	}
	return Imm12{-imm.value}
}

func (imm Imm12) String() string {
	return strconv.Itoa(int(imm.value))
}

// bits returns the immediate's two's-complement bit pattern, masked to
// 12 bits.
func (imm Imm12) bits() uint32 {
	return uint32(int32(imm.value)) & 0xFFF
}
