package rv32

import "strconv"

// JImm is a 21-bit signed immediate used as the jal displacement.
// Range: -1048576..1048574, bit 0 always zero; odd inputs are rounded
// down like BImm.
type JImm struct {
	value int32
}

const jimmBits = 21

// MinJImm and MaxJImm are the bounds of the 21-bit even signed range.
var (
	MinJImm = JImm{-1048576}
	MaxJImm = JImm{1048574}
)

// NewJImm creates a JImm, failing if value does not fit 21 bits.
// Bit 0 of the value is cleared.
func NewJImm(value int32) (JImm, error) {
	if !fitsSigned(int64(value), jimmBits) {
		return JImm{}, signedConvError("21-bit signed immediate", int64(value), 32)
	}
	return JImm{value &^ 1}, nil
}

// JImmFromInt64 creates a JImm from a 64-bit value, failing if it does
// not fit 21 bits. Bit 0 of the value is cleared.
func JImmFromInt64(value int64) (JImm, error) {
	if !fitsSigned(value, jimmBits) {
		return JImm{}, signedConvError("21-bit signed immediate", value, 64)
	}
	return JImm{int32(value) &^ 1}, nil
}

// JImmFromInt16 creates a JImm from an int16, which always fits.
// Bit 0 of the value is cleared.
func JImmFromInt16(value int16) JImm {
	return JImm{int32(value) &^ 1}
}

// JImmFromInt8 creates a JImm from an int8, which always fits.
// Bit 0 of the value is cleared.
func JImmFromInt8(value int8) JImm {
	return JImm{int32(value) &^ 1}
}

// Int32 returns the immediate's value.
func (imm JImm) Int32() int32 {
	return imm.value
}

// Neg negates the immediate. The most negative value negates to itself.
func (imm JImm) Neg() JImm {
	if imm.value == -1<<(jimmBits-1) {
		return imm
	}
	return JImm{-imm.value}
}

func (imm JImm) String() string {
	return strconv.Itoa(int(imm.value))
}

func (imm JImm) bits() uint32 {
	return uint32(imm.value) & 0x1FFFFF
}
