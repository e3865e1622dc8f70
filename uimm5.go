package rv32

import "strconv"

// Uimm5 is a 5-bit unsigned immediate, used as a shift amount and as the
// value operand of the csrrwi/csrrsi/csrrci instructions. Range: 0..31.
type Uimm5 struct {
	value uint8
}

const uimm5Bits = 5

// MaxUimm5 is the largest 5-bit unsigned value.
var MaxUimm5 = Uimm5{31}

// NewUimm5 creates a Uimm5, failing if value does not fit 5 bits.
func NewUimm5(value uint32) (Uimm5, error) {
	if !fitsUnsigned(uint64(value), uimm5Bits) {
		return Uimm5{}, unsignedConvError("5-bit unsigned immediate", uint64(value), 32)
	}
	return Uimm5{uint8(value)}, nil
}

// Uimm5FromUint64 creates a Uimm5 from a 64-bit value, failing if it does
// not fit 5 bits.
func Uimm5FromUint64(value uint64) (Uimm5, error) {
	if !fitsUnsigned(value, uimm5Bits) {
		return Uimm5{}, unsignedConvError("5-bit unsigned immediate", value, 64)
	}
	return Uimm5{uint8(value)}, nil
}

// Uint32 returns the immediate's value.
func (imm Uimm5) Uint32() uint32 {
	return uint32(imm.value)
}

func (imm Uimm5) String() string {
	return strconv.FormatUint(uint64(imm.value), 10)
}

func (imm Uimm5) bits() uint32 {
	return uint32(imm.value)
}
