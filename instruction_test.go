package rv32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustImm12(t *testing.T, value int32) Imm12 {
	t.Helper()
	imm, err := NewImm12(value)
	require.NoError(t, err)
	return imm
}

func mustBImm(t *testing.T, value int32) BImm {
	t.Helper()
	imm, err := NewBImm(value)
	require.NoError(t, err)
	return imm
}

func mustJImm(t *testing.T, value int32) JImm {
	t.Helper()
	imm, err := NewJImm(value)
	require.NoError(t, err)
	return imm
}

func mustUimm5(t *testing.T, value uint32) Uimm5 {
	t.Helper()
	imm, err := NewUimm5(value)
	require.NoError(t, err)
	return imm
}

// Bit-exact encodings, checked against the RV32I reference encodings.
func TestEncodeVectors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		ins  Instruction
		want uint32
	}{
		{Addi{IType{Rd: X30, Rs1: X31, Imm: mustImm12(t, 2047)}}, 0x7FFF8F13},
		{Add{RType{Rd: X1, Rs1: X2, Rs2: X3}}, 0x003100B3},
		{Sub{RType{Rd: X1, Rs1: X2, Rs2: X3}}, 0x403100B3},
		{Sw{SType{Rs1: X1, Imm: mustImm12(t, 8), Rs2: X2}}, 0x0020A423},
		{Beq{BType{Imm: mustBImm(t, -4096), Rs1: X1, Rs2: X2}}, 0x80208063},
		{Lui{UType{Rd: X5, Imm: 0x12345000}}, 0x123452B7},
		{Jal{JType{Rd: X0, Imm: mustJImm(t, 0)}}, 0x0000006F},
		{Ecall{}, 0x00000073},
		{Ebreak{}, 0x00100073},
		{Mul{RType{Rd: X1, Rs1: X2, Rs2: X3}}, 0x023100B3},
	}
	for _, c := range cases {
		t.Run(c.ins.String(), func(t *testing.T) {
			assert.Equal(t, c.want, c.ins.Encode())
		})
	}
}

func TestInstructionString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		ins  Instruction
		want string
	}{
		{Addi{IType{Rd: X30, Rs1: X31, Imm: mustImm12(t, 2047)}}, "addi x30, x31, 2047"},
		{Add{RType{Rd: X1, Rs1: X2, Rs2: X3}}, "add x1, x2, x3"},
		{Lw{IType{Rd: X1, Rs1: X2, Imm: mustImm12(t, 4)}}, "lw x1, x2[4]"},
		{Sb{SType{Rs1: X1, Imm: mustImm12(t, -4), Rs2: X2}}, "sb x1[-4], x2"},
		{Beq{BType{Imm: mustBImm(t, -8), Rs1: X3, Rs2: X4}}, "beq -8, x3, x4"},
		{Lui{UType{Rd: X5, Imm: 4096}}, "lui x5, 4096"},
		{Jal{JType{Rd: X1, Imm: mustJImm(t, -1048576)}}, "jal x1, -1048576"},
		{Slli{IShift{Rd: X1, Rs1: X2, Shamt: mustUimm5(t, 31)}}, "slli x1, x2, 31"},
		{Fence{Pred: FenceRW, Succ: FenceRW}, "fence wr, wr"},
		{FenceTso{}, "fence.tso"},
		{Ecall{}, "ecall"},
		{Ebreak{}, "ebreak"},
		{Csrrw{CsrRegType{Rd: X1, Rs1: X2, Csr: CsrTime}}, "csrrw x1, x2, 0xC01"},
		{Csrrwi{CsrImmType{Rd: X1, Imm: mustUimm5(t, 5), Csr: CsrCycle}}, "csrrwi x1, 5, 0xC00"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			assert.Equal(t, c.want, c.ins.String())
		})
	}
}

func TestInstructionBytes(t *testing.T) {
	t.Parallel()

	// Words are stored little-endian.
	b := InstructionBytes(Ebreak{})
	assert.Equal(t, [4]byte{0x73, 0x00, 0x10, 0x00}, b)

	buf := AppendInstruction(nil, Ecall{})
	buf = AppendInstruction(buf, Ebreak{})
	assert.Equal(t, []byte{0x73, 0x00, 0x00, 0x00, 0x73, 0x00, 0x10, 0x00}, buf)
}

func TestEncodedLen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, Add{}.EncodedLen())
	assert.Equal(t, 4, Fence{}.EncodedLen())
	assert.Equal(t, 4, Ecall{}.EncodedLen())
	assert.Equal(t, 4, Jal{}.EncodedLen())
}
