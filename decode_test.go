package rv32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInvalidOpcode(t *testing.T) {
	t.Parallel()

	_, err := Decode(0)
	require.EqualError(t, err, "invalid opcode: 0b0000000")

	var opErr *InvalidOpcodeError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, Opcode(0), opErr.Opcode)
}

func TestDecodeInvalidFunct3(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		word uint32
		f3   Funct3
	}{
		{"branch", uint32(opcodeBranch) | 0b010<<12, 0b010},
		{"load", uint32(opcodeLoad) | 0b111<<12, 0b111},
		{"store", uint32(opcodeStore) | 0b111<<12, 0b111},
		{"system", uint32(opcodeSystem) | 0b100<<12, 0b100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Decode(c.word)
			var f3Err *InvalidFunct3Error
			require.ErrorAs(t, err, &f3Err)
			assert.Equal(t, c.f3, f3Err.Funct3)
		})
	}
}

func TestDecodeInvalidShiftMode(t *testing.T) {
	t.Parallel()

	word := uint32(opcodeOpImm) | uint32(funct3Srli)<<12 | 0b11_1111<<26
	_, err := Decode(word)
	require.EqualError(t, err, "invalid shift mode: 0b111111")

	var modeErr *InvalidShiftModeError
	require.ErrorAs(t, err, &modeErr)
	assert.Equal(t, ShiftMode(0b11_1111), modeErr.Mode)
}

func TestDecodeInvalidFunct3Funct7(t *testing.T) {
	t.Parallel()

	word := uint32(opcodeOp) | 0b111<<12 | 0b111_1111<<25
	_, err := Decode(word)
	require.EqualError(t, err, "invalid funct3 and funct7 combination: 0b111, 0b1111111")

	var functErr *InvalidFunctError
	require.ErrorAs(t, err, &functErr)
	assert.Equal(t, Funct3(0b111), functErr.Funct3)
	assert.Equal(t, Funct7(0b111_1111), functErr.Funct7)
}

func TestDecodeInvalidFenceMode(t *testing.T) {
	t.Parallel()

	word := uint32(opcodeMiscMem) | 0b1111<<28
	_, err := Decode(word)
	require.EqualError(t, err, "invalid fence mode: 0b1111")

	var modeErr *InvalidFenceModeError
	require.ErrorAs(t, err, &modeErr)
	assert.Equal(t, FenceMode(0b1111), modeErr.Mode)
}

func TestDecodeInvalidFunct12(t *testing.T) {
	t.Parallel()

	word := uint32(opcodeSystem) | 0b1111_1111_1111<<20
	_, err := Decode(word)
	require.EqualError(t, err, "invalid system call: 0b111111111111")

	var f12Err *InvalidFunct12Error
	require.ErrorAs(t, err, &f12Err)
	assert.Equal(t, Funct12(0b1111_1111_1111), f12Err.Funct12)
}

func TestDecodeIImmSignExtension(t *testing.T) {
	t.Parallel()

	// addi x1, x2, -1: imm bits 20..32 all ones
	word := uint32(opcodeOpImm) | 1<<7 | 2<<15 | 0xFFF<<20
	ins, err := Decode(word)
	require.NoError(t, err)
	addi, ok := ins.(Addi)
	require.True(t, ok)
	assert.Equal(t, int32(-1), addi.Imm.Int32())

	// addi x1, x2, -2048: imm bits 20..32 = 0x800
	word = uint32(opcodeOpImm) | 1<<7 | 2<<15 | 0x800<<20
	ins, err = Decode(word)
	require.NoError(t, err)
	addi, ok = ins.(Addi)
	require.True(t, ok)
	assert.Equal(t, int32(-2048), addi.Imm.Int32())
}

func TestDecodeUImmNotSignExtended(t *testing.T) {
	t.Parallel()

	// lui x5 with all immediate bits set: the immediate stays a plain
	// bit pattern in the high 20 bits, low 12 zero.
	word := uint32(opcodeLui) | 5<<7 | 0xFFFFF<<12
	ins, err := Decode(word)
	require.NoError(t, err)
	lui, ok := ins.(Lui)
	require.True(t, ok)
	assert.Equal(t, int32(-4096), lui.Imm)
	assert.Equal(t, int32(0), lui.Imm&0xFFF)
}

func TestDecodeFence(t *testing.T) {
	t.Parallel()

	ins, err := Decode(Fence{Pred: FenceRW, Succ: FenceRW}.Encode())
	require.NoError(t, err)
	assert.Equal(t, Fence{Pred: FenceRW, Succ: FenceRW}, ins)

	ins, err = Decode(FenceTso{}.Encode())
	require.NoError(t, err)
	assert.Equal(t, FenceTso{}, ins)
}

func TestDecodeSystem(t *testing.T) {
	t.Parallel()

	ins, err := Decode(Ecall{}.Encode())
	require.NoError(t, err)
	assert.Equal(t, Ecall{}, ins)

	ins, err = Decode(Ebreak{}.Encode())
	require.NoError(t, err)
	assert.Equal(t, Ebreak{}, ins)
}

func TestDecodeBytes(t *testing.T) {
	t.Parallel()

	ins := Addi{IType{Rd: X30, Rs1: X31, Imm: MaxImm12}}
	b := InstructionBytes(ins)
	decoded, err := DecodeBytes(b[:])
	require.NoError(t, err)
	assert.Equal(t, ins, decoded)

	_, err = DecodeBytes(b[:3])
	require.EqualError(t, err, "truncated instruction: got 3 bytes, need 4")
}
