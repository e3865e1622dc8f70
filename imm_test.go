package rv32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImm12Bounds(t *testing.T) {
	t.Parallel()

	imm, err := NewImm12(2047)
	require.NoError(t, err)
	assert.Equal(t, int32(2047), imm.Int32())

	_, err = NewImm12(2048)
	require.EqualError(t, err, "invalid 12-bit signed immediate: 2048 (0x00000800)")

	imm, err = NewImm12(-2048)
	require.NoError(t, err)
	assert.Equal(t, int32(-2048), imm.Int32())

	_, err = NewImm12(-2049)
	require.EqualError(t, err, "invalid 12-bit signed immediate: -2049 (0xfffff7ff)")

	_, err = Imm12FromInt64(1 << 40)
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, int64(1<<40), convErr.Value)
	assert.Equal(t, uint(64), convErr.Width)
}

func TestImm12FromInt8(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int32(-128), Imm12FromInt8(-128).Int32())
	assert.Equal(t, int32(127), Imm12FromInt8(127).Int32())
}

func TestImm12Neg(t *testing.T) {
	t.Parallel()

	assert.Equal(t, MaxImm12.Neg().Int32(), int32(-2047))
	// The most negative value has no 12-bit positive counterpart.
	assert.Equal(t, MinImm12, MinImm12.Neg())
}

func TestImm12Bits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(0xFFF), Imm12FromInt8(-1).bits())
	assert.Equal(t, uint32(0x800), MinImm12.bits())
	assert.Equal(t, uint32(0x7FF), MaxImm12.bits())
}

func TestImm12String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-2048", MinImm12.String())
	assert.Equal(t, "2047", MaxImm12.String())
}

func TestBImmBounds(t *testing.T) {
	t.Parallel()

	imm, err := NewBImm(4094)
	require.NoError(t, err)
	assert.Equal(t, int32(4094), imm.Int32())

	_, err = NewBImm(4096)
	require.EqualError(t, err, "invalid 13-bit signed immediate: 4096 (0x00001000)")

	imm, err = NewBImm(-4096)
	require.NoError(t, err)
	assert.Equal(t, int32(-4096), imm.Int32())

	_, err = NewBImm(-4097)
	require.Error(t, err)
}

func TestBImmEvenRounding(t *testing.T) {
	t.Parallel()

	imm, err := NewBImm(4095)
	require.NoError(t, err)
	assert.Equal(t, int32(4094), imm.Int32())

	assert.Equal(t, int32(-128), BImmFromInt8(-128).Int32())
	assert.Equal(t, int32(126), BImmFromInt8(127).Int32())
	assert.Equal(t, int32(-128), BImmFromInt8(-127).Int32())
}

func TestBImmNeg(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int32(-4094), MaxBImm.Neg().Int32())
	assert.Equal(t, MinBImm, MinBImm.Neg())
}

func TestJImmBounds(t *testing.T) {
	t.Parallel()

	imm, err := NewJImm(1048574)
	require.NoError(t, err)
	assert.Equal(t, int32(1048574), imm.Int32())

	_, err = NewJImm(1048576)
	require.EqualError(t, err, "invalid 21-bit signed immediate: 1048576 (0x00100000)")

	imm, err = NewJImm(-1048576)
	require.NoError(t, err)
	assert.Equal(t, int32(-1048576), imm.Int32())

	_, err = NewJImm(-1048577)
	require.Error(t, err)
}

func TestJImmEvenRounding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int32(-128), JImmFromInt8(-128).Int32())
	assert.Equal(t, int32(126), JImmFromInt8(127).Int32())
	assert.Equal(t, int32(-32768), JImmFromInt16(-32768).Int32())
	assert.Equal(t, int32(32766), JImmFromInt16(32767).Int32())
}

func TestJImmNeg(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int32(-1048574), MaxJImm.Neg().Int32())
	assert.Equal(t, MinJImm, MinJImm.Neg())
}

func TestJImmBits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(0x10_0000), MinJImm.bits())
}

func TestUimm5Bounds(t *testing.T) {
	t.Parallel()

	imm, err := NewUimm5(31)
	require.NoError(t, err)
	assert.Equal(t, uint32(31), imm.Uint32())

	_, err = NewUimm5(32)
	require.EqualError(t, err, "invalid 5-bit unsigned immediate: 32 (0x00000020)")
}

func TestCsrBounds(t *testing.T) {
	t.Parallel()

	csr, err := NewCsr(0xFFF)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFFF), csr.Uint32())

	_, err = NewCsr(0x1000)
	require.EqualError(t, err, "invalid 12-bit unsigned immediate: 4096 (0x00001000)")

	assert.Equal(t, uint32(0xC01), CsrTime.Uint32())
	assert.Equal(t, "0xC01", CsrTime.String())
}
