package rv32

import "fmt"

// Opcode is the lowest 7 bits of an instruction word, selecting its
// format family.
type Opcode uint8

const (
	opcodeLui     Opcode = 0b011_0111
	opcodeAuipc   Opcode = 0b001_0111
	opcodeJal     Opcode = 0b110_1111
	opcodeJalr    Opcode = 0b110_0111
	opcodeBranch  Opcode = 0b110_0011
	opcodeLoad    Opcode = 0b000_0011
	opcodeStore   Opcode = 0b010_0011
	opcodeOpImm   Opcode = 0b001_0011
	opcodeOp      Opcode = 0b011_0011
	opcodeMiscMem Opcode = 0b000_1111
	opcodeSystem  Opcode = 0b111_0011
)

func (op Opcode) String() string {
	return fmt.Sprintf("0b%07b", uint8(op))
}

// Funct3 is the 3-bit discriminator in bits 12..15, selecting a mnemonic
// within an opcode's format family.
type Funct3 uint8

const (
	funct3Jalr Funct3 = 0b000

	funct3Beq  Funct3 = 0b000
	funct3Bne  Funct3 = 0b001
	funct3Blt  Funct3 = 0b100
	funct3Bge  Funct3 = 0b101
	funct3Bltu Funct3 = 0b110
	funct3Bgeu Funct3 = 0b111

	funct3Lb  Funct3 = 0b000
	funct3Lh  Funct3 = 0b001
	funct3Lw  Funct3 = 0b010
	funct3Lbu Funct3 = 0b100
	funct3Lhu Funct3 = 0b101

	funct3Sb Funct3 = 0b000
	funct3Sh Funct3 = 0b001
	funct3Sw Funct3 = 0b010

	funct3Addi  Funct3 = 0b000
	funct3Slti  Funct3 = 0b010
	funct3Sltiu Funct3 = 0b011
	funct3Xori  Funct3 = 0b100
	funct3Ori   Funct3 = 0b110
	funct3Andi  Funct3 = 0b111
	funct3Slli  Funct3 = 0b001
	funct3Srli  Funct3 = 0b101 // srai shares this value, bits 26..32 disambiguate

	funct3Add  Funct3 = 0b000 // sub shares this value, funct7 disambiguates
	funct3Sll  Funct3 = 0b001
	funct3Slt  Funct3 = 0b010
	funct3Sltu Funct3 = 0b011
	funct3Xor  Funct3 = 0b100
	funct3Srl  Funct3 = 0b101 // sra shares this value, funct7 disambiguates
	funct3Or   Funct3 = 0b110
	funct3And  Funct3 = 0b111

	funct3Fence Funct3 = 0b000
	funct3Priv  Funct3 = 0b000

	funct3Csrrw  Funct3 = 0b001
	funct3Csrrs  Funct3 = 0b010
	funct3Csrrc  Funct3 = 0b011
	funct3Csrrwi Funct3 = 0b101
	funct3Csrrsi Funct3 = 0b110
	funct3Csrrci Funct3 = 0b111

	funct3Mul    Funct3 = 0b000
	funct3Mulh   Funct3 = 0b001
	funct3Mulhsu Funct3 = 0b010
	funct3Mulhu  Funct3 = 0b011
	funct3Div    Funct3 = 0b100
	funct3Divu   Funct3 = 0b101
	funct3Rem    Funct3 = 0b110
	funct3Remu   Funct3 = 0b111
)

func (f Funct3) String() string {
	return fmt.Sprintf("0b%03b", uint8(f))
}

// Funct7 is the 7-bit discriminator in bits 25..32 of the R format.
type Funct7 uint8

const (
	funct7Base   Funct7 = 0b000_0000 // add, sll, slt, sltu, xor, srl, or, and
	funct7Alt    Funct7 = 0b010_0000 // sub, sra
	funct7MulDiv Funct7 = 0b000_0001 // M extension
)

func (f Funct7) String() string {
	return fmt.Sprintf("0b%07b", uint8(f))
}

// Funct12 is the 12-bit sub-code in bits 20..32 of the privileged SYSTEM
// instructions.
type Funct12 uint16

const (
	funct12Ecall  Funct12 = 0b0000_0000_0000
	funct12Ebreak Funct12 = 0b0000_0000_0001
)

func (f Funct12) String() string {
	return fmt.Sprintf("0b%012b", uint16(f))
}

// FenceMode is the fm field in bits 28..32 of the fence instruction.
type FenceMode uint8

const (
	fenceModeFence FenceMode = 0b0000
	fenceModeTso   FenceMode = 0b1000
)

func (m FenceMode) String() string {
	return fmt.Sprintf("0b%04b", uint8(m))
}

// ShiftMode is the 6-bit field in bits 26..32 distinguishing logical from
// arithmetic immediate right shifts.
type ShiftMode uint8

const (
	shiftModeLogical    ShiftMode = 0b00_0000
	shiftModeArithmetic ShiftMode = 0b01_0000
)

func (m ShiftMode) String() string {
	return fmt.Sprintf("0b%06b", uint8(m))
}
