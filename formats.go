package rv32

import "fmt"

// The six instruction formats, each a fixed projection of fields onto bit
// positions 0..31. Encoding merges the fields with the format's range
// table; decoding extracts the same ranges and sign-extends the signed
// immediates.

// R-type: opcode[6:0] | rd[11:7] | funct3[14:12] | rs1[19:15] | rs2[24:20] | funct7[31:25]
func encodeR(op Opcode, rd Register, f3 Funct3, rs1 Register, rs2 uint32, f7 Funct7) uint32 {
	return mergeBitfields(
		bitField{bitRange{0, 7}, uint32(op), bitRange{0, 7}},
		bitField{bitRange{7, 12}, rd.bits(), bitRange{0, 5}},
		bitField{bitRange{12, 15}, uint32(f3), bitRange{0, 3}},
		bitField{bitRange{15, 20}, rs1.bits(), bitRange{0, 5}},
		bitField{bitRange{20, 25}, rs2, bitRange{0, 5}},
		bitField{bitRange{25, 32}, uint32(f7), bitRange{0, 7}},
	)
}

// I-type: opcode[6:0] | rd[11:7] | funct3[14:12] | rs1[19:15] | imm[31:20]
func encodeI(op Opcode, rd Register, f3 Funct3, rs1 Register, imm uint32) uint32 {
	return mergeBitfields(
		bitField{bitRange{0, 7}, uint32(op), bitRange{0, 7}},
		bitField{bitRange{7, 12}, rd.bits(), bitRange{0, 5}},
		bitField{bitRange{12, 15}, uint32(f3), bitRange{0, 3}},
		bitField{bitRange{15, 20}, rs1.bits(), bitRange{0, 5}},
		bitField{bitRange{20, 32}, imm, bitRange{0, 12}},
	)
}

// S-type: opcode[6:0] | imm[11:7] | funct3[14:12] | rs1[19:15] | rs2[24:20] | imm[31:25]
func encodeS(op Opcode, imm Imm12, f3 Funct3, rs1, rs2 Register) uint32 {
	return mergeBitfields(
		bitField{bitRange{0, 7}, uint32(op), bitRange{0, 7}},
		bitField{bitRange{7, 12}, imm.bits(), bitRange{0, 5}},
		bitField{bitRange{12, 15}, uint32(f3), bitRange{0, 3}},
		bitField{bitRange{15, 20}, rs1.bits(), bitRange{0, 5}},
		bitField{bitRange{20, 25}, rs2.bits(), bitRange{0, 5}},
		bitField{bitRange{25, 32}, imm.bits(), bitRange{5, 12}},
	)
}

// B-type: opcode[6:0] | imm[11|4:1] | funct3[14:12] | rs1[19:15] | rs2[24:20] | imm[12|10:5]
func encodeB(op Opcode, imm BImm, f3 Funct3, rs1, rs2 Register) uint32 {
	immBits := imm.bits()
	return mergeBitfields(
		bitField{bitRange{0, 7}, uint32(op), bitRange{0, 7}},
		bitField{bitRange{7, 8}, immBits, bitRange{11, 12}},
		bitField{bitRange{8, 12}, immBits, bitRange{1, 5}},
		bitField{bitRange{12, 15}, uint32(f3), bitRange{0, 3}},
		bitField{bitRange{15, 20}, rs1.bits(), bitRange{0, 5}},
		bitField{bitRange{20, 25}, rs2.bits(), bitRange{0, 5}},
		bitField{bitRange{25, 31}, immBits, bitRange{5, 11}},
		bitField{bitRange{31, 32}, immBits, bitRange{12, 13}},
	)
}

// U-type: opcode[6:0] | rd[11:7] | imm[31:12]
func encodeU(op Opcode, rd Register, imm int32) uint32 {
	return mergeBitfields(
		bitField{bitRange{0, 7}, uint32(op), bitRange{0, 7}},
		bitField{bitRange{7, 12}, rd.bits(), bitRange{0, 5}},
		bitField{bitRange{12, 32}, uint32(imm), bitRange{12, 32}},
	)
}

// J-type: opcode[6:0] | rd[11:7] | imm[19:12|11|10:1|20]
func encodeJ(op Opcode, rd Register, imm JImm) uint32 {
	immBits := imm.bits()
	return mergeBitfields(
		bitField{bitRange{0, 7}, uint32(op), bitRange{0, 7}},
		bitField{bitRange{7, 12}, rd.bits(), bitRange{0, 5}},
		bitField{bitRange{12, 20}, immBits, bitRange{12, 20}},
		bitField{bitRange{20, 21}, immBits, bitRange{11, 12}},
		bitField{bitRange{21, 31}, immBits, bitRange{1, 11}},
		bitField{bitRange{31, 32}, immBits, bitRange{20, 21}},
	)
}

// Field extraction. Each helper pulls one fixed range out of a word; the
// immediates are reassembled with the same range tables the encoders use,
// then sign-extended.

func opcodeOf(word uint32) Opcode {
	return Opcode(bits(word, 0, 7))
}

func rdOf(word uint32) Register {
	return Register(bits(word, 7, 12))
}

func funct3Of(word uint32) Funct3 {
	return Funct3(bits(word, 12, 15))
}

func rs1Of(word uint32) Register {
	return Register(bits(word, 15, 20))
}

func rs1Uimm5Of(word uint32) Uimm5 {
	return Uimm5{uint8(bits(word, 15, 20))}
}

func rs2Of(word uint32) Register {
	return Register(bits(word, 20, 25))
}

func shamtOf(word uint32) Uimm5 {
	return Uimm5{uint8(bits(word, 20, 25))}
}

func funct7Of(word uint32) Funct7 {
	return Funct7(bits(word, 25, 32))
}

func funct12Of(word uint32) Funct12 {
	return Funct12(bits(word, 20, 32))
}

func csrOf(word uint32) Csr {
	return Csr{uint16(bits(word, 20, 32))}
}

func shiftModeOf(word uint32) ShiftMode {
	return ShiftMode(bits(word, 26, 32))
}

func fencePredOf(word uint32) FenceMask {
	return FenceMask{uint8(bits(word, 20, 24))}
}

func fenceSuccOf(word uint32) FenceMask {
	return FenceMask{uint8(bits(word, 24, 28))}
}

func fenceModeOf(word uint32) FenceMode {
	return FenceMode(bits(word, 28, 32))
}

func iImmOf(word uint32) Imm12 {
	return Imm12{int16(signExtend(bits(word, 20, 32), 12))}
}

func sImmOf(word uint32) Imm12 {
	imm := mergeBitfields(
		bitField{bitRange{0, 5}, word, bitRange{7, 12}},
		bitField{bitRange{5, 12}, word, bitRange{25, 32}},
	)
	return Imm12{int16(signExtend(imm, 12))}
}

func bImmOf(word uint32) BImm {
	imm := mergeBitfields(
		bitField{bitRange{11, 12}, word, bitRange{7, 8}},
		bitField{bitRange{1, 5}, word, bitRange{8, 12}},
		bitField{bitRange{5, 11}, word, bitRange{25, 31}},
		bitField{bitRange{12, 13}, word, bitRange{31, 32}},
	)
	return BImm{int16(signExtend(imm, 13))}
}

func jImmOf(word uint32) JImm {
	imm := mergeBitfields(
		bitField{bitRange{12, 20}, word, bitRange{12, 20}},
		bitField{bitRange{11, 12}, word, bitRange{20, 21}},
		bitField{bitRange{1, 11}, word, bitRange{21, 31}},
		bitField{bitRange{20, 21}, word, bitRange{31, 32}},
	)
	return JImm{signExtend(imm, 21)}
}

// uImmOf keeps the high 20 bits in place and zero-fills the rest; the
// U-format immediate is not sign-extended.
func uImmOf(word uint32) int32 {
	return int32(word &^ 0xFFF)
}

// RType holds the fields of an R-format instruction.
type RType struct {
	Rd  Register
	Rs1 Register
	Rs2 Register
}

func decodeRType(word uint32) RType {
	return RType{Rd: rdOf(word), Rs1: rs1Of(word), Rs2: rs2Of(word)}
}

func (f RType) String() string {
	return fmt.Sprintf("%s, %s, %s", f.Rd, f.Rs1, f.Rs2)
}

// EncodedLen returns the instruction length in bytes.
func (f RType) EncodedLen() int { return 4 }

// IType holds the fields of an I-format instruction.
type IType struct {
	Rd  Register
	Rs1 Register
	Imm Imm12
}

func decodeIType(word uint32) IType {
	return IType{Rd: rdOf(word), Rs1: rs1Of(word), Imm: iImmOf(word)}
}

func (f IType) String() string {
	return fmt.Sprintf("%s, %s, %s", f.Rd, f.Rs1, f.Imm)
}

// loadString renders the "rd, rs1[imm]" operand order of the load
// instructions.
func (f IType) loadString() string {
	return fmt.Sprintf("%s, %s[%s]", f.Rd, f.Rs1, f.Imm)
}

// EncodedLen returns the instruction length in bytes.
func (f IType) EncodedLen() int { return 4 }

// IShift holds the fields of the shift-immediate instructions
// (slli, srli, srai).
type IShift struct {
	Rd    Register
	Rs1   Register
	Shamt Uimm5
}

func decodeIShift(word uint32) IShift {
	return IShift{Rd: rdOf(word), Rs1: rs1Of(word), Shamt: shamtOf(word)}
}

func (f IShift) String() string {
	return fmt.Sprintf("%s, %s, %s", f.Rd, f.Rs1, f.Shamt)
}

// EncodedLen returns the instruction length in bytes.
func (f IShift) EncodedLen() int { return 4 }

// SType holds the fields of an S-format instruction.
type SType struct {
	Rs1 Register
	Imm Imm12
	Rs2 Register
}

func decodeSType(word uint32) SType {
	return SType{Rs1: rs1Of(word), Imm: sImmOf(word), Rs2: rs2Of(word)}
}

func (f SType) String() string {
	return fmt.Sprintf("%s[%s], %s", f.Rs1, f.Imm, f.Rs2)
}

// EncodedLen returns the instruction length in bytes.
func (f SType) EncodedLen() int { return 4 }

// BType holds the fields of a B-format instruction.
type BType struct {
	Imm BImm
	Rs1 Register
	Rs2 Register
}

func decodeBType(word uint32) BType {
	return BType{Imm: bImmOf(word), Rs1: rs1Of(word), Rs2: rs2Of(word)}
}

func (f BType) String() string {
	return fmt.Sprintf("%s, %s, %s", f.Imm, f.Rs1, f.Rs2)
}

// EncodedLen returns the instruction length in bytes.
func (f BType) EncodedLen() int { return 4 }

// UType holds the fields of a U-format instruction. Imm carries the
// immediate already shifted into the high 20 bits, low 12 bits zero.
type UType struct {
	Rd  Register
	Imm int32
}

func decodeUType(word uint32) UType {
	return UType{Rd: rdOf(word), Imm: uImmOf(word)}
}

func (f UType) String() string {
	return fmt.Sprintf("%s, %d", f.Rd, f.Imm)
}

// EncodedLen returns the instruction length in bytes.
func (f UType) EncodedLen() int { return 4 }

// JType holds the fields of a J-format instruction.
type JType struct {
	Rd  Register
	Imm JImm
}

func decodeJType(word uint32) JType {
	return JType{Rd: rdOf(word), Imm: jImmOf(word)}
}

func (f JType) String() string {
	return fmt.Sprintf("%s, %s", f.Rd, f.Imm)
}

// EncodedLen returns the instruction length in bytes.
func (f JType) EncodedLen() int { return 4 }

// CsrRegType holds the fields of a CSR instruction whose value operand is
// a register.
type CsrRegType struct {
	Rd  Register
	Rs1 Register
	Csr Csr
}

func decodeCsrRegType(word uint32) CsrRegType {
	return CsrRegType{Rd: rdOf(word), Rs1: rs1Of(word), Csr: csrOf(word)}
}

func (f CsrRegType) String() string {
	return fmt.Sprintf("%s, %s, %s", f.Rd, f.Rs1, f.Csr)
}

// EncodedLen returns the instruction length in bytes.
func (f CsrRegType) EncodedLen() int { return 4 }

// CsrImmType holds the fields of a CSR instruction whose value operand is
// a 5-bit unsigned immediate.
type CsrImmType struct {
	Rd  Register
	Imm Uimm5
	Csr Csr
}

func decodeCsrImmType(word uint32) CsrImmType {
	return CsrImmType{Rd: rdOf(word), Imm: rs1Uimm5Of(word), Csr: csrOf(word)}
}

func (f CsrImmType) String() string {
	return fmt.Sprintf("%s, %s, %s", f.Rd, f.Imm, f.Csr)
}

// EncodedLen returns the instruction length in bytes.
func (f CsrImmType) EncodedLen() int { return 4 }
