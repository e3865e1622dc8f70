package rv32

import (
	"encoding/binary"
	"fmt"
)

// Instruction is a decoded RV32 instruction. Values are produced by
// Decode or constructed directly from validated fields; Encode always
// succeeds and returns the exact 32-bit word the architecture specifies.
type Instruction interface {
	fmt.Stringer

	// Encode returns the instruction's 32-bit encoding.
	Encode() uint32

	// EncodedLen returns the length of the encoding in bytes.
	EncodedLen() int
}

// AppendInstruction appends the little-endian encoding of ins to buf.
func AppendInstruction(buf []byte, ins Instruction) []byte {
	return binary.LittleEndian.AppendUint32(buf, ins.Encode())
}

// InstructionBytes returns the little-endian encoding of ins, the byte
// order RV32 instruction words are stored in.
func InstructionBytes(ins Instruction) [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], ins.Encode())
	return b
}

// Lui loads the U-immediate into the high 20 bits of rd and zeroes the
// low 12.
type Lui struct{ UType }

func (i Lui) Encode() uint32 { return encodeU(opcodeLui, i.Rd, i.Imm) }
func (i Lui) String() string { return "lui " + i.UType.String() }

// Auipc adds the U-immediate to the address of the instruction and
// places the result in rd.
type Auipc struct{ UType }

func (i Auipc) Encode() uint32 { return encodeU(opcodeAuipc, i.Rd, i.Imm) }
func (i Auipc) String() string { return "auipc " + i.UType.String() }

// Jal jumps to the immediate offset, writing the return address to rd.
type Jal struct{ JType }

func (i Jal) Encode() uint32 { return encodeJ(opcodeJal, i.Rd, i.Imm) }
func (i Jal) String() string { return "jal " + i.JType.String() }

// Jalr jumps to rs1 plus the immediate offset, writing the return
// address to rd.
type Jalr struct{ IType }

func (i Jalr) Encode() uint32 { return encodeI(opcodeJalr, i.Rd, funct3Jalr, i.Rs1, i.Imm.bits()) }
func (i Jalr) String() string { return "jalr " + i.IType.String() }

// Beq branches to the immediate offset if rs1 == rs2.
type Beq struct{ BType }

func (i Beq) Encode() uint32 { return encodeB(opcodeBranch, i.Imm, funct3Beq, i.Rs1, i.Rs2) }
func (i Beq) String() string { return "beq " + i.BType.String() }

// Bne branches to the immediate offset if rs1 != rs2.
type Bne struct{ BType }

func (i Bne) Encode() uint32 { return encodeB(opcodeBranch, i.Imm, funct3Bne, i.Rs1, i.Rs2) }
func (i Bne) String() string { return "bne " + i.BType.String() }

// Blt branches to the immediate offset if rs1 < rs2, signed.
type Blt struct{ BType }

func (i Blt) Encode() uint32 { return encodeB(opcodeBranch, i.Imm, funct3Blt, i.Rs1, i.Rs2) }
func (i Blt) String() string { return "blt " + i.BType.String() }

// Bltu branches to the immediate offset if rs1 < rs2, unsigned.
type Bltu struct{ BType }

func (i Bltu) Encode() uint32 { return encodeB(opcodeBranch, i.Imm, funct3Bltu, i.Rs1, i.Rs2) }
func (i Bltu) String() string { return "bltu " + i.BType.String() }

// Bge branches to the immediate offset if rs1 >= rs2, signed.
type Bge struct{ BType }

func (i Bge) Encode() uint32 { return encodeB(opcodeBranch, i.Imm, funct3Bge, i.Rs1, i.Rs2) }
func (i Bge) String() string { return "bge " + i.BType.String() }

// Bgeu branches to the immediate offset if rs1 >= rs2, unsigned.
type Bgeu struct{ BType }

func (i Bgeu) Encode() uint32 { return encodeB(opcodeBranch, i.Imm, funct3Bgeu, i.Rs1, i.Rs2) }
func (i Bgeu) String() string { return "bgeu " + i.BType.String() }

// Lb loads a sign-extended byte from rs1 plus the immediate offset.
type Lb struct{ IType }

func (i Lb) Encode() uint32 { return encodeI(opcodeLoad, i.Rd, funct3Lb, i.Rs1, i.Imm.bits()) }
func (i Lb) String() string { return "lb " + i.loadString() }

// Lbu loads a zero-extended byte from rs1 plus the immediate offset.
type Lbu struct{ IType }

func (i Lbu) Encode() uint32 { return encodeI(opcodeLoad, i.Rd, funct3Lbu, i.Rs1, i.Imm.bits()) }
func (i Lbu) String() string { return "lbu " + i.loadString() }

// Lh loads a sign-extended halfword from rs1 plus the immediate offset.
type Lh struct{ IType }

func (i Lh) Encode() uint32 { return encodeI(opcodeLoad, i.Rd, funct3Lh, i.Rs1, i.Imm.bits()) }
func (i Lh) String() string { return "lh " + i.loadString() }

// Lhu loads a zero-extended halfword from rs1 plus the immediate offset.
type Lhu struct{ IType }

func (i Lhu) Encode() uint32 { return encodeI(opcodeLoad, i.Rd, funct3Lhu, i.Rs1, i.Imm.bits()) }
func (i Lhu) String() string { return "lhu " + i.loadString() }

// Lw loads a word from rs1 plus the immediate offset.
type Lw struct{ IType }

func (i Lw) Encode() uint32 { return encodeI(opcodeLoad, i.Rd, funct3Lw, i.Rs1, i.Imm.bits()) }
func (i Lw) String() string { return "lw " + i.loadString() }

// Sb stores the low byte of rs2 at rs1 plus the immediate offset.
type Sb struct{ SType }

func (i Sb) Encode() uint32 { return encodeS(opcodeStore, i.Imm, funct3Sb, i.Rs1, i.Rs2) }
func (i Sb) String() string { return "sb " + i.SType.String() }

// Sh stores the low halfword of rs2 at rs1 plus the immediate offset.
type Sh struct{ SType }

func (i Sh) Encode() uint32 { return encodeS(opcodeStore, i.Imm, funct3Sh, i.Rs1, i.Rs2) }
func (i Sh) String() string { return "sh " + i.SType.String() }

// Sw stores rs2 at rs1 plus the immediate offset.
type Sw struct{ SType }

func (i Sw) Encode() uint32 { return encodeS(opcodeStore, i.Imm, funct3Sw, i.Rs1, i.Rs2) }
func (i Sw) String() string { return "sw " + i.SType.String() }

// Addi places rs1 plus the immediate in rd.
type Addi struct{ IType }

func (i Addi) Encode() uint32 { return encodeI(opcodeOpImm, i.Rd, funct3Addi, i.Rs1, i.Imm.bits()) }
func (i Addi) String() string { return "addi " + i.IType.String() }

// Slti sets rd to 1 if rs1 < imm, signed.
type Slti struct{ IType }

func (i Slti) Encode() uint32 { return encodeI(opcodeOpImm, i.Rd, funct3Slti, i.Rs1, i.Imm.bits()) }
func (i Slti) String() string { return "slti " + i.IType.String() }

// Sltiu sets rd to 1 if rs1 < imm, unsigned.
type Sltiu struct{ IType }

func (i Sltiu) Encode() uint32 { return encodeI(opcodeOpImm, i.Rd, funct3Sltiu, i.Rs1, i.Imm.bits()) }
func (i Sltiu) String() string { return "sltiu " + i.IType.String() }

// Xori places rs1 XOR imm in rd.
type Xori struct{ IType }

func (i Xori) Encode() uint32 { return encodeI(opcodeOpImm, i.Rd, funct3Xori, i.Rs1, i.Imm.bits()) }
func (i Xori) String() string { return "xori " + i.IType.String() }

// Ori places rs1 OR imm in rd.
type Ori struct{ IType }

func (i Ori) Encode() uint32 { return encodeI(opcodeOpImm, i.Rd, funct3Ori, i.Rs1, i.Imm.bits()) }
func (i Ori) String() string { return "ori " + i.IType.String() }

// Andi places rs1 AND imm in rd.
type Andi struct{ IType }

func (i Andi) Encode() uint32 { return encodeI(opcodeOpImm, i.Rd, funct3Andi, i.Rs1, i.Imm.bits()) }
func (i Andi) String() string { return "andi " + i.IType.String() }

// Slli shifts rs1 left by shamt, shifting zeros into the low bits.
type Slli struct{ IShift }

func (i Slli) Encode() uint32 {
	return encodeR(opcodeOpImm, i.Rd, funct3Slli, i.Rs1, i.Shamt.bits(), funct7Base)
}
func (i Slli) String() string { return "slli " + i.IShift.String() }

// Srli shifts rs1 right by shamt, shifting zeros into the high bits.
type Srli struct{ IShift }

func (i Srli) Encode() uint32 {
	return encodeR(opcodeOpImm, i.Rd, funct3Srli, i.Rs1, i.Shamt.bits(), funct7Base)
}
func (i Srli) String() string { return "srli " + i.IShift.String() }

// Srai shifts rs1 right by shamt, replicating the sign bit.
type Srai struct{ IShift }

func (i Srai) Encode() uint32 {
	return encodeR(opcodeOpImm, i.Rd, funct3Srli, i.Rs1, i.Shamt.bits(), funct7Alt)
}
func (i Srai) String() string { return "srai " + i.IShift.String() }

// Add places rs1 + rs2 in rd. Overflow is ignored.
type Add struct{ RType }

func (i Add) Encode() uint32 {
	return encodeR(opcodeOp, i.Rd, funct3Add, i.Rs1, i.Rs2.bits(), funct7Base)
}
func (i Add) String() string { return "add " + i.RType.String() }

// Sub places rs1 - rs2 in rd. Overflow is ignored.
type Sub struct{ RType }

func (i Sub) Encode() uint32 {
	return encodeR(opcodeOp, i.Rd, funct3Add, i.Rs1, i.Rs2.bits(), funct7Alt)
}
func (i Sub) String() string { return "sub " + i.RType.String() }

// Sll shifts rs1 left by the low 5 bits of rs2.
type Sll struct{ RType }

func (i Sll) Encode() uint32 {
	return encodeR(opcodeOp, i.Rd, funct3Sll, i.Rs1, i.Rs2.bits(), funct7Base)
}
func (i Sll) String() string { return "sll " + i.RType.String() }

// Srl shifts rs1 right by the low 5 bits of rs2, zero-filling.
type Srl struct{ RType }

func (i Srl) Encode() uint32 {
	return encodeR(opcodeOp, i.Rd, funct3Srl, i.Rs1, i.Rs2.bits(), funct7Base)
}
func (i Srl) String() string { return "srl " + i.RType.String() }

// Sra shifts rs1 right by the low 5 bits of rs2, replicating the sign
// bit.
type Sra struct{ RType }

func (i Sra) Encode() uint32 {
	return encodeR(opcodeOp, i.Rd, funct3Srl, i.Rs1, i.Rs2.bits(), funct7Alt)
}
func (i Sra) String() string { return "sra " + i.RType.String() }

// Slt sets rd to 1 if rs1 < rs2, signed.
type Slt struct{ RType }

func (i Slt) Encode() uint32 {
	return encodeR(opcodeOp, i.Rd, funct3Slt, i.Rs1, i.Rs2.bits(), funct7Base)
}
func (i Slt) String() string { return "slt " + i.RType.String() }

// Sltu sets rd to 1 if rs1 < rs2, unsigned.
type Sltu struct{ RType }

func (i Sltu) Encode() uint32 {
	return encodeR(opcodeOp, i.Rd, funct3Sltu, i.Rs1, i.Rs2.bits(), funct7Base)
}
func (i Sltu) String() string { return "sltu " + i.RType.String() }

// Xor places rs1 XOR rs2 in rd.
type Xor struct{ RType }

func (i Xor) Encode() uint32 {
	return encodeR(opcodeOp, i.Rd, funct3Xor, i.Rs1, i.Rs2.bits(), funct7Base)
}
func (i Xor) String() string { return "xor " + i.RType.String() }

// Or places rs1 OR rs2 in rd.
type Or struct{ RType }

func (i Or) Encode() uint32 {
	return encodeR(opcodeOp, i.Rd, funct3Or, i.Rs1, i.Rs2.bits(), funct7Base)
}
func (i Or) String() string { return "or " + i.RType.String() }

// And places rs1 AND rs2 in rd.
type And struct{ RType }

func (i And) Encode() uint32 {
	return encodeR(opcodeOp, i.Rd, funct3And, i.Rs1, i.Rs2.bits(), funct7Base)
}
func (i And) String() string { return "and " + i.RType.String() }

// Fence orders memory and device accesses: operations in the predecessor
// set complete before any in the successor set begin.
//
// FENCE-type layout:
// fm[31:28] | succ[27:24 SI SO SR SW] | pred[23:20 PI PO PR PW] | rs1[19:15] | funct3[14:12] | rd[11:7] | opcode[6:0]
type Fence struct {
	Pred FenceMask
	Succ FenceMask
}

func (i Fence) Encode() uint32 {
	return encodeFence(fenceModeFence, i.Pred, i.Succ)
}
func (i Fence) String() string { return fmt.Sprintf("fence %s, %s", i.Pred, i.Succ) }

// EncodedLen returns the instruction length in bytes.
func (i Fence) EncodedLen() int { return 4 }

// FenceTso is a fence restricted to total store ordering: it is encoded
// as a fence with fm = 1000 and pred = succ = rw.
type FenceTso struct{}

func (i FenceTso) Encode() uint32 {
	return encodeFence(fenceModeTso, FenceRW, FenceRW)
}
func (i FenceTso) String() string { return "fence.tso" }

// EncodedLen returns the instruction length in bytes.
func (i FenceTso) EncodedLen() int { return 4 }

func encodeFence(fm FenceMode, pred, succ FenceMask) uint32 {
	imm := mergeBitfields(
		bitField{bitRange{0, 4}, pred.bits(), bitRange{0, 4}},
		bitField{bitRange{4, 8}, succ.bits(), bitRange{0, 4}},
		bitField{bitRange{8, 12}, uint32(fm), bitRange{0, 4}},
	)
	return encodeI(opcodeMiscMem, X0, funct3Fence, X0, imm)
}

// Ecall requests a service from the execution environment.
type Ecall struct{}

func (i Ecall) Encode() uint32 {
	return encodeI(opcodeSystem, X0, funct3Priv, X0, uint32(funct12Ecall))
}
func (i Ecall) String() string { return "ecall" }

// EncodedLen returns the instruction length in bytes.
func (i Ecall) EncodedLen() int { return 4 }

// Ebreak transfers control to a debugger.
type Ebreak struct{}

func (i Ebreak) Encode() uint32 {
	return encodeI(opcodeSystem, X0, funct3Priv, X0, uint32(funct12Ebreak))
}
func (i Ebreak) String() string { return "ebreak" }

// EncodedLen returns the instruction length in bytes.
func (i Ebreak) EncodedLen() int { return 4 }

// Mul places the low 32 bits of rs1 * rs2 in rd.
type Mul struct{ RType }

func (i Mul) Encode() uint32 {
	return encodeR(opcodeOp, i.Rd, funct3Mul, i.Rs1, i.Rs2.bits(), funct7MulDiv)
}
func (i Mul) String() string { return "mul " + i.RType.String() }

// Mulh places the high 32 bits of rs1 * rs2 in rd, signed x signed.
type Mulh struct{ RType }

func (i Mulh) Encode() uint32 {
	return encodeR(opcodeOp, i.Rd, funct3Mulh, i.Rs1, i.Rs2.bits(), funct7MulDiv)
}
func (i Mulh) String() string { return "mulh " + i.RType.String() }

// Mulhsu places the high 32 bits of rs1 * rs2 in rd, signed x unsigned.
type Mulhsu struct{ RType }

func (i Mulhsu) Encode() uint32 {
	return encodeR(opcodeOp, i.Rd, funct3Mulhsu, i.Rs1, i.Rs2.bits(), funct7MulDiv)
}
func (i Mulhsu) String() string { return "mulhsu " + i.RType.String() }

// Mulhu places the high 32 bits of rs1 * rs2 in rd, unsigned x unsigned.
type Mulhu struct{ RType }

func (i Mulhu) Encode() uint32 {
	return encodeR(opcodeOp, i.Rd, funct3Mulhu, i.Rs1, i.Rs2.bits(), funct7MulDiv)
}
func (i Mulhu) String() string { return "mulhu " + i.RType.String() }

// Div places rs1 / rs2 in rd, signed.
type Div struct{ RType }

func (i Div) Encode() uint32 {
	return encodeR(opcodeOp, i.Rd, funct3Div, i.Rs1, i.Rs2.bits(), funct7MulDiv)
}
func (i Div) String() string { return "div " + i.RType.String() }

// Divu places rs1 / rs2 in rd, unsigned.
type Divu struct{ RType }

func (i Divu) Encode() uint32 {
	return encodeR(opcodeOp, i.Rd, funct3Divu, i.Rs1, i.Rs2.bits(), funct7MulDiv)
}
func (i Divu) String() string { return "divu " + i.RType.String() }

// Rem places the remainder of rs1 / rs2 in rd, signed.
type Rem struct{ RType }

func (i Rem) Encode() uint32 {
	return encodeR(opcodeOp, i.Rd, funct3Rem, i.Rs1, i.Rs2.bits(), funct7MulDiv)
}
func (i Rem) String() string { return "rem " + i.RType.String() }

// Remu places the remainder of rs1 / rs2 in rd, unsigned.
type Remu struct{ RType }

func (i Remu) Encode() uint32 {
	return encodeR(opcodeOp, i.Rd, funct3Remu, i.Rs1, i.Rs2.bits(), funct7MulDiv)
}
func (i Remu) String() string { return "remu " + i.RType.String() }

// Csrrw atomically swaps the CSR with rs1, writing the old CSR value to
// rd.
type Csrrw struct{ CsrRegType }

func (i Csrrw) Encode() uint32 {
	return encodeI(opcodeSystem, i.Rd, funct3Csrrw, i.Rs1, i.Csr.bits())
}
func (i Csrrw) String() string { return "csrrw " + i.CsrRegType.String() }

// Csrrs atomically sets the CSR bits masked by rs1, writing the old CSR
// value to rd.
type Csrrs struct{ CsrRegType }

func (i Csrrs) Encode() uint32 {
	return encodeI(opcodeSystem, i.Rd, funct3Csrrs, i.Rs1, i.Csr.bits())
}
func (i Csrrs) String() string { return "csrrs " + i.CsrRegType.String() }

// Csrrc atomically clears the CSR bits masked by rs1, writing the old
// CSR value to rd.
type Csrrc struct{ CsrRegType }

func (i Csrrc) Encode() uint32 {
	return encodeI(opcodeSystem, i.Rd, funct3Csrrc, i.Rs1, i.Csr.bits())
}
func (i Csrrc) String() string { return "csrrc " + i.CsrRegType.String() }

// Csrrwi is csrrw with a 5-bit immediate in place of rs1.
type Csrrwi struct{ CsrImmType }

func (i Csrrwi) Encode() uint32 {
	return encodeCsrImm(i.Rd, funct3Csrrwi, i.Imm, i.Csr)
}
func (i Csrrwi) String() string { return "csrrwi " + i.CsrImmType.String() }

// Csrrsi is csrrs with a 5-bit immediate in place of rs1.
type Csrrsi struct{ CsrImmType }

func (i Csrrsi) Encode() uint32 {
	return encodeCsrImm(i.Rd, funct3Csrrsi, i.Imm, i.Csr)
}
func (i Csrrsi) String() string { return "csrrsi " + i.CsrImmType.String() }

// Csrrci is csrrc with a 5-bit immediate in place of rs1.
type Csrrci struct{ CsrImmType }

func (i Csrrci) Encode() uint32 {
	return encodeCsrImm(i.Rd, funct3Csrrci, i.Imm, i.Csr)
}
func (i Csrrci) String() string { return "csrrci " + i.CsrImmType.String() }

// encodeCsrImm is the I-format encoding with the rs1 slot carrying a
// 5-bit unsigned immediate instead of a register.
func encodeCsrImm(rd Register, f3 Funct3, imm Uimm5, csr Csr) uint32 {
	return mergeBitfields(
		bitField{bitRange{0, 7}, uint32(opcodeSystem), bitRange{0, 7}},
		bitField{bitRange{7, 12}, rd.bits(), bitRange{0, 5}},
		bitField{bitRange{12, 15}, uint32(f3), bitRange{0, 3}},
		bitField{bitRange{15, 20}, imm.bits(), bitRange{0, 5}},
		bitField{bitRange{20, 32}, csr.bits(), bitRange{0, 12}},
	)
}
