package rv32

import (
	"encoding/binary"
	"fmt"
)

// Decode turns a raw 32-bit instruction word into a typed Instruction,
// or reports exactly which field made the word unrecognizable.
func Decode(word uint32) (Instruction, error) {
	switch op := opcodeOf(word); op {
	case opcodeLui:
		return Lui{decodeUType(word)}, nil
	case opcodeAuipc:
		return Auipc{decodeUType(word)}, nil
	case opcodeJal:
		return Jal{decodeJType(word)}, nil
	case opcodeJalr:
		return Jalr{decodeIType(word)}, nil
	case opcodeBranch:
		return decodeBranch(word)
	case opcodeLoad:
		return decodeLoad(word)
	case opcodeStore:
		return decodeStore(word)
	case opcodeOpImm:
		return decodeOpImm(word)
	case opcodeOp:
		return decodeOp(word)
	case opcodeMiscMem:
		return decodeFence(word)
	case opcodeSystem:
		return decodeSystem(word)
	default:
		return nil, &InvalidOpcodeError{Opcode: op}
	}
}

// DecodeBytes decodes the first four bytes of b as a little-endian
// instruction word.
func DecodeBytes(b []byte) (Instruction, error) {
	if len(b) < 4 {
		return nil, &TruncatedError{Len: len(b)}
	}
	return Decode(binary.LittleEndian.Uint32(b))
}

func decodeBranch(word uint32) (Instruction, error) {
	b := decodeBType(word)
	switch funct3Of(word) {
	case funct3Beq:
		return Beq{b}, nil
	case funct3Bne:
		return Bne{b}, nil
	case funct3Blt:
		return Blt{b}, nil
	case funct3Bltu:
		return Bltu{b}, nil
	case funct3Bge:
		return Bge{b}, nil
	case funct3Bgeu:
		return Bgeu{b}, nil
	default:
		return nil, &InvalidFunct3Error{Funct3: funct3Of(word)}
	}
}

func decodeLoad(word uint32) (Instruction, error) {
	i := decodeIType(word)
	switch funct3Of(word) {
	case funct3Lb:
		return Lb{i}, nil
	case funct3Lbu:
		return Lbu{i}, nil
	case funct3Lh:
		return Lh{i}, nil
	case funct3Lhu:
		return Lhu{i}, nil
	case funct3Lw:
		return Lw{i}, nil
	default:
		return nil, &InvalidFunct3Error{Funct3: funct3Of(word)}
	}
}

func decodeStore(word uint32) (Instruction, error) {
	s := decodeSType(word)
	switch funct3Of(word) {
	case funct3Sb:
		return Sb{s}, nil
	case funct3Sh:
		return Sh{s}, nil
	case funct3Sw:
		return Sw{s}, nil
	default:
		return nil, &InvalidFunct3Error{Funct3: funct3Of(word)}
	}
}

func decodeOpImm(word uint32) (Instruction, error) {
	switch funct3Of(word) {
	case funct3Addi:
		return Addi{decodeIType(word)}, nil
	case funct3Slti:
		return Slti{decodeIType(word)}, nil
	case funct3Sltiu:
		return Sltiu{decodeIType(word)}, nil
	case funct3Xori:
		return Xori{decodeIType(word)}, nil
	case funct3Ori:
		return Ori{decodeIType(word)}, nil
	case funct3Andi:
		return Andi{decodeIType(word)}, nil
	case funct3Slli:
		return Slli{decodeIShift(word)}, nil
	default: // funct3Srli; all eight funct3 values are covered
		switch mode := shiftModeOf(word); mode {
		case shiftModeLogical:
			return Srli{decodeIShift(word)}, nil
		case shiftModeArithmetic:
			return Srai{decodeIShift(word)}, nil
		default:
			return nil, &InvalidShiftModeError{Mode: mode}
		}
	}
}

func decodeOp(word uint32) (Instruction, error) {
	r := decodeRType(word)
	f3 := funct3Of(word)
	f7 := funct7Of(word)
	switch f7 {
	case funct7Base:
		switch f3 {
		case funct3Add:
			return Add{r}, nil
		case funct3Sll:
			return Sll{r}, nil
		case funct3Slt:
			return Slt{r}, nil
		case funct3Sltu:
			return Sltu{r}, nil
		case funct3Xor:
			return Xor{r}, nil
		case funct3Srl:
			return Srl{r}, nil
		case funct3Or:
			return Or{r}, nil
		case funct3And:
			return And{r}, nil
		}
	case funct7Alt:
		switch f3 {
		case funct3Add:
			return Sub{r}, nil
		case funct3Srl:
			return Sra{r}, nil
		}
	case funct7MulDiv:
		switch f3 {
		case funct3Mul:
			return Mul{r}, nil
		case funct3Mulh:
			return Mulh{r}, nil
		case funct3Mulhsu:
			return Mulhsu{r}, nil
		case funct3Mulhu:
			return Mulhu{r}, nil
		case funct3Div:
			return Div{r}, nil
		case funct3Divu:
			return Divu{r}, nil
		case funct3Rem:
			return Rem{r}, nil
		case funct3Remu:
			return Remu{r}, nil
		}
	}
	return nil, &InvalidFunctError{Funct3: f3, Funct7: f7}
}

func decodeFence(word uint32) (Instruction, error) {
	switch mode := fenceModeOf(word); mode {
	case fenceModeFence:
		return Fence{Pred: fencePredOf(word), Succ: fenceSuccOf(word)}, nil
	case fenceModeTso:
		return FenceTso{}, nil
	default:
		return nil, &InvalidFenceModeError{Mode: mode}
	}
}

func decodeSystem(word uint32) (Instruction, error) {
	switch funct3Of(word) {
	case funct3Priv:
		switch f12 := funct12Of(word); f12 {
		case funct12Ecall:
			return Ecall{}, nil
		case funct12Ebreak:
			return Ebreak{}, nil
		default:
			return nil, &InvalidFunct12Error{Funct12: f12}
		}
	case funct3Csrrw:
		return Csrrw{decodeCsrRegType(word)}, nil
	case funct3Csrrs:
		return Csrrs{decodeCsrRegType(word)}, nil
	case funct3Csrrc:
		return Csrrc{decodeCsrRegType(word)}, nil
	case funct3Csrrwi:
		return Csrrwi{decodeCsrImmType(word)}, nil
	case funct3Csrrsi:
		return Csrrsi{decodeCsrImmType(word)}, nil
	case funct3Csrrci:
		return Csrrci{decodeCsrImmType(word)}, nil
	default:
		return nil, &InvalidFunct3Error{Funct3: funct3Of(word)}
	}
}

// InvalidOpcodeError reports a word whose low 7 bits are not a known
// opcode.
type InvalidOpcodeError struct {
	Opcode Opcode
}

func (e *InvalidOpcodeError) Error() string {
	return "invalid opcode: " + e.Opcode.String()
}

// InvalidFunct3Error reports an unrecognized funct3 field for an
// otherwise valid opcode.
type InvalidFunct3Error struct {
	Funct3 Funct3
}

func (e *InvalidFunct3Error) Error() string {
	return "invalid funct3: " + e.Funct3.String()
}

// InvalidFunctError reports a funct3/funct7 combination that selects no
// OP-family mnemonic.
type InvalidFunctError struct {
	Funct3 Funct3
	Funct7 Funct7
}

func (e *InvalidFunctError) Error() string {
	return "invalid funct3 and funct7 combination: " + e.Funct3.String() + ", " + e.Funct7.String()
}

// InvalidShiftModeError reports bits 26..32 of an immediate right shift
// selecting neither the logical nor the arithmetic mode.
type InvalidShiftModeError struct {
	Mode ShiftMode
}

func (e *InvalidShiftModeError) Error() string {
	return "invalid shift mode: " + e.Mode.String()
}

// InvalidFenceModeError reports an unrecognized fm field in a MISC-MEM
// word.
type InvalidFenceModeError struct {
	Mode FenceMode
}

func (e *InvalidFenceModeError) Error() string {
	return "invalid fence mode: " + e.Mode.String()
}

// InvalidFunct12Error reports an unrecognized privileged SYSTEM
// sub-code.
type InvalidFunct12Error struct {
	Funct12 Funct12
}

func (e *InvalidFunct12Error) Error() string {
	return "invalid system call: " + e.Funct12.String()
}

// TruncatedError reports an instruction buffer shorter than one word.
type TruncatedError struct {
	Len int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated instruction: got %d bytes, need 4", e.Len)
}
