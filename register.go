package rv32

import "fmt"

// Register is one of the 32 general-purpose integer registers, x0..x31.
type Register uint8

const (
	X0 Register = iota
	X1
	X2
	X3
	X4
	X5
	X6
	X7
	X8
	X9
	X10
	X11
	X12
	X13
	X14
	X15
	X16
	X17
	X18
	X19
	X20
	X21
	X22
	X23
	X24
	X25
	X26
	X27
	X28
	X29
	X30
	X31
)

const numRegisters = 32

// NewRegister returns the register with the given index.
func NewRegister(index uint32) (Register, error) {
	if index >= numRegisters {
		return 0, &RegisterError{Index: int64(index)}
	}
	return Register(index), nil
}

// RegisterError reports a register index outside 0..31.
type RegisterError struct {
	Index int64
}

func (e *RegisterError) Error() string {
	return fmt.Sprintf("invalid register index: %d", e.Index)
}

// Register names, both numeric and ABI aliases
var registerNames = map[string]Register{
	"zero": 0, "x0": 0,
	"ra": 1, "x1": 1,
	"sp": 2, "x2": 2,
	"gp": 3, "x3": 3,
	"tp": 4, "x4": 4,
	"t0": 5, "x5": 5,
	"t1": 6, "x6": 6,
	"t2": 7, "x7": 7,
	"s0": 8, "fp": 8, "x8": 8,
	"s1": 9, "x9": 9,
	"a0": 10, "x10": 10,
	"a1": 11, "x11": 11,
	"a2": 12, "x12": 12,
	"a3": 13, "x13": 13,
	"a4": 14, "x14": 14,
	"a5": 15, "x15": 15,
	"a6": 16, "x16": 16,
	"a7": 17, "x17": 17,
	"s2": 18, "x18": 18,
	"s3": 19, "x19": 19,
	"s4": 20, "x20": 20,
	"s5": 21, "x21": 21,
	"s6": 22, "x22": 22,
	"s7": 23, "x23": 23,
	"s8": 24, "x24": 24,
	"s9": 25, "x25": 25,
	"s10": 26, "x26": 26,
	"s11": 27, "x27": 27,
	"t3": 28, "x28": 28,
	"t4": 29, "x29": 29,
	"t5": 30, "x30": 30,
	"t6": 31, "x31": 31,
}

var abiNames = [numRegisters]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// RegisterFromName looks up a register by numeric name ("x13") or ABI
// alias ("a3", "fp").
func RegisterFromName(name string) (Register, error) {
	reg, ok := registerNames[name]
	if !ok {
		return 0, fmt.Errorf("invalid register: %s", name)
	}
	return reg, nil
}

// ABIName returns the register's ABI alias, e.g. "a0" for x10.
func (r Register) ABIName() string {
	return abiNames[r&0x1F]
}

func (r Register) String() string {
	return fmt.Sprintf("x%d", uint8(r))
}

func (r Register) bits() uint32 {
	return uint32(r)
}
