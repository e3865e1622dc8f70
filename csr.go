package rv32

import "fmt"

// Csr is a 12-bit address selecting one of the control and status
// registers. Range: 0..4095.
type Csr struct {
	value uint16
}

const csrBits = 12

// Well-known user-level CSR addresses.
var (
	CsrFFlags   = Csr{0x001}
	CsrFRM      = Csr{0x002}
	CsrFCsr     = Csr{0x003}
	CsrCycle    = Csr{0xC00}
	CsrTime     = Csr{0xC01}
	CsrInstret  = Csr{0xC02}
	CsrCycleH   = Csr{0xC80}
	CsrTimeH    = Csr{0xC81}
	CsrInstretH = Csr{0xC82}
)

// NewCsr creates a Csr address, failing if value does not fit 12 bits.
func NewCsr(value uint32) (Csr, error) {
	if !fitsUnsigned(uint64(value), csrBits) {
		return Csr{}, unsignedConvError("12-bit unsigned immediate", uint64(value), 32)
	}
	return Csr{uint16(value)}, nil
}

// CsrFromUint64 creates a Csr address from a 64-bit value, failing if it
// does not fit 12 bits.
func CsrFromUint64(value uint64) (Csr, error) {
	if !fitsUnsigned(value, csrBits) {
		return Csr{}, unsignedConvError("12-bit unsigned immediate", value, 64)
	}
	return Csr{uint16(value)}, nil
}

// Uint32 returns the CSR address.
func (csr Csr) Uint32() uint32 {
	return uint32(csr.value)
}

func (csr Csr) String() string {
	return fmt.Sprintf("0x%03X", csr.value)
}

func (csr Csr) bits() uint32 {
	return uint32(csr.value)
}
