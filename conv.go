package rv32

import "fmt"

// ConversionError reports a native integer value that does not fit the
// narrow immediate type it was converted to. Value holds the offending
// value widened to 64 bits; Width is the bit width of the native source
// type, so the hex rendering matches what the caller passed in.
type ConversionError struct {
	Target string // e.g. "12-bit signed immediate"
	Value  int64
	Width  uint
	Signed bool
}

func (e *ConversionError) Error() string {
	hex := uint64(e.Value)
	if e.Width < 64 {
		hex &= uint64(1)<<e.Width - 1
	}
	if e.Signed {
		return fmt.Sprintf("invalid %s: %d (0x%0*x)", e.Target, e.Value, e.Width/4, hex)
	}
	return fmt.Sprintf("invalid %s: %d (0x%0*x)", e.Target, uint64(e.Value), e.Width/4, hex)
}

func signedConvError(target string, value int64, width uint) error {
	return &ConversionError{Target: target, Value: value, Width: width, Signed: true}
}

func unsignedConvError(target string, value uint64, width uint) error {
	return &ConversionError{Target: target, Value: int64(value), Width: width}
}
