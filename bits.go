package rv32

import "fmt"

// Bitfield plumbing shared by all instruction formats.
//
// Every encoder builds its 32-bit word by merging fixed bit ranges, and every
// decoder takes the word apart with the same ranges. Getting a single range
// wrong silently corrupts generated machine code, so the range invariants are
// checked unconditionally and violations panic: a bad range means a bad
// format table, not bad input data.

// bitRange is a half-open run of bit positions [Start, End), LSB-first,
// with End <= 32.
type bitRange struct {
	start, end uint
}

func (r bitRange) len() uint {
	return r.end - r.start
}

// mask returns the range's bits set in a 32-bit word.
func (r bitRange) mask() uint32 {
	return (uint32(1)<<r.len() - 1) << r.start
}

// bitField places the bits of src selected by srcRange, right-aligned,
// into the destination word at dst, right-aligned.
type bitField struct {
	dst      bitRange
	src      uint32
	srcRange bitRange
}

// mergeBitfields combines the given bit fields into a single 32-bit word.
// The destination ranges must not overlap, must not cross the 32-bit
// boundary, and each must be exactly as long as its source range.
func mergeBitfields(fields ...bitField) uint32 {
	var word uint32
	var visited uint32
	for _, f := range fields {
		if f.dst.end > 32 || f.srcRange.end > 32 {
			panic(fmt.Sprintf("rv32: bit field range crosses 32-bit boundary: dst %d..%d, src %d..%d",
				f.dst.start, f.dst.end, f.srcRange.start, f.srcRange.end))
		}
		if f.dst.len() != f.srcRange.len() {
			panic(fmt.Sprintf("rv32: bit range lengths do not match: dst %d..%d, src %d..%d",
				f.dst.start, f.dst.end, f.srcRange.start, f.srcRange.end))
		}
		dstMask := f.dst.mask()
		if visited&dstMask != 0 {
			panic(fmt.Sprintf("rv32: bit field overlap at %d..%d", f.dst.start, f.dst.end))
		}
		visited |= dstMask

		word |= (f.src >> f.srcRange.start) << f.dst.start & dstMask
	}
	return word
}

// bits extracts the half-open range [start, end) from word, right-aligned.
func bits(word uint32, start, end uint) uint32 {
	if end <= start || end > 32 {
		panic(fmt.Sprintf("rv32: malformed bit range %d..%d", start, end))
	}
	return word >> start & (uint32(1)<<(end-start) - 1)
}

// signExtend interprets the low nbits of value as a two's-complement number
// and widens it to 32 bits.
func signExtend(value uint32, nbits uint) int32 {
	shift := 32 - nbits
	return int32(value<<shift) >> shift
}

// fitsSigned reports whether value is representable as an nbits-wide
// two's-complement integer.
func fitsSigned(value int64, nbits uint) bool {
	return value >= -(int64(1)<<(nbits-1)) && value <= int64(1)<<(nbits-1)-1
}

// fitsUnsigned reports whether value is representable in nbits bits.
func fitsUnsigned(value uint64, nbits uint) bool {
	return value <= uint64(1)<<nbits-1
}
