package codec

import (
	"math/bits"

	"github.com/wippyai/bitpack/bit"
	"github.com/wippyai/bitpack/endian"
	"github.com/wippyai/bitpack/errors"
)

// Unsigned is the set of integer types with a native byte conversion.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func sizeOf[T Unsigned]() int {
	return bits.Len64(uint64(^T(0))) / 8
}

func check(op string, n, size int, sp bit.Span) {
	sp.Validate()
	if int(sp.W) > size {
		errors.Faultf(op, "byte width %d exceeds %d byte value", sp.W, size)
	}
	if n != int(sp.W) {
		errors.Faultf(op, "buffer has %d bytes, span needs %d", n, sp.W)
	}
}

// Unpack reads the value stored at sp in src. len(src) must equal sp.W.
func Unpack[T Unsigned](en endian.Endian, src []byte, sp bit.Span) T {
	size := sizeOf[T]()
	check("unpack", len(src), size, sp)

	switch en.(type) {
	case endian.LittleEndian:
		return T(unpackLittle(src, size, sp))
	case endian.BigEndian:
		return T(unpackBig(src, size, sp))
	}
	return T(unpackOrder(en, src, size, sp))
}

// Pack writes v at sp in dest. len(dest) must equal sp.W. Bits of v that do
// not fit in the span are dropped; bits of dest outside the span are kept.
func Pack[T Unsigned](en endian.Endian, v T, dest []byte, sp bit.Span) {
	size := sizeOf[T]()
	check("pack", len(dest), size, sp)

	switch en.(type) {
	case endian.LittleEndian:
		packLittle(uint64(v), dest, size, sp)
	case endian.BigEndian:
		packBig(uint64(v), dest, size, sp)
	default:
		packOrder(en, uint64(v), dest, size, sp)
	}
}

// The Little and Big paths call the order methods statically so the scratch
// buffer stays on the stack. Other Endian implementations go through
// unpackOrder and packOrder.

func unpackLittle(src []byte, size int, sp bit.Span) uint64 {
	var o endian.LittleEndian
	var scratch [8]byte
	buf := scratch[:size]
	o.Copy(src, buf)
	o.Align(o.Window(buf, sp.W), sp.S, sp.E)
	return o.Uint(buf)
}

func unpackBig(src []byte, size int, sp bit.Span) uint64 {
	var o endian.BigEndian
	var scratch [8]byte
	buf := scratch[:size]
	o.Copy(src, buf)
	o.Align(o.Window(buf, sp.W), sp.S, sp.E)
	return o.Uint(buf)
}

func unpackOrder(en endian.Endian, src []byte, size int, sp bit.Span) uint64 {
	buf := make([]byte, size)
	en.Copy(src, buf)
	en.Align(en.Window(buf, sp.W), sp.S, sp.E)
	return en.Uint(buf)
}

func packLittle(v uint64, dest []byte, size int, sp bit.Span) {
	var o endian.LittleEndian
	var scratch [8]byte
	buf := scratch[:size]
	o.PutUint(buf, v)
	window := o.Window(buf, sp.W)
	o.Unalign(window, sp.S, sp.E)
	o.Merge(window, dest, sp.S, sp.E)
}

func packBig(v uint64, dest []byte, size int, sp bit.Span) {
	var o endian.BigEndian
	var scratch [8]byte
	buf := scratch[:size]
	o.PutUint(buf, v)
	window := o.Window(buf, sp.W)
	o.Unalign(window, sp.S, sp.E)
	o.Merge(window, dest, sp.S, sp.E)
}

func packOrder(en endian.Endian, v uint64, dest []byte, size int, sp bit.Span) {
	buf := make([]byte, size)
	en.PutUint(buf, v)
	window := en.Window(buf, sp.W)
	en.Unalign(window, sp.S, sp.E)
	en.Merge(window, dest, sp.S, sp.E)
}

func checkBool(op string, n int, sp bit.Span) {
	sp.Validate()
	if sp.W != 1 || sp.S != sp.E {
		errors.Faultf(op, "boolean needs a single bit, got S=%d E=%d W=%d", sp.S, sp.E, sp.W)
	}
	if n != 1 {
		errors.Faultf(op, "buffer has %d bytes, boolean needs 1", n)
	}
}

// UnpackBool tests bit S of the single byte in src.
func UnpackBool(src []byte, sp bit.Span) bool {
	checkBool("unpack.bool", len(src), sp)
	return src[0]&sp.S.Mask() != 0
}

// PackBool sets or clears bit S of the single byte in dest.
func PackBool(v bool, dest []byte, sp bit.Span) {
	checkBool("pack.bool", len(dest), sp)
	if v {
		dest[0] |= sp.S.Mask()
	} else {
		dest[0] &^= sp.S.Mask()
	}
}
