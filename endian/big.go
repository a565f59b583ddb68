package endian

import (
	"encoding/binary"

	"github.com/wippyai/bitpack/bit"
)

// BigEndian treats the last byte of a field as its least significant.
type BigEndian struct{}

func (BigEndian) Align(b []byte, s, e bit.Position) {
	checkSpan("big.align", len(b), s, e)
	if s == bit.MSB && e == bit.LSB {
		return
	}

	n := len(b)
	b[0] &= s.HeadMask()
	b[n-1] >>= e
	if e == bit.LSB {
		return
	}
	for i := n - 1; i > 0; i-- {
		b[i] |= b[i-1] << (8 - e)
		b[i-1] >>= e
	}
}

func (BigEndian) Unalign(b []byte, s, e bit.Position) {
	checkSpan("big.unalign", len(b), s, e)
	if s == bit.MSB && e == bit.LSB {
		return
	}

	n := len(b)
	if e != bit.LSB {
		for i := 0; i < n-1; i++ {
			b[i] = b[i]<<e | b[i+1]>>(8-e)
		}
	}
	b[n-1] <<= e
	b[0] &= s.HeadMask()
}

func (BigEndian) Copy(src, dest []byte) {
	checkCopy("big.copy", src, dest)
	copy(dest[len(dest)-len(src):], src)
}

func (b BigEndian) Merge(src, dest []byte, s, e bit.Position) {
	checkSpan("big.merge", len(src), s, e)
	if s == bit.MSB && e == bit.LSB {
		b.Copy(src, dest)
		return
	}
	checkCopy("big.merge", src, dest)
	mergeWindow(src, dest[len(dest)-len(src):], s, e)
}

func (BigEndian) Window(buf []byte, w bit.Width) []byte {
	checkWindow("big.window", len(buf), w)
	return buf[len(buf)-int(w):]
}

func (BigEndian) PutUint(b []byte, v uint64) {
	switch len(b) {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.BigEndian.PutUint16(b, uint16(v))
	case 4:
		binary.BigEndian.PutUint32(b, uint32(v))
	case 8:
		binary.BigEndian.PutUint64(b, v)
	default:
		uintFault("big.put", len(b))
	}
}

func (BigEndian) Uint(b []byte) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.BigEndian.Uint16(b))
	case 4:
		return uint64(binary.BigEndian.Uint32(b))
	case 8:
		return binary.BigEndian.Uint64(b)
	}
	uintFault("big.uint", len(b))
	return 0
}

func (BigEndian) ByteOrder() binary.ByteOrder {
	return binary.BigEndian
}

func (BigEndian) String() string {
	return "big"
}
