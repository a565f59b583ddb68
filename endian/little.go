package endian

import (
	"encoding/binary"

	"github.com/wippyai/bitpack/bit"
)

// LittleEndian treats the first byte of a field as its least significant.
type LittleEndian struct{}

func (LittleEndian) Align(b []byte, s, e bit.Position) {
	checkSpan("little.align", len(b), s, e)
	if s == bit.MSB && e == bit.LSB {
		return
	}

	n := len(b)
	b[0] &= s.HeadMask()
	b[n-1] >>= e
	if s == bit.MSB {
		return
	}
	for i := 0; i < n-1; i++ {
		b[i] |= b[i+1] << (s + 1)
		b[i+1] >>= bit.MSB - s
	}
}

func (LittleEndian) Unalign(b []byte, s, e bit.Position) {
	checkSpan("little.unalign", len(b), s, e)
	if s == bit.MSB && e == bit.LSB {
		return
	}

	n := len(b)
	if s != bit.MSB {
		for i := n - 1; i > 0; i-- {
			b[i] = b[i]<<(bit.MSB-s) | b[i-1]>>(s+1)
		}
	}
	b[n-1] <<= e
	b[0] &= s.HeadMask()
}

func (LittleEndian) Copy(src, dest []byte) {
	checkCopy("little.copy", src, dest)
	copy(dest, src)
}

func (l LittleEndian) Merge(src, dest []byte, s, e bit.Position) {
	checkSpan("little.merge", len(src), s, e)
	if s == bit.MSB && e == bit.LSB {
		l.Copy(src, dest)
		return
	}
	checkCopy("little.merge", src, dest)
	mergeWindow(src, dest[:len(src)], s, e)
}

func (LittleEndian) Window(buf []byte, w bit.Width) []byte {
	checkWindow("little.window", len(buf), w)
	return buf[:w]
}

func (LittleEndian) PutUint(b []byte, v uint64) {
	switch len(b) {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(v))
	case 8:
		binary.LittleEndian.PutUint64(b, v)
	default:
		uintFault("little.put", len(b))
	}
}

func (LittleEndian) Uint(b []byte) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	case 8:
		return binary.LittleEndian.Uint64(b)
	}
	uintFault("little.uint", len(b))
	return 0
}

func (LittleEndian) ByteOrder() binary.ByteOrder {
	return binary.LittleEndian
}

func (LittleEndian) String() string {
	return "little"
}
