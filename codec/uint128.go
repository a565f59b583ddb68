package codec

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/wippyai/bitpack/bit"
	"github.com/wippyai/bitpack/endian"
)

// Uint128 is an unsigned 128-bit value.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Mask returns the low n bits of u.
func (u Uint128) Mask(n int) Uint128 {
	switch {
	case n >= 128:
		return u
	case n <= 0:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Hi & (1<<(n-64) - 1), Lo: u.Lo}
	default:
		return Uint128{Lo: u.Lo & (1<<n - 1)}
	}
}

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	v := new(big.Int).SetUint64(u.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) String() string {
	if u.Hi == 0 {
		return fmt.Sprint(u.Lo)
	}
	return u.Big().String()
}

// UnpackUint128 reads a 128-bit value stored at sp in src.
func UnpackUint128(en endian.Endian, src []byte, sp bit.Span) Uint128 {
	check("unpack.u128", len(src), 16, sp)

	switch en.(type) {
	case endian.LittleEndian:
		return unpack128Little(src, sp)
	case endian.BigEndian:
		return unpack128Big(src, sp)
	}
	return unpack128Order(en, src, sp)
}

// PackUint128 writes v at sp in dest.
func PackUint128(en endian.Endian, v Uint128, dest []byte, sp bit.Span) {
	check("pack.u128", len(dest), 16, sp)

	switch en.(type) {
	case endian.LittleEndian:
		pack128Little(v, dest, sp)
	case endian.BigEndian:
		pack128Big(v, dest, sp)
	default:
		pack128Order(en, v, dest, sp)
	}
}

func unpack128Little(src []byte, sp bit.Span) Uint128 {
	var o endian.LittleEndian
	var buf [16]byte
	o.Copy(src, buf[:])
	o.Align(o.Window(buf[:], sp.W), sp.S, sp.E)
	return Uint128{Hi: o.Uint(buf[8:]), Lo: o.Uint(buf[:8])}
}

func unpack128Big(src []byte, sp bit.Span) Uint128 {
	var o endian.BigEndian
	var buf [16]byte
	o.Copy(src, buf[:])
	o.Align(o.Window(buf[:], sp.W), sp.S, sp.E)
	return Uint128{Hi: o.Uint(buf[:8]), Lo: o.Uint(buf[8:])}
}

func pack128Little(v Uint128, dest []byte, sp bit.Span) {
	var o endian.LittleEndian
	var buf [16]byte
	o.PutUint(buf[8:], v.Hi)
	o.PutUint(buf[:8], v.Lo)
	window := o.Window(buf[:], sp.W)
	o.Unalign(window, sp.S, sp.E)
	o.Merge(window, dest, sp.S, sp.E)
}

func pack128Big(v Uint128, dest []byte, sp bit.Span) {
	var o endian.BigEndian
	var buf [16]byte
	o.PutUint(buf[:8], v.Hi)
	o.PutUint(buf[8:], v.Lo)
	window := o.Window(buf[:], sp.W)
	o.Unalign(window, sp.S, sp.E)
	o.Merge(window, dest, sp.S, sp.E)
}

// halves returns the slices holding the high and low 64 bits of a 16 byte buffer.
func halves(en endian.Endian, b []byte) (hi, lo []byte) {
	if en.ByteOrder() == binary.BigEndian {
		return b[:8], b[8:]
	}
	return b[8:], b[:8]
}

func unpack128Order(en endian.Endian, src []byte, sp bit.Span) Uint128 {
	buf := make([]byte, 16)
	en.Copy(src, buf)
	en.Align(en.Window(buf, sp.W), sp.S, sp.E)
	hi, lo := halves(en, buf)
	return Uint128{Hi: en.Uint(hi), Lo: en.Uint(lo)}
}

func pack128Order(en endian.Endian, v Uint128, dest []byte, sp bit.Span) {
	buf := make([]byte, 16)
	hi, lo := halves(en, buf)
	en.PutUint(hi, v.Hi)
	en.PutUint(lo, v.Lo)
	window := en.Window(buf, sp.W)
	en.Unalign(window, sp.S, sp.E)
	en.Merge(window, dest, sp.S, sp.E)
}
