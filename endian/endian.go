package endian

import (
	"encoding/binary"
	"strings"

	"github.com/wippyai/bitpack/bit"
	"github.com/wippyai/bitpack/errors"
)

// Endian is a byte order strategy for bit-packed fields.
type Endian interface {
	// Align converts wire bytes of a field spanning S..E into byte-aligned form in place.
	Align(b []byte, s, e bit.Position)
	// Unalign is the inverse of Align. Value bits that do not fit are dropped.
	Unalign(b []byte, s, e bit.Position)
	// Copy places src inside the wider dest at the end the order treats as low.
	Copy(src, dest []byte)
	// Merge ORs an unaligned src into the len(src) byte window of dest,
	// leaving dest bits outside S..E untouched.
	Merge(src, dest []byte, s, e bit.Position)
	// Window returns the w low-order bytes of a natural-width representation.
	Window(buf []byte, w bit.Width) []byte
	// PutUint writes v into a 1, 2, 4 or 8 byte representation.
	PutUint(b []byte, v uint64)
	// Uint reads a 1, 2, 4 or 8 byte representation.
	Uint(b []byte) uint64
	ByteOrder() binary.ByteOrder
	String() string
}

var (
	Little Endian = LittleEndian{}
	Big    Endian = BigEndian{}
)

// Parse maps a byte order name to an Endian.
func Parse(name string) (Endian, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "little", "le", "little_endian", "lsb":
		return Little, nil
	case "big", "be", "big_endian", "msb":
		return Big, nil
	}
	return nil, errors.InvalidInput(errors.PhaseParse, "unknown byte order "+name)
}

func checkSpan(op string, n int, s, e bit.Position) {
	if n == 0 {
		errors.Faultf(op, "empty byte slice")
	}
	if !s.Valid() || !e.Valid() {
		errors.Faultf(op, "bit positions S=%d E=%d outside 0-7", s, e)
	}
	if n == 1 && s < e {
		errors.Faultf(op, "single byte span with S=%d below E=%d", s, e)
	}
}

func checkCopy(op string, src, dest []byte) {
	if len(src) == 0 {
		errors.Faultf(op, "empty source")
	}
	if len(dest) < len(src) {
		errors.Faultf(op, "destination has %d bytes, source %d", len(dest), len(src))
	}
}

func checkWindow(op string, n int, w bit.Width) {
	if !w.Valid() || int(w) > n {
		errors.Faultf(op, "window of %d bytes over %d", w, n)
	}
}

// mergeWindow merges src into window, which has the same length.
func mergeWindow(src, window []byte, s, e bit.Position) {
	n := len(src)
	if n == 1 {
		window[0] = window[0]&(s.TailMask()|e.LowMask()) | src[0]
		return
	}
	window[0] = window[0]&s.TailMask() | src[0]
	copy(window[1:n-1], src[1:n-1])
	window[n-1] = window[n-1]&e.LowMask() | src[n-1]
}

func uintFault(op string, n int) {
	errors.Faultf(op, "no native conversion for %d bytes", n)
}
