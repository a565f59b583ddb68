package bit

import "github.com/wippyai/bitpack/errors"

// Position is a bit index inside a byte. 7 is the most significant bit.
type Position uint8

const (
	MSB Position = 7
	LSB Position = 0
)

// Valid reports whether p is in 0-7.
func (p Position) Valid() bool {
	return p <= MSB
}

// HeadMask keeps bits p..0.
func (p Position) HeadMask() byte {
	return byte((uint16(1) << (p + 1)) - 1)
}

// TailMask keeps the bits above p.
func (p Position) TailMask() byte {
	return ^p.HeadMask()
}

// LowMask keeps the bits below p.
func (p Position) LowMask() byte {
	return byte((uint16(1) << p) - 1)
}

// Mask selects bit p alone.
func (p Position) Mask() byte {
	return 1 << p
}

// MSB0 returns the index of p when bits are numbered from the most
// significant bit down (MSB is 0).
func (p Position) MSB0() int {
	return int(MSB - p)
}

// FromMSB0 converts an MSB0 index (0 is the most significant bit) to a Position.
func FromMSB0(i int) Position {
	return MSB - Position(i&7)
}

// Width is the number of bytes a field occupies on the wire.
type Width uint8

// MaxWidth is the widest supported field, the size of a 128-bit value.
const MaxWidth Width = 16

// Valid reports whether w is in 1-16.
func (w Width) Valid() bool {
	return w >= 1 && w <= MaxWidth
}

// Span is the S/E/W triple of a field.
type Span struct {
	S Position
	E Position
	W Width
}

// Aligned is the span of a field that fills n whole bytes.
func Aligned(n int) Span {
	return Span{S: MSB, E: LSB, W: Width(n)}
}

// Validate panics with a contract fault when the span cannot describe a field.
func (sp Span) Validate() {
	if !sp.W.Valid() {
		errors.Faultf("span", "byte width %d outside 1-%d", sp.W, MaxWidth)
	}
	if !sp.S.Valid() || !sp.E.Valid() {
		errors.Faultf("span", "bit positions S=%d E=%d outside 0-7", sp.S, sp.E)
	}
	if sp.W == 1 && sp.S < sp.E {
		errors.Faultf("span", "single byte span with S=%d below E=%d", sp.S, sp.E)
	}
}

// Aligned reports whether the span starts and ends on byte boundaries.
func (sp Span) Aligned() bool {
	return sp.S == MSB && sp.E == LSB
}

// Bits returns the number of field bits covered by the span.
func (sp Span) Bits() int {
	if sp.W == 1 {
		return int(sp.S) - int(sp.E) + 1
	}
	return int(sp.S) + 1 + 8*(int(sp.W)-2) + (8 - int(sp.E))
}

// Bytes returns W as an int.
func (sp Span) Bytes() int {
	return int(sp.W)
}
