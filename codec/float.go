package codec

import (
	"math"

	"github.com/wippyai/bitpack/bit"
	"github.com/wippyai/bitpack/endian"
)

// Floats travel as their IEEE 754 bit patterns. A span narrower than the
// natural width truncates the pattern, so callers normally use full widths.

func UnpackFloat32(en endian.Endian, src []byte, sp bit.Span) float32 {
	return math.Float32frombits(Unpack[uint32](en, src, sp))
}

func PackFloat32(en endian.Endian, v float32, dest []byte, sp bit.Span) {
	Pack(en, math.Float32bits(v), dest, sp)
}

func UnpackFloat64(en endian.Endian, src []byte, sp bit.Span) float64 {
	return math.Float64frombits(Unpack[uint64](en, src, sp))
}

func PackFloat64(en endian.Endian, v float64, dest []byte, sp bit.Span) {
	Pack(en, math.Float64bits(v), dest, sp)
}
