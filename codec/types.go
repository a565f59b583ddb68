package codec

import (
	"github.com/wippyai/bitpack/bit"
	"github.com/wippyai/bitpack/endian"
	"github.com/wippyai/bitpack/errors"
)

// Codec moves values of type T between Go and a field span.
type Codec[T any] interface {
	Unpack(en endian.Endian, src []byte, sp bit.Span) (T, error)
	Pack(en endian.Endian, v T, dest []byte, sp bit.Span) error
	// Bytes is the wire byte count of the field, which is W.
	Bytes(sp bit.Span) int
}

// Uint is the Codec for an unsigned integer type.
type Uint[T Unsigned] struct{}

func (Uint[T]) Unpack(en endian.Endian, src []byte, sp bit.Span) (T, error) {
	return Unpack[T](en, src, sp), nil
}

func (Uint[T]) Pack(en endian.Endian, v T, dest []byte, sp bit.Span) error {
	Pack(en, v, dest, sp)
	return nil
}

func (Uint[T]) Bytes(sp bit.Span) int { return int(sp.W) }

type u128Codec struct{}

func (u128Codec) Unpack(en endian.Endian, src []byte, sp bit.Span) (Uint128, error) {
	return UnpackUint128(en, src, sp), nil
}

func (u128Codec) Pack(en endian.Endian, v Uint128, dest []byte, sp bit.Span) error {
	PackUint128(en, v, dest, sp)
	return nil
}

func (u128Codec) Bytes(sp bit.Span) int { return int(sp.W) }

type boolCodec struct{}

func (boolCodec) Unpack(_ endian.Endian, src []byte, sp bit.Span) (bool, error) {
	return UnpackBool(src, sp), nil
}

func (boolCodec) Pack(_ endian.Endian, v bool, dest []byte, sp bit.Span) error {
	PackBool(v, dest, sp)
	return nil
}

func (boolCodec) Bytes(bit.Span) int { return 1 }

type f32Codec struct{}

func (f32Codec) Unpack(en endian.Endian, src []byte, sp bit.Span) (float32, error) {
	return UnpackFloat32(en, src, sp), nil
}

func (f32Codec) Pack(en endian.Endian, v float32, dest []byte, sp bit.Span) error {
	PackFloat32(en, v, dest, sp)
	return nil
}

func (f32Codec) Bytes(sp bit.Span) int { return int(sp.W) }

type f64Codec struct{}

func (f64Codec) Unpack(en endian.Endian, src []byte, sp bit.Span) (float64, error) {
	return UnpackFloat64(en, src, sp), nil
}

func (f64Codec) Pack(en endian.Endian, v float64, dest []byte, sp bit.Span) error {
	PackFloat64(en, v, dest, sp)
	return nil
}

func (f64Codec) Bytes(sp bit.Span) int { return int(sp.W) }

var (
	U8   Codec[uint8]   = Uint[uint8]{}
	U16  Codec[uint16]  = Uint[uint16]{}
	U32  Codec[uint32]  = Uint[uint32]{}
	U64  Codec[uint64]  = Uint[uint64]{}
	U128 Codec[Uint128] = u128Codec{}
	Bool Codec[bool]    = boolCodec{}
	F32  Codec[float32] = f32Codec{}
	F64  Codec[float64] = f64Codec{}
)

// Enum validates discriminants of an integer-backed enumeration.
type Enum[T Unsigned] struct {
	Valid func(T) bool
	Name  string
}

func (c Enum[T]) Unpack(en endian.Endian, src []byte, sp bit.Span) (T, error) {
	v := Unpack[T](en, src, sp)
	if c.Valid != nil && !c.Valid(v) {
		return v, errors.InvalidEnum(errors.PhaseUnpack, nil, uint64(v), c.Name)
	}
	return v, nil
}

func (c Enum[T]) Pack(en endian.Endian, v T, dest []byte, sp bit.Span) error {
	if c.Valid != nil && !c.Valid(v) {
		return errors.InvalidEnum(errors.PhasePack, nil, uint64(v), c.Name)
	}
	Pack(en, v, dest, sp)
	return nil
}

func (Enum[T]) Bytes(sp bit.Span) int { return int(sp.W) }

// OneOf returns a validator accepting only the listed values.
func OneOf[T Unsigned](values ...T) func(T) bool {
	return func(v T) bool {
		for _, x := range values {
			if x == v {
				return true
			}
		}
		return false
	}
}
