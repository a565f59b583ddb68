package record

import (
	"reflect"

	"github.com/wippyai/bitpack"
	"github.com/wippyai/bitpack/bit"
	"github.com/wippyai/bitpack/codec"
	"github.com/wippyai/bitpack/errors"
	"github.com/wippyai/bitpack/layout"
)

type binding struct {
	goType   reflect.Type
	index    int
	validate bool
}

type field struct {
	layout.Field
	binding
	span bit.Span
}

// Codec packs and unpacks one struct type. It is immutable and safe for
// concurrent use.
type Codec struct {
	goType reflect.Type
	layout *layout.Layout
	fields []field
}

// Size is the structure size in bytes.
func (c *Codec) Size() int { return c.layout.Size }

// Layout returns the resolved layout.
func (c *Codec) Layout() *layout.Layout { return c.layout }

// Type returns the struct type the codec was compiled for.
func (c *Codec) Type() reflect.Type { return c.goType }

func (c *Codec) path(name string) []string {
	return []string{c.goType.String(), name}
}

// structValue accepts a struct value or a non-nil pointer to one.
func (c *Codec) structValue(phase errors.Phase, v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}, errors.NilPointer(phase, []string{c.goType.String()}, rv.Type().String())
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() || rv.Type() != c.goType {
		got := "nil"
		if rv.IsValid() {
			got = rv.Type().String()
		}
		return reflect.Value{}, errors.TypeMismatch(phase, []string{c.goType.String()}, got, c.goType.String())
	}
	return rv, nil
}

func (c *Codec) check(phase errors.Phase, buf []byte) error {
	if len(buf) < c.layout.Size {
		return errors.InsufficientBytes(phase, []string{c.goType.String()}, len(buf), c.layout.Size)
	}
	return nil
}

// PackTo packs v into the first Size bytes of buf. Bits not owned by a field
// keep their value.
func (c *Codec) PackTo(v any, buf []byte) error {
	rv, err := c.structValue(errors.PhasePack, v)
	if err != nil {
		return err
	}
	if err := c.check(errors.PhasePack, buf); err != nil {
		return err
	}

	for i := range c.fields {
		f := &c.fields[i]
		if f.validate {
			if err := c.validate(errors.PhasePack, f, rv.Field(f.index)); err != nil {
				return err
			}
		}
	}
	for i := range c.fields {
		f := &c.fields[i]
		packField(f, rv.Field(f.index), f.Bytes(buf))
	}
	return nil
}

// Pack packs v into a new zeroed buffer of Size bytes.
func (c *Codec) Pack(v any) ([]byte, error) {
	buf := make([]byte, c.layout.Size)
	if err := c.PackTo(v, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Unpack decodes buf into the struct pointed to by v. Fields are assigned in
// declaration order; on a validation error the earlier fields are left set.
func (c *Codec) Unpack(buf []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return errors.TypeMismatch(errors.PhaseUnpack, []string{c.goType.String()}, typeString(rv), "*"+c.goType.String())
	}
	rv, err := c.structValue(errors.PhaseUnpack, v)
	if err != nil {
		return err
	}
	if err := c.check(errors.PhaseUnpack, buf); err != nil {
		return err
	}

	for i := range c.fields {
		f := &c.fields[i]
		fv := rv.Field(f.index)
		unpackField(f, fv, f.Bytes(buf))
		if f.validate {
			if err := c.validate(errors.PhaseUnpack, f, fv); err != nil {
				return err
			}
		}
	}
	return nil
}

// PackAt packs v into mem at offset.
func (c *Codec) PackAt(mem bitpack.Memory, offset uint32, v any) error {
	view, err := mem.View(offset, uint32(c.layout.Size))
	if err != nil {
		return err
	}
	return c.PackTo(v, view)
}

// UnpackAt decodes the structure stored in mem at offset.
func (c *Codec) UnpackAt(mem bitpack.Memory, offset uint32, v any) error {
	view, err := mem.View(offset, uint32(c.layout.Size))
	if err != nil {
		return err
	}
	return c.Unpack(view, v)
}

func (c *Codec) validate(phase errors.Phase, f *field, fv reflect.Value) error {
	if fv.Interface().(validator).Valid() {
		return nil
	}
	return errors.InvalidEnum(phase, c.path(f.Name), fieldValue(f, fv), f.goType.String())
}

func fieldValue(f *field, fv reflect.Value) any {
	switch f.Kind {
	case layout.KindBool:
		return fv.Bool()
	case layout.KindF32, layout.KindF64:
		return fv.Float()
	case layout.KindU128:
		return fv.Interface()
	}
	return fv.Uint()
}

func typeString(rv reflect.Value) string {
	if !rv.IsValid() {
		return "nil"
	}
	return rv.Type().String()
}

func unpackField(f *field, fv reflect.Value, src []byte) {
	sp := f.span
	switch f.Kind {
	case layout.KindBool:
		fv.SetBool(codec.UnpackBool(src, sp))
	case layout.KindU8:
		fv.SetUint(uint64(codec.Unpack[uint8](f.Order, src, sp)))
	case layout.KindU16:
		fv.SetUint(uint64(codec.Unpack[uint16](f.Order, src, sp)))
	case layout.KindU32:
		fv.SetUint(uint64(codec.Unpack[uint32](f.Order, src, sp)))
	case layout.KindU64:
		fv.SetUint(codec.Unpack[uint64](f.Order, src, sp))
	case layout.KindU128:
		fv.Set(reflect.ValueOf(codec.UnpackUint128(f.Order, src, sp)))
	case layout.KindF32:
		fv.SetFloat(float64(codec.UnpackFloat32(f.Order, src, sp)))
	case layout.KindF64:
		fv.SetFloat(codec.UnpackFloat64(f.Order, src, sp))
	}
}

func packField(f *field, fv reflect.Value, dest []byte) {
	sp := f.span
	switch f.Kind {
	case layout.KindBool:
		codec.PackBool(fv.Bool(), dest, sp)
	case layout.KindU8:
		codec.Pack(f.Order, uint8(fv.Uint()), dest, sp)
	case layout.KindU16:
		codec.Pack(f.Order, uint16(fv.Uint()), dest, sp)
	case layout.KindU32:
		codec.Pack(f.Order, uint32(fv.Uint()), dest, sp)
	case layout.KindU64:
		codec.Pack(f.Order, fv.Uint(), dest, sp)
	case layout.KindU128:
		codec.PackUint128(f.Order, fv.Interface().(codec.Uint128), dest, sp)
	case layout.KindF32:
		codec.PackFloat32(f.Order, float32(fv.Float()), dest, sp)
	case layout.KindF64:
		codec.PackFloat64(f.Order, fv.Float(), dest, sp)
	}
}

// Marshal packs v with the package compiler.
func Marshal(v any) ([]byte, error) {
	c, err := defaultCompiler.Compile(reflect.TypeOf(v))
	if err != nil {
		return nil, err
	}
	return c.Pack(v)
}

// Unmarshal unpacks buf into the struct pointed to by v with the package compiler.
func Unmarshal(buf []byte, v any) error {
	c, err := defaultCompiler.Compile(reflect.TypeOf(v))
	if err != nil {
		return err
	}
	return c.Unpack(buf, v)
}
