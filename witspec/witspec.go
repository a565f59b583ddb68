// Package witspec derives layout specs from WIT type definitions.
//
// Each record field becomes one byte-aligned spec of its natural width, in
// declaration order, so a WIT record of primitives maps onto a packed
// structure with no padding. A bool occupies the least significant bit of
// its own byte. Explicit bit numbers use LSB0, the default layout.Config.
//
//	record header { version: u8, ready: bool, length: u32 }
//	// version byte 0, ready byte 1 bit 0, length bytes 2..5
package witspec

import (
	"fmt"

	"github.com/wippyai/bitpack/errors"
	"github.com/wippyai/bitpack/layout"
	"go.bytecodealliance.org/wit"
)

// FromTypeDef derives specs from a record type definition.
func FromTypeDef(td *wit.TypeDef) ([]layout.Spec, error) {
	if td == nil {
		return nil, errors.NilPointer(errors.PhaseParse, nil, "*wit.TypeDef")
	}
	r, ok := td.Kind.(*wit.Record)
	if !ok {
		return nil, errors.New(errors.PhaseParse, errors.KindTypeMismatch).
			Path(typeDefName(td)).
			Detailf("expected record, got %T", td.Kind).
			Build()
	}
	return fromRecord(r, typeDefName(td))
}

// FromRecord derives specs from a WIT record.
func FromRecord(r *wit.Record) ([]layout.Spec, error) {
	if r == nil {
		return nil, errors.NilPointer(errors.PhaseParse, nil, "*wit.Record")
	}
	return fromRecord(r, "record")
}

func fromRecord(r *wit.Record, name string) ([]layout.Spec, error) {
	specs := make([]layout.Spec, 0, len(r.Fields))
	offset := 0
	for _, f := range r.Fields {
		kind, err := KindOf(f.Type)
		if err != nil {
			if e, ok := err.(*errors.Error); ok {
				e.Path = []string{name, f.Name}
			}
			return nil, err
		}
		spec := layout.NewSpec(f.Name, kind).At(offset)
		if kind == layout.KindBool {
			spec = spec.Bits(0, 0)
		}
		specs = append(specs, spec)
		offset += kind.Bytes()
	}
	return specs, nil
}

// KindOf maps a primitive WIT type, or an alias of one, to a layout Kind.
func KindOf(t wit.Type) (layout.Kind, error) {
	switch typ := t.(type) {
	case wit.Bool:
		return layout.KindBool, nil
	case wit.U8:
		return layout.KindU8, nil
	case wit.U16:
		return layout.KindU16, nil
	case wit.U32:
		return layout.KindU32, nil
	case wit.U64:
		return layout.KindU64, nil
	case wit.F32:
		return layout.KindF32, nil
	case wit.F64:
		return layout.KindF64, nil
	case *wit.TypeDef:
		if alias, ok := typ.Kind.(wit.Type); ok {
			return KindOf(alias)
		}
	}
	return layout.KindInvalid, errors.Unsupported(errors.PhaseParse, "WIT type "+witTypeName(t)+" has no packed form")
}

// ParseKind parses a WIT primitive type name. u128, which WIT lacks, is
// accepted as well.
func ParseKind(s string) (layout.Kind, error) {
	if s == "u128" {
		return layout.KindU128, nil
	}
	t, err := wit.ParseType(s)
	if err != nil {
		return layout.KindInvalid, errors.ParseFailed("WIT type "+s, err)
	}
	return KindOf(t)
}

func typeDefName(td *wit.TypeDef) string {
	if td.Name != nil {
		return *td.Name
	}
	return "record"
}

func witTypeName(t wit.Type) string {
	if t == nil {
		return "<nil>"
	}
	if td, ok := t.(*wit.TypeDef); ok {
		return typeDefName(td)
	}
	return fmt.Sprintf("%T", t)
}
