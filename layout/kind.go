package layout

import (
	"strings"

	"github.com/wippyai/bitpack/errors"
)

// Kind is the value type of a field. It fixes the natural bit width.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindU8
	KindU16
	KindU32
	KindU64
	KindU128
	KindF32
	KindF64
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindBool:    "bool",
	KindU8:      "u8",
	KindU16:     "u16",
	KindU32:     "u32",
	KindU64:     "u64",
	KindU128:    "u128",
	KindF32:     "f32",
	KindF64:     "f64",
}

var kindBits = [...]int{
	KindBool: 1,
	KindU8:   8,
	KindU16:  16,
	KindU32:  32,
	KindU64:  64,
	KindU128: 128,
	KindF32:  32,
	KindF64:  64,
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Valid reports whether k names a supported value type.
func (k Kind) Valid() bool {
	return k > KindInvalid && int(k) < len(kindBits)
}

// Bits is the natural width of the kind in bits.
func (k Kind) Bits() int {
	if !k.Valid() {
		return 0
	}
	return kindBits[k]
}

// Bytes is the natural width of the kind in bytes.
func (k Kind) Bytes() int {
	return (k.Bits() + 7) / 8
}

func (k Kind) IsFloat() bool {
	return k == KindF32 || k == KindF64
}

// ParseKind maps a type name such as "u16" or "uint16" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bool":
		return KindBool, nil
	case "u8", "uint8", "byte":
		return KindU8, nil
	case "u16", "uint16":
		return KindU16, nil
	case "u32", "uint32":
		return KindU32, nil
	case "u64", "uint64":
		return KindU64, nil
	case "u128", "uint128":
		return KindU128, nil
	case "f32", "float32":
		return KindF32, nil
	case "f64", "float64":
		return KindF64, nil
	}
	return KindInvalid, errors.NotFound(errors.PhaseParse, "kind", s)
}
