package layout

import "github.com/wippyai/bitpack/endian"

// Unset marks a Spec position or width that was not given.
const Unset = -1

// Spec is one field declaration. Position values are Unset unless given.
type Spec struct {
	Order     endian.Endian // nil uses Config.Order
	Name      string
	Kind      Kind
	Width     int // bits
	StartByte int
	EndByte   int
	StartBit  int
	EndBit    int
}

// NewSpec returns a Spec with no position information.
func NewSpec(name string, kind Kind) Spec {
	return Spec{
		Name:      name,
		Kind:      kind,
		Width:     Unset,
		StartByte: Unset,
		EndByte:   Unset,
		StartBit:  Unset,
		EndBit:    Unset,
	}
}

// Bytes sets the start and end byte.
func (s Spec) Bytes(start, end int) Spec {
	s.StartByte = start
	s.EndByte = end
	return s
}

// At sets the start byte only.
func (s Spec) At(start int) Spec {
	s.StartByte = start
	return s
}

// Bits sets the start and end bit.
func (s Spec) Bits(start, end int) Spec {
	s.StartBit = start
	s.EndBit = end
	return s
}

// Wide sets the width in bits.
func (s Spec) Wide(bits int) Spec {
	s.Width = bits
	return s
}

// In overrides the byte order.
func (s Spec) In(order endian.Endian) Spec {
	s.Order = order
	return s
}
