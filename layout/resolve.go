package layout

import (
	"github.com/wippyai/bitpack/endian"
	"github.com/wippyai/bitpack/errors"
)

// BitOrder selects how explicit bit numbers in a Spec are read.
type BitOrder uint8

const (
	LSB0 BitOrder = iota // 7 is the most significant bit
	MSB0                 // 0 is the most significant bit
)

func (o BitOrder) String() string {
	if o == MSB0 {
		return "msb0"
	}
	return "lsb0"
}

// index maps an explicit bit number to its MSB0 index inside a byte.
func (o BitOrder) index(b int) int {
	if o == MSB0 {
		return b
	}
	return 7 - b
}

// Config holds structure level settings.
type Config struct {
	Order    endian.Endian // default byte order, Little when nil
	BitOrder BitOrder
	Bytes    int // declared size, 0 uses the resolved size
}

// Resolve resolves specs with the zero Config.
func Resolve(specs []Spec) (*Layout, error) {
	return Config{}.Resolve(specs)
}

// Resolve places every spec in order and computes the structure size.
func (c Config) Resolve(specs []Spec) (*Layout, error) {
	if c.Order == nil {
		c.Order = endian.Little
	}
	if c.Bytes < 0 {
		return nil, errors.InvalidInput(errors.PhaseResolve, "negative structure size")
	}

	l := &Layout{
		Config: c,
		Fields: make([]Field, 0, len(specs)),
		byName: make(map[string]int, len(specs)),
	}

	cursor, maxEnd := 0, -1
	for i, sp := range specs {
		f, err := c.place(i, sp, cursor)
		if err != nil {
			return nil, err
		}
		if f.Name != "" {
			if _, dup := l.byName[f.Name]; dup {
				return nil, errors.New(errors.PhaseResolve, errors.KindInvalidInput).
					Field(i, f.Name).
					Detail("duplicate field name").
					Build()
			}
			l.byName[f.Name] = i
		}
		l.Fields = append(l.Fields, f)
		cursor = f.End + 1
		maxEnd = max(maxEnd, f.End)
	}

	if maxEnd >= 0 {
		l.Size = maxEnd/8 + 1
	}
	if c.Bytes > 0 {
		if c.Bytes < l.Size {
			return nil, errors.SizeMismatch(errors.PhaseResolve, c.Bytes, l.Size)
		}
		l.Size = c.Bytes
	}
	return l, nil
}

func (c Config) validate(i int, sp Spec) error {
	if !sp.Kind.Valid() {
		return errors.New(errors.PhaseResolve, errors.KindInvalidInput).
			Field(i, sp.Name).
			Detailf("unsupported kind %s", sp.Kind).
			Build()
	}
	for _, b := range [...]int{sp.StartBit, sp.EndBit} {
		if b != Unset && (b < 0 || b > 7) {
			return errors.InvalidBit(errors.PhaseResolve, i, sp.Name, b)
		}
	}
	for _, n := range [...]int{sp.StartByte, sp.EndByte} {
		if n != Unset && n < 0 {
			return errors.New(errors.PhaseResolve, errors.KindInvalidInput).
				Field(i, sp.Name).
				Detailf("negative byte number %d", n).
				Build()
		}
	}
	if sp.Width != Unset && sp.Width <= 0 {
		return errors.New(errors.PhaseResolve, errors.KindInvalidInput).
			Field(i, sp.Name).
			Detailf("width must be positive, got %d", sp.Width).
			Build()
	}
	return nil
}

func (c Config) place(i int, sp Spec, cursor int) (Field, error) {
	if err := c.validate(i, sp); err != nil {
		return Field{}, err
	}

	start := cursor
	if sp.StartBit != Unset {
		idx := c.BitOrder.index(sp.StartBit)
		for start%8 != idx {
			start++
		}
	}
	if sp.StartByte != Unset {
		if sp.StartByte < start/8 {
			return Field{}, errors.OutOfOrder(errors.PhaseResolve, i, sp.Name, sp.StartByte, start/8)
		}
		if sp.StartByte > start/8 {
			if sp.StartBit != Unset {
				start += 8 * (sp.StartByte - start/8)
			} else {
				start = 8 * sp.StartByte
			}
		}
	}

	if sp.StartBit != Unset && sp.EndBit != Unset &&
		c.BitOrder.index(sp.StartBit) > c.BitOrder.index(sp.EndBit) &&
		(sp.EndByte == Unset || sp.EndByte <= start/8) {
		return Field{}, errors.New(errors.PhaseResolve, errors.KindInvalidBit).
			Field(i, sp.Name).
			Detailf("start bit %d is below end bit %d within one byte (%s)", sp.StartBit, sp.EndBit, c.BitOrder).
			Value(sp.StartBit).
			Build()
	}

	end, endSet := start, false
	if sp.EndBit != Unset {
		idx := c.BitOrder.index(sp.EndBit)
		for end%8 != idx {
			end++
		}
		endSet = true
	}
	if sp.EndByte != Unset {
		if sp.EndByte < end/8 {
			return Field{}, errors.OutOfOrder(errors.PhaseResolve, i, sp.Name, sp.EndByte, end/8)
		}
		if sp.EndBit != Unset {
			end += 8 * (sp.EndByte - end/8)
		} else {
			end = 8*sp.EndByte + 7
		}
		endSet = true
	}

	switch {
	case sp.Width != Unset && endSet:
		if sp.Width != end-start+1 {
			return Field{}, errors.WidthMismatch(errors.PhaseResolve, i, sp.Name, sp.Width, end-start+1)
		}
	case sp.Width != Unset:
		end = start + sp.Width - 1
	case !endSet:
		end = start + sp.Kind.Bits() - 1
	}

	bits := end - start + 1
	if bits > sp.Kind.Bits() {
		return Field{}, errors.TooWide(errors.PhaseResolve, i, sp.Name, bits, sp.Kind.Bits())
	}
	if sp.Kind.IsFloat() && bits != sp.Kind.Bits() {
		return Field{}, errors.New(errors.PhaseResolve, errors.KindWidthMismatch).
			Field(i, sp.Name).
			Detailf("%s field must span %d bits, got %d", sp.Kind, sp.Kind.Bits(), bits).
			Value(bits).
			Build()
	}
	if w := end/8 - start/8 + 1; w > sp.Kind.Bytes() {
		return Field{}, errors.New(errors.PhaseResolve, errors.KindTooWide).
			Field(i, sp.Name).
			Detailf("field touches %d bytes which is more than %s holds (%d bytes)", w, sp.Kind, sp.Kind.Bytes()).
			Value(w).
			Build()
	}

	order := sp.Order
	if order == nil {
		order = c.Order
	}
	return Field{
		Index: i,
		Name:  sp.Name,
		Kind:  sp.Kind,
		Order: order,
		Start: start,
		End:   end,
	}, nil
}
