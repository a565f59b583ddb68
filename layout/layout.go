package layout

import (
	"fmt"
	"strings"

	"github.com/wippyai/bitpack/bit"
	"github.com/wippyai/bitpack/endian"
	"github.com/wippyai/bitpack/errors"
)

// Field is a resolved field. Start and End are absolute MSB0 bit numbers,
// both inclusive.
type Field struct {
	Order endian.Endian
	Name  string
	Index int
	Start int
	End   int
	Kind  Kind
}

func (f Field) StartByte() int { return f.Start / 8 }

func (f Field) EndByte() int { return f.End / 8 }

func (f Field) WidthBytes() int { return f.EndByte() - f.StartByte() + 1 }

func (f Field) Bits() int { return f.End - f.Start + 1 }

// Span returns the S/E/W triple used by the endian engine and codecs.
func (f Field) Span() bit.Span {
	return bit.Span{
		S: bit.FromMSB0(f.Start % 8),
		E: bit.FromMSB0(f.End % 8),
		W: bit.Width(f.WidthBytes()),
	}
}

// Bytes returns the sub-slice of buf covered by the field.
func (f Field) Bytes(buf []byte) []byte {
	return buf[f.StartByte() : f.EndByte()+1]
}

func (f Field) String() string {
	sp := f.Span()
	return fmt.Sprintf("%s %s bytes %d..%d bits %d..%d (%d bits, %s)",
		f.Name, f.Kind, f.StartByte(), f.EndByte(), sp.S, sp.E, f.Bits(), f.Order)
}

// Layout is the result of resolving a structure definition. It is immutable.
type Layout struct {
	byName map[string]int
	Fields []Field
	Config Config
	Size   int
}

// Lookup returns the field with the given name.
func (l *Layout) Lookup(name string) (Field, bool) {
	i, ok := l.byName[name]
	if !ok {
		return Field{}, false
	}
	return l.Fields[i], true
}

// Check reports whether buf is long enough for the structure.
func (l *Layout) Check(buf []byte) error {
	if len(buf) < l.Size {
		return errors.InsufficientBytes(errors.PhaseValidate, nil, len(buf), l.Size)
	}
	return nil
}

// Diagram renders which field owns each bit as a markdown table, one row per byte.
func (l *Layout) Diagram() string {
	owner := make([]string, l.Size*8)
	for _, f := range l.Fields {
		for b := f.Start + 1; b <= f.End; b++ {
			owner[b] = "-"
		}
		owner[f.Start] = f.Name
	}

	var sb strings.Builder
	sb.WriteString("|byte|")
	for i := 0; i < 8; i++ {
		n := 7 - i
		if l.Config.BitOrder == MSB0 {
			n = i
		}
		fmt.Fprintf(&sb, "%d|", n)
	}
	sb.WriteString("\n|-|-|-|-|-|-|-|-|-|\n")

	for row := 0; row < l.Size; row++ {
		fmt.Fprintf(&sb, "|%d|", row)
		for i := 0; i < 8; i++ {
			sb.WriteString(owner[row*8+i])
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
