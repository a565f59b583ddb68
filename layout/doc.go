// Package layout resolves field declarations into concrete bit ranges.
//
// A structure is declared as an ordered list of Spec values, each naming a
// value Kind and as much position information as the author wants to give:
// start and end byte, start and end bit, width in bits. Resolve walks the
// list with a bit cursor, filling in whatever was left out, and produces one
// Field per Spec plus the total structure size.
//
// # Bit numbering
//
// Resolved fields use absolute bit numbers counted from the start of the
// structure, most significant bit first: bit 0 is the MSB of byte 0, bit 8
// the MSB of byte 1. Explicit bit numbers in a Spec are interpreted through
// Config.BitOrder. With LSB0, the default, 7 is the most significant bit of a
// byte; with MSB0 it is 0.
//
// # Usage
//
//	l, err := layout.Config{Order: endian.Big}.Resolve([]layout.Spec{
//		layout.NewSpec("op_code", layout.KindU8),
//		layout.NewSpec("dbd", layout.KindBool).Bytes(1, 1).Bits(3, 3),
//		layout.NewSpec("page_control", layout.KindU8).Bytes(2, 2).Bits(7, 6),
//		layout.NewSpec("page_code", layout.KindU8).Bits(5, 0),
//	})
//	// l.Size == 3, l.Fields[1].Span() == bit.Span{S: 3, E: 3, W: 1}
//
// Resolution is pure and runs once per structure definition. Errors carry
// the index and name of the offending declaration.
package layout
