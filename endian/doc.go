// Package endian implements the bit alignment engine.
//
// A field on the wire may start and end in the middle of a byte. Align turns
// its W wire bytes into the byte-aligned form a native integer conversion
// expects, Unalign spreads an aligned value back over the [S,E] span, Copy
// places a narrow representation inside a wider one and Merge ORs an
// unaligned field into a destination without touching bits outside the span.
//
// Little and Big differ in which end of the field is most significant. For
// Little, the first byte holds the low bits and alignment walks ascending.
// For Big, the last byte holds the low bits and alignment walks descending.
//
//	wire   [0b00011111 0b11111111 0b11111000]  S=4 E=3
//	Little [0b11111111 0b11111111 0b00000011]
//	Big    [0b00000011 0b11111111 0b11111111]
//
// None of the operations allocate. Violated preconditions (an empty slice, a
// single byte with S below E, a position above 7) panic with *errors.Fault.
package endian
