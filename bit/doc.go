// Package bit defines the positional vocabulary shared by the endian engine,
// the typed codecs and the layout resolver.
//
// A Position names a bit inside one byte, 7 being the most significant bit
// and 0 the least significant. A Span describes where a field lives on the
// wire: S is the first included bit of the first byte, E the last included
// bit of the last byte and W the number of bytes the field touches.
//
//	byte 0          byte 1          byte 2
//	7 6 5 4 3 2 1 0 7 6 5 4 3 2 1 0 7 6 5 4 3 2 1 0
//	      S=4 . . . . . . . . . . . . . . . E=3
//	                                W=3
package bit
