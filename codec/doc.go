// Package codec packs and unpacks typed values at a bit.Span.
//
// Unpack copies the W wire bytes into a zeroed buffer of the value's natural
// width, aligns the W-byte window and converts with the byte order's native
// interpretation. Pack runs the same steps in reverse and merges the result
// into the destination so bits outside the span are preserved.
//
//	var b [2]byte
//	sp := bit.Span{S: 3, E: 5, W: 2}
//	codec.Pack(endian.Little, uint16(0x7f), b[:], sp)
//	v := codec.Unpack[uint16](endian.Little, b[:], sp) // 0x7f
//
// W may be narrower than the natural width, down to one byte. Values wider
// than the span are truncated silently. A buffer whose length is not W is a
// contract fault and panics with *errors.Fault.
//
// The Codec interface wraps the functions for callers that work with values
// generically; Enum layers discriminant validation on top of an integer codec.
package codec
