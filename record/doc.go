// Package record compiles tagged Go structs into structure codecs.
//
// Each exported field carries a `packed` tag in the layout tag grammar. A
// blank field carries the structure level settings:
//
//	type ModeSense6 struct {
//		_        struct{} `packed:"big_endian,lsb0"`
//		OpCode   OpCode   `packed:"bytes=0,bits=7..0"`
//		DBD      bool     `packed:"bytes=1,bits=3"`
//		PageCtl  uint8    `packed:"bytes=2,bits=7..6"`
//		PageCode uint8    `packed:"bytes=2,bits=5..0"`
//		Sixteen  uint16   `packed:"bytes=6..7"`
//		Scratch  int      `packed:"-"`
//	}
//
// Supported field types are bool, uint8 through uint64 and named types over
// them, codec.Uint128, float32 and float64. A field type with a
// `Valid() bool` method is checked on pack and unpack and fails with
// errors.KindInvalidEnum when the value is not recognised.
//
// Compilation resolves the layout once and caches the Codec per type:
//
//	c, err := record.For[ModeSense6]()
//	buf, err := c.Pack(&cmd)
//	err = c.Unpack(buf, &cmd)
//
// Packing never touches buffer bits outside the declared fields.
package record
