// Package bitpack packs and unpacks bit-exact binary structures.
//
// Protocol records such as SCSI command blocks place fields at arbitrary bit
// offsets, in either byte order, narrower than the natural width of the
// value. The library is layered:
//
//   - bit: bit positions, byte widths and masks
//   - endian: the Little and Big alignment engine (align, unalign, copy, merge)
//   - codec: typed pack/unpack of integers, booleans and floats at a span
//   - layout: resolves partial field declarations into concrete bit ranges
//   - record: compiles tagged Go structs into cached structure codecs
//   - memory: byte slices and wazero guest memory as packing targets
//   - witspec: derives layouts from WIT record definitions
//
// Quick start:
//
//	type ModeSense6 struct {
//		_          struct{} `packed:"big_endian,lsb0"`
//		OpCode     uint8    `packed:"bytes=0"`
//		DBD        bool     `packed:"bytes=1,bits=3"`
//		PageCtl    uint8    `packed:"bytes=2,bits=7..6"`
//		PageCode   uint8    `packed:"bytes=2,bits=5..0"`
//		Allocation uint8    `packed:"bytes=4"`
//	}
//
//	c, err := record.For[ModeSense6]()
//	buf, err := c.Pack(&ModeSense6{OpCode: 0x1a, DBD: true})
//
// The engine and codecs do no I/O and do not allocate; they work on
// caller-supplied buffers.
package bitpack
