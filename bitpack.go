package bitpack

// Memory is a byte region records can be packed into and unpacked from.
type Memory interface {
	// View returns a writable slice of length bytes at offset. Writes to
	// the slice are visible in the memory until the memory is resized.
	View(offset, length uint32) ([]byte, error)
	// Size is the current size in bytes.
	Size() uint32
}
