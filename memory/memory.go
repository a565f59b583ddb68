package memory

import (
	"github.com/tetratelabs/wazero/api"
	"github.com/wippyai/bitpack"
	"github.com/wippyai/bitpack/errors"
)

// Bytes is a byte slice used as memory.
type Bytes []byte

func (b Bytes) View(offset, length uint32) ([]byte, error) {
	end := uint64(offset) + uint64(length)
	if end > uint64(len(b)) {
		return nil, errors.OutOfBounds(errors.PhaseMemory, offset, length, uint32(len(b)))
	}
	return b[offset:end:end], nil
}

func (b Bytes) Size() uint32 {
	return uint32(len(b))
}

// Wrap adapts wazero guest memory. It returns nil for a nil memory.
func Wrap(mem api.Memory) bitpack.Memory {
	if mem == nil {
		return nil
	}
	return &Guest{Mem: mem}
}

// Guest adapts wazero api.Memory to bitpack.Memory.
type Guest struct {
	Mem api.Memory
}

// View returns the live guest bytes. The slice is invalidated by memory.grow.
func (g *Guest) View(offset, length uint32) ([]byte, error) {
	data, ok := g.Mem.Read(offset, length)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseMemory, offset, length, g.Mem.Size())
	}
	return data, nil
}

func (g *Guest) Size() uint32 {
	return g.Mem.Size()
}

var (
	_ bitpack.Memory = Bytes(nil)
	_ bitpack.Memory = (*Guest)(nil)
)
