// Package memory provides bitpack.Memory implementations.
//
// Bytes adapts a plain byte slice. Wrap adapts wazero guest linear memory so
// records can be packed directly into a module's address space:
//
//	mem := memory.Wrap(mod.ExportedMemory("memory"))
//	err := c.PackAt(mem, ptr, &cmd)
package memory
