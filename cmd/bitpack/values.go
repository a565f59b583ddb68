package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/wippyai/bitpack/codec"
	"github.com/wippyai/bitpack/errors"
	"github.com/wippyai/bitpack/layout"
)

// readField formats the value of f stored in buf.
func readField(f layout.Field, buf []byte) string {
	src, sp := f.Bytes(buf), f.Span()
	switch f.Kind {
	case layout.KindBool:
		return strconv.FormatBool(codec.UnpackBool(src, sp))
	case layout.KindU8:
		return formatUint(uint64(codec.Unpack[uint8](f.Order, src, sp)))
	case layout.KindU16:
		return formatUint(uint64(codec.Unpack[uint16](f.Order, src, sp)))
	case layout.KindU32:
		return formatUint(uint64(codec.Unpack[uint32](f.Order, src, sp)))
	case layout.KindU64:
		return formatUint(codec.Unpack[uint64](f.Order, src, sp))
	case layout.KindU128:
		v := codec.UnpackUint128(f.Order, src, sp)
		return fmt.Sprintf("%s (0x%s)", v, v.Big().Text(16))
	case layout.KindF32:
		return strconv.FormatFloat(float64(codec.UnpackFloat32(f.Order, src, sp)), 'g', -1, 32)
	case layout.KindF64:
		return strconv.FormatFloat(codec.UnpackFloat64(f.Order, src, sp), 'g', -1, 64)
	}
	return "?"
}

func formatUint(v uint64) string {
	return fmt.Sprintf("%d (0x%x)", v, v)
}

// writeField parses s and packs it into f. Values that do not fit the span
// are rejected.
func writeField(f layout.Field, buf []byte, s string) error {
	s = strings.TrimSpace(s)
	dest, sp := f.Bytes(buf), f.Span()

	switch f.Kind {
	case layout.KindBool:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return errors.ParseFailed(f.Name, err)
		}
		codec.PackBool(v, dest, sp)
	case layout.KindU8, layout.KindU16, layout.KindU32, layout.KindU64:
		v, err := strconv.ParseUint(s, 0, f.Bits())
		if err != nil {
			return errors.ParseFailed(f.Name, err)
		}
		switch f.Kind {
		case layout.KindU8:
			codec.Pack(f.Order, uint8(v), dest, sp)
		case layout.KindU16:
			codec.Pack(f.Order, uint16(v), dest, sp)
		case layout.KindU32:
			codec.Pack(f.Order, uint32(v), dest, sp)
		default:
			codec.Pack(f.Order, v, dest, sp)
		}
	case layout.KindU128:
		v, ok := new(big.Int).SetString(s, 0)
		if !ok || v.Sign() < 0 || v.BitLen() > f.Bits() {
			return errors.InvalidInput(errors.PhaseParse, fmt.Sprintf("%s: %q does not fit in %d bits", f.Name, s, f.Bits()))
		}
		lo := new(big.Int).And(v, new(big.Int).SetUint64(^uint64(0)))
		hi := new(big.Int).Rsh(v, 64)
		codec.PackUint128(f.Order, codec.Uint128{Hi: hi.Uint64(), Lo: lo.Uint64()}, dest, sp)
	case layout.KindF32:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return errors.ParseFailed(f.Name, err)
		}
		codec.PackFloat32(f.Order, float32(v), dest, sp)
	case layout.KindF64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.ParseFailed(f.Name, err)
		}
		codec.PackFloat64(f.Order, v, dest, sp)
	default:
		return errors.Unsupported(errors.PhasePack, "field kind "+f.Kind.String())
	}
	return nil
}

// applySet parses "name=value" and writes the value into buf.
func applySet(l *layout.Layout, buf []byte, assignment string) error {
	name, value, ok := strings.Cut(assignment, "=")
	if !ok {
		return fmt.Errorf("bad -set %q: want name=value", assignment)
	}
	f, ok := l.Lookup(strings.TrimSpace(name))
	if !ok {
		return errors.NotFound(errors.PhasePack, "field", name)
	}
	return writeField(f, buf, value)
}
