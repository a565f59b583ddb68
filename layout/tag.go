package layout

import (
	"strconv"
	"strings"

	"github.com/wippyai/bitpack/endian"
	"github.com/wippyai/bitpack/errors"
)

// ParseTag builds a Spec from a field tag such as
// "start_byte=2,end_byte=2,start_bit=7,end_bit=6" or its shorthand
// "bytes=2,bits=7..6". An empty tag gives a Spec with no position.
func ParseTag(name string, kind Kind, tag string) (Spec, error) {
	sp := NewSpec(name, kind)
	seen := make(map[string]bool)

	set := func(key string, dst *int, value string) error {
		if seen[key] {
			return errors.InvalidTag(errors.PhaseParse, name, tag, key+" given more than once")
		}
		seen[key] = true
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.InvalidTag(errors.PhaseParse, name, tag, "bad number for "+key)
		}
		*dst = n
		return nil
	}

	pair := func(key string, first, second *int, firstKey, secondKey, value string) error {
		a, b, ok := strings.Cut(value, "..")
		if !ok {
			b = a
		}
		if seen[key] {
			return errors.InvalidTag(errors.PhaseParse, name, tag, key+" given more than once")
		}
		seen[key] = true
		if err := set(firstKey, first, a); err != nil {
			return err
		}
		return set(secondKey, second, b)
	}

	for _, part := range splitTag(tag) {
		key, value, hasValue := strings.Cut(part, "=")
		var err error
		switch key {
		case "start_byte":
			err = set(key, &sp.StartByte, value)
		case "end_byte":
			err = set(key, &sp.EndByte, value)
		case "start_bit":
			err = set(key, &sp.StartBit, value)
		case "end_bit":
			err = set(key, &sp.EndBit, value)
		case "width":
			err = set(key, &sp.Width, value)
		case "bytes":
			err = pair(key, &sp.StartByte, &sp.EndByte, "start_byte", "end_byte", value)
		case "bits":
			err = pair(key, &sp.StartBit, &sp.EndBit, "start_bit", "end_bit", value)
		case "little_endian", "big_endian":
			if hasValue {
				return Spec{}, errors.InvalidTag(errors.PhaseParse, name, tag, key+" takes no value")
			}
			if sp.Order != nil {
				return Spec{}, errors.InvalidTag(errors.PhaseParse, name, tag, "byte order given more than once")
			}
			sp.Order, _ = endian.Parse(key)
		default:
			return Spec{}, errors.InvalidTag(errors.PhaseParse, name, tag, "unknown key "+strconv.Quote(key))
		}
		if err != nil {
			return Spec{}, err
		}
	}
	return sp, nil
}

// ParseConfigTag builds a Config from a structure tag such as
// "big_endian,lsb0,bytes=8".
func ParseConfigTag(tag string) (Config, error) {
	var c Config
	seen := make(map[string]bool)

	for _, part := range splitTag(tag) {
		key, value, hasValue := strings.Cut(part, "=")
		group := key
		switch key {
		case "lsb0", "msb0":
			group = "bit order"
		case "little_endian", "big_endian":
			group = "byte order"
		}
		if seen[group] {
			return Config{}, errors.InvalidTag(errors.PhaseParse, "", tag, group+" given more than once")
		}
		seen[group] = true

		switch key {
		case "lsb0":
			c.BitOrder = LSB0
		case "msb0":
			c.BitOrder = MSB0
		case "little_endian":
			c.Order = endian.Little
		case "big_endian":
			c.Order = endian.Big
		case "bytes":
			n, err := strconv.Atoi(value)
			if !hasValue || err != nil || n < 0 {
				return Config{}, errors.InvalidTag(errors.PhaseParse, "", tag, "bad number for bytes")
			}
			c.Bytes = n
			continue
		default:
			return Config{}, errors.InvalidTag(errors.PhaseParse, "", tag, "unknown key "+strconv.Quote(key))
		}
		if hasValue {
			return Config{}, errors.InvalidTag(errors.PhaseParse, "", tag, key+" takes no value")
		}
	}
	return c, nil
}

func splitTag(tag string) []string {
	var parts []string
	for _, p := range strings.Split(tag, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
