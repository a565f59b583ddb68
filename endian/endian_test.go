package endian

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/wippyai/bitpack/bit"
	"github.com/wippyai/bitpack/errors"
)

func TestAlignFixtures(t *testing.T) {
	tests := []struct {
		name string
		en   Endian
		in   []byte
		s, e bit.Position
		want []byte
	}{
		{
			name: "little_three_bytes",
			en:   Little,
			in:   []byte{0b00011111, 0b11111111, 0b11111000},
			s:    4, e: 3,
			want: []byte{0b11111111, 0b11111111, 0b00000011},
		},
		{
			name: "big_three_bytes",
			en:   Big,
			in:   []byte{0b00011111, 0b11111111, 0b11111000},
			s:    4, e: 3,
			want: []byte{0b00000011, 0b11111111, 0b11111111},
		},
		{
			name: "little_single_byte",
			en:   Little,
			in:   []byte{0b11100111},
			s:    5, e: 2,
			want: []byte{0b00001001},
		},
		{
			name: "big_single_byte",
			en:   Big,
			in:   []byte{0b11100111},
			s:    5, e: 2,
			want: []byte{0b00001001},
		},
		{
			name: "big_low_bits_only",
			en:   Big,
			in:   []byte{0xFF, 0xAB},
			s:    3, e: 0,
			want: []byte{0x0F, 0xAB},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := append([]byte(nil), tc.in...)
			tc.en.Align(b, tc.s, tc.e)
			if !bytes.Equal(b, tc.want) {
				t.Fatalf("align: got %08b, want %08b", b, tc.want)
			}
			// only the span bits survive the round trip
			restored := append([]byte(nil), tc.in...)
			restored[0] &= tc.s.HeadMask()
			restored[len(restored)-1] &^= tc.e.LowMask()
			tc.en.Unalign(b, tc.s, tc.e)
			if !bytes.Equal(b, restored) {
				t.Errorf("unalign: got %08b, want %08b", b, restored)
			}
		})
	}
}

func TestUnalignTruncates(t *testing.T) {
	b := []byte{0xFF}
	Little.Unalign(b, 6, 1)
	if b[0] != 0b01111110 {
		t.Errorf("got %08b, want 01111110", b[0])
	}

	b = []byte{0xFF, 0xFF}
	Big.Unalign(b, 2, 4)
	if b[0] != 0b00000111 || b[1] != 0b11110000 {
		t.Errorf("got %08b", b)
	}
}

func TestMergeSingleByte(t *testing.T) {
	dest := []byte{0b10001000}
	Little.Merge([]byte{0b00100100}, dest, 6, 1)
	if dest[0] != 0b10100100 {
		t.Errorf("got %08b, want 10100100", dest[0])
	}
}

func TestMergeMultiByte(t *testing.T) {
	tests := []struct {
		name string
		en   Endian
		dest []byte
		want []byte
	}{
		{"little", Little, []byte{0xE0, 0x00, 0x07, 0xAA}, []byte{0xE5, 0x66, 0x0F, 0xAA}},
		{"big", Big, []byte{0xAA, 0xE0, 0x00, 0x07}, []byte{0xAA, 0xE5, 0x66, 0x0F}},
	}

	src := []byte{0x05, 0x66, 0x08}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.en.Merge(src, tc.dest, 4, 3)
			if !bytes.Equal(tc.dest, tc.want) {
				t.Errorf("got %x, want %x", tc.dest, tc.want)
			}
		})
	}
}

func TestIdentityFastPath(t *testing.T) {
	in := []byte{0x12, 0x34, 0x56, 0x78}
	for _, en := range []Endian{Little, Big} {
		b := append([]byte(nil), in...)
		en.Align(b, bit.MSB, bit.LSB)
		if !bytes.Equal(b, in) {
			t.Errorf("%s align: got %x", en, b)
		}
		en.Unalign(b, bit.MSB, bit.LSB)
		if !bytes.Equal(b, in) {
			t.Errorf("%s unalign: got %x", en, b)
		}
		dest := make([]byte, len(in))
		en.Merge(in, dest, bit.MSB, bit.LSB)
		if !bytes.Equal(dest, in) {
			t.Errorf("%s merge: got %x", en, dest)
		}
	}

	for v := 0; v < 256; v++ {
		b := []byte{byte(v)}
		Little.Align(b, bit.MSB, bit.LSB)
		Little.Unalign(b, bit.MSB, bit.LSB)
		if b[0] != byte(v) {
			t.Fatalf("value %d: got %d", v, b[0])
		}
	}
}

func TestCopyPlacement(t *testing.T) {
	src := []byte{0xAA, 0xBB}

	dest := make([]byte, 4)
	Little.Copy(src, dest)
	if !bytes.Equal(dest, []byte{0xAA, 0xBB, 0, 0}) {
		t.Errorf("little: got %x", dest)
	}

	dest = make([]byte, 4)
	Big.Copy(src, dest)
	if !bytes.Equal(dest, []byte{0, 0, 0xAA, 0xBB}) {
		t.Errorf("big: got %x", dest)
	}
}

func TestWindow(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	if got := Little.Window(buf, 3); !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("little: got %v", got)
	}
	if got := Big.Window(buf, 3); !bytes.Equal(got, []byte{2, 3, 4}) {
		t.Errorf("big: got %v", got)
	}
}

// spans yields every valid (S, E) pair for a width.
func spans(w int, fn func(s, e bit.Position)) {
	for s := bit.Position(0); s <= bit.MSB; s++ {
		for e := bit.Position(0); e <= bit.MSB; e++ {
			if w == 1 && s < e {
				continue
			}
			fn(s, e)
		}
	}
}

func TestMergeNonDestructive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, en := range []Endian{Little, Big} {
		for w := 1; w <= 16; w++ {
			spans(w, func(s, e bit.Position) {
				value := make([]byte, w)
				rng.Read(value)
				en.Unalign(value, s, e)

				dest := make([]byte, w)
				rng.Read(dest)
				orig := append([]byte(nil), dest...)

				en.Merge(value, dest, s, e)

				for i := 0; i < w; i++ {
					inside := byte(0xFF)
					if i == 0 {
						inside &= s.HeadMask()
					}
					if i == w-1 {
						inside &^= e.LowMask()
					}
					if dest[i]&^inside != orig[i]&^inside {
						t.Fatalf("%s w=%d s=%d e=%d byte %d: outside bits changed %08b -> %08b",
							en, w, s, e, i, orig[i], dest[i])
					}
					if dest[i]&inside != value[i]&inside {
						t.Fatalf("%s w=%d s=%d e=%d byte %d: inside bits %08b, want %08b",
							en, w, s, e, i, dest[i]&inside, value[i]&inside)
					}
				}
			})
		}
	}
}

func TestAlignRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for _, en := range []Endian{Little, Big} {
		for w := 1; w <= 16; w++ {
			spans(w, func(s, e bit.Position) {
				wire := make([]byte, w)
				rng.Read(wire)
				wire[0] &= s.HeadMask()
				wire[w-1] &^= e.LowMask()

				b := append([]byte(nil), wire...)
				en.Align(b, s, e)
				en.Unalign(b, s, e)
				if !bytes.Equal(b, wire) {
					t.Fatalf("%s w=%d s=%d e=%d: got %08b, want %08b", en, w, s, e, b, wire)
				}
			})
		}
	}
}

func TestAlignAllOnes(t *testing.T) {
	for _, en := range []Endian{Little, Big} {
		for w := 1; w <= 16; w++ {
			spans(w, func(s, e bit.Position) {
				b := bytes.Repeat([]byte{0xFF}, w)
				en.Align(b, s, e)

				ones := bit.Span{S: s, E: e, W: bit.Width(w)}.Bits()
				got := 0
				for _, x := range b {
					for ; x != 0; x &= x - 1 {
						got++
					}
				}
				if got != ones {
					t.Fatalf("%s w=%d s=%d e=%d: %d bits set, want %d", en, w, s, e, got, ones)
				}
			})
		}
	}
}

func TestContractFaults(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"empty_align", func() { Little.Align(nil, 7, 0) }},
		{"inverted_single_byte", func() { Big.Align([]byte{0}, 2, 5) }},
		{"position_overflow", func() { Little.Unalign([]byte{0, 0}, 9, 0) }},
		{"short_copy_dest", func() { Big.Copy([]byte{1, 2}, []byte{0}) }},
		{"empty_merge", func() { Little.Merge(nil, []byte{0}, 7, 0) }},
		{"wide_window", func() { Little.Window([]byte{0}, 2) }},
		{"odd_uint", func() { Big.Uint([]byte{0, 0, 0}) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if _, ok := recover().(*errors.Fault); !ok {
					t.Error("expected *errors.Fault panic")
				}
			}()
			tc.fn()
		})
	}
}

func TestNativeConversion(t *testing.T) {
	b := make([]byte, 4)
	Little.PutUint(b, 0x01020304)
	if !bytes.Equal(b, []byte{4, 3, 2, 1}) {
		t.Errorf("little put: %x", b)
	}
	if got := Little.Uint(b); got != 0x01020304 {
		t.Errorf("little uint: %x", got)
	}

	Big.PutUint(b, 0x01020304)
	if !bytes.Equal(b, []byte{1, 2, 3, 4}) {
		t.Errorf("big put: %x", b)
	}
	if got := Big.Uint(b[:2]); got != 0x0102 {
		t.Errorf("big uint: %x", got)
	}
}

func TestParse(t *testing.T) {
	for _, name := range []string{"little", "LE", "little_endian", "lsb"} {
		en, err := Parse(name)
		if err != nil || en != Little {
			t.Errorf("Parse(%q) = %v, %v", name, en, err)
		}
	}
	for _, name := range []string{"big", "be", "Big_Endian", "msb"} {
		en, err := Parse(name)
		if err != nil || en != Big {
			t.Errorf("Parse(%q) = %v, %v", name, en, err)
		}
	}
	if _, err := Parse("middle"); err == nil {
		t.Error("expected error")
	}
}
