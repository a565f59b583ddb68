package main

import (
	"bytes"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/wippyai/bitpack/endian"
	"github.com/wippyai/bitpack/layout"
)

const modeSenseLayout = `
# MODE SENSE(6)
@struct big_endian, lsb0
op_code            u8    bytes=0
dbd                bool  bytes=1,bits=3
page_control       u8    bytes=2, bits=7..6
page_code          u8    bytes=2,bits=5..0
subpage_code       u8
allocation_length  u8
control            uint8
`

func resolveText(t *testing.T, text string) *layout.Layout {
	t.Helper()
	cfg, specs, err := parseLayoutFile(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	l, err := cfg.Resolve(specs)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestParseLayoutFile(t *testing.T) {
	l := resolveText(t, modeSenseLayout)
	if l.Size != 6 {
		t.Errorf("size: got %d, want 6", l.Size)
	}
	if l.Config.Order != endian.Big {
		t.Errorf("order: got %v", l.Config.Order)
	}
	f, ok := l.Lookup("page_code")
	if !ok || f.Start != 18 || f.End != 23 {
		t.Errorf("page_code: %+v", f)
	}
}

func TestParseLayoutFileErrors(t *testing.T) {
	tests := []string{
		"a u8\n@struct lsb0\n",
		"lonely\n",
		"a s8\n",
		"a u8 offset=2\n",
		"@struct sideways\n",
	}
	for _, text := range tests {
		if _, _, err := parseLayoutFile(strings.NewReader(text)); err == nil {
			t.Errorf("%q: expected error", text)
		}
	}
}

func TestSetAndRead(t *testing.T) {
	l := resolveText(t, modeSenseLayout)
	buf := make([]byte, l.Size)

	for _, s := range []string{"op_code=0x1a", "dbd=true", "page_control=3", "page_code=0x3f", "allocation_length=252"} {
		if err := applySet(l, buf, s); err != nil {
			t.Fatalf("%s: %v", s, err)
		}
	}
	want := []byte{0x1a, 0x08, 0xff, 0x00, 0xfc, 0x00}
	if !bytes.Equal(buf, want) {
		t.Errorf("got %x, want %x", buf, want)
	}

	f, _ := l.Lookup("page_control")
	if got := readField(f, buf); got != "3 (0x3)" {
		t.Errorf("read: %q", got)
	}
	f, _ = l.Lookup("dbd")
	if got := readField(f, buf); got != "true" {
		t.Errorf("read: %q", got)
	}

	for _, s := range []string{"page_control=4", "missing=1", "dbd", "dbd=maybe"} {
		if err := applySet(l, buf, s); err == nil {
			t.Errorf("%s: expected error", s)
		}
	}
}

func TestWideValues(t *testing.T) {
	l := resolveText(t, "id u128 width=72\nratio f32\n")
	buf := make([]byte, l.Size)

	if err := applySet(l, buf, "id=0x800000000000000001"); err != nil {
		t.Fatal(err)
	}
	if err := applySet(l, buf, "ratio=0.5"); err != nil {
		t.Fatal(err)
	}
	f, _ := l.Lookup("id")
	if got := readField(f, buf); got != "2361183241434822606849 (0x800000000000000001)" {
		t.Errorf("id: %q", got)
	}
	f, _ = l.Lookup("ratio")
	if got := readField(f, buf); got != "0.5" {
		t.Errorf("ratio: %q", got)
	}
	if err := applySet(l, buf, "id=0x1000000000000000000"); err == nil {
		t.Error("expected overflow error")
	}
}

func TestInitialBuffer(t *testing.T) {
	l := resolveText(t, modeSenseLayout)

	buf, err := initialBuffer(l, "1a 08:c4 de 01 29")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf, []byte{0x1a, 0x08, 0xc4, 0xde, 0x01, 0x29}) {
		t.Errorf("got %x", buf)
	}
	if _, err := initialBuffer(l, "1a08"); err == nil {
		t.Error("expected insufficient bytes error")
	}
	if _, err := initialBuffer(l, "zz"); err == nil {
		t.Error("expected hex error")
	}
}

func TestInitialBufferHexPrefix(t *testing.T) {
	l := resolveText(t, modeSenseLayout)
	want := []byte{0x1a, 0x08, 0xc4, 0xde, 0x01, 0x29}

	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"prefixed", "0x1a08c4de0129", true},
		{"upper prefix", "0X1a08c4de0129", true},
		{"prefix per token", "0x1a 0x08 0xc4:de\t01 29", true},
		{"prefix inside token", "1a0x08c4de0129", false},
		{"bare prefix", "0x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := initialBuffer(l, tt.input)
			if !tt.ok {
				if err == nil {
					t.Fatalf("expected error, got %x", buf)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(buf, want) {
				t.Errorf("got %x, want %x", buf, want)
			}
		})
	}
}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestPrintLayoutStyledColumns(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(prev)

	l := resolveText(t, modeSenseLayout)
	buf := []byte{0x1a, 0x08, 0xc4, 0xde, 0x01, 0x29}

	var plain, styled bytes.Buffer
	printLayout(&plain, l, buf, false)
	printLayout(&styled, l, buf, true)

	if !strings.Contains(styled.String(), "\x1b[") {
		t.Fatal("styled output has no escape codes")
	}
	if got := ansi.ReplaceAllString(styled.String(), ""); got != plain.String() {
		t.Errorf("styled columns differ from plain output:\n%s\nwant:\n%s", got, plain.String())
	}
}

func TestPrintLayout(t *testing.T) {
	l := resolveText(t, modeSenseLayout)
	buf := []byte{0x1a, 0x08, 0xc4, 0xde, 0x01, 0x29}

	var out bytes.Buffer
	printLayout(&out, l, buf, false)
	text := out.String()

	for _, want := range []string{
		"Layout 6 bytes, big, lsb0",
		"|2|page_control|-|page_code|-|-|-|-|-|",
		"subpage_code",
		"222 (0xde)",
		"Bytes 1a08c4de0129",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/cmd.layout"
	if err := writeFile(path, modeSenseLayout); err != nil {
		t.Fatal(err)
	}

	l, buf, err := load(zap.NewNop(), path, "", []string{"control=41"})
	if err != nil {
		t.Fatal(err)
	}
	if l.Size != 6 || buf[5] != 41 {
		t.Errorf("got size %d buf %x", l.Size, buf)
	}

	if _, _, err := load(zap.NewNop(), dir+"/missing", "", nil); err == nil {
		t.Error("expected open error")
	}
}

func writeFile(path, text string) error {
	return os.WriteFile(path, []byte(text), 0o644)
}
