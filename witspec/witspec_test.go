package witspec

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/bitpack/errors"
	"github.com/wippyai/bitpack/layout"
	"go.bytecodealliance.org/wit"
)

func errKind(err error) errors.Kind {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func TestFromTypeDef(t *testing.T) {
	name := "header"
	length := &wit.TypeDef{Kind: wit.U32{}}
	td := &wit.TypeDef{
		Name: &name,
		Kind: &wit.Record{
			Fields: []wit.Field{
				{Name: "version", Type: wit.U8{}},
				{Name: "ready", Type: wit.Bool{}},
				{Name: "length", Type: length},
				{Name: "ratio", Type: wit.F64{}},
			},
		},
	}

	specs, err := FromTypeDef(td)
	if err != nil {
		t.Fatal(err)
	}
	l, err := layout.Resolve(specs)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		kind       layout.Kind
		start, end int
	}{
		{"version", layout.KindU8, 0, 7},
		{"ready", layout.KindBool, 15, 15},
		{"length", layout.KindU32, 16, 47},
		{"ratio", layout.KindF64, 48, 111},
	}
	for _, tc := range tests {
		f, ok := l.Lookup(tc.name)
		if !ok {
			t.Fatalf("%s: not found", tc.name)
		}
		if f.Kind != tc.kind || f.Start != tc.start || f.End != tc.end {
			t.Errorf("%s: got %s %d..%d", tc.name, f.Kind, f.Start, f.End)
		}
	}
	if l.Size != 14 {
		t.Errorf("size: got %d, want 14", l.Size)
	}
}

func TestFromRecordUnsupported(t *testing.T) {
	r := &wit.Record{
		Fields: []wit.Field{
			{Name: "id", Type: wit.U16{}},
			{Name: "label", Type: wit.String{}},
		},
	}

	_, err := FromRecord(r)
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindUnsupported {
		t.Fatalf("expected unsupported, got %v", err)
	}
	if len(e.Path) != 2 || e.Path[1] != "label" {
		t.Errorf("path: %v", e.Path)
	}
}

func TestFromTypeDefErrors(t *testing.T) {
	if _, err := FromTypeDef(nil); errKind(err) != errors.KindNilPointer {
		t.Errorf("nil: %v", err)
	}
	if _, err := FromRecord(nil); errKind(err) != errors.KindNilPointer {
		t.Errorf("nil record: %v", err)
	}
	list := &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}
	if _, err := FromTypeDef(list); errKind(err) != errors.KindTypeMismatch {
		t.Errorf("list: %v", err)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want layout.Kind
	}{
		{"bool", layout.KindBool},
		{"u8", layout.KindU8},
		{"u16", layout.KindU16},
		{"u32", layout.KindU32},
		{"u64", layout.KindU64},
		{"u128", layout.KindU128},
		{"f32", layout.KindF32},
		{"f64", layout.KindF64},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseKind(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}

	if _, err := ParseKind("string"); errKind(err) != errors.KindUnsupported {
		t.Errorf("string: %v", err)
	}
	if _, err := ParseKind("s8"); err == nil {
		t.Error("s8: expected error")
	}
}
