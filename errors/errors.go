package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseResolve  Phase = "resolve"  // field layout resolution
	PhaseCompile  Phase = "compile"  // struct type registration
	PhasePack     Phase = "pack"     // Go to bytes
	PhaseUnpack   Phase = "unpack"   // bytes to Go
	PhaseValidate Phase = "validate" // typed value validation
	PhaseMemory   Phase = "memory"   // buffer and guest memory access
	PhaseParse    Phase = "parse"    // tags, layout files, type names
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfOrder        Kind = "out_of_order"
	KindWidthMismatch     Kind = "width_mismatch"
	KindTooWide           Kind = "too_wide"
	KindInvalidBit        Kind = "invalid_bit"
	KindSizeMismatch      Kind = "size_mismatch"
	KindInsufficientBytes Kind = "insufficient_bytes"
	KindInvalidEnum       Kind = "invalid_enum"
	KindInvalidTag        Kind = "invalid_tag"
	KindTypeMismatch      Kind = "type_mismatch"
	KindUnsupported       Kind = "unsupported"
	KindOutOfBounds       Kind = "out_of_bounds"
	KindNilPointer        Kind = "nil_pointer"
	KindInvalidInput      Kind = "invalid_input"
	KindNotFound          Kind = "not_found"
)

// NoField marks an Error that is not tied to a field declaration.
const NoField = -1

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	Name   string // field name, if any
	Detail string
	Path   []string
	Index  int // field index, NoField when unset
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Index >= 0 {
		b.WriteString(" (field #")
		b.WriteString(strconv.Itoa(e.Index))
		if e.Name != "" {
			b.WriteByte(' ')
			b.WriteString(e.Name)
		}
		b.WriteByte(')')
	}

	if e.GoType != "" {
		b.WriteString(": Go type ")
		b.WriteString(e.GoType)
	}

	if e.Detail != "" {
		if e.GoType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
			Index: NoField,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Field sets the index and name of the offending field declaration
func (b *Builder) Field(index int, name string) *Builder {
	b.err.Index = index
	b.err.Name = name
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string) *Builder {
	b.err.Detail = msg
	return b
}

// Detailf sets the detail message from a format string
func (b *Builder) Detailf(format string, args ...any) *Builder {
	b.err.Detail = fmt.Sprintf(format, args...)
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfOrder creates an error for a field declared before the current position
func OutOfOrder(phase Phase, index int, name string, declared, current int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfOrder,
		Index:  index,
		Name:   name,
		Detail: fmt.Sprintf("byte %d specified before current position (byte %d), are the fields out of order?", declared, current),
		Value:  declared,
	}
}

// WidthMismatch creates an error for a width that disagrees with explicit positions
func WidthMismatch(phase Phase, index int, name string, declared, calculated int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindWidthMismatch,
		Index:  index,
		Name:   name,
		Detail: fmt.Sprintf("width of %d bits specified but calculated width is %d", declared, calculated),
		Value:  declared,
	}
}

// TooWide creates an error for a span wider than the value kind
func TooWide(phase Phase, index int, name string, bits, max int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTooWide,
		Index:  index,
		Name:   name,
		Detail: fmt.Sprintf("field is %d bits which is more than will fit in %d bits", bits, max),
		Value:  bits,
	}
}

// InvalidBit creates an error for a bit number outside 0-7
func InvalidBit(phase Phase, index int, name string, bit int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidBit,
		Index:  index,
		Name:   name,
		Detail: fmt.Sprintf("bit %d must be between 0 and 7 (inclusive)", bit),
		Value:  bit,
	}
}

// SizeMismatch creates an error for a declared size smaller than the resolved size
func SizeMismatch(phase Phase, declared, resolved int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindSizeMismatch,
		Index:  NoField,
		Detail: fmt.Sprintf("declared size %d bytes is smaller than resolved size %d bytes", declared, resolved),
		Value:  declared,
	}
}

// InsufficientBytes creates an error for a buffer shorter than the structure
func InsufficientBytes(phase Phase, path []string, have, need int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInsufficientBytes,
		Path:   path,
		Index:  NoField,
		Detail: fmt.Sprintf("buffer has %d bytes, need at least %d", have, need),
		Value:  have,
	}
}

// InvalidEnum creates an invalid enum value error
func InvalidEnum(phase Phase, path []string, value any, enumType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidEnum,
		Path:   path,
		Index:  NoField,
		GoType: enumType,
		Detail: fmt.Sprintf("invalid discriminant %v", value),
		Value:  value,
	}
}

// InvalidTag creates an error for a malformed struct tag or layout directive
func InvalidTag(phase Phase, name, tag, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidTag,
		Index:  NoField,
		Name:   name,
		Detail: fmt.Sprintf("%s in %q", detail, tag),
		Value:  tag,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, expected string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		Index:  NoField,
		GoType: goType,
		Detail: "expected " + expected,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Index:  NoField,
		Detail: what,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, offset, length, size uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Index:  NoField,
		Detail: fmt.Sprintf("range [%d, %d) out of bounds (size %d)", offset, uint64(offset)+uint64(length), size),
		Value:  offset,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, path []string, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Path:   path,
		Index:  NoField,
		GoType: goType,
		Detail: "nil pointer",
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Index:  NoField,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Index:  NoField,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Index:  NoField,
		Detail: detail,
		Cause:  cause,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidInput,
		Index:  NoField,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}
