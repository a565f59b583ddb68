package record

import (
	stderrors "errors"
	"reflect"
	"sync"

	"github.com/wippyai/bitpack/codec"
	"github.com/wippyai/bitpack/errors"
	"github.com/wippyai/bitpack/layout"
	"go.uber.org/zap"
)

// TagName is the struct tag key read by the compiler.
const TagName = "packed"

var (
	uint128Type   = reflect.TypeFor[codec.Uint128]()
	validatorType = reflect.TypeFor[validator]()
)

type validator interface {
	Valid() bool
}

type Compiler struct {
	cache sync.Map // reflect.Type -> *Codec
}

func NewCompiler() *Compiler {
	return &Compiler{}
}

var defaultCompiler = NewCompiler()

// For compiles T with the package compiler.
func For[T any]() (*Codec, error) {
	return defaultCompiler.Compile(reflect.TypeFor[T]())
}

// Compile returns the cached Codec for goType, compiling it on first use.
// Pointer types are dereferenced.
func (c *Compiler) Compile(goType reflect.Type) (*Codec, error) {
	if goType == nil {
		return nil, errors.New(errors.PhaseCompile, errors.KindNilPointer).
			Detail("Go type cannot be nil").
			Build()
	}
	if goType.Kind() == reflect.Ptr {
		goType = goType.Elem()
	}

	if cached, ok := c.cache.Load(goType); ok {
		return cached.(*Codec), nil
	}

	rc, err := c.compile(goType)
	if err != nil {
		return nil, err
	}

	actual, _ := c.cache.LoadOrStore(goType, rc)
	return actual.(*Codec), nil
}

func (c *Compiler) compile(goType reflect.Type) (*Codec, error) {
	typeName := goType.String()
	if goType.Kind() != reflect.Struct {
		return nil, errors.TypeMismatch(errors.PhaseCompile, []string{typeName}, typeName, "struct")
	}

	var (
		cfg      layout.Config
		cfgSeen  bool
		specs    []layout.Spec
		bindings []binding
	)

	for i := 0; i < goType.NumField(); i++ {
		sf := goType.Field(i)
		tag, tagged := sf.Tag.Lookup(TagName)

		if sf.Name == "_" {
			if !tagged {
				continue
			}
			if cfgSeen {
				return nil, errors.InvalidTag(errors.PhaseCompile, typeName, tag, "structure settings given more than once")
			}
			var err error
			if cfg, err = layout.ParseConfigTag(tag); err != nil {
				return nil, withPath(err, typeName)
			}
			cfgSeen = true
			continue
		}
		if !sf.IsExported() || tag == "-" {
			continue
		}

		kind, ok := kindOf(sf.Type)
		if !ok {
			return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
				Path(typeName, sf.Name).
				GoType(sf.Type.String()).
				Detail("field type cannot be packed").
				Build()
		}

		spec, err := layout.ParseTag(sf.Name, kind, tag)
		if err != nil {
			return nil, withPath(err, typeName, sf.Name)
		}
		specs = append(specs, spec)
		bindings = append(bindings, binding{
			index:    i,
			goType:   sf.Type,
			validate: sf.Type.Implements(validatorType),
		})
	}

	l, err := cfg.Resolve(specs)
	if err != nil {
		return nil, withPath(err, typeName)
	}

	fields := make([]field, len(l.Fields))
	for i, f := range l.Fields {
		fields[i] = field{Field: f, binding: bindings[i], span: f.Span()}
	}

	rc := &Codec{
		goType: goType,
		layout: l,
		fields: fields,
	}

	Logger().Debug("compiled record",
		zap.String("type", typeName),
		zap.Int("size", l.Size),
		zap.Int("fields", len(fields)),
		zap.Stringer("order", l.Config.Order),
		zap.Stringer("bit_order", l.Config.BitOrder),
	)
	return rc, nil
}

func kindOf(t reflect.Type) (layout.Kind, bool) {
	if t == uint128Type {
		return layout.KindU128, true
	}
	switch t.Kind() {
	case reflect.Bool:
		return layout.KindBool, true
	case reflect.Uint8:
		return layout.KindU8, true
	case reflect.Uint16:
		return layout.KindU16, true
	case reflect.Uint32:
		return layout.KindU32, true
	case reflect.Uint64:
		return layout.KindU64, true
	case reflect.Float32:
		return layout.KindF32, true
	case reflect.Float64:
		return layout.KindF64, true
	}
	return layout.KindInvalid, false
}

// withPath prefixes the path of a structured error.
func withPath(err error, path ...string) error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		e.Path = append(path, e.Path...)
	}
	return err
}
