package design

import (
	"reflect"

	"golang.org/x/text/language"

	"github.com/designml/designfmt/design/converter"
	"github.com/designml/designfmt/internal/conv"
	"github.com/designml/designfmt/internal/typemap"
)

// Formatter is the conversion registry behind reading and writing design
// markup attribute values.  It maps model types to bidirectional string
// converters, resolves subtypes of registered types through supertype
// fallback and treats enumerations uniformly through declared value sets.
// All operations are safe for concurrent use.
type Formatter struct {
	converters *typemap.Map[reflect.Type, converter.Converter]
	enums      *typemap.Map[reflect.Type, *converter.EnumSet]
}

// Option modifies a formatter instance after the default converters have been
// mapped, so options may override defaults.  Users can pass an arbitrary
// number of options to New.
type Option func(*Formatter)

// WithConverters registers additional converters, each keyed by its own model
// type.
func WithConverters(converters ...converter.Converter) Option {
	return func(f *Formatter) {
		for _, c := range converters {
			f.Register(c)
		}
	}
}

// WithEnums declares enumeration value sets in addition to the converter
// table.
func WithEnums(sets ...*converter.EnumSet) Option {
	return func(f *Formatter) {
		for _, s := range sets {
			f.RegisterEnum(s)
		}
	}
}

// New constructs a formatter with the default model types already mapped.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		converters: typemap.New[reflect.Type, converter.Converter](),
		enums:      typemap.New[reflect.Type, *converter.EnumSet](),
	}
	f.registerDefaults()
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Register adds a converter keyed by its own model type, replacing any
// previous registration for that type.
func (f *Formatter) Register(c converter.Converter) {
	f.converters.Set(c.ModelType(), c)
}

// RegisterAs adds a converter under an explicit key.  The key does not have
// to match the converter's model type; this is how one converter instance
// serves both a value type and its pointer alias.
func (f *Formatter) RegisterAs(t reflect.Type, c converter.Converter) {
	f.converters.Set(t, c)
}

// Unregister removes the converter registered for exactly t.  Removing a type
// that was never registered is a no-op.
func (f *Formatter) Unregister(t reflect.Type) {
	f.converters.Delete(t)
}

// RegisterEnum declares an enumeration value set.  Declared enums are
// convertible without any converter registration and take precedence over the
// converter table during resolution.
func (f *Formatter) RegisterEnum(set *converter.EnumSet) {
	f.enums.Set(set.ModelType(), set)
}

// UnregisterEnum removes a declared enumeration value set, if any.
func (f *Formatter) UnregisterEnum(t reflect.Type) {
	f.enums.Delete(t)
}

// RegisteredTypes returns the exactly registered converter keys.  This is not
// the set of convertible types: subtypes of registered types convert through
// fallback and declared enums never appear here.  The slice is a copy in
// unspecified order and safe for callers to modify.
func (f *Formatter) RegisteredTypes() []reflect.Type {
	return f.converters.Keys()
}

// CanConvert reports whether values of type t can be converted, either
// through an exact registration, a declared enum or a registered supertype.
func (f *Formatter) CanConvert(t reflect.Type) bool {
	_, ok := f.FindConverter(t, false)
	return ok
}

// Parse converts the textual attribute form into a value of type t.  A nil
// result with a nil error means no converter is known for t; callers must
// treat that as "unsupported type", not as a failure.  Malformed input for a
// resolved converter is returned as an error.
func (f *Formatter) Parse(value string, t reflect.Type) (any, error) {
	c, ok := f.FindConverter(t, false)
	if !ok {
		return nil, nil
	}
	return c.Parse(value, language.Und)
}

// Format renders a value into its textual attribute form.  A nil value, or a
// typed nil pointer, yields a nil result without consulting any converter.  A
// nil result with a nil error likewise signals that the value's type has no
// converter.
func (f *Formatter) Format(value any) (*string, error) {
	if isNil(value) {
		return nil, nil
	}
	return f.FormatAs(value, reflect.TypeOf(value))
}

// FormatAs renders a value using a converter suitable for the given type.
// The converter is always resolved from the value's dynamic type; t is
// advisory and kept for call-site symmetry with Parse.
func (f *Formatter) FormatAs(value any, t reflect.Type) (*string, error) {
	if isNil(value) {
		return nil, nil
	}
	c, ok := f.FindConverter(reflect.TypeOf(value), false)
	if !ok {
		return nil, nil
	}
	text, err := c.Format(value, language.Und)
	if err != nil {
		return nil, err
	}
	return conv.Pointer(text), nil
}

// FindConverter resolves a converter for t.  Declared enums win over the
// converter table and an exact entry wins over fallback.  When strict is
// false the registered keys are scanned and the first key t is assignable to
// supplies the converter; with several compatible supertypes registered the
// pick follows map iteration order.
func (f *Formatter) FindConverter(t reflect.Type, strict bool) (converter.Converter, bool) {
	if t == nil {
		return nil, false
	}
	if set, ok := f.enums.Get(t); ok {
		return set, true
	}
	if c, ok := f.converters.Get(t); ok {
		return c, true
	}
	if strict {
		return nil, false
	}
	var found converter.Converter
	f.converters.Range(func(key reflect.Type, c converter.Converter) bool {
		if t.AssignableTo(key) {
			found = c
			return false
		}
		return true
	})
	return found, found != nil
}

// isNil reports whether value is nil or wraps a nil pointer-like value.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
