package converter

import (
	"fmt"
	"reflect"

	"golang.org/x/text/language"
)

// Converter turns the textual attribute form used in design markup into a
// value of its model type and back.  Implementations declare the exact type
// they produce; the formatter may still route subtypes of that type to them
// through supertype fallback.
type Converter interface {
	// ModelType returns the type produced by Parse.
	ModelType() reflect.Type

	// Parse converts the textual form into a model value.  Malformed input
	// is reported as *ConversionError.
	Parse(value string, locale language.Tag) (any, error)

	// Format renders a model value into its textual form.  Pointer values
	// are dereferenced before formatting.
	Format(value any, locale language.Tag) (string, error)
}

// ConversionError reports a failed string/value conversion.
type ConversionError struct {
	// Type is the model type of the converter that failed.
	Type reflect.Type
	// Value is the offending input: the raw string on parse, the model
	// value on format.
	Value any
	// Reason is a short human readable cause.
	Reason string
	// Err is the underlying error, when any.
	Err error
}

func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot convert %v (type %v): %s: %v", e.Value, e.Type, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot convert %v (type %v): %s", e.Value, e.Type, e.Reason)
}

func (e *ConversionError) Unwrap() error { return e.Err }

func newError(t reflect.Type, value any, reason string, err error) *ConversionError {
	return &ConversionError{Type: t, Value: value, Reason: reason, Err: err}
}

// concrete unwraps interface and pointer indirection so that a converter
// registered under a pointer alias can format the pointee.
func concrete(value any) (reflect.Value, bool) {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}
