package converter

import (
	"reflect"
	"strconv"

	"golang.org/x/text/language"
)

// Integer converts signed integers of a fixed width using plain base-10
// notation.  One instance serves both the value type and its pointer alias.
type Integer struct {
	typ  reflect.Type
	bits int
}

// NewInteger creates a converter for the given signed integer type.  The
// type's kind selects the accepted width.
func NewInteger(t reflect.Type) *Integer {
	var bits int
	switch t.Kind() {
	case reflect.Int8:
		bits = 8
	case reflect.Int16:
		bits = 16
	case reflect.Int32:
		bits = 32
	case reflect.Int:
		bits = strconv.IntSize
	default:
		bits = 64
	}
	return &Integer{typ: t, bits: bits}
}

func (c *Integer) ModelType() reflect.Type { return c.typ }

func (c *Integer) Parse(value string, _ language.Tag) (any, error) {
	n, err := strconv.ParseInt(value, 10, c.bits)
	if err != nil {
		return nil, newError(c.typ, value, "invalid integer", err)
	}
	return reflect.ValueOf(n).Convert(c.typ).Interface(), nil
}

func (c *Integer) Format(value any, _ language.Tag) (string, error) {
	rv, ok := concrete(value)
	if !ok || !rv.CanInt() {
		return "", newError(c.typ, value, "not an integer value", nil)
	}
	return strconv.FormatInt(rv.Int(), 10), nil
}
