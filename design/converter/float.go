package converter

import (
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Float converts floating point numbers using a fixed presentation format: at
// most three fraction digits, trailing zeros trimmed, no grouping separators,
// always a decimal point.  Formatting is lossy for values with more fraction
// digits; the markup form favours readability over precision.
type Float struct {
	typ  reflect.Type
	bits int
}

// NewFloat creates a converter for float32 or float64 depending on t's kind.
func NewFloat(t reflect.Type) *Float {
	bits := 64
	if t.Kind() == reflect.Float32 {
		bits = 32
	}
	return &Float{typ: t, bits: bits}
}

func (c *Float) ModelType() reflect.Type { return c.typ }

func (c *Float) Parse(value string, _ language.Tag) (any, error) {
	f, err := strconv.ParseFloat(value, c.bits)
	if err != nil {
		return nil, newError(c.typ, value, "invalid number", err)
	}
	return reflect.ValueOf(f).Convert(c.typ).Interface(), nil
}

func (c *Float) Format(value any, _ language.Tag) (string, error) {
	rv, ok := concrete(value)
	if !ok || !rv.CanFloat() {
		return "", newError(c.typ, value, "not a floating point value", nil)
	}
	text := strconv.FormatFloat(rv.Float(), 'f', 3, 64)
	if strings.Contains(text, ".") {
		text = strings.TrimRight(text, "0")
		text = strings.TrimSuffix(text, ".")
	}
	return text, nil
}
