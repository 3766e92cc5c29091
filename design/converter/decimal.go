package converter

import (
	"reflect"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// Decimal converts arbitrary-precision decimal numbers.  Unlike Float there
// is no presentation rounding: the full precision of the value round-trips.
type Decimal struct{}

func (Decimal) ModelType() reflect.Type { return decimalType }

func (Decimal) Parse(value string, _ language.Tag) (any, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, newError(decimalType, value, "invalid decimal", err)
	}
	return d, nil
}

func (Decimal) Format(value any, _ language.Tag) (string, error) {
	rv, ok := concrete(value)
	if !ok || rv.Type() != decimalType {
		return "", newError(decimalType, value, "not a decimal value", nil)
	}
	return rv.Interface().(decimal.Decimal).String(), nil
}
