package converter

import (
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

var boolType = reflect.TypeOf(true)

// Bool converts booleans with the permissive attribute rule: only the literal
// "false" (in any case) parses as false, every other input including the
// empty string is true.  An attribute that is present without a value is
// therefore an enabled flag.
type Bool struct{}

func (Bool) ModelType() reflect.Type { return boolType }

func (Bool) Parse(value string, _ language.Tag) (any, error) {
	return !strings.EqualFold(value, "false"), nil
}

func (Bool) Format(value any, _ language.Tag) (string, error) {
	rv, ok := concrete(value)
	if !ok || rv.Kind() != reflect.Bool {
		return "", newError(boolType, value, "not a boolean value", nil)
	}
	return strconv.FormatBool(rv.Bool()), nil
}
