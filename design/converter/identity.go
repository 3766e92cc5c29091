package converter

import (
	"reflect"

	"golang.org/x/text/language"
)

var stringType = reflect.TypeOf("")

// String is the identity converter: the markup form and the model value
// coincide, nothing is escaped or trimmed.
type String struct{}

func (String) ModelType() reflect.Type { return stringType }

func (String) Parse(value string, _ language.Tag) (any, error) {
	return value, nil
}

func (String) Format(value any, _ language.Tag) (string, error) {
	rv, ok := concrete(value)
	if !ok || rv.Kind() != reflect.String {
		return "", newError(stringType, value, "not a string value", nil)
	}
	return rv.String(), nil
}
