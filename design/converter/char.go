package converter

import (
	"reflect"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// Char is the model type for single-character attributes.  It is a distinct
// named type so that its registry key stays separate from int32.
type Char rune

var charType = reflect.TypeOf(Char(0))

// Character converts single characters by taking the first rune of the
// input; any remainder is silently dropped.  The empty string has no first
// rune and fails.
type Character struct{}

func (Character) ModelType() reflect.Type { return charType }

func (Character) Parse(value string, _ language.Tag) (any, error) {
	r, size := utf8.DecodeRuneInString(value)
	if size == 0 {
		return nil, newError(charType, value, "empty string has no character", nil)
	}
	return Char(r), nil
}

func (Character) Format(value any, _ language.Tag) (string, error) {
	rv, ok := concrete(value)
	if !ok || rv.Type() != charType {
		return "", newError(charType, value, "not a character value", nil)
	}
	return string(rune(rv.Interface().(Char))), nil
}
