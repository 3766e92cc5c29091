package design

import (
	"reflect"

	"github.com/designml/designfmt/design/converter"
)

// registerDefaults maps the default model types to their converters.
func (f *Formatter) registerDefaults() {
	// signed integers use plain base-10 notation; each width serves its
	// pointer alias through the same instance
	for _, t := range []reflect.Type{
		reflect.TypeOf(int(0)),
		reflect.TypeOf(int8(0)),
		reflect.TypeOf(int16(0)),
		reflect.TypeOf(int32(0)),
		reflect.TypeOf(int64(0)),
	} {
		c := converter.NewInteger(t)
		f.Register(c)
		f.RegisterAs(reflect.PointerTo(t), c)
	}

	// arbitrary precision decimals keep a single registration
	f.Register(converter.Decimal{})

	// booleans follow the attribute rule: "false" is false, everything else true
	boolConv := converter.Bool{}
	f.Register(boolConv)
	f.RegisterAs(reflect.TypeOf((*bool)(nil)), boolConv)

	// floats share the fixed three-fraction-digit presentation
	for _, t := range []reflect.Type{
		reflect.TypeOf(float32(0)),
		reflect.TypeOf(float64(0)),
	} {
		c := converter.NewFloat(t)
		f.Register(c)
		f.RegisterAs(reflect.PointerTo(t), c)
	}

	// strings do nothing
	f.Register(converter.String{})

	// characters take the first rune of the input
	charConv := converter.Character{}
	f.Register(charConv)
	f.RegisterAs(reflect.TypeOf((*converter.Char)(nil)), charConv)

	f.Register(converter.NewDate())
	f.Register(converter.ShortcutConverter{})
	f.Register(converter.NewResourceConverter())
	f.Register(converter.TimeZone{})
}
