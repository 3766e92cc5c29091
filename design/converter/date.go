package converter

import (
	"reflect"
	"time"

	"golang.org/x/text/language"
)

var timeType = reflect.TypeOf(time.Time{})

// DefaultDateLayouts is the layout ladder tried during parsing, most precise
// form first.
var DefaultDateLayouts = []string{
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// DefaultDateOutput is the layout used when formatting.  Writing the
// date-only form is lossy for timestamps that carry a time of day.
const DefaultDateOutput = "2006-01-02"

// Date converts timestamps.  Parsing walks the layout ladder and the first
// layout that accepts the input wins; formatting always uses the single
// output layout.
type Date struct {
	layouts []string
	output  string
}

// NewDate creates a converter with the default layout ladder and the
// date-only output form.
func NewDate() *Date {
	return &Date{layouts: DefaultDateLayouts, output: DefaultDateOutput}
}

// NewDateWithLayouts creates a converter with a custom output layout and
// parse layouts.  Empty arguments fall back to the defaults.
func NewDateWithLayouts(output string, layouts ...string) *Date {
	if output == "" {
		output = DefaultDateOutput
	}
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}
	return &Date{layouts: layouts, output: output}
}

func (c *Date) ModelType() reflect.Type { return timeType }

func (c *Date) Parse(value string, _ language.Tag) (any, error) {
	for _, layout := range c.layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return nil, newError(timeType, value, "unrecognized date", nil)
}

func (c *Date) Format(value any, _ language.Tag) (string, error) {
	rv, ok := concrete(value)
	if !ok || rv.Type() != timeType {
		return "", newError(timeType, value, "not a time value", nil)
	}
	return rv.Interface().(time.Time).Format(c.output), nil
}
