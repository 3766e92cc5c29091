package converter

import (
	"reflect"
	"time"

	"golang.org/x/text/language"
)

var locationType = reflect.TypeOf((*time.Location)(nil))

// TimeZone converts IANA zone identifiers such as "Europe/Helsinki" to
// *time.Location.  Resolution goes through the platform zone database and an
// unknown identifier is a hard failure, not a silent UTC fallback.
type TimeZone struct{}

func (TimeZone) ModelType() reflect.Type { return locationType }

func (TimeZone) Parse(value string, _ language.Tag) (any, error) {
	loc, err := time.LoadLocation(value)
	if err != nil {
		return nil, newError(locationType, value, "unknown time zone", err)
	}
	return loc, nil
}

func (TimeZone) Format(value any, _ language.Tag) (string, error) {
	loc, ok := value.(*time.Location)
	if !ok || loc == nil {
		return "", newError(locationType, value, "not a time zone value", nil)
	}
	return loc.String(), nil
}
