package converter

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/text/language"
)

// Resource is an opaque handle to an external asset referenced from design
// markup, e.g. "theme://icons/ok.png" or a bare file path.
type Resource struct {
	Scheme   string
	Location string
}

// URL returns the scheme-prefixed textual form.
func (r Resource) URL() string {
	return r.Scheme + "://" + r.Location
}

var resourceType = reflect.TypeOf(Resource{})

// DefaultResourceSchemes enumerates the schemes accepted out of the box.
var DefaultResourceSchemes = []string{"http", "https", "ftp", "file", "theme", "font"}

// ResourceConverter converts resource handles.  A bare location without a
// scheme separator counts as a file resource and formats back without the
// prefix, so plain paths survive a round-trip untouched.
type ResourceConverter struct {
	schemes map[string]struct{}
}

// NewResourceConverter creates a converter accepting the given schemes, or
// the defaults when none are supplied.
func NewResourceConverter(schemes ...string) *ResourceConverter {
	if len(schemes) == 0 {
		schemes = DefaultResourceSchemes
	}
	c := &ResourceConverter{schemes: make(map[string]struct{}, len(schemes))}
	for _, s := range schemes {
		c.schemes[strings.ToLower(s)] = struct{}{}
	}
	return c
}

func (c *ResourceConverter) ModelType() reflect.Type { return resourceType }

func (c *ResourceConverter) Parse(value string, _ language.Tag) (any, error) {
	scheme, location, found := strings.Cut(value, "://")
	if !found {
		if value == "" {
			return nil, newError(resourceType, value, "empty resource", nil)
		}
		return Resource{Scheme: "file", Location: value}, nil
	}
	scheme = strings.ToLower(scheme)
	if _, ok := c.schemes[scheme]; !ok {
		return nil, newError(resourceType, value, fmt.Sprintf("unsupported scheme %q", scheme), nil)
	}
	return Resource{Scheme: scheme, Location: location}, nil
}

func (c *ResourceConverter) Format(value any, _ language.Tag) (string, error) {
	rv, ok := concrete(value)
	if !ok || rv.Type() != resourceType {
		return "", newError(resourceType, value, "not a resource value", nil)
	}
	res := rv.Interface().(Resource)
	if res.Scheme == "" || res.Scheme == "file" {
		return res.Location, nil
	}
	return res.URL(), nil
}
