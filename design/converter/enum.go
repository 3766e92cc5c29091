package converter

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// EnumSet is the enumeration converter.  A single generic mechanism covers
// every enum-like type: the named constants are declared once and the set
// itself acts as the converter, so no per-enum implementation exists.  The
// markup form is the lower-cased constant name; parsing trims surrounding
// whitespace and ignores case.
type EnumSet struct {
	typ     reflect.Type
	byName  map[string]any
	names   map[any]string
	ordered []string
}

// NewEnumSet declares the value set of an enumeration type.  Keys are the
// constant names, canonicalized to upper case; values are the constants
// themselves.  Names must stay unique after canonicalization and values must
// be distinct, otherwise formatting would be ambiguous.
func NewEnumSet[T comparable](values map[string]T) (*EnumSet, error) {
	set := &EnumSet{
		typ:    reflect.TypeOf((*T)(nil)).Elem(),
		byName: make(map[string]any, len(values)),
		names:  make(map[any]string, len(values)),
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("enum set %v: no values declared", set.typ)
	}
	for name, value := range values {
		canonical := strings.ToUpper(strings.TrimSpace(name))
		if canonical == "" {
			return nil, fmt.Errorf("enum set %v: empty constant name", set.typ)
		}
		if _, dup := set.byName[canonical]; dup {
			return nil, fmt.Errorf("enum set %v: duplicate constant name %q", set.typ, canonical)
		}
		if prev, dup := set.names[value]; dup {
			return nil, fmt.Errorf("enum set %v: value %v already named %q", set.typ, value, prev)
		}
		set.byName[canonical] = value
		set.names[value] = canonical
		set.ordered = append(set.ordered, canonical)
	}
	sort.Strings(set.ordered)
	return set, nil
}

// MustEnumSet is like NewEnumSet but panics on an invalid declaration.  Meant
// for package-level enum declarations.
func MustEnumSet[T comparable](values map[string]T) *EnumSet {
	set, err := NewEnumSet(values)
	if err != nil {
		panic(err)
	}
	return set
}

func (s *EnumSet) ModelType() reflect.Type { return s.typ }

// Names returns the declared constant names in sorted order.
func (s *EnumSet) Names() []string {
	out := make([]string, len(s.ordered))
	copy(out, s.ordered)
	return out
}

func (s *EnumSet) Parse(value string, _ language.Tag) (any, error) {
	name := strings.ToUpper(strings.TrimSpace(value))
	if name == "" {
		return nil, newError(s.typ, value, "empty enum constant", nil)
	}
	v, ok := s.byName[name]
	if !ok {
		return nil, newError(s.typ, value, "unknown enum constant", nil)
	}
	return v, nil
}

func (s *EnumSet) Format(value any, _ language.Tag) (string, error) {
	rv, ok := concrete(value)
	if !ok || rv.Type() != s.typ {
		return "", newError(s.typ, value, "not a value of this enum", nil)
	}
	name, ok := s.names[rv.Interface()]
	if !ok {
		return "", newError(s.typ, value, "value outside the declared set", nil)
	}
	return strings.ToLower(name), nil
}
