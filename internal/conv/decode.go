package conv

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// DecodeJSON decodes a JSON literal into a freshly allocated value of type t
// and returns the populated value in its non-pointer form so it can be handed
// straight to a formatter.
//
// The JSON round-trip handles the majority of model types (numbers, strings,
// structs, types with an UnmarshalJSON method) without reflection heavy field
// walking at the call-site.
func DecodeJSON(data []byte, t reflect.Type) (any, error) {
	if t == nil {
		return nil, fmt.Errorf("conv.DecodeJSON: type cannot be nil")
	}
	ptr := reflect.New(t)
	if err := json.Unmarshal(data, ptr.Interface()); err != nil {
		return nil, err
	}
	return ptr.Elem().Interface(), nil
}
