package quickquery

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOddParameters is returned by Params when a name has no value.
	ErrOddParameters = errors.New("parameters must be name and value pairs")

	// ErrInvalidParameterName is returned by Params for a name that is not a non-empty string.
	ErrInvalidParameterName = errors.New("invalid parameter name")

	// ErrDuplicateParameter is returned by Params when a name appears twice.
	ErrDuplicateParameter = errors.New("duplicate parameter")
)

// Parameters maps placeholder names to values.
// Names may be given with or without the leading '@'.
type Parameters map[string]any

// lookup returns the value bound to the placeholder name (without '@').
func (p Parameters) lookup(name string) (any, bool) {
	if v, ok := p[name]; ok {
		return v, true
	}
	v, ok := p["@"+name]
	return v, ok
}

// Params builds Parameters from alternating name and value arguments.
//
// Example:
//
//	params, err := quickquery.Params("@id", 5, "@name", "alice")
func Params(kv ...any) (Parameters, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d arguments", ErrOddParameters, len(kv))
	}

	params := make(Parameters, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("%w: argument %d is %T, want string", ErrInvalidParameterName, i, kv[i])
		}
		key := strings.TrimPrefix(name, "@")
		if key == "" {
			return nil, fmt.Errorf("%w: argument %d is empty", ErrInvalidParameterName, i)
		}
		if _, exists := params[key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateParameter, name)
		}
		params[key] = kv[i+1]
	}

	return params, nil
}

// MustParams is like Params but panics if the arguments are invalid.
func MustParams(kv ...any) Parameters {
	params, err := Params(kv...)
	if err != nil {
		panic(err)
	}
	return params
}
