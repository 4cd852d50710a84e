package samples

import (
	"fmt"
	"strconv"
)

// FieldConverter parses one textual record field into its native element
// value: int64, []byte or bool.
type FieldConverter func(value string) (any, error)

// FieldConverters builds one converter per field from a field name to type
// name mapping. Supported type names are "int", "str" and "bool"; anything
// else reports ErrUnknownFieldType.
func FieldConverters(types map[string]string) (map[string]FieldConverter, error) {
	out := make(map[string]FieldConverter, len(types))
	for name, typ := range types {
		conv, err := converterFor(typ)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		out[name] = conv
	}
	return out, nil
}

func converterFor(typ string) (FieldConverter, error) {
	switch typ {
	case "int":
		return func(v string) (any, error) {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse int %q: %w", v, err)
			}
			return n, nil
		}, nil
	case "str":
		return func(v string) (any, error) {
			return []byte(v), nil
		}, nil
	case "bool":
		return func(v string) (any, error) {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("parse bool %q: %w", v, err)
			}
			return b, nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFieldType, typ)
	}
}
