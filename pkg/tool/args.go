package tool

import (
	"encoding/json"
	"fmt"
	"math"
)

// Argument accessors for the untyped parameter maps delivered by the MCP
// transport. Numbers arrive as float64 after JSON decoding.

func String(parameters map[string]any, key string) (string, bool) {
	val, ok := parameters[key].(string)
	return val, ok
}

// Int reads an integer argument. A present value that is fractional or
// not a number at all is an error rather than being truncated or ignored.
func Int(parameters map[string]any, key string) (int, bool, error) {
	raw, ok := parameters[key]

	if !ok {
		return 0, false, nil
	}

	switch val := raw.(type) {
	case float64:
		if val != math.Trunc(val) {
			return 0, false, fmt.Errorf("%s must be an integer", key)
		}

		return int(val), true, nil

	case int:
		return val, true, nil

	case json.Number:
		n, err := val.Int64()

		if err != nil {
			return 0, false, fmt.Errorf("%s must be an integer", key)
		}

		return int(n), true, nil
	}

	return 0, false, fmt.Errorf("%s must be an integer", key)
}

func Bool(parameters map[string]any, key string) (bool, bool) {
	val, ok := parameters[key].(bool)
	return val, ok
}

func Strings(parameters map[string]any, key string) ([]string, bool) {
	switch val := parameters[key].(type) {
	case []string:
		return val, true

	case []any:
		result := make([]string, 0, len(val))

		for _, v := range val {
			s, ok := v.(string)

			if !ok {
				return nil, false
			}

			result = append(result, s)
		}

		return result, true
	}

	return nil, false
}

func Object(parameters map[string]any, key string) (map[string]any, bool) {
	val, ok := parameters[key].(map[string]any)
	return val, ok
}
