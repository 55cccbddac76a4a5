package validation

import (
	"fmt"
	"math"
)

// stringField returns data[key] when it is a non-empty string.
func stringField(data map[string]any, key string) (string, bool) {
	v, ok := data[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// positiveNumber returns v when it is a JSON number greater than zero.
func positiveNumber(v any) (float64, bool) {
	n, ok := v.(float64)
	if !ok || math.IsNaN(n) || n <= 0 {
		return 0, false
	}
	return n, true
}

// positiveInteger returns v when it is a whole JSON number greater than zero.
func positiveInteger(v any) (int, bool) {
	n, ok := positiveNumber(v)
	if !ok || n != math.Trunc(n) || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

// bodyID returns the payload id when one was sent. JSON null, false, 0
// and "" all count as absent.
func bodyID(data map[string]any) (string, bool) {
	switch v := data["id"].(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case bool:
		return "true", v
	case float64:
		return fmt.Sprint(v), v != 0
	default:
		return fmt.Sprint(v), true
	}
}
