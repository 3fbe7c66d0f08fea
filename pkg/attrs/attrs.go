// Package attrs reads values back out of slog-style key/value attribute slices.
package attrs

// Extract returns the value stored under key in a [key1, value1, key2, value2, ...]
// slice when it has type T.
func Extract[T any](attrs []any, key string) (T, bool) {
	var zero T
	for i := 0; i < len(attrs)-1; i += 2 {
		k, ok := attrs[i].(string)
		if !ok || k != key {
			continue
		}
		if v, ok := attrs[i+1].(T); ok {
			return v, true
		}
		return zero, false
	}
	return zero, false
}

// ExtractString is Extract for strings, returning "" when absent.
func ExtractString(attrs []any, key string) string {
	v, _ := Extract[string](attrs, key)
	return v
}
