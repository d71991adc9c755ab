package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Number is a numeric attribute loaded from the store's arbitrary-precision
// representation. Integral values serialize as JSON integers, fractional values
// as floating point, matching what API clients expect.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return []byte(strconv.FormatInt(int64(f), 10)), nil
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", string(data), err)
	}
	*n = Number(f)
	return nil
}

// IsIntegral reports whether the number has no fractional part.
func (n Number) IsIntegral() bool {
	return float64(n) == math.Trunc(float64(n))
}

// NormalizeNumbers recursively converts json.Number values inside a decoded
// document into int64 (integral) or float64 (fractional) so they serialize as
// native JSON numbers instead of strings.
func NormalizeNumbers(v interface{}) interface{} {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]interface{}:
		for k, item := range val {
			val[k] = NormalizeNumbers(item)
		}
		return val
	case []interface{}:
		for i, item := range val {
			val[i] = NormalizeNumbers(item)
		}
		return val
	default:
		return v
	}
}
