package schema

import (
	"fmt"
	"math"
	"strconv"
)

// Symbol is a symbol-like key or value. It normalizes to its string form
// wherever a plain string would be accepted.
type Symbol string

// normalize returns the canonical comparison key of a scalar.
// Integers print in base 10, whole floats as integers, other floats
// with %g, booleans as true/false; strings compare verbatim.
// isNull is true for nil, which only ever equals nil.
func normalize(val interface{}) (key string, isNull bool) {
	switch v := val.(type) {
	case nil:
		return "", true
	case string:
		return v, false
	case Symbol:
		return string(v), false
	case bool:
		return strconv.FormatBool(v), false
	case int:
		return strconv.FormatInt(int64(v), 10), false
	case int8:
		return strconv.FormatInt(int64(v), 10), false
	case int16:
		return strconv.FormatInt(int64(v), 10), false
	case int32:
		return strconv.FormatInt(int64(v), 10), false
	case int64:
		return strconv.FormatInt(v, 10), false
	case uint:
		return strconv.FormatUint(uint64(v), 10), false
	case uint8:
		return strconv.FormatUint(uint64(v), 10), false
	case uint16:
		return strconv.FormatUint(uint64(v), 10), false
	case uint32:
		return strconv.FormatUint(uint64(v), 10), false
	case uint64:
		return strconv.FormatUint(v, 10), false
	case float32:
		return formatFloat(float64(v)), false
	case float64:
		return formatFloat(v), false
	default:
		return fmt.Sprintf("%v", v), false
	}
}

func formatFloat(f float64) string {
	if f == 0 {
		return "0"
	}
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// LooseEqual compares two scalars by their normalized representation, so
// 19, int64(19), 19.0 and "19" are all equal, as are true and "true".
// Every whole float prints without exponent or fraction, whatever its size.
func LooseEqual(a, b interface{}) bool {
	ka, na := normalize(a)
	kb, nb := normalize(b)
	if na || nb {
		return na && nb
	}
	return ka == kb
}

// isScalar reports whether val can be stored in a row
func isScalar(val interface{}) bool {
	switch val.(type) {
	case nil, string, Symbol, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// asInt converts any integer kind to int
func asInt(val interface{}) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		if v > math.MaxInt {
			return math.MaxInt, true
		}
		return int(v), true
	}
	return 0, false
}
