package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts various types to int, returning 0 for anything it cannot parse.
func ToInt(val any) int {
	i, _ := ParseInt(val)
	return i
}

// ParseInt converts the raw values database drivers return to int.
// MySQL hands back integers as int64 or as []byte depending on the protocol,
// SQLite as int64; both are accepted. nil and unparsable input are errors.
func ParseInt(val any) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case int16:
		return int(v), nil
	case int8:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint64:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint8:
		return int(v), nil
	case float64:
		return int(v), nil
	case float32:
		return int(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	case []byte:
		return strconv.Atoi(strings.TrimSpace(string(v)))
	case nil:
		return 0, fmt.Errorf("cannot convert NULL to int")
	default:
		return 0, fmt.Errorf("cannot convert %T to int", val)
	}
}

// ToFloat converts various types to float64, returning 0 for anything it cannot parse.
func ToFloat(val any) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f
	case []byte:
		f, _ := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		return f
	default:
		return float64(ToInt(v))
	}
}

// ToString converts various types to string. nil becomes "".
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (non-zero=true), BIT(1) bytes and strings ("1", "true").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return ToInt(v) != 0
	case string:
		return v == "1" || strings.ToLower(v) == "true"
	case []byte:
		// MySQL returns BIT(1) columns as a single raw byte.
		if len(v) == 1 && v[0] <= 1 {
			return v[0] == 1
		}
		s := string(v)
		return s == "1" || strings.ToLower(s) == "true"
	default:
		return false
	}
}
