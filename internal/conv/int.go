package conv

import (
	"encoding/json"
	"strconv"
)

// AsInt coerces value to int, it returns false when value is not an integral number.
func AsInt(value interface{}) (int, bool) {
	switch actual := value.(type) {
	case int:
		return actual, true
	case int32:
		return int(actual), true
	case int64:
		return int(actual), true
	case uint64:
		return int(actual), true
	case float64:
		if actual != float64(int(actual)) {
			return 0, false
		}
		return int(actual), true
	case json.Number:
		v, err := actual.Int64()
		return int(v), err == nil
	case string:
		v, err := strconv.Atoi(actual)
		return v, err == nil
	}
	return 0, false
}
