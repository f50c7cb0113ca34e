package normalize

import (
	"encoding/json"
	"math"
	"strconv"

	"crawler-console/internal/model"
)

// present reports whether v counts as a filled-in value.
// nil, "", false, zero numbers and NaN are empty. Nested objects and arrays are not.
func present(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case json.Number:
		f, err := x.Float64()
		return err != nil || (f != 0 && !math.IsNaN(f))
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case int:
		return x != 0
	case int64:
		return x != 0
	case int32:
		return x != 0
	case json.RawMessage:
		return len(x) > 0 && string(x) != "null"
	default:
		return true
	}
}

// has reports whether key holds a present value.
func has(r *model.Record, key string) bool {
	return present(r.Value(key))
}

// firstPresent returns the first present value among keys, nil if none.
func firstPresent(r *model.Record, keys ...string) any {
	for _, k := range keys {
		if v := r.Value(k); present(v) {
			return v
		}
	}
	return nil
}

// firstString is firstPresent rendered as text, "" if none.
func firstString(r *model.Record, keys ...string) string {
	return Stringify(firstPresent(r, keys...))
}

// Stringify renders a record value as text. Numbers keep their source
// digits, nested values become compact JSON.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case json.RawMessage:
		return string(x)
	case *model.Record:
		b, err := x.MarshalJSON()
		if err != nil {
			return ""
		}
		return string(b)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
