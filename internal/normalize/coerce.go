package normalize

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	unitWan  = "万"
	unitQian = "千"
)

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// CoerceNumber turns a loosely typed engagement value into a number.
// "1.5万" is 15000, "2千" is 2000, "1,234" is 1234 and anything unreadable is 0.
func CoerceNumber(v any) float64 {
	switch x := v.(type) {
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case int32:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0
		}
		return finite(f)
	case string:
		return finite(parseMagnitude(x))
	default:
		return 0
	}
}

func parseMagnitude(s string) float64 {
	switch {
	case strings.Contains(s, unitWan):
		return parseNumericPrefix(strings.Replace(s, unitWan, "", 1)) * 10000
	case strings.Contains(s, unitQian):
		return parseNumericPrefix(strings.Replace(s, unitQian, "", 1)) * 1000
	default:
		return parseNumericPrefix(s)
	}
}

// parseNumericPrefix parses the leading number of s, ignoring thousands separators.
func parseNumericPrefix(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	m := numericPrefix.FindString(s)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// count coerces v into a non-negative whole number.
func count(v any) int64 {
	f := math.Round(CoerceNumber(v))
	switch {
	case f <= 0:
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	default:
		return int64(f)
	}
}
