package normalize

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// secondsThreshold separates second-scale epochs from millisecond-scale ones.
const secondsThreshold = 1e10

var (
	integerPattern = regexp.MustCompile(`^[+-]?\d+(\.\d*)?$`)
	integerPrefix  = regexp.MustCompile(`^[+-]?\d+`)

	// Crawler exports write wall-clock dates in China Standard Time.
	defaultLocation = time.FixedZone("Asia/Shanghai", 8*60*60)

	calendarLayouts = []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006/01/02 15:04:05",
		"2006-01-02",
	}
)

// Timestamp converts v into epoch milliseconds.
// Values below 1e10 are seconds. Unreadable values resolve to the current time.
func (n *Normalizer) Timestamp(v any) int64 {
	switch x := v.(type) {
	case string:
		if ms, ok := parseIntegerTimestamp(x); ok {
			return ms
		}
		if ms, ok := n.parseCalendar(x); ok {
			return ms
		}
		if ms, ok := parseLeadingInteger(x); ok {
			return ms
		}
	case json.Number:
		if f, err := x.Float64(); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return toMillis(f)
		}
	case float64:
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			return toMillis(x)
		}
	case int:
		return toMillis(float64(x))
	case int64:
		return toMillis(float64(x))
	}
	return n.now().UnixMilli()
}

// toMillis saturates at the int64 range instead of wrapping.
func toMillis(f float64) int64 {
	if f < secondsThreshold {
		f *= 1000
	}
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// parseIntegerTimestamp accepts "1700000000" and "1700000000.25"; the fraction is dropped.
func parseIntegerTimestamp(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if !integerPattern.MatchString(s) {
		return 0, false
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	return integerMillis(s)
}

// parseLeadingInteger reads the digits "1700000000abc" starts with.
// Calendar dates are tried before this, so "2024-01-02" never lands here.
func parseLeadingInteger(s string) (int64, bool) {
	m := integerPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	return integerMillis(m)
}

// integerMillis parses a plain integer. Out-of-range digits saturate.
func integerMillis(s string) (int64, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || numErr.Err != strconv.ErrRange {
			return 0, false
		}
		// v is already clamped to the int64 range.
		return v, true
	}
	if v < secondsThreshold {
		return toMillis(float64(v)), true
	}
	return v, true
}

func (n *Normalizer) parseCalendar(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, layout := range calendarLayouts {
		if t, err := time.ParseInLocation(layout, s, n.loc); err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}
