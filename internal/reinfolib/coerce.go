package reinfolib

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
)

// CoerceFloat converts an upstream scalar into a float64. Numbers pass through,
// strings are parsed from their leading numeric literal, anything else is 0.
// The result is always finite so it survives JSON encoding.
func CoerceFloat(v gjson.Result) float64 {
	var f float64
	switch v.Type {
	case gjson.Number:
		f = v.Num
	case gjson.String:
		f = parseLeadingFloat(v.Str)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// CoerceInt converts an upstream scalar into an int. Numbers are floored,
// strings are parsed from their leading base-10 digits, anything else is 0.
func CoerceInt(v gjson.Result) int {
	switch v.Type {
	case gjson.Number:
		f := math.Floor(v.Num)
		if math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64 {
			return 0
		}
		return int(f)
	case gjson.String:
		return parseLeadingInt(v.Str)
	default:
		return 0
	}
}

func parseLeadingFloat(s string) float64 {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseLeadingInt(s string) int {
	m := leadingInt.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// stringValue mirrors the upstream "value or empty" convention: non-empty
// strings and non-zero numbers are kept, everything else becomes "".
func stringValue(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		if v.Num == 0 {
			return ""
		}
		return v.Raw
	case gjson.True:
		return "true"
	default:
		return ""
	}
}

func truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.String:
		return v.Str != ""
	case gjson.Number:
		return v.Num != 0
	default:
		return v.Exists()
	}
}
