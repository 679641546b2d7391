package core

// coerce.go converts CSV cell text to numbers and booleans.
//
// Coercion never fails. Anything that does not parse becomes the zero
// value, and the row carrying it is kept. The cleanup handles what real
// exports contain:
//   - Currency symbols and thousands separators
//   - Accounting negatives "(12.50)"
//   - Trailing percent signs
//   - Excel formula prefixes and surrounding quotes

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numericRegex validates a cleaned numeric string before ParseFloat, which
// would otherwise also accept "Inf", "NaN" and hex floats.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// CleanCell removes common CSV artifacts from a cell value:
// - Trims whitespace
// - Removes Excel formula prefix (="...")
// - Removes surrounding double quotes
//
// Apostrophes are kept; they are legitimate in item codes and model names.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	return strings.TrimSpace(strings.Trim(s, `"`))
}

// cleanValue is CleanCell for numeric and boolean cells, which also drops
// surrounding single quotes (Excel's '123 text prefix).
func cleanValue(s string) string {
	return strings.TrimSpace(strings.Trim(CleanCell(s), "'"))
}

// ParseNumber converts a cell to float64, falling back to 0.
func ParseNumber(s string) float64 {
	s = cleanValue(s)
	if s == "" {
		return 0
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "\u20ac", "") // Euro
	s = strings.ReplaceAll(s, "\u00a3", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	s = strings.TrimSpace(s)

	if !numericRegex.MatchString(s) {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	if negative {
		f = -f
	}
	return f
}

// RoundHalfUp rounds to the nearest integer with halves going up, the same
// way the page script's Math.round does.
func RoundHalfUp(f float64) float64 {
	return math.Floor(f + 0.5)
}

// ParseInt converts a cell to an int, truncating any fraction toward zero.
// Values outside the int32 range saturate at its bounds.
func ParseInt(s string) int {
	return clampInt(math.Trunc(ParseNumber(s)))
}

// ParsePercent converts a cell to a whole percentage, saturating like ParseInt.
func ParsePercent(s string) int {
	return clampInt(RoundHalfUp(ParseNumber(s)))
}

// clampInt converts a whole float to int. Go leaves out-of-range float to
// int conversion implementation-defined, so the bounds are applied first.
func clampInt(f float64) int {
	switch {
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	default:
		return int(f)
	}
}

// ParseBool reports whether a cell holds a true value.
// Accepts true/t/yes/y/1 in any case; everything else is false.
func ParseBool(s string) bool {
	switch strings.ToLower(cleanValue(s)) {
	case "true", "t", "yes", "y", "1":
		return true
	default:
		return false
	}
}
