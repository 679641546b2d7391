package render

import (
	"strconv"

	"github.com/JonMunkholm/TireFlyer/internal/core"
	"github.com/dustin/go-humanize"
)

// Price formats a price with two decimals and thousands separators: $1,234.50.
func Price(f float64) string {
	return "$" + humanize.FormatFloat("#,###.##", f)
}

// Dollars formats a whole-dollar amount: $1,235.
func Dollars(f float64) string {
	return "$" + humanize.Comma(int64(core.RoundHalfUp(f)))
}

// Percent formats a whole percentage: 25%.
func Percent(p int) string {
	return strconv.Itoa(p) + "%"
}
