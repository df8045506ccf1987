package math

import (
	"strconv"
)

// DefaultPrecision is the number of decimals used by Format.
const DefaultPrecision = 4

// Format formats a float with the default precision.
func Format(f float64) string {
	return FormatP(f, DefaultPrecision)
}

// FormatP formats a float with the given number of decimals.
// Negative zero is printed as zero.
func FormatP(f float64, precision int) string {
	if f == 0 {
		f = 0
	}
	return strconv.FormatFloat(f, 'f', precision, 64)
}
