package numrange

import (
	"math"
	"strconv"
	"strings"
)

// formatBound prints f in its shortest decimal form, switching to exponent
// notation from 1e21 upwards and below 1e-6.
func formatBound(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	case math.Abs(f) >= 1e21, math.Abs(f) < 1e-6:
		return trimExponent(strconv.FormatFloat(f, 'e', -1, 64))
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}

// trimExponent drops the zero padding strconv puts in front of one digit
// exponents, so 1e-07 becomes 1e-7.
func trimExponent(s string) string {
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}
