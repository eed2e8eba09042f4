package shell

import (
	"math"
	"strconv"
	"strings"
)

func formatSpecial(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "nan", true
	case math.IsInf(v, 1):
		return "inf", true
	case math.IsInf(v, -1):
		return "-inf", true
	}
	return "", false
}

// FormatValue renders v in its shortest round-trip form. Integral values
// keep a trailing ".0"; exponent form is used below 1e-4 and from 1e16 up.
func FormatValue(v float64) string {
	if s, ok := formatSpecial(v); ok {
		return s
	}
	e := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return e
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// FormatSignificant renders v with at most digits significant digits and
// no trailing zeros.
func FormatSignificant(v float64, digits int) string {
	if s, ok := formatSpecial(v); ok {
		return s
	}
	return strconv.FormatFloat(v, 'g', digits, 64)
}
