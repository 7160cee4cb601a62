package game

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts raw field text to a number using the same coercion a
// browser applies to an input value: blank text is 0, surrounding whitespace
// is ignored, and anything unparseable is NaN.
func ParseNumber(input string) float64 {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	// Prefixed integer literals (0x, 0o, 0b) never carry a sign.
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			v, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				if errors.Is(err, strconv.ErrRange) {
					return math.Inf(1)
				}
				return math.NaN()
			}
			return float64(v)
		}
	}

	// strconv is more lenient than the browser: it takes "inf", "nan",
	// hex floats and digit separators.
	if strings.ContainsAny(s, "_xXpPnNiI") {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

// isFalsy reports whether a coerced number counts as "nothing entered".
func isFalsy(v float64) bool {
	return v == 0 || math.IsNaN(v)
}
