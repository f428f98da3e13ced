package intent

import (
	"regexp"
	"strconv"
)

var durationRe = regexp.MustCompile(`(\d+)\s*(dakika|dk|saat|gün|gun)`)

// ParseDuration parses the first "<n> <unit>" pair in text into minutes.
// Recognized units: dakika/dk (minutes), saat (hours), gün/gun (days).
// Absence of a match is a normal outcome, not an error.
func ParseDuration(text string) (int, bool) {
	m := durationRe.FindStringSubmatch(lowerTurkish(text))
	if m == nil {
		return 0, false
	}

	value, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	switch m[2] {
	case "dakika", "dk":
		return value, true
	case "saat":
		return value * 60, true
	case "gün", "gun":
		return value * 60 * 24, true
	}
	return 0, false
}
