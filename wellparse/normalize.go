package wellparse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// cleanText collapses whitespace runs to single spaces and trims the ends.
func cleanText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// isSentinel reports whether a captured value is an "N/A"-style placeholder.
// Scanned forms frequently carry these in otherwise-labelled cells; they are
// normalized to absent at the boundary.
func isSentinel(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N/A", "NA", "NONE", "UNKNOWN":
		return true
	}
	return false
}

// dmsToDecimal converts degrees-minutes-seconds to decimal degrees, rounded
// to 6 decimals and negated for the S and W hemispheres. ok is false when
// any fragment is non-numeric; malformed coordinates never abort extraction.
func dmsToDecimal(degrees, minutes, seconds, hemisphere string) (float64, bool) {
	d, err := strconv.ParseFloat(strings.TrimSpace(degrees), 64)
	if err != nil {
		return 0, false
	}
	m, err := strconv.ParseFloat(strings.TrimSpace(minutes), 64)
	if err != nil {
		return 0, false
	}
	s, err := strconv.ParseFloat(strings.TrimSpace(seconds), 64)
	if err != nil {
		return 0, false
	}
	dec := d + m/60.0 + s/3600.0
	switch strings.ToUpper(strings.TrimSpace(hemisphere)) {
	case "S", "W":
		dec = -dec
	}
	return round6(dec), true
}

func round6(f float64) float64 {
	return math.Round(f*1e6) / 1e6
}
