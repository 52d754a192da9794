package wellparse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Coordinate extraction order: labelled DMS first (the most structured
// layout), then decimal degrees with context filtering, then the "Site
// Position" survey block as a last resort.

var (
	latDMSRe = regexp.MustCompile(`(?i)Latitude\s*[:.]?\s*(\d{2})\s*[^0-9\n]{1,5}\s*(\d{1,2})\s*['` + "`" + `]\s*(\d{1,2}\.?\d*)\s*["']?\s*([NS])`)
	lonDMSRe = regexp.MustCompile(`(?i)Longitude\s*[:.]?\s*(\d{2,3})\s*[^0-9\n]{1,5}\s*(\d{1,2})\s*['` + "`" + `]\s*(\d{1,2}\.?\d*)\s*["']?\s*([EW])`)

	// Decimal degrees need 4+ fractional digits; shorter values are almost
	// always page coordinates or table artifacts.
	latDecimalRe = regexp.MustCompile(`(?i)Latitude\s*[:.]?\s*(-?\d{2}\.\d{4,})\s*([NS])?`)
	lonDecimalRe = regexp.MustCompile(`(?i)Longitude\s*[:.]?\s*(-?\d{2,3}\.\d{4,})\s*([EW])?`)

	sitePosLatRe = regexp.MustCompile(`(?is)Site\s*Position.*?Latitude\s*[:.]?\s*(\d{2})\s*[^0-9\n]{1,5}\s*(\d{1,2})\s*['` + "`" + `]\s*(\d{1,2}\.?\d*)\s*["']?\s*([NS])`)
	sitePosLonRe = regexp.MustCompile(`(?is)Site\s*Position.*?Longitude\s*[:.]?\s*(\d{2,3})\s*[^0-9\n]{1,5}\s*(\d{1,2})\s*['` + "`" + `]\s*(\d{1,2}\.?\d*)\s*["']?\s*([EW])`)
)

// Coordinates preceded by these words within a 50-character window denote
// historical or instrument-reference values, not the well's position.
var coordContextWords = []string{
	"ORIGINAL", "RIGINAL", "CALIBRATION", "ALIBRATION",
	"CHANGE", "BASED ON", "MAGNETIC",
}

const coordContextWindow = 50

func disqualifiedContext(text string, start int) bool {
	from := start - coordContextWindow
	if from < 0 {
		from = 0
	}
	ctx := strings.ToUpper(text[from:start])
	for _, w := range coordContextWords {
		if strings.Contains(ctx, w) {
			return true
		}
	}
	return false
}

// findDecimal scans all decimal-degree candidates for re, skipping any
// whose preceding context disqualifies them.
func findDecimal(re *regexp.Regexp, text string) (float64, string, bool) {
	for _, idx := range re.FindAllStringSubmatchIndex(text, -1) {
		if disqualifiedContext(text, idx[0]) {
			continue
		}
		val := text[idx[2]:idx[3]]
		hemi := ""
		if idx[4] >= 0 {
			hemi = text[idx[4]:idx[5]]
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			continue
		}
		return f, hemi, true
	}
	return 0, "", false
}

// extractCoordinates returns latitude and longitude in decimal degrees,
// nil when not found. Longitude is forced negative whenever a West marker
// is present, even if the source digits already carried a sign.
func extractCoordinates(text string) (lat, lon *float64) {
	if m := latDMSRe.FindStringSubmatch(text); m != nil {
		if v, ok := dmsToDecimal(m[1], m[2], m[3], m[4]); ok {
			lat = &v
		}
	}
	if m := lonDMSRe.FindStringSubmatch(text); m != nil {
		if v, ok := dmsToDecimal(m[1], m[2], m[3], m[4]); ok {
			lon = &v
		}
	}

	if lat == nil {
		if f, hemi, ok := findDecimal(latDecimalRe, text); ok {
			if strings.EqualFold(hemi, "S") {
				f = -f
			}
			lat = &f
		}
	}
	if lon == nil {
		if f, hemi, ok := findDecimal(lonDecimalRe, text); ok {
			if strings.EqualFold(hemi, "W") {
				f = -math.Abs(f)
			}
			lon = &f
		}
	}

	if lat == nil && lon == nil {
		if m := sitePosLatRe.FindStringSubmatch(text); m != nil {
			if v, ok := dmsToDecimal(m[1], m[2], m[3], m[4]); ok {
				lat = &v
			}
		}
		if m := sitePosLonRe.FindStringSubmatch(text); m != nil {
			if v, ok := dmsToDecimal(m[1], m[2], m[3], m[4]); ok {
				lon = &v
			}
		}
	}

	return lat, lon
}
