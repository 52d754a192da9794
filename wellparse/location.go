package wellparse

import "regexp"

// location is the compound section/township/range/county result.
// Township and range always carry their direction suffix ("153N", "101W");
// downstream consumers rely on that convention.
type location struct {
	Desc     string
	Section  string
	Township string
	RangeDir string
	County   string
}

// Completion reports place the legal description in one of several layouts
// depending on form revision. The four compound patterns below are tried
// in priority order and are mutually exclusive; the label fallbacks only
// run when none of them matched.
var (
	// "LOCATION: SURF:SWSW SEC 2 153N 101W, MCKENZIE CO, ND"
	locInlineRe = regexp.MustCompile(`(?i)LOCATION\s*[:.]?\s*(?:SURF\s*[:.]?)?\s*[A-Z]{2,4}\s*(?:SEC\.?|Section)\s*(\d+)\s*[,\s]*T?(\d+)\s*N\s*[,\s]*R?(\d+)\s*W[,\s]*([A-Za-z]+)\s*(?:CO|County)`)

	// Table row: "SWSW|12|153|101 w |McKenzie"
	locTableRe = regexp.MustCompile(`(?i)LOCATION\s*(?:OF\s*WELL)?[^\n]*\n[^\n]*?[NESW]{2,4}\s*[|\s]\s*(\d+)\s*[|\s]\s*(\d+)\s*[|\s]\s*(\d+)\s*(?:[wW])?\s*[|\s]\s*([A-Za-z]+)`)

	// Narrative: "SW NW Sec. 30, T153N, R100W, McKenzie County"
	locNarrativeRe = regexp.MustCompile(`(?i)([NESW]{2,4})\s*(?:SEC\.?|Section)\s*(\d+)\s*[,\s]*T(\d+)\s*N?\s*[,\s\-]*R(\d+)\s*W(?:[,\s]*([A-Za-z]+)\s*(?:County)?)?`)

	// Bare footage remainder: "153 N 101 W"
	locFootageRe = regexp.MustCompile(`(?i)(\d+)\s*N\s+(\d+)\s*W`)

	locCountyRe  = regexp.MustCompile(`(?i)(?:County|Co\.?)\s*[:.]?\s*([A-Za-z]+)`)
	locSectionRe = regexp.MustCompile(`(?i)Section\s*[:.]?\s*(\d+)`)
)

func extractLocation(text string) location {
	var loc location

	if m := locInlineRe.FindStringSubmatch(text); m != nil {
		loc.Desc = cleanText(m[0])
		loc.Section = m[1]
		loc.Township = m[2] + "N"
		loc.RangeDir = m[3] + "W"
		loc.County = cleanText(m[4])
		return loc
	}

	if m := locTableRe.FindStringSubmatch(text); m != nil {
		loc.Desc = cleanText(m[0])
		loc.Section = m[1]
		loc.Township = m[2] + "N"
		loc.RangeDir = m[3] + "W"
		loc.County = cleanText(m[4])
		return loc
	}

	if m := locNarrativeRe.FindStringSubmatch(text); m != nil {
		loc.Desc = cleanText(m[0])
		loc.Section = m[2]
		loc.Township = m[3] + "N"
		loc.RangeDir = m[4] + "W"
		if m[5] != "" {
			loc.County = cleanText(m[5])
		}
		return loc
	}

	// No compound layout matched; recover what we can independently.
	if m := locFootageRe.FindStringSubmatch(text); m != nil {
		loc.Township = m[1] + "N"
		loc.RangeDir = m[2] + "W"
	}
	if m := locCountyRe.FindStringSubmatch(text); m != nil {
		loc.County = cleanText(m[1])
	}
	if m := locSectionRe.FindStringSubmatch(text); m != nil {
		loc.Section = m[1]
	}

	return loc
}
