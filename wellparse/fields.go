package wellparse

import (
	"regexp"
	"strings"
)

// Every extractor below runs an ordered cascade of candidate patterns,
// most structurally specific first, and returns the first capture that
// passes its plausibility filter. No match means "" — that is the normal
// outcome for a field the form revision simply does not carry.

// extractFirst returns the cleaned first capture group of re in text, or "".
func extractFirst(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	v := cleanText(m[1])
	if isSentinel(v) {
		return ""
	}
	return v
}

// firstMatch evaluates a cascade first-match-wins.
func firstMatch(cascade []*regexp.Regexp, text string) string {
	for _, re := range cascade {
		if v := extractFirst(re, text); v != "" {
			return v
		}
	}
	return ""
}

// --- well file number ---

var (
	fileNoFromFilenameRe = regexp.MustCompile(`(?i)^W(\d+)`)

	fileNoPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Well\s*File\s*(?:No\.?|Number|#)\s*[:.]?\s*(\d+)`),
		regexp.MustCompile(`(?i)File\s*(?:No\.?|Number|#)\s*[:.]?\s*(\d+)`),
		regexp.MustCompile(`(?i)ST\s*FILE\s*NO\s*[:.]?\s*(\d+)`),
		regexp.MustCompile(`(?i)NDIC\s*File\s*Number\s*[:.]?\s*(\d+)`),
	}
)

// extractWellFileNo derives the well file number. The source filename
// (e.g. "W11745.pdf") wins over any in-text label: filenames are assigned
// by the commission's archive and are more reliable than OCR output.
func extractWellFileNo(text, filename string) string {
	if m := fileNoFromFilenameRe.FindStringSubmatch(filename); m != nil {
		return m[1]
	}
	return firstMatch(fileNoPatterns, text)
}

// --- API number ---

var apiPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)API\s*#?\s*[:.]?\s*(33[-\s]*\d{3}[-\s]*\d{4,6}[-\s]*\d{0,2}[-\s]*\d{0,2})`),
	regexp.MustCompile(`(?i)API\s*(?:Number|No\.?)\s*[:.]?\s*(33[-\s]*\d{3}[-\s]*\d{4,6})`),
	regexp.MustCompile(`(33-\d{3}-\d{4,6}(?:-\d{2}(?:-\d{2})?)?)`),
}

// extractAPINumber finds the API number and normalizes it to the
// three-group "33-053-02102" form, dropping completion/sidetrack suffixes.
func extractAPINumber(text string) string {
	for _, re := range apiPatterns {
		v := extractFirst(re, text)
		if v == "" {
			continue
		}
		v = whitespaceRe.ReplaceAllString(v, "")
		parts := strings.Split(v, "-")
		if len(parts) >= 3 {
			return strings.Join(parts[:3], "-")
		}
		return v
	}
	return ""
}

// --- well name ---

var (
	nameSectionRe = regexp.MustCompile(`(?is)(?:WELL\s*COMPLETION|SUNDRY\s*NOTICES).*?Well\s*Name\s*(?:and\s*Number)?\s*[:.]?\s*\n\s*([A-Za-z][A-Za-z0-9\s\-.#&']+?\d[\w\-]*)`)

	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)Well\s*Name\s*[:.]?\s*([A-Za-z][A-Za-z0-9\s\-.#&']{2,40}\d[\w\-]*)`),
		regexp.MustCompile(`(?im)Well\s*Name\s*(?:and\s*Number)?\s*[:.]?\s*\n\s*([A-Za-z][A-Za-z0-9\s\-.#&']{2,40}\d[\w\-]*)`),
	}

	cellSplitRe = regexp.MustCompile(`\s{2,}|\t|\||\n`)
)

// extractWellName prefers a name scoped to the completion/sundry header
// over a bare label. The digit requirement and 4–79 length bound filter
// out section headers mistakenly captured as names.
func extractWellName(text string) string {
	if m := nameSectionRe.FindStringSubmatch(text); m != nil {
		v := cleanText(cellSplitRe.Split(m[1], 2)[0])
		if len(v) > 3 && len(v) < 80 {
			return v
		}
	}
	for _, re := range namePatterns {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		v := cleanText(cellSplitRe.Split(m[1], 2)[0])
		if len(v) > 3 && len(v) < 80 {
			return v
		}
	}
	return ""
}

// --- operator ---

var (
	operatorPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)Well\s*Operator\s*[:.]?\s*([A-Za-z][A-Za-z0-9\s.,\-&']+?(?:Inc|LLC|Corp|Company|Co|LP|Ltd)\.?)`),
		regexp.MustCompile(`(?im)Operator\s*[:.]?\s*\n?\s*([A-Za-z][A-Za-z0-9\s.,\-&']+?(?:Inc|LLC|Corp|Company|Co|LP|Ltd)\.?)`),
		regexp.MustCompile(`(?im)Operator\s*(?:Telephone)?\s*(?:Number)?\s*\n\s*([A-Za-z][A-Za-z0-9\s.,\-&']+?(?:Inc|LLC|Corp|Company|Co|LP|Ltd)\.?)`),
	}

	// Table-layout bleed-through: "FROM <operator>" / "TO <operator>".
	operatorPrefixRe = regexp.MustCompile(`(?i)^(?:FROM|TO)\s+`)
)

// extractOperator requires the capture to end in a legal-entity suffix,
// which anchors the match to a company name rather than a form caption.
func extractOperator(text string) string {
	for _, re := range operatorPatterns {
		v := extractFirst(re, text)
		if v != "" && len(v) > 3 && len(v) < 120 {
			return cleanText(operatorPrefixRe.ReplaceAllString(v, ""))
		}
	}
	return ""
}

// --- field name ---

var (
	fieldNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)Field\s*Name\s*[:.]?\s*([A-Za-z][A-Za-z\s\-]{1,30})`),
		regexp.MustCompile(`(?im)Field/?\s*Prospect\s*[:.]?\s*([A-Za-z][A-Za-z\s\-]{1,30})`),
		regexp.MustCompile(`(?im)Field\s*[:.]?\s*\n\s*([A-Z][A-Z\s\-]{1,30})`),
		regexp.MustCompile(`(?im)\|\s*Field\s*\n\s*([A-Z][A-Z\s\-]{1,20})`),
	}

	fieldNameTrailRe = regexp.MustCompile(`(?i)\s*(?:County|Pool|Address|Telephone).*$`)
)

func extractFieldName(text string) string {
	for _, re := range fieldNamePatterns {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		// Split the raw capture before cleaning: the cell boundary is
		// often the newline cleanText would collapse away.
		v := cellSplitRe.Split(m[1], 2)[0]
		v = fieldNameTrailRe.ReplaceAllString(v, "")
		v = cleanText(v)
		if isSentinel(v) || len(v) < 2 || len(v) >= 40 {
			continue
		}
		return v
	}
	return ""
}

// --- elevation ---

var (
	elevGLRe = regexp.MustCompile(`(?i)(?:GL|Ground\s*Level)\s*[-:.]?\s*([\d,]+(?:\.\d+)?)\s*'?\s*(?:ft)?`)
	elevKBRe = regexp.MustCompile(`(?i)(?:KB|Kelly\s*Bushing)\s*[-:.]?\s*([\d,]+(?:\.\d+)?)\s*'?\s*(?:ft)?`)

	// Combined form: "ELEVATION: GL - 1850' KB - 1872'".
	elevCombinedRe = regexp.MustCompile(`(?i)ELEVATION\s*[:.]?\s*GL\s*[-:.]?\s*([\d,]+)'?\s*KB\s*[-:.]?\s*([\d,]+)`)
)

// extractElevation returns ground-level and kelly-bushing elevations.
// The combined pattern only fills whichever value is still empty; a value
// found by the independent labels is never overwritten.
func extractElevation(text string) (gl, kb string) {
	gl = extractFirst(elevGLRe, text)
	kb = extractFirst(elevKBRe, text)
	if m := elevCombinedRe.FindStringSubmatch(text); m != nil {
		if gl == "" {
			gl = m[1]
		}
		if kb == "" {
			kb = m[2]
		}
	}
	return gl, kb
}

// --- dates ---

var (
	spudDateRe = regexp.MustCompile(`(?i)Spud\s*Date\s*[:.]?\s*(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}|\w+\s+\d{1,2},?\s*\d{4})`)
	compDateRe = regexp.MustCompile(`(?i)(?:Comp(?:letion)?\s*Date|COMP\s*DATE|Date\s*Well\s*Completed)\s*[:.]?\s*(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}|\w+\s+\d{1,2},?\s*\d{4})`)
)

// extractDates returns spud and completion dates as free-form strings.
// Date layouts vary too much across form revisions to parse to a time.Time.
func extractDates(text string) (spud, completion string) {
	return extractFirst(spudDateRe, text), extractFirst(compDateRe, text)
}

// --- status ---

var statusPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:We[il]l\s+)?Status\s*(?:\(Producing\s+or\s+Shut.In\))?\s*[:.]?\s*\n?\s*((?:Producing|Shut.?In|Abandoned|Active|Pumping|Flowing|Inactive|Temporarily\s+Abandoned)(?:\s+(?:Oil|Gas|Water)\s+Well)?)`),
	regexp.MustCompile(`(?i)(?:We[il]l\s+)?Status\s*\(Producing\s+or\s+Shut.In\)\s*\n.*?(Producing|Shut.?In|Abandoned|Pumping|Flowing|Inactive)`),
	regexp.MustCompile(`(?i)(?:PRESENT\s+)?STATUS\s*(?:OF\s*WELL)?\s*[:.]?\s*(PUMPING\s+OIL\s+WELL|FLOWING|SHUT.?IN|ABANDONED|PRODUCING|ACTIVE|INACTIVE)`),
}

// "We[il]l" tolerates the most common OCR confusion in the label itself.
func extractWellStatus(text string) string {
	return firstMatch(statusPatterns, text)
}

// --- type ---

var (
	wellTypeRe      = regexp.MustCompile(`(?i)Well\s*Type\s*[:.]?\s*([A-Za-z][A-Za-z\s\-]{2,40})`)
	wellTypeSplitRe = regexp.MustCompile(`\s{3,}|\t|\n`)
)

func extractWellType(text string) string {
	m := wellTypeRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	v := cleanText(wellTypeSplitRe.Split(m[1], 2)[0])
	if isSentinel(v) || v == "" || len(v) >= 60 {
		return ""
	}
	return v
}

// --- total depth ---

var (
	totalDepthPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)ROTARY\s*TD\s*[:.]?\s*([\d,]+'?\s*(?:TVD|TMD|MD)?(?:\s*[/,]\s*[\d,]+'?\s*(?:TVD|TMD|MD)?)?)`),
		regexp.MustCompile(`(?i)Total\s*depth\s*changed\s*to\s*[:.]?\s*([\d,]+'?\s*(?:MD|TVD)?(?:\s*[/,]\s*[\d,]+'?\s*(?:TVD|TMD|MD)?)?)`),
		regexp.MustCompile(`(?i)Total\s*Depth\s*of\s*([\d,]+'?\s*(?:ft|feet|TVD|TMD|MD)?)`),
		regexp.MustCompile(`(?i)Total\s*Depth\s*/?\s*Date\s*[:.]?\s*\n?\s*([\d,]+)`),
		regexp.MustCompile(`(?i)Total\s*Depth\s*[:.]?\s*([\d,]+)\s*'?\s*(?:ft|TVD|TMD|MD)?`),
		regexp.MustCompile(`(?i)drilled\s+to\s+a?\s*total\s+depth.*?of\s+([\d,]+'?)\s*(?:ft|feet|TVD)?`),
		regexp.MustCompile(`(?i)(?:TD|total\s*depth)\s*(?:of|was|is|at)?\s*([\d,]+)\s*'?\s*(?:ft|TVD|MD)?`),
	}

	digitRe = regexp.MustCompile(`\d`)
)

func extractTotalDepth(text string) string {
	for _, re := range totalDepthPatterns {
		v := extractFirst(re, text)
		if v != "" && digitRe.MatchString(v) {
			return v
		}
	}
	return ""
}

// --- producing method ---

var producingMethodRe = regexp.MustCompile(`(?i)Producing\s*Method\s*[:.]?\s*(?:\([^)]*\)\s*)?(Flowing|Pumping|Gas\s*Lift|Rod\s*Pump|ESP|Plunger)`)

func extractProducingMethod(text string) string {
	return extractFirst(producingMethodRe, text)
}

// --- casing ---

const maxCasingLen = 200

var (
	surfCasingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)SURF(?:ACE)?\s*C(?:A)?SG\s*[:.]?\s*(.+?)(?:\n|$)`),
		regexp.MustCompile(`(?im)Surface\s*[:.]?\s*(\d[^\n]{10,80})`),
	}
	prodCasingRe = regexp.MustCompile(`(?im)PROD(?:UCTION)?\s*C(?:A)?SG\s*[:.]?\s*(.+?)(?:\n|$)`)
)

// extractCasing returns surface and production casing descriptions, each
// truncated to 200 characters to fit the persisted column width.
func extractCasing(text string) (surf, prod string) {
	surf = truncate(firstMatch(surfCasingPatterns, text), maxCasingLen)
	prod = truncate(extractFirst(prodCasingRe, text), maxCasingLen)
	return surf, prod
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
