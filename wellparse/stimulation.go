package wellparse

import (
	"regexp"
	"strings"
)

// Stimulation data shows up in at least three physical layouts depending
// on form revision and scan quality: a structured table, a narrative
// paragraph, and a bare mention inside "details of work". The segmenter
// bounds the section, splits it on the "Date Stimulated" sub-label, and
// extracts each block independently so one garbled block never poisons
// the rest.

var (
	stimSectionRe = regexp.MustCompile(`(?is)Well\s*Specific\s*Stimulations?\s*(.*?)(?:ADDITIONAL\s*INFORMATION|hereby\s*swear|Page\s*\d|SFN\s*\d|$)`)
	stimAltRe     = regexp.MustCompile(`(?is)(?:PERFORATION\s*RECORD|Acid,\s*Frac)(.*?)(?:PRODUCTION|Date.+?First\s*Production)`)

	stimBlockSplitRe = regexp.MustCompile(`(?i)Date\s*Stimulated`)

	stimDateRe      = regexp.MustCompile(`(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})`)
	stimFormationRe = regexp.MustCompile(`(?i)(?:Formation)?\s*(?:Top)?\s*\n?\s*([A-Za-z][A-Za-z\s]+?)\s+(\d+)\s+(\d+)`)
	stimStagesRe    = regexp.MustCompile(`(?i)(\d+)\s+(\d+)\s+(Barrels|Gallons|BBL)`)
	stimTypeRe      = regexp.MustCompile(`(?i)(Sand\s*Frac|Acid\s*Frac|Acid|Fracture|Frac|Hydraulic)`)
	stimAcidPctRe   = regexp.MustCompile(`(?i)Acid\s*%?\s*[:.]?\s*([\d.]+)`)

	stimProppantRe     = regexp.MustCompile(`(?i)(?:Lbs\s*)?Proppant\s*[:.]?\s*([\d,]+)`)
	stimProppantTailRe = regexp.MustCompile(`(?m)([\d,]+)\s+(?:\d+)\s+[\d.]+\s*$`)

	stimPressureRe = regexp.MustCompile(`(?i)(?:Maximum\s*)?(?:Treatment\s*)?Pressure\s*(?:\(PSI\))?\s*[:.]?\s*([\d,]+)`)
	stimRateRe     = regexp.MustCompile(`(?i)(?:Maximum\s*)?(?:Treatment\s*)?Rate\s*(?:\(BBLS/Min\))?\s*[:.]?\s*([\d.]+)`)

	// Flattened table row anchored on the treatment type. Positionally
	// fragile: it assumes proppant/pressure/rate column order survived the
	// text flattening, so it only runs when the labelled forms are absent.
	stimTripletRe = regexp.MustCompile(`(?i)(?:Sand\s*Frac|Acid|Frac)\s+(?:[\d.]+\s+)?([\d,]+)\s+([\d,]+)\s+([\d.]+)`)

	stimDetailRe = regexp.MustCompile(`(?i)(\d+(?:/\d+)?\s+(?:Mesh|White|Ceramic|Sand|Resin)\s*[:.]?\s*[\d,]+)`)

	// Last resort, narrative acid jobs: "Acidized open hole w/ 500 gal 15% HCl".
	stimAcidJobRe = regexp.MustCompile(`(?i)Acidiz\w*\s+(?:open\s+hole\s+)?(?:section\s+)?w/?\s*(\d+)\s*gal\s+([\d.]+%?\s*HCl?)`)
)

// extractStimulations returns the stimulation treatment records found in
// text, already filtered of empty shells.
func extractStimulations(text string) []StimulationRecord {
	var records []StimulationRecord

	section, ok := boundStimulationSection(text)
	if ok {
		for _, block := range splitStimulationBlocks(section) {
			rec := parseStimulationBlock(block)
			if rec.hasData() {
				records = append(records, rec)
			}
		}
	}

	if len(records) == 0 {
		if m := stimAcidJobRe.FindStringSubmatch(text); m != nil {
			records = append(records, StimulationRecord{
				Volume:        m[1],
				VolumeUnits:   "Gallons",
				TreatmentType: "Acid",
				AcidPct:       m[2],
			})
		}
	}

	return records
}

// boundStimulationSection locates the treatment section between its start
// marker and the nearest end marker.
func boundStimulationSection(text string) (string, bool) {
	if m := stimSectionRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := stimAltRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

// splitStimulationBlocks splits the bounded section into candidate record
// blocks, one per "Date Stimulated" occurrence. The slice before the first
// occurrence is header noise and is discarded.
func splitStimulationBlocks(section string) []string {
	parts := stimBlockSplitRe.Split(section, -1)
	if len(parts) < 2 {
		return nil
	}
	var blocks []string
	for _, p := range parts[1:] {
		if strings.TrimSpace(p) != "" {
			blocks = append(blocks, p)
		}
	}
	return blocks
}

func parseStimulationBlock(block string) StimulationRecord {
	var rec StimulationRecord

	if m := stimDateRe.FindStringSubmatch(block); m != nil {
		rec.DateStimulated = m[1]
	}

	if m := stimFormationRe.FindStringSubmatch(block); m != nil {
		rec.Formation = cleanText(m[1])
		rec.TopFt = m[2]
		rec.BottomFt = m[3]
	}

	if m := stimStagesRe.FindStringSubmatch(block); m != nil {
		rec.Stages = m[1]
		rec.Volume = m[2]
		rec.VolumeUnits = m[3]
	}

	if m := stimTypeRe.FindStringSubmatch(block); m != nil {
		rec.TreatmentType = cleanText(m[1])
	}

	if m := stimAcidPctRe.FindStringSubmatch(block); m != nil {
		rec.AcidPct = m[1]
	}

	if m := stimProppantRe.FindStringSubmatch(block); m != nil {
		rec.LbsProppant = strings.ReplaceAll(m[1], ",", "")
	} else if m := stimProppantTailRe.FindStringSubmatch(block); m != nil {
		rec.LbsProppant = strings.ReplaceAll(m[1], ",", "")
	}

	if m := stimPressureRe.FindStringSubmatch(block); m != nil {
		rec.MaxPressurePSI = strings.ReplaceAll(m[1], ",", "")
	} else if m := stimTripletRe.FindStringSubmatch(block); m != nil {
		// Best-effort column inference; see stimTripletRe.
		if rec.LbsProppant == "" {
			rec.LbsProppant = strings.ReplaceAll(m[1], ",", "")
		}
		rec.MaxPressurePSI = m[2]
		rec.MaxRateBblMin = m[3]
	}

	if rec.MaxRateBblMin == "" {
		if m := stimRateRe.FindStringSubmatch(block); m != nil {
			rec.MaxRateBblMin = m[1]
		}
	}

	var details []string
	for _, m := range stimDetailRe.FindAllStringSubmatch(block, -1) {
		details = append(details, cleanText(m[1]))
	}
	rec.Details = strings.Join(details, "; ")

	return rec
}
