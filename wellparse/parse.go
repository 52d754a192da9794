// Package wellparse turns raw text extracted from oil-well completion
// reports into structured well and stimulation-treatment records.
//
// The engine is a battery of ordered regex cascades, one per semantic
// field, evaluated first-match-wins against the full document text. It is
// pure and stateless: Parse never fails, never touches I/O, and is safe to
// call concurrently on independent documents. A field the document does
// not yield stays empty — that is the failure signal, not an error.
//
// Usage:
//
//	well, stims := wellparse.Parse(text, "W11745.pdf")
//	if well.WellFileNo == "" {
//		// not persistable; count as a processing failure
//	}
package wellparse

// Parse extracts one WellRecord and zero or more StimulationRecords from
// the text of a single completion report. filename may be empty; when it
// carries a W-prefixed number that number wins as the well file number.
// Parse is deterministic: the same text and filename always produce the
// same output.
func Parse(text, filename string) (*WellRecord, []StimulationRecord) {
	loc := extractLocation(text)
	lat, lon := extractCoordinates(text)
	gl, kb := extractElevation(text)
	spud, completion := extractDates(text)
	surf, prod := extractCasing(text)

	well := &WellRecord{
		WellFileNo:       extractWellFileNo(text, filename),
		APINumber:        extractAPINumber(text),
		WellName:         extractWellName(text),
		Operator:         extractOperator(text),
		FieldName:        extractFieldName(text),
		LocationDesc:     loc.Desc,
		Section:          loc.Section,
		Township:         loc.Township,
		RangeDir:         loc.RangeDir,
		County:           loc.County,
		State:            DefaultState,
		Latitude:         lat,
		Longitude:        lon,
		ElevationGL:      gl,
		ElevationKB:      kb,
		SpudDate:         spud,
		CompletionDate:   completion,
		WellStatus:       extractWellStatus(text),
		WellType:         extractWellType(text),
		TotalDepth:       extractTotalDepth(text),
		ProducingMethod:  extractProducingMethod(text),
		SurfaceCasing:    surf,
		ProductionCasing: prod,
		PDFFilename:      filename,
	}

	return well, extractStimulations(text)
}
