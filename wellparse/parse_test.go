package wellparse

import (
	"reflect"
	"testing"
)

const completionReport = `WELL COMPLETION REPORT
Well File No: 99999
API # : 33-053-02102-00-00
Well Name and Number:
SMITH FEDERAL 12-34H
Well Operator: Continental Resources, Inc.
Field Name: BEAVER LODGE
SW NW Sec. 30, T153N, R100W, McKenzie County
ORIGINAL Latitude: 48.999999
(reference values recorded before the survey was re-run by the operator)
Latitude: 47.123456
Longitude: 102.520000 W
Ground Level: 2250
Spud Date: 3/17/2011
Date Well Completed: 6/2/2011
Well Status: Producing Oil Well
Total Depth: 20,810
SURF CSG: 9 5/8" set @ 2050' w/ 750 sx
Well Specific Stimulations
Date Stimulated
5/14/2012
Formation Top
Bakken 9500 10200
Stimulation Stages Volume
1 25000 Barrels
Type Treatment
Sand Frac
Lbs Proppant: 84,500
Maximum Treatment Pressure (PSI): 8,000
Maximum Treatment Rate (BBLS/Min): 42.5
ADDITIONAL INFORMATION
`

func TestParseCompletionReport(t *testing.T) {
	well, stims := Parse(completionReport, "W11745.pdf")

	// The archive filename outranks the garbled in-text label.
	if well.WellFileNo != "11745" {
		t.Errorf("well file no = %q, want 11745", well.WellFileNo)
	}
	if well.APINumber != "33-053-02102" {
		t.Errorf("api = %q, want 33-053-02102", well.APINumber)
	}
	if well.WellName != "SMITH FEDERAL 12-34H" {
		t.Errorf("name = %q", well.WellName)
	}
	if well.Operator != "Continental Resources, Inc." {
		t.Errorf("operator = %q", well.Operator)
	}
	if well.FieldName != "BEAVER LODGE" {
		t.Errorf("field = %q", well.FieldName)
	}
	if well.Section != "30" || well.Township != "153N" || well.RangeDir != "100W" {
		t.Errorf("location = %q/%q/%q", well.Section, well.Township, well.RangeDir)
	}
	if well.County != "McKenzie" {
		t.Errorf("county = %q", well.County)
	}
	if well.State != DefaultState {
		t.Errorf("state = %q", well.State)
	}
	if well.Latitude == nil || *well.Latitude != 47.123456 {
		t.Errorf("latitude = %v, want 47.123456", well.Latitude)
	}
	if well.Longitude == nil || *well.Longitude != -102.52 {
		t.Errorf("longitude = %v, want -102.52", well.Longitude)
	}
	if well.ElevationGL != "2250" || well.ElevationKB != "" {
		t.Errorf("elevation = %q/%q", well.ElevationGL, well.ElevationKB)
	}
	if well.SpudDate != "3/17/2011" || well.CompletionDate != "6/2/2011" {
		t.Errorf("dates = %q/%q", well.SpudDate, well.CompletionDate)
	}
	if well.WellStatus != "Producing Oil Well" {
		t.Errorf("status = %q", well.WellStatus)
	}
	if well.TotalDepth != "20,810" {
		t.Errorf("depth = %q", well.TotalDepth)
	}
	if well.SurfaceCasing != `9 5/8" set @ 2050' w/ 750 sx` {
		t.Errorf("surface casing = %q", well.SurfaceCasing)
	}
	if well.PDFFilename != "W11745.pdf" {
		t.Errorf("filename = %q", well.PDFFilename)
	}

	if len(stims) != 1 {
		t.Fatalf("got %d stimulation records, want 1", len(stims))
	}
	s := stims[0]
	if s.DateStimulated != "5/14/2012" || s.Formation != "Bakken" {
		t.Errorf("stim = %+v", s)
	}
	if s.LbsProppant != "84500" || s.MaxPressurePSI != "8000" || s.MaxRateBblMin != "42.5" {
		t.Errorf("stim numbers = %q/%q/%q", s.LbsProppant, s.MaxPressurePSI, s.MaxRateBblMin)
	}
}

func TestParseDeterministic(t *testing.T) {
	w1, s1 := Parse(completionReport, "W11745.pdf")
	w2, s2 := Parse(completionReport, "W11745.pdf")
	if !reflect.DeepEqual(w1, w2) {
		t.Error("well records differ across runs")
	}
	if !reflect.DeepEqual(s1, s2) {
		t.Error("stimulation records differ across runs")
	}
}

func TestParseEmptyInput(t *testing.T) {
	well, stims := Parse("", "")
	if well.WellFileNo != "" {
		t.Errorf("well file no = %q, want empty", well.WellFileNo)
	}
	if well.State != DefaultState {
		t.Errorf("state = %q, want %q", well.State, DefaultState)
	}
	if len(stims) != 0 {
		t.Errorf("got %d stimulation records, want 0", len(stims))
	}
}

func TestParseGarbageInput(t *testing.T) {
	// OCR of a bad scan produces noise; the parser must come back empty,
	// never panic.
	well, stims := Parse("%%% @@@ ~~ \x01\x02 ||| 123", "not-a-well-file.pdf")
	if well.WellFileNo != "" {
		t.Errorf("well file no = %q, want empty", well.WellFileNo)
	}
	if len(stims) != 0 {
		t.Errorf("got %d stimulation records, want 0", len(stims))
	}
}
