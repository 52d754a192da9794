package wellparse

import "testing"

const stimDoc = `Well Specific Stimulations
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
Details: 20/40 Mesh 50000
ADDITIONAL INFORMATION
`

func TestExtractStimulationsStructured(t *testing.T) {
	recs := extractStimulations(stimDoc)
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	r := recs[0]
	if r.DateStimulated != "5/14/2012" {
		t.Errorf("date = %q", r.DateStimulated)
	}
	if r.Formation != "Bakken" || r.TopFt != "9500" || r.BottomFt != "10200" {
		t.Errorf("formation = %q/%q/%q", r.Formation, r.TopFt, r.BottomFt)
	}
	if r.Stages != "1" || r.Volume != "25000" || r.VolumeUnits != "Barrels" {
		t.Errorf("stages/volume = %q/%q/%q", r.Stages, r.Volume, r.VolumeUnits)
	}
	if r.TreatmentType != "Sand Frac" {
		t.Errorf("type = %q", r.TreatmentType)
	}
	if r.LbsProppant != "84500" {
		t.Errorf("proppant = %q, want commas stripped", r.LbsProppant)
	}
	if r.MaxPressurePSI != "8000" {
		t.Errorf("pressure = %q", r.MaxPressurePSI)
	}
	if r.MaxRateBblMin != "42.5" {
		t.Errorf("rate = %q", r.MaxRateBblMin)
	}
	if r.Details != "20/40 Mesh 50000" {
		t.Errorf("details = %q", r.Details)
	}
}

func TestExtractStimulationsMultipleBlocks(t *testing.T) {
	doc := `Well Specific Stimulations
Date Stimulated
5/14/2012
Formation Top
Bakken 9500 10200
Date Stimulated
6/20/2013
Acid Frac
ADDITIONAL INFORMATION
`
	recs := extractStimulations(doc)
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].DateStimulated != "5/14/2012" || recs[0].Formation != "Bakken" {
		t.Errorf("first = %+v", recs[0])
	}
	if recs[1].DateStimulated != "6/20/2013" || recs[1].TreatmentType != "Acid Frac" {
		t.Errorf("second = %+v", recs[1])
	}
}

func TestExtractStimulationsEmptyShellDropped(t *testing.T) {
	// A section that carries only labels must not yield a record.
	docs := []string{
		"Well Specific Stimulations\nDate Stimulated\n\nADDITIONAL INFORMATION\n",
		"Well Specific Stimulations\nDate Stimulated\nTreatment Type\nADDITIONAL INFORMATION\n",
	}
	for _, doc := range docs {
		if recs := extractStimulations(doc); len(recs) != 0 {
			t.Errorf("got %d records from label-only section, want 0", len(recs))
		}
	}
}

func TestExtractStimulationsNoSection(t *testing.T) {
	if recs := extractStimulations("routine completion, nothing stimulated"); len(recs) != 0 {
		t.Errorf("got %d records, want 0", len(recs))
	}
}

func TestExtractStimulationsNarrativeAcidJob(t *testing.T) {
	recs := extractStimulations("Details of work: Acidized open hole w/ 500 gal 15% HCl.")
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	r := recs[0]
	if r.Volume != "500" || r.VolumeUnits != "Gallons" {
		t.Errorf("volume = %q %q", r.Volume, r.VolumeUnits)
	}
	if r.TreatmentType != "Acid" {
		t.Errorf("type = %q", r.TreatmentType)
	}
	if r.AcidPct != "15% HCl" {
		t.Errorf("acid = %q", r.AcidPct)
	}
}
