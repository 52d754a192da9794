package wellparse

import (
	"strings"
	"testing"
)

func TestExtractWellFileNo(t *testing.T) {
	// Filename wins over in-text labels.
	got := extractWellFileNo("Well File No: 99999", "W11745.pdf")
	if got != "11745" {
		t.Errorf("filename precedence: got %q, want 11745", got)
	}

	tests := []struct {
		text, want string
	}{
		{"Well File No: 12345", "12345"},
		{"Well File Number 12345", "12345"},
		{"ST FILE NO: 4521", "4521"},
		{"NDIC File Number: 8812", "8812"},
		{"no identifier here", ""},
	}
	for _, tt := range tests {
		if got := extractWellFileNo(tt.text, ""); got != tt.want {
			t.Errorf("extractWellFileNo(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractAPINumber(t *testing.T) {
	tests := []struct {
		text, want string
	}{
		{"API # : 33-053-02102-00-00", "33-053-02102"},
		{"API Number: 33-053-02102", "33-053-02102"},
		{"filed under 33-105-01491-00", "33-105-01491"},
		{"API # : 33 - 053 - 02102", "33-053-02102"},
		{"no api number", ""},
	}
	for _, tt := range tests {
		if got := extractAPINumber(tt.text); got != tt.want {
			t.Errorf("extractAPINumber(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractWellName(t *testing.T) {
	text := "WELL COMPLETION REPORT\nWell Name and Number:\nSMITH FEDERAL 12-34H\nOperator: Acme"
	if got := extractWellName(text); got != "SMITH FEDERAL 12-34H" {
		t.Errorf("got %q, want SMITH FEDERAL 12-34H", got)
	}

	// A bare label works without the completion header.
	if got := extractWellName("Well Name: OLSON 4-22\n"); got != "OLSON 4-22" {
		t.Errorf("got %q, want OLSON 4-22", got)
	}

	// Captures without a digit never match: that is what filters out
	// section headers picked up as names.
	if got := extractWellName("Well Name:\nCOMPLETION DATA SECTION\n"); got != "" {
		t.Errorf("expected empty for digit-less capture, got %q", got)
	}
}

func TestExtractOperator(t *testing.T) {
	tests := []struct {
		text, want string
	}{
		{"Well Operator: Continental Resources, Inc.", "Continental Resources, Inc."},
		{"Operator:\nBurlington Resources Oil and Gas Company", "Burlington Resources Oil and Gas Company"},
		{"Operator: FROM Hess Corp.", "Hess Corp."},
		{"Operator: somebody without a suffix", ""},
	}
	for _, tt := range tests {
		if got := extractOperator(tt.text); got != tt.want {
			t.Errorf("extractOperator(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractFieldName(t *testing.T) {
	if got := extractFieldName("Field Name: BEAVER LODGE\nCounty: Williams"); got != "BEAVER LODGE" {
		t.Errorf("got %q, want BEAVER LODGE", got)
	}
	// Sentinel values normalize to absent.
	if got := extractFieldName("Field Name: NA"); got != "" {
		t.Errorf("expected empty for sentinel, got %q", got)
	}
}

func TestExtractElevation(t *testing.T) {
	gl, kb := extractElevation("Ground Level: 1900\nELEVATION: GL-1850 KB-1872")
	if gl != "1900" {
		t.Errorf("gl = %q, want 1900 (combined form must not overwrite)", gl)
	}
	if kb != "1872" {
		t.Errorf("kb = %q, want 1872", kb)
	}

	gl, kb = extractElevation("nothing here")
	if gl != "" || kb != "" {
		t.Errorf("expected empty, got %q %q", gl, kb)
	}
}

func TestExtractDates(t *testing.T) {
	spud, comp := extractDates("Spud Date: 3/17/2011\nDate Well Completed: 6/2/2011")
	if spud != "3/17/2011" {
		t.Errorf("spud = %q", spud)
	}
	if comp != "6/2/2011" {
		t.Errorf("completion = %q", comp)
	}

	spud, _ = extractDates("Spud Date: March 17, 2011")
	if spud != "March 17, 2011" {
		t.Errorf("spud = %q", spud)
	}
}

func TestExtractWellStatus(t *testing.T) {
	tests := []struct {
		text, want string
	}{
		{"Well Status: Producing Oil Well", "Producing Oil Well"},
		{"PRESENT STATUS OF WELL: PUMPING OIL WELL", "PUMPING OIL WELL"},
		{"Status: Shut-In", "Shut-In"},
		{"no status", ""},
	}
	for _, tt := range tests {
		if got := extractWellStatus(tt.text); got != tt.want {
			t.Errorf("extractWellStatus(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractWellType(t *testing.T) {
	// The wide gap is a table-cell boundary; everything after it belongs
	// to the next column.
	if got := extractWellType("Well Type: Oil and Gas   CURRENT STATUS"); got != "Oil and Gas" {
		t.Errorf("got %q, want Oil and Gas", got)
	}
	if got := extractWellType("no type here"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestExtractTotalDepth(t *testing.T) {
	tests := []struct {
		text, want string
	}{
		{"Total Depth: 11,500", "11,500"},
		{"ROTARY TD: 20,810' TVD", "20,810' TVD"},
		{"drilled to a total depth of 9,100' TVD", "9,100' TVD"},
		{"Total Depth: unknown", ""},
	}
	for _, tt := range tests {
		if got := extractTotalDepth(tt.text); got != tt.want {
			t.Errorf("extractTotalDepth(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractProducingMethod(t *testing.T) {
	if got := extractProducingMethod("Producing Method (check one): Flowing"); got != "Flowing" {
		t.Errorf("got %q, want Flowing", got)
	}
}

func TestExtractCasing(t *testing.T) {
	surf, prod := extractCasing("SURF CSG: 9 5/8\" set @ 2050' w/ 750 sx\nPROD CSG: 7\" set @ 11450'")
	if !strings.Contains(surf, "9 5/8") {
		t.Errorf("surf = %q", surf)
	}
	if !strings.Contains(prod, "11450") {
		t.Errorf("prod = %q", prod)
	}
}

func TestExtractCasingTruncation(t *testing.T) {
	long := strings.Repeat("x", 500)
	_, prod := extractCasing("PROD CSG: " + long)
	if len(prod) != maxCasingLen {
		t.Errorf("production casing length = %d, want %d", len(prod), maxCasingLen)
	}
}
