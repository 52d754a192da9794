package wellparse

// DefaultState is stamped on every record; the filings this parser targets
// all come from the North Dakota Industrial Commission.
const DefaultState = "ND"

// WellRecord holds the structured fields extracted from one completion
// report. String fields are "" when the document yields nothing; Latitude
// and Longitude are nil when absent. The Scraped* fields are populated by
// the registry collaborator, never by the parser.
type WellRecord struct {
	WellFileNo       string   `json:"well_file_no"`
	APINumber        string   `json:"api_number,omitempty"`
	WellName         string   `json:"well_name,omitempty"`
	Operator         string   `json:"operator,omitempty"`
	FieldName        string   `json:"field_name,omitempty"`
	LocationDesc     string   `json:"location_desc,omitempty"`
	Section          string   `json:"section,omitempty"`
	Township         string   `json:"township,omitempty"`
	RangeDir         string   `json:"range_dir,omitempty"`
	County           string   `json:"county,omitempty"`
	State            string   `json:"state"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	ElevationGL      string   `json:"elevation_gl,omitempty"`
	ElevationKB      string   `json:"elevation_kb,omitempty"`
	SpudDate         string   `json:"spud_date,omitempty"`
	CompletionDate   string   `json:"completion_date,omitempty"`
	WellStatus       string   `json:"well_status,omitempty"`
	WellType         string   `json:"well_type,omitempty"`
	TotalDepth       string   `json:"total_depth,omitempty"`
	ProducingMethod  string   `json:"producing_method,omitempty"`
	SurfaceCasing    string   `json:"surface_casing,omitempty"`
	ProductionCasing string   `json:"production_casing,omitempty"`
	PDFFilename      string   `json:"pdf_filename,omitempty"`

	ScrapedWellStatus    string `json:"scraped_well_status,omitempty"`
	ScrapedWellType      string `json:"scraped_well_type,omitempty"`
	ScrapedClosestCity   string `json:"scraped_closest_city,omitempty"`
	ScrapedOilProduction string `json:"scraped_oil_production,omitempty"`
	ScrapedGasProduction string `json:"scraped_gas_production,omitempty"`
}

// StimulationRecord is one treatment row from the "Well Specific
// Stimulations" section of a completion report.
type StimulationRecord struct {
	DateStimulated string `json:"date_stimulated,omitempty"`
	Formation      string `json:"stimulated_formation,omitempty"`
	TopFt          string `json:"top_ft,omitempty"`
	BottomFt       string `json:"bottom_ft,omitempty"`
	Stages         string `json:"stimulation_stages,omitempty"`
	Volume         string `json:"volume,omitempty"`
	VolumeUnits    string `json:"volume_units,omitempty"`
	TreatmentType  string `json:"treatment_type,omitempty"`
	AcidPct        string `json:"acid_pct,omitempty"`
	LbsProppant    string `json:"lbs_proppant,omitempty"`
	MaxPressurePSI string `json:"max_treatment_pressure_psi,omitempty"`
	MaxRateBblMin  string `json:"max_treatment_rate_bbls_min,omitempty"`
	Details        string `json:"details,omitempty"`
}

// hasData reports whether any field other than Details is populated.
// Blocks that only matched the "Date Stimulated" label produce empty
// shells; those are dropped.
func (r *StimulationRecord) hasData() bool {
	return r.DateStimulated != "" || r.Formation != "" || r.TopFt != "" ||
		r.BottomFt != "" || r.Stages != "" || r.Volume != "" ||
		r.VolumeUnits != "" || r.TreatmentType != "" || r.AcidPct != "" ||
		r.LbsProppant != "" || r.MaxPressurePSI != "" || r.MaxRateBblMin != ""
}
