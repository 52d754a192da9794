package wellstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hazyhaar/wellpipe/wellparse"
)

// UpsertWell inserts or merges one well record. On conflict each incoming
// field only wins when non-empty, so a weak re-parse never erases data a
// better extraction already stored. The PDF filename always follows the
// latest ingest.
func (s *Store) UpsertWell(ctx context.Context, w *wellparse.WellRecord) error {
	if w.WellFileNo == "" {
		return fmt.Errorf("wellstore: upsert: well file number is required")
	}

	const q = `
INSERT INTO well_info (
    well_file_no, api_number, well_name, operator, field_name,
    location_desc, section, township, range_dir, county, state,
    latitude, longitude, elevation_gl, elevation_kb,
    spud_date, completion_date, well_status, well_type,
    total_depth, producing_method, surface_casing,
    production_casing, pdf_filename
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(well_file_no) DO UPDATE SET
    api_number        = COALESCE(NULLIF(excluded.api_number, ''), api_number),
    well_name         = COALESCE(NULLIF(excluded.well_name, ''), well_name),
    operator          = COALESCE(NULLIF(excluded.operator, ''), operator),
    field_name        = COALESCE(NULLIF(excluded.field_name, ''), field_name),
    location_desc     = COALESCE(NULLIF(excluded.location_desc, ''), location_desc),
    section           = COALESCE(NULLIF(excluded.section, ''), section),
    township          = COALESCE(NULLIF(excluded.township, ''), township),
    range_dir         = COALESCE(NULLIF(excluded.range_dir, ''), range_dir),
    county            = COALESCE(NULLIF(excluded.county, ''), county),
    latitude          = COALESCE(excluded.latitude, latitude),
    longitude         = COALESCE(excluded.longitude, longitude),
    elevation_gl      = COALESCE(NULLIF(excluded.elevation_gl, ''), elevation_gl),
    elevation_kb      = COALESCE(NULLIF(excluded.elevation_kb, ''), elevation_kb),
    spud_date         = COALESCE(NULLIF(excluded.spud_date, ''), spud_date),
    completion_date   = COALESCE(NULLIF(excluded.completion_date, ''), completion_date),
    well_status       = COALESCE(NULLIF(excluded.well_status, ''), well_status),
    well_type         = COALESCE(NULLIF(excluded.well_type, ''), well_type),
    total_depth       = COALESCE(NULLIF(excluded.total_depth, ''), total_depth),
    producing_method  = COALESCE(NULLIF(excluded.producing_method, ''), producing_method),
    surface_casing    = COALESCE(NULLIF(excluded.surface_casing, ''), surface_casing),
    production_casing = COALESCE(NULLIF(excluded.production_casing, ''), production_casing),
    pdf_filename      = excluded.pdf_filename,
    updated_at        = datetime('now')`

	state := w.State
	if state == "" {
		state = wellparse.DefaultState
	}

	_, err := s.db.ExecContext(ctx, q,
		w.WellFileNo, w.APINumber, w.WellName, w.Operator, w.FieldName,
		w.LocationDesc, w.Section, w.Township, w.RangeDir, w.County, state,
		nullFloat(w.Latitude), nullFloat(w.Longitude), w.ElevationGL, w.ElevationKB,
		w.SpudDate, w.CompletionDate, w.WellStatus, w.WellType,
		w.TotalDepth, w.ProducingMethod, w.SurfaceCasing,
		w.ProductionCasing, w.PDFFilename)
	if err != nil {
		return fmt.Errorf("wellstore: upsert well %s: %w", w.WellFileNo, err)
	}
	return nil
}

// ReplaceStimulations swaps out every stimulation row of the well for recs,
// in one transaction. Passing no records leaves existing rows untouched:
// a parse that found nothing must not destroy treatment data from an
// earlier, better parse.
func (s *Store) ReplaceStimulations(ctx context.Context, wellFileNo string, recs []wellparse.StimulationRecord) error {
	if wellFileNo == "" {
		return fmt.Errorf("wellstore: replace stimulations: well file number is required")
	}
	if len(recs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("wellstore: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM stimulation_data WHERE well_file_no = ?`, wellFileNo); err != nil {
		return fmt.Errorf("wellstore: delete stimulations for %s: %w", wellFileNo, err)
	}

	const q = `
INSERT INTO stimulation_data (
    well_file_no, date_stimulated, stimulated_formation,
    top_ft, bottom_ft, stimulation_stages, volume,
    volume_units, treatment_type, acid_pct, lbs_proppant,
    max_treatment_pressure_psi, max_treatment_rate_bbls_min, details
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, r := range recs {
		if _, err := tx.ExecContext(ctx, q,
			wellFileNo, r.DateStimulated, r.Formation,
			r.TopFt, r.BottomFt, r.Stages, r.Volume,
			r.VolumeUnits, r.TreatmentType, r.AcidPct, r.LbsProppant,
			r.MaxPressurePSI, r.MaxRateBblMin, r.Details); err != nil {
			return fmt.Errorf("wellstore: insert stimulation for %s: %w", wellFileNo, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("wellstore: commit stimulations for %s: %w", wellFileNo, err)
	}
	return nil
}

// GetWell returns the full record and its stimulation rows.
// Returns nil, nil, nil when the well does not exist.
func (s *Store) GetWell(ctx context.Context, wellFileNo string) (*wellparse.WellRecord, []wellparse.StimulationRecord, error) {
	const q = `
SELECT well_file_no, api_number, well_name, operator, field_name,
       location_desc, section, township, range_dir, county, state,
       latitude, longitude, elevation_gl, elevation_kb,
       spud_date, completion_date, well_status, well_type,
       total_depth, producing_method, surface_casing,
       production_casing, pdf_filename,
       scraped_well_status, scraped_well_type, scraped_closest_city,
       scraped_oil_production, scraped_gas_production
FROM well_info WHERE well_file_no = ?`

	var w wellparse.WellRecord
	var lat, lon sql.NullFloat64
	err := s.db.QueryRowContext(ctx, q, wellFileNo).Scan(
		&w.WellFileNo, &w.APINumber, &w.WellName, &w.Operator, &w.FieldName,
		&w.LocationDesc, &w.Section, &w.Township, &w.RangeDir, &w.County, &w.State,
		&lat, &lon, &w.ElevationGL, &w.ElevationKB,
		&w.SpudDate, &w.CompletionDate, &w.WellStatus, &w.WellType,
		&w.TotalDepth, &w.ProducingMethod, &w.SurfaceCasing,
		&w.ProductionCasing, &w.PDFFilename,
		&w.ScrapedWellStatus, &w.ScrapedWellType, &w.ScrapedClosestCity,
		&w.ScrapedOilProduction, &w.ScrapedGasProduction)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("wellstore: get well %s: %w", wellFileNo, err)
	}
	w.Latitude = floatPtr(lat)
	w.Longitude = floatPtr(lon)

	stims, err := s.stimulationsFor(ctx, wellFileNo)
	if err != nil {
		return nil, nil, err
	}
	return &w, stims, nil
}

func (s *Store) stimulationsFor(ctx context.Context, wellFileNo string) ([]wellparse.StimulationRecord, error) {
	const q = `
SELECT date_stimulated, stimulated_formation, top_ft, bottom_ft,
       stimulation_stages, volume, volume_units, treatment_type,
       acid_pct, lbs_proppant, max_treatment_pressure_psi,
       max_treatment_rate_bbls_min, details
FROM stimulation_data WHERE well_file_no = ? ORDER BY id`

	rows, err := s.db.QueryContext(ctx, q, wellFileNo)
	if err != nil {
		return nil, fmt.Errorf("wellstore: stimulations for %s: %w", wellFileNo, err)
	}
	defer rows.Close()

	var recs []wellparse.StimulationRecord
	for rows.Next() {
		var r wellparse.StimulationRecord
		if err := rows.Scan(
			&r.DateStimulated, &r.Formation, &r.TopFt, &r.BottomFt,
			&r.Stages, &r.Volume, &r.VolumeUnits, &r.TreatmentType,
			&r.AcidPct, &r.LbsProppant, &r.MaxPressurePSI,
			&r.MaxRateBblMin, &r.Details); err != nil {
			return nil, fmt.Errorf("wellstore: scan stimulation: %w", err)
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// WellSummary is the map-marker projection of a well.
type WellSummary struct {
	WellFileNo         string   `json:"well_file_no"`
	APINumber          string   `json:"api_number,omitempty"`
	WellName           string   `json:"well_name,omitempty"`
	Operator           string   `json:"operator,omitempty"`
	FieldName          string   `json:"field_name,omitempty"`
	County             string   `json:"county,omitempty"`
	State              string   `json:"state"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
	WellStatus         string   `json:"well_status,omitempty"`
	WellType           string   `json:"well_type,omitempty"`
	ScrapedWellStatus  string   `json:"scraped_well_status,omitempty"`
	ScrapedWellType    string   `json:"scraped_well_type,omitempty"`
	ScrapedClosestCity string   `json:"scraped_closest_city,omitempty"`
}

const summaryColumns = `
SELECT well_file_no, api_number, well_name, operator, field_name,
       county, state, latitude, longitude, well_status, well_type,
       scraped_well_status, scraped_well_type, scraped_closest_city
FROM well_info`

// ListWells returns every well ordered by file number.
func (s *Store) ListWells(ctx context.Context) ([]WellSummary, error) {
	return s.querySummaries(ctx, summaryColumns+` ORDER BY well_file_no`)
}

// SearchWells returns wells whose name, API number, county, or operator
// contains query.
func (s *Store) SearchWells(ctx context.Context, query string) ([]WellSummary, error) {
	pattern := "%" + query + "%"
	return s.querySummaries(ctx, summaryColumns+`
WHERE well_name LIKE ? OR api_number LIKE ? OR county LIKE ? OR operator LIKE ?
ORDER BY well_file_no`, pattern, pattern, pattern, pattern)
}

func (s *Store) querySummaries(ctx context.Context, q string, args ...any) ([]WellSummary, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("wellstore: query wells: %w", err)
	}
	defer rows.Close()

	var wells []WellSummary
	for rows.Next() {
		var w WellSummary
		var lat, lon sql.NullFloat64
		if err := rows.Scan(
			&w.WellFileNo, &w.APINumber, &w.WellName, &w.Operator, &w.FieldName,
			&w.County, &w.State, &lat, &lon, &w.WellStatus, &w.WellType,
			&w.ScrapedWellStatus, &w.ScrapedWellType, &w.ScrapedClosestCity); err != nil {
			return nil, fmt.Errorf("wellstore: scan well summary: %w", err)
		}
		w.Latitude = floatPtr(lat)
		w.Longitude = floatPtr(lon)
		wells = append(wells, w)
	}
	return wells, rows.Err()
}

// Stats summarises the database for the dashboard.
type Stats struct {
	TotalWells              int `json:"total_wells"`
	WellsWithCoordinates    int `json:"wells_with_coordinates"`
	TotalStimulationRecords int `json:"total_stimulation_records"`
	WellsWithScrapedData    int `json:"wells_with_scraped_data"`
}

// Stats returns record counts across the database.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	var st Stats
	counts := []struct {
		q    string
		dest *int
	}{
		{`SELECT COUNT(*) FROM well_info`, &st.TotalWells},
		{`SELECT COUNT(*) FROM well_info WHERE latitude IS NOT NULL`, &st.WellsWithCoordinates},
		{`SELECT COUNT(*) FROM stimulation_data`, &st.TotalStimulationRecords},
		{`SELECT COUNT(*) FROM well_info
		  WHERE scraped_well_status != '' AND scraped_well_status != 'N/A'`, &st.WellsWithScrapedData},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.q).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("wellstore: stats: %w", err)
		}
	}
	return &st, nil
}

func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
