package wellstore

import (
	"context"
	"fmt"
)

// ScrapedInfo is the registry data attached to a well by the scraper.
type ScrapedInfo struct {
	WellStatus    string `json:"well_status"`
	WellType      string `json:"well_type"`
	ClosestCity   string `json:"closest_city"`
	OilProduction string `json:"oil_production"`
	GasProduction string `json:"gas_production"`
}

// Complete reports whether every scraped field carries a real value.
// "N/A" is what the registry shows for fields it has no data for.
func (i ScrapedInfo) Complete() bool {
	for _, v := range []string{i.WellStatus, i.WellType, i.ClosestCity, i.OilProduction, i.GasProduction} {
		if v == "" || v == "N/A" {
			return false
		}
	}
	return true
}

// UpdateScraped stores registry data for one well. The well must already
// exist; scraped data without a parsed filing has nothing to attach to.
func (s *Store) UpdateScraped(ctx context.Context, wellFileNo string, info ScrapedInfo) error {
	const q = `
UPDATE well_info SET
    scraped_well_status    = ?,
    scraped_well_type      = ?,
    scraped_closest_city   = ?,
    scraped_oil_production = ?,
    scraped_gas_production = ?,
    updated_at             = datetime('now')
WHERE well_file_no = ?`

	res, err := s.db.ExecContext(ctx, q,
		info.WellStatus, info.WellType, info.ClosestCity,
		info.OilProduction, info.GasProduction, wellFileNo)
	if err != nil {
		return fmt.Errorf("wellstore: update scraped %s: %w", wellFileNo, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("wellstore: update scraped %s: %w", wellFileNo, err)
	}
	if n == 0 {
		return fmt.Errorf("wellstore: update scraped: well %s not found", wellFileNo)
	}
	return nil
}

// ScrapeTarget identifies a well the registry scraper can look up.
type ScrapeTarget struct {
	WellFileNo string
	APINumber  string
}

// ListScrapeTargets returns wells that carry an API number but whose
// registry data is missing or incomplete, ordered by file number. Wells
// without an API number cannot be searched and are never returned.
func (s *Store) ListScrapeTargets(ctx context.Context) ([]ScrapeTarget, error) {
	const q = `
SELECT well_file_no, api_number FROM well_info
WHERE api_number != '' AND UPPER(api_number) != 'N/A'
  AND (scraped_well_status    IN ('', 'N/A')
    OR scraped_well_type      IN ('', 'N/A')
    OR scraped_closest_city   IN ('', 'N/A')
    OR scraped_oil_production IN ('', 'N/A')
    OR scraped_gas_production IN ('', 'N/A'))
ORDER BY well_file_no`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("wellstore: list scrape targets: %w", err)
	}
	defer rows.Close()

	var targets []ScrapeTarget
	for rows.Next() {
		var t ScrapeTarget
		if err := rows.Scan(&t.WellFileNo, &t.APINumber); err != nil {
			return nil, fmt.Errorf("wellstore: scan scrape target: %w", err)
		}
		targets = append(targets, t)
	}
	return targets, rows.Err()
}

// ListUnscraped returns the file numbers of wells whose registry data is
// missing or incomplete, ordered by file number.
func (s *Store) ListUnscraped(ctx context.Context) ([]string, error) {
	const q = `
SELECT well_file_no FROM well_info
WHERE scraped_well_status    IN ('', 'N/A')
   OR scraped_well_type      IN ('', 'N/A')
   OR scraped_closest_city   IN ('', 'N/A')
   OR scraped_oil_production IN ('', 'N/A')
   OR scraped_gas_production IN ('', 'N/A')
ORDER BY well_file_no`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("wellstore: list unscraped: %w", err)
	}
	defer rows.Close()

	var nos []string
	for rows.Next() {
		var no string
		if err := rows.Scan(&no); err != nil {
			return nil, fmt.Errorf("wellstore: scan well file no: %w", err)
		}
		nos = append(nos, no)
	}
	return nos, rows.Err()
}
