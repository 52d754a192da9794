package wellstore

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
)

// Coordinate extraction occasionally produces positions hundreds of miles
// from the well: an OCR-garbled digit, a degree field read as minutes.
// FixSpatialOutliers pulls such points back to their county's median
// position, with a small jitter so corrected wells do not stack on one
// map pixel.

const (
	outlierZThreshold = 3.0
	outlierJitter     = 0.005

	// Plausible bounding box for North Dakota wells.
	minPlausibleLat = 40.0
	maxPlausibleLat = 55.0
	minPlausibleLon = -115.0
	maxPlausibleLon = -90.0
)

type wellPoint struct {
	fileNo string
	lat    float64
	lon    float64
}

// FixSpatialOutliers corrects implausible coordinates county by county and
// returns the number of wells moved. Counties with fewer than three located
// wells are skipped; there is no meaningful median to correct toward.
func (s *Store) FixSpatialOutliers(ctx context.Context) (int, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT well_file_no, county, latitude, longitude
FROM well_info
WHERE latitude IS NOT NULL AND longitude IS NOT NULL AND county != ''`)
	if err != nil {
		return 0, fmt.Errorf("wellstore: load coordinates: %w", err)
	}
	defer rows.Close()

	byCounty := make(map[string][]wellPoint)
	for rows.Next() {
		var p wellPoint
		var county string
		if err := rows.Scan(&p.fileNo, &county, &p.lat, &p.lon); err != nil {
			return 0, fmt.Errorf("wellstore: scan coordinates: %w", err)
		}
		byCounty[county] = append(byCounty[county], p)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	fixed := 0
	for county, points := range byCounty {
		if len(points) < 3 {
			continue
		}

		lats := make([]float64, len(points))
		lons := make([]float64, len(points))
		for i, p := range points {
			lats[i] = p.lat
			lons[i] = p.lon
		}
		latMedian, latStd := median(lats), sampleStd(lats)
		lonMedian, lonStd := median(lons), sampleStd(lons)
		if latStd == 0 || lonStd == 0 {
			continue
		}

		for _, p := range points {
			latZ := math.Abs(p.lat-latMedian) / latStd
			lonZ := math.Abs(p.lon-lonMedian) / lonStd
			impossible := p.lat < minPlausibleLat || p.lat > maxPlausibleLat ||
				p.lon < minPlausibleLon || p.lon > maxPlausibleLon

			if latZ <= outlierZThreshold && lonZ <= outlierZThreshold && !impossible {
				continue
			}

			newLat := latMedian + jitter()
			newLon := lonMedian + jitter()
			if _, err := s.db.ExecContext(ctx, `
UPDATE well_info SET latitude = ?, longitude = ?, updated_at = datetime('now')
WHERE well_file_no = ?`, newLat, newLon, p.fileNo); err != nil {
				return fixed, fmt.Errorf("wellstore: fix outlier %s: %w", p.fileNo, err)
			}
			s.logger.Info("corrected spatial outlier",
				"well_file_no", p.fileNo,
				"county", county,
				"old_lat", p.lat, "old_lon", p.lon,
				"new_lat", newLat, "new_lon", newLon)
			fixed++
		}
	}
	return fixed, nil
}

func jitter() float64 {
	return rand.Float64()*2*outlierJitter - outlierJitter
}

func median(vals []float64) float64 {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// sampleStd is the n-1 denominator standard deviation.
func sampleStd(vals []float64) float64 {
	n := len(vals)
	if n < 2 {
		return 0
	}
	var mean float64
	for _, v := range vals {
		mean += v
	}
	mean /= float64(n)

	var sum float64
	for _, v := range vals {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(n-1))
}
