package wellparse

import (
	"math"
	"testing"
)

func TestExtractCoordinatesDMS(t *testing.T) {
	text := "Latitude: 48° 4' 58.501\" N\nLongitude: 102° 30' 0\" W\n"
	lat, lon := extractCoordinates(text)
	if lat == nil || lon == nil {
		t.Fatalf("lat=%v lon=%v, want both set", lat, lon)
	}
	if math.Abs(*lat-48.083) > 0.001 {
		t.Errorf("lat = %v, want ~48.083", *lat)
	}
	if math.Abs(*lon+102.5) > 1e-9 {
		t.Errorf("lon = %v, want -102.5", *lon)
	}
}

func TestExtractCoordinatesDecimal(t *testing.T) {
	text := "Latitude: 47.123456\nLongitude: 102.520000 W\n"
	lat, lon := extractCoordinates(text)
	if lat == nil || *lat != 47.123456 {
		t.Errorf("lat = %v, want 47.123456", lat)
	}
	// A West marker forces the sign even when the digits carry none.
	if lon == nil || *lon != -102.52 {
		t.Errorf("lon = %v, want -102.52", lon)
	}
}

func TestExtractCoordinatesCalibrationExcluded(t *testing.T) {
	text := "ORIGINAL Latitude: 48.999999\n" +
		"(reference values recorded before the survey was re-run by the operator)\n" +
		"Latitude: 47.123456\n" +
		"Longitude: 102.520000 W\n"
	lat, _ := extractCoordinates(text)
	if lat == nil {
		t.Fatal("lat = nil, want 47.123456")
	}
	if *lat != 47.123456 {
		t.Errorf("lat = %v, want 47.123456 (calibration value must be skipped)", *lat)
	}
}

func TestExtractCoordinatesShortFractionRejected(t *testing.T) {
	// Fewer than four fractional digits means a page coordinate or table
	// artifact, not a surveyed position.
	lat, lon := extractCoordinates("Latitude: 48.08\nLongitude: 102.52\n")
	if lat != nil || lon != nil {
		t.Errorf("lat=%v lon=%v, want both nil", lat, lon)
	}
}

func TestExtractCoordinatesSurveyBlock(t *testing.T) {
	text := "Site Position\nLatitude: 48 12' 30\" N\nLongitude: 103 30' 0\" W\n"
	lat, lon := extractCoordinates(text)
	if lat == nil || math.Abs(*lat-48.208333) > 1e-6 {
		t.Errorf("lat = %v, want 48.208333", lat)
	}
	if lon == nil || math.Abs(*lon+103.5) > 1e-9 {
		t.Errorf("lon = %v, want -103.5", lon)
	}
}

func TestExtractCoordinatesNone(t *testing.T) {
	lat, lon := extractCoordinates("no coordinates in this document")
	if lat != nil || lon != nil {
		t.Errorf("lat=%v lon=%v, want both nil", lat, lon)
	}
}
