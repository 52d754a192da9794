package wellparse

import (
	"math"
	"testing"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"  hello   world  ", "hello world"},
		{"a\tb\nc", "a b c"},
		{"\n\n\n", ""},
	}
	for _, tt := range tests {
		if got := cleanText(tt.in); got != tt.want {
			t.Errorf("cleanText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDMSToDecimal(t *testing.T) {
	v, ok := dmsToDecimal("48", "4", "58.501", "N")
	if !ok {
		t.Fatal("expected ok")
	}
	if math.Abs(v-48.083) > 0.001 {
		t.Errorf("got %v, want ~48.083", v)
	}

	v, ok = dmsToDecimal("102", "30", "0", "W")
	if !ok {
		t.Fatal("expected ok")
	}
	if v >= 0 {
		t.Errorf("west longitude must be negative, got %v", v)
	}
	if math.Abs(v+102.5) > 1e-9 {
		t.Errorf("got %v, want -102.5", v)
	}
}

func TestDMSToDecimalMalformed(t *testing.T) {
	// Malformed fragments are a missing value, never an error.
	for _, tt := range [][4]string{
		{"", "4", "58", "N"},
		{"48", "x", "58", "N"},
		{"48", "4", "", "N"},
		{"forty", "eight", "zero", "N"},
	} {
		if _, ok := dmsToDecimal(tt[0], tt[1], tt[2], tt[3]); ok {
			t.Errorf("dmsToDecimal(%q, %q, %q, %q): expected not ok", tt[0], tt[1], tt[2], tt[3])
		}
	}
}

func TestIsSentinel(t *testing.T) {
	for _, s := range []string{"N/A", "n/a", " NA ", "None", "unknown"} {
		if !isSentinel(s) {
			t.Errorf("isSentinel(%q) = false, want true", s)
		}
	}
	if isSentinel("Bakken") {
		t.Error("isSentinel(Bakken) = true")
	}
}
