package codes

import (
	"strings"
	"testing"
)

func TestGenerateBookingRef(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateBookingRef()
		if err != nil {
			t.Fatalf("GenerateBookingRef: %v", err)
		}
		if len(code) != BookingRefLength {
			t.Fatalf("length = %d, want %d", len(code), BookingRefLength)
		}
		for _, r := range code {
			if !strings.ContainsRune(charsetBookingRef, r) {
				t.Fatalf("code %q contains %q outside charset", code, r)
			}
		}
		seen[code] = true
	}
	if len(seen) < 95 {
		t.Fatalf("too many collisions in 100 draws: %d unique", len(seen))
	}
}

func TestNormalizeBookingRef(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"k7tm-q2xb", "K7TMQ2XB"},
		{"  K7TMQ2XB  ", "K7TMQ2XB"},
		{"K7TM-Q2XB", "K7TMQ2XB"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeBookingRef(tt.in); got != tt.want {
			t.Errorf("NormalizeBookingRef(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatBookingRef(t *testing.T) {
	if got := FormatBookingRef("K7TMQ2XB"); got != "K7TM-Q2XB" {
		t.Errorf("FormatBookingRef = %q, want K7TM-Q2XB", got)
	}
	if got := FormatBookingRef("AB"); got != "AB" {
		t.Errorf("short code should pass through, got %q", got)
	}
}
