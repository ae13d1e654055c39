package timezone

import (
	"testing"
	"time"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty falls back to UTC", raw: "", want: "UTC"},
		{name: "whitespace falls back to UTC", raw: "   ", want: "UTC"},
		{name: "unknown zone falls back to UTC", raw: "Not/AZone", want: "UTC"},
		{name: "Local is not an IANA zone", raw: "Local", want: "UTC"},
		{name: "Asia/Jakarta is kept", raw: "Asia/Jakarta", want: "Asia/Jakarta"},
		{name: "surrounding spaces are trimmed", raw: " Europe/Berlin ", want: "Europe/Berlin"},
		{name: "UTC is kept", raw: "UTC", want: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.raw); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestLocation_JakartaOffset(t *testing.T) {
	loc := Location("Asia/Jakarta")

	_, offset := time.Date(2025, 1, 6, 9, 0, 0, 0, loc).Zone()
	if offset != 7*60*60 {
		t.Errorf("offset = %d, want %d", offset, 7*60*60)
	}
}

func TestIsValid(t *testing.T) {
	if IsValid("") {
		t.Error("IsValid(\"\") = true, want false")
	}
	if IsValid("Not/AZone") {
		t.Error("IsValid(\"Not/AZone\") = true, want false")
	}
	if !IsValid("America/New_York") {
		t.Error("IsValid(\"America/New_York\") = false, want true")
	}
}
