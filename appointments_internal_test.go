package saludya

import (
	"testing"

	"github.com/jonatanlavado-utec/saludya-client/internal/types"
)

func TestCombineSlot(t *testing.T) {
	got := combineSlot(types.TimeSlot{Date: "2026-09-10", Time: "10:30"})
	if got != "2026-09-10T10:30:00Z" {
		t.Fatalf("unexpected timestamp %q", got)
	}
}

func TestSplitAppointmentDate(t *testing.T) {
	cases := []struct {
		name      string
		date      string
		timeField string
		wantDate  string
		wantTime  string
	}{
		{"rfc3339", "2026-09-10T10:30:00Z", "", "2026-09-10", "10:30"},
		{"rfc3339 with offset", "2026-09-10T10:30:00+00:00", "", "2026-09-10", "10:30"},
		{"explicit time wins", "2026-09-10T10:30:00Z", "09:00", "2026-09-10", "09:00"},
		{"bare timestamp fallback", "2026-09-10T10:30", "", "2026-09-10", "10:30"},
		{"date only", "2026-09-10", "", "2026-09-10", ""},
		{"date only with time field", "2026-09-10", "11:00", "2026-09-10", "11:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			date, tm := splitAppointmentDate(tc.date, tc.timeField)
			if date != tc.wantDate || tm != tc.wantTime {
				t.Fatalf("got (%q, %q), want (%q, %q)", date, tm, tc.wantDate, tc.wantTime)
			}
		})
	}
}

func TestNormalizeCardNumber(t *testing.T) {
	cases := map[string]string{
		"4111 1111 1111 1111": "4111111111111111",
		"4111-1111-1111-1111": "4111111111111111",
		"4111 1111-1111 1111": "4111111111111111",
		"4111111111111111":    "4111111111111111",
	}
	for in, want := range cases {
		if got := normalizeCardNumber(in); got != want {
			t.Errorf("%q: got %q, want %q", in, got, want)
		}
	}
}
