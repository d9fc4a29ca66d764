package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-07-01", want: New(2025, time.July, 1)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "garbage", wantErr: true},
		{in: "01-07-2025", wantErr: true}, // mirror format is not the standard format
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseMirror_RoundTrip(t *testing.T) {
	d := New(2025, time.January, 3)
	if got := d.Mirror(); got != "03-01-2025" {
		t.Fatalf("Mirror() = %q, want %q", got, "03-01-2025")
	}
	back, err := ParseMirror(d.Mirror())
	if err != nil {
		t.Fatalf("ParseMirror(%q) error: %v", d.Mirror(), err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestParseAny(t *testing.T) {
	want := New(2024, time.December, 31)
	for _, in := range []string{"2024-12-31", "31-12-2024"} {
		got, err := ParseAny(in)
		if err != nil {
			t.Fatalf("ParseAny(%q) error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseAny(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseAny("not a date"); err == nil {
		t.Error("ParseAny of garbage should fail")
	}
}

func TestMonthOf(t *testing.T) {
	a := MonthOf(New(2025, time.March, 1))
	b := MonthOf(New(2025, time.March, 31))
	if a != b {
		t.Errorf("days of the same month map to different keys: %v vs %v", a, b)
	}
	if got := a.String(); got != "2025-03" {
		t.Errorf("Month.String() = %q, want %q", got, "2025-03")
	}
	if !a.Before(MonthOf(New(2025, time.April, 1))) {
		t.Error("2025-03 should be before 2025-04")
	}
	if !a.Before(MonthOf(New(2026, time.January, 1))) {
		t.Error("2025-03 should be before 2026-01")
	}
}

func TestNew_Normalizes(t *testing.T) {
	// Overflowing day normalizes into the next month, like time.Date.
	got := New(2025, time.January, 32)
	want := New(2025, time.February, 1)
	if got != want {
		t.Errorf("New(2025, 1, 32) = %v, want %v", got, want)
	}
}
