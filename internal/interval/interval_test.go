package interval

import (
	"testing"
	"time"
)

// days builds a day-normalized interval; to == (0,0,0) means a single day.
func days(t *testing.T, fy int, fm time.Month, fd int, ty int, tm time.Month, td int) Interval {
	t.Helper()
	from := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	to := from
	if ty != 0 {
		to = time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	}
	iv, err := New(from, to)
	if err != nil {
		t.Fatalf("New(%v, %v): %v", from, to, err)
	}
	return iv
}

func TestParseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		want     Interval
		wantRest string
		wantOK   bool
	}{
		{
			name:   "no date at all",
			input:  "Some name without any date",
			wantOK: false,
		},
		{
			name:     "single date",
			input:    "2025-05-01 Some name",
			want:     days(t, 2025, 5, 1, 0, 0, 0),
			wantRest: "Some name",
			wantOK:   true,
		},
		{
			name:     "two full dates",
			input:    "2025-05-01 - 2026-06-01 Some name",
			want:     days(t, 2025, 5, 1, 2026, 6, 1),
			wantRest: "Some name",
			wantOK:   true,
		},
		{
			name:     "second date elides year",
			input:    "2025-05-01 - 06-01 Some name",
			want:     days(t, 2025, 5, 1, 2025, 6, 1),
			wantRest: "Some name",
			wantOK:   true,
		},
		{
			name:     "second date elides year and month",
			input:    "2025-05-01 - 04 Some name",
			want:     days(t, 2025, 5, 1, 2025, 5, 4),
			wantRest: "Some name",
			wantOK:   true,
		},
		{
			name:   "bare month-day is not a date prefix",
			input:  "06-01 Name start with number",
			wantOK: false,
		},
		{
			name:     "separator with no second date collapses to single day",
			input:    "2025-05-01 - Name start with separator",
			want:     days(t, 2025, 5, 1, 0, 0, 0),
			wantRest: "- Name start with separator",
			wantOK:   true,
		},
		{
			name:   "reversed range is no match",
			input:  "2025-05-02 - 2025-05-01 - Interval is not possible",
			wantOK: false,
		},
		{
			name:   "date without trailing name",
			input:  "2025-05-01",
			wantOK: false,
		},
		{
			name:   "calendar-invalid date",
			input:  "2025-13-40 Some name",
			wantOK: false,
		},
		{
			name:     "range without trailing name falls back to single day",
			input:    "2025-05-01 - 06-02",
			want:     days(t, 2025, 5, 1, 0, 0, 0),
			wantRest: "- 06-02",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, rest, ok := ParseName(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseName(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !got.From.Equal(tt.want.From) || !got.To.Equal(tt.want.To) {
				t.Errorf("ParseName(%q) = %v..%v, want %v..%v", tt.input, got.From, got.To, tt.want.From, tt.want.To)
			}
			if rest != tt.wantRest {
				t.Errorf("ParseName(%q) rest = %q, want %q", tt.input, rest, tt.wantRest)
			}
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		iv   Interval
		want string
	}{
		{days(t, 2025, 5, 1, 0, 0, 0), "2025-05-01"},
		{days(t, 2025, 5, 1, 2026, 6, 2), "2025-05-01 - 2026-06-02"},
		{days(t, 2025, 5, 1, 2025, 6, 2), "2025-05-01 - 06-02"},
		{days(t, 2025, 5, 1, 2025, 5, 2), "2025-05-01 - 02"},
		{days(t, 2025, 5, 1, 2025, 6, 1), "2025-05-01 - 06-01"},
		{days(t, 2025, 5, 1, 2026, 5, 1), "2025-05-01 - 2026-05-01"},
	}

	for _, tt := range tests {
		if got := tt.iv.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// Formatting then reparsing must reproduce the same day-normalized interval
// for any valid date pair.
func TestStringParseRoundTrip(t *testing.T) {
	t.Parallel()

	pairs := []Interval{
		days(t, 2025, 5, 1, 0, 0, 0),
		days(t, 2025, 5, 1, 2025, 5, 2),
		days(t, 2025, 5, 1, 2025, 5, 31),
		days(t, 2025, 5, 1, 2025, 12, 31),
		days(t, 2025, 1, 1, 2026, 1, 1),
		days(t, 2024, 2, 29, 2024, 3, 1),
		days(t, 1999, 12, 31, 2000, 1, 1),
	}

	for _, iv := range pairs {
		name := iv.String() + " trailing name"
		got, rest, ok := ParseName(name)
		if !ok {
			t.Errorf("ParseName(%q) found no pattern", name)
			continue
		}
		if !got.From.Equal(iv.From) || !got.To.Equal(iv.To) {
			t.Errorf("round trip of %q = %v..%v, want %v..%v", name, got.From, got.To, iv.From, iv.To)
		}
		if rest != "trailing name" {
			t.Errorf("round trip of %q rest = %q", name, rest)
		}
	}
}

func TestNewRejectsReversedDates(t *testing.T) {
	t.Parallel()

	from := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	if _, err := New(from, to); err == nil {
		t.Fatal("New with from after to should fail")
	}
}

func TestDelta(t *testing.T) {
	t.Parallel()

	oneDay := 23*time.Hour + 59*time.Minute + 59*time.Second

	if got := days(t, 2025, 5, 1, 0, 0, 0).Delta(); got != oneDay {
		t.Errorf("same-day Delta() = %v, want %v", got, oneDay)
	}
	if got := days(t, 2025, 5, 1, 2025, 5, 5).Delta(); got != oneDay+4*24*time.Hour {
		t.Errorf("five-day Delta() = %v", got)
	}
	if got := days(t, 2025, 5, 1, 0, 0, 0).Days(); got != 0 {
		t.Errorf("same-day Days() = %d, want 0", got)
	}
	if got := days(t, 2025, 5, 1, 2025, 5, 3).Days(); got != 2 {
		t.Errorf("three-day Days() = %d, want 2", got)
	}
}

func TestContainsAndSameDays(t *testing.T) {
	t.Parallel()

	inner := days(t, 2025, 5, 1, 2025, 5, 3)
	wider := days(t, 2025, 4, 30, 2025, 5, 4)

	if !wider.Contains(inner) {
		t.Error("wider should contain inner")
	}
	if inner.Contains(wider) {
		t.Error("inner should not contain wider")
	}
	if !inner.Contains(inner) {
		t.Error("an interval contains itself")
	}
	if !inner.SameDays(inner) {
		t.Error("an interval covers its own days")
	}
	if inner.SameDays(wider) {
		t.Error("distinct ranges must not compare as same days")
	}
}
