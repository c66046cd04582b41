// Package interval implements the inclusive whole-day date range that
// photospan reconciles directory names against. An Interval can be parsed
// from the leading date pattern of a directory name, formatted back to the
// canonical compact form, and measured in whole days.
package interval

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Separator joins the two dates of a range in both parsed and formatted names.
const Separator = " - "

const dayLayout = "2006-01-02"

var (
	fullDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthDayRe = regexp.MustCompile(`^\d{2}-\d{2}$`)
	dayOnlyRe  = regexp.MustCompile(`^\d{2}$`)
)

// Interval is an inclusive date range. From and To carry full timestamps:
// an interval derived from file metadata keeps the exact creation times,
// while one built from calendar dates is pinned to 00:00:00 and 23:59:59.
// The zero value is not meaningful; use New or Between.
type Interval struct {
	From time.Time
	To   time.Time
}

// New builds an interval from two calendar dates, normalizing From to the
// first second of its day and To to the last. It fails when the start date
// is after the end date.
func New(from, to time.Time) (Interval, error) {
	fd := dayOf(from)
	td := dayOf(to)
	if fd.After(td) {
		return Interval{}, fmt.Errorf("from date %s is after to date %s", fd.Format(dayLayout), td.Format(dayLayout))
	}
	return Interval{
		From: fd,
		To:   td.Add(23*time.Hour + 59*time.Minute + 59*time.Second),
	}, nil
}

// Between builds an interval spanning two raw timestamps without day
// normalization. The caller is responsible for from <= to.
func Between(from, to time.Time) Interval {
	return Interval{From: from, To: to}
}

// ParseName scans name for a leading date pattern and returns the recognized
// interval together with the unconsumed remainder of the name. Recognized
// forms, most specific first:
//
//	"YYYY-MM-DD - YYYY-MM-DD rest"
//	"YYYY-MM-DD - MM-DD rest"      (year inferred from the first date)
//	"YYYY-MM-DD - DD rest"         (year and month inferred)
//	"YYYY-MM-DD rest"              (single day, from == to)
//
// A two-date pattern whose start is after its end is no match, not an error.
// A name without any recognizable leading date yields ok == false.
func ParseName(name string) (iv Interval, rest string, ok bool) {
	if from, to, tail, found := splitRange(name); found {
		parsed, err := New(from, to)
		if err != nil {
			// "2025-05-02 - 2025-05-01 ..." reads as a range but is not a
			// valid one; per the reconciliation rules it is treated as no
			// pattern at all rather than falling back to a single day.
			return Interval{}, "", false
		}
		return parsed, tail, true
	}

	// Single-date form: the date collapses to one calendar day.
	first, tail, found := strings.Cut(name, " ")
	if !found {
		return Interval{}, "", false
	}
	from, err := parseFullDate(first)
	if err != nil {
		return Interval{}, "", false
	}
	parsed, err := New(from, from)
	if err != nil {
		return Interval{}, "", false
	}
	return parsed, tail, true
}

// splitRange attempts the three two-date forms. It reports found only when
// both dates parse; validity of the range itself is left to the caller.
func splitRange(name string) (from, to time.Time, rest string, found bool) {
	fromStr, after, ok := strings.Cut(name, Separator)
	if !ok {
		return time.Time{}, time.Time{}, "", false
	}
	toStr, rest, ok := strings.Cut(after, " ")
	if !ok {
		return time.Time{}, time.Time{}, "", false
	}
	from, err := parseFullDate(fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, "", false
	}
	to, err = parseToDate(from, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, "", false
	}
	return from, to, rest, true
}

// parseToDate parses the second date of a range, eliding the year or the
// year and month from the first date when the text omits them.
func parseToDate(from time.Time, s string) (time.Time, error) {
	switch {
	case fullDateRe.MatchString(s):
		return parseFullDate(s)
	case monthDayRe.MatchString(s):
		return parseFullDate(fmt.Sprintf("%04d-%s", from.Year(), s))
	case dayOnlyRe.MatchString(s):
		return parseFullDate(fmt.Sprintf("%04d-%02d-%s", from.Year(), int(from.Month()), s))
	}
	return time.Time{}, fmt.Errorf("%q is not a date", s)
}

func parseFullDate(s string) (time.Time, error) {
	if !fullDateRe.MatchString(s) {
		return time.Time{}, fmt.Errorf("%q is not a date", s)
	}
	return time.Parse(dayLayout, s)
}

// String renders the canonical compact form: the second date omits the
// fields it shares with the first, and a same-day interval is a bare date.
// Formatting collapses to whole days, so String then ParseName reproduces
// the day-normalized interval.
func (iv Interval) String() string {
	var b strings.Builder
	b.WriteString(iv.From.Format(dayLayout))
	if sameDay(iv.From, iv.To) {
		return b.String()
	}
	b.WriteString(Separator)
	switch {
	case iv.From.Year() != iv.To.Year():
		b.WriteString(iv.To.Format(dayLayout))
	case iv.From.Month() != iv.To.Month():
		b.WriteString(iv.To.Format("01-02"))
	default:
		b.WriteString(iv.To.Format("02"))
	}
	return b.String()
}

// Delta is the signed span between the bounds. For a day-normalized
// same-day interval this is 23h59m59s, since To sits on the last second
// of its date.
func (iv Interval) Delta() time.Duration {
	return iv.To.Sub(iv.From)
}

// Days is Delta truncated to whole days.
func (iv Interval) Days() int {
	return int(iv.Delta() / (24 * time.Hour))
}

// SameDays reports whether both intervals cover exactly the same calendar
// days, ignoring sub-day precision.
func (iv Interval) SameDays(other Interval) bool {
	return sameDay(iv.From, other.From) && sameDay(iv.To, other.To)
}

// Contains reports whether other lies fully within iv, compared on full
// timestamps.
func (iv Interval) Contains(other Interval) bool {
	return !iv.From.After(other.From) && !iv.To.Before(other.To)
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
