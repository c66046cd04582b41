// Package album reconciles a photo directory's name with the date range its
// files actually span. It classifies how accurate the embedded date prefix
// is and proposes a corrected name; performing the rename is left to the
// caller.
package album

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jvalecka/photospan/internal/interval"
	"github.com/jvalecka/photospan/internal/photo"
)

// ErrNoInterval is returned when a directory holds no dated files, so there
// is nothing to reconcile its name against.
var ErrNoInterval = errors.New("no dated files to derive an interval from")

// Status classifies how a directory name's embedded date range relates to
// the actual range of its files.
type Status int

const (
	// StatusValid means the name encodes exactly the days the files span.
	StatusValid Status = iota
	// StatusInvalid means the name encodes a range that neither equals nor
	// contains the actual one.
	StatusInvalid
	// StatusSuperSet means the name encodes a strictly broader range that
	// fully contains the actual one.
	StatusSuperSet
	// StatusNone means the name encodes no recognizable date range.
	StatusNone
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	case StatusSuperSet:
		return "superset"
	case StatusNone:
		return "none"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Album is one photo directory: its path and the dated files found under it.
type Album struct {
	Path  string
	Files photo.Collection
}

// Name is the directory's base name, the part a date prefix is read from.
func (a *Album) Name() string {
	return filepath.Base(a.Path)
}

// Interval is the range spanned by the album's files, absent when the album
// holds no dated files.
func (a *Album) Interval() (interval.Interval, bool) {
	return a.Files.Interval()
}

// NameStatus classifies the album's name against its content interval.
// An album without dated files yields ErrNoInterval.
func (a *Album) NameStatus() (Status, error) {
	actual, ok := a.Interval()
	if !ok {
		return StatusNone, ErrNoInterval
	}
	return statusOf(actual, a.Name()), nil
}

// statusOf applies the classification rule in order: exact calendar-day
// match wins before the containment check, so StatusSuperSet is reserved
// for strictly broader ranges.
func statusOf(actual interval.Interval, name string) Status {
	parsed, _, ok := interval.ParseName(name)
	switch {
	case !ok:
		return StatusNone
	case parsed.SameDays(actual):
		return StatusValid
	case parsed.Contains(actual):
		return StatusSuperSet
	default:
		return StatusInvalid
	}
}

// ProposeRename classifies the album's name and computes the path it should
// have. A content interval wider than maxDays whole days is a hard error:
// such an album likely mixes in stray files and must not be renamed
// automatically. For StatusValid and StatusSuperSet the path is returned
// unchanged; otherwise the canonical interval text is prepended to the
// existing name, so a stale prefix stays visible instead of being destroyed.
func (a *Album) ProposeRename(maxDays int) (Status, string, error) {
	actual, ok := a.Interval()
	if !ok {
		return StatusNone, "", ErrNoInterval
	}
	if days := actual.Days(); days > maxDays {
		return StatusNone, "", fmt.Errorf(
			"interval from %s to %s is too large (%d days, limit %d)",
			actual.From.Format("2006-01-02 15:04:05"),
			actual.To.Format("2006-01-02 15:04:05"),
			days, maxDays,
		)
	}

	status := statusOf(actual, a.Name())
	switch status {
	case StatusValid, StatusSuperSet:
		return status, a.Path, nil
	default:
		proposed := filepath.Join(filepath.Dir(a.Path), fmt.Sprintf("%s %s", actual, a.Name()))
		return status, proposed, nil
	}
}
