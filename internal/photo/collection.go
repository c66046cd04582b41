// Package photo holds the in-memory model of a scanned photo directory:
// dated file records, the collection spanning them, and the rename/move
// plans derived from it. Plans are pure computations; nothing in this
// package touches the filesystem.
package photo

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/jvalecka/photospan/internal/interval"
)

// File is a single photo: its path and the creation timestamp recovered
// from metadata. Records are never mutated after the scan.
type File struct {
	Path    string
	Created time.Time
}

// Collection is the set of dated files found under one directory. Insertion
// order carries no meaning; all orderings are computed on demand.
type Collection []File

// SortKey selects the ordering used for listing, grouping, and sequential
// renaming.
type SortKey int

const (
	// ByPath orders lexicographically by path.
	ByPath SortKey = iota
	// ByCreated orders chronologically by creation time, stable on ties.
	ByCreated
)

// Move is one step of a rename or relocation plan.
type Move struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// DayGroup is a maximal run of files sharing one calendar date.
type DayGroup struct {
	Day   time.Time
	Files []File
}

// Interval returns the range spanned by the collection's creation
// timestamps. The second return is false for an empty collection.
func (c Collection) Interval() (interval.Interval, bool) {
	if len(c) == 0 {
		return interval.Interval{}, false
	}
	min, max := c[0].Created, c[0].Created
	for _, f := range c[1:] {
		if f.Created.Before(min) {
			min = f.Created
		}
		if f.Created.After(max) {
			max = f.Created
		}
	}
	return interval.Between(min, max), true
}

// Sorted returns a copy of the collection ordered by the given key.
func (c Collection) Sorted(key SortKey) Collection {
	out := make(Collection, len(c))
	copy(out, c)
	switch key {
	case ByCreated:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Created.Before(out[j].Created) })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	}
	return out
}

// GroupByDays sorts the collection chronologically and partitions it into
// consecutive runs sharing a calendar date. Groups come out in chronological
// order and are never empty; an empty collection yields no groups.
func (c Collection) GroupByDays() []DayGroup {
	if len(c) == 0 {
		return nil
	}
	sorted := c.Sorted(ByCreated)

	var groups []DayGroup
	current := DayGroup{Day: dayOf(sorted[0].Created)}
	for _, f := range sorted {
		day := dayOf(f.Created)
		if !day.Equal(current.Day) {
			groups = append(groups, current)
			current = DayGroup{Day: day}
		}
		current.Files = append(current.Files, f)
	}
	return append(groups, current)
}

// MoveByDays plans the relocation of every file into a sibling subdirectory
// named after its creation date: parent/YYYY-MM-DD/basename. Files whose
// path yields no usable base name are silently dropped; they cannot be
// relocated.
func (c Collection) MoveByDays() []Move {
	var moves []Move
	for _, group := range c.GroupByDays() {
		day := group.Day.Format("2006-01-02")
		for _, f := range group.Files {
			base := filepath.Base(f.Path)
			if base == "." || base == string(filepath.Separator) {
				continue
			}
			moves = append(moves, Move{
				From: f.Path,
				To:   filepath.Join(filepath.Dir(f.Path), day, base),
			})
		}
	}
	return moves
}

// RenameSequence plans renaming every file to "<base> <number>.<ext>",
// numbering from 1 in the order selected by key. The number is zero-padded
// to digits; when digits is zero the minimum width that fits the count is
// used. The original extension is kept, or omitted when the file has none.
// A path whose components are not valid UTF-8 is a hard error rather than a
// silent skip.
func (c Collection) RenameSequence(base string, key SortKey, digits int) ([]Move, error) {
	width := digits
	if width <= 0 {
		width = len(strconv.Itoa(len(c)))
	}

	sorted := c.Sorted(key)
	moves := make([]Move, 0, len(sorted))
	for i, f := range sorted {
		ext := filepath.Ext(f.Path)
		if !utf8.ValidString(ext) {
			return nil, fmt.Errorf("file %q: extension is not valid UTF-8", f.Path)
		}
		name := fmt.Sprintf("%s %0*d%s", base, width, i+1, ext)
		moves = append(moves, Move{
			From: f.Path,
			To:   filepath.Join(filepath.Dir(f.Path), name),
		})
	}
	return moves, nil
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
