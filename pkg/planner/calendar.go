package planner

import (
	"fmt"
	"time"

	"github.com/animaart/planner/pkg/model"
)

// Month identifies the calendar month being viewed.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing the given instant.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Prev moves back one calendar month, rolling over year boundaries.
func (m Month) Prev() Month {
	t := time.Date(m.Year, m.Month-1, 1, 0, 0, 0, 0, time.UTC)

	return Month{Year: t.Year(), Month: t.Month()}
}

// Next moves forward one calendar month, rolling over year boundaries.
func (m Month) Next() Month {
	t := time.Date(m.Year, m.Month+1, 1, 0, 0, 0, 0, time.UTC)

	return Month{Year: t.Year(), Month: t.Month()}
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	// day zero of the next month is the last day of this one
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the first of the month; the
// calendar grid starts its weeks on Sunday.
func (m Month) FirstWeekday() time.Weekday {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// DayKey returns the canonical YYYY-MM-DD key for a day of the month.
func (m Month) DayKey(day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", m.Year, int(m.Month), day)
}

// DayIndex answers which days have at least one party and which parties
// fall on a specific day. Matching is by exact string equality against
// the canonical day key, so a party stored with a malformed date never
// matches any day.
type DayIndex struct {
	byDay map[string][]model.Party
}

// NewDayIndex buckets the given parties by their raw date strings.
func NewDayIndex(parties []model.Party) *DayIndex {
	byDay := make(map[string][]model.Party, len(parties))

	for _, party := range parties {
		byDay[party.Date] = append(byDay[party.Date], party)
	}

	return &DayIndex{byDay: byDay}
}

// HasParty reports whether at least one party falls on the given day.
func (x *DayIndex) HasParty(key string) bool {
	return len(x.byDay[key]) > 0
}

// PartiesOn returns the parties on the given day in collection order.
func (x *DayIndex) PartiesOn(key string) []model.Party {
	return x.byDay[key]
}

// CellClass is the single style applied to a calendar day cell.
type CellClass int

// Cell classes in ascending priority. When several apply, the highest
// wins: selected beats has-party beats today.
const (
	CellPlain CellClass = iota
	CellToday
	CellHasParty
	CellSelected
)

// ClassifyDay picks the one class for a day cell. The selected key is
// empty when no day is selected.
func ClassifyDay(key, selected string, idx *DayIndex, now time.Time) CellClass {
	switch {
	case selected != "" && key == selected:
		return CellSelected
	case idx.HasParty(key):
		return CellHasParty
	case key == now.Format(model.DateLayout):
		return CellToday
	default:
		return CellPlain
	}
}
