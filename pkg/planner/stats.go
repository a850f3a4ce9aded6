package planner

import (
	"sort"
	"time"

	"github.com/animaart/planner/pkg/model"
)

// Display statuses for the party list. These are derived from the
// booking date alone; the stored status field plays no part here.
const (
	DisplayRealized  = "Realizada"
	DisplayConfirmed = "Confirmada"
)

// Stats is the dashboard summary computed from the current collections
// and the current wall-clock date.
type Stats struct {
	TotalParties    int
	UpcomingParties int
	PendingTasks    int
	CompletedTasks  int
	TotalTasks      int
}

func startOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// parseDate reads a booking date in the canonical layout. The ok result
// is false for missing or malformed dates.
func parseDate(date string) (time.Time, bool) {
	parsed, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return time.Time{}, false
	}

	return parsed, true
}

// upcoming reports whether the party's date is on or after today. A
// party with a malformed date is never upcoming.
func upcoming(party model.Party, today time.Time) bool {
	date, ok := parseDate(party.Date)
	if !ok {
		return false
	}

	return !date.Before(today)
}

// Stats computes the dashboard aggregates.
func (p *Planner) Stats(now time.Time) Stats {
	today := startOfDay(now)

	stats := Stats{
		TotalParties: len(p.parties),
		TotalTasks:   len(p.tasks),
	}

	for _, party := range p.parties {
		if upcoming(party, today) {
			stats.UpcomingParties++
		}
	}

	for _, task := range p.tasks {
		if task.Completed {
			stats.CompletedTasks++
		} else {
			stats.PendingTasks++
		}
	}

	return stats
}

// TaskBuckets returns the two raw counts behind the productivity chart.
// An empty collection yields zero counts, never an error.
func (p *Planner) TaskBuckets() (completed, pending int) {
	for _, task := range p.tasks {
		if task.Completed {
			completed++
		} else {
			pending++
		}
	}

	return completed, pending
}

// NextParty returns the upcoming party with the earliest date. Ties on
// equal dates keep collection order. The second return value is false
// when no party is upcoming.
func (p *Planner) NextParty(now time.Time) (model.Party, bool) {
	today := startOfDay(now)

	var next model.Party

	var nextDate time.Time

	found := false

	for _, party := range p.parties {
		if !upcoming(party, today) {
			continue
		}

		date, _ := parseDate(party.Date)

		if !found || date.Before(nextDate) {
			next = party
			nextDate = date
			found = true
		}
	}

	return next, found
}

// sortKey orders the party list. Malformed or missing dates parse to
// the zero time, so they sort consistently ahead of every real date.
func sortKey(party model.Party) time.Time {
	date, ok := parseDate(party.Date)
	if !ok {
		return time.Time{}
	}

	return date
}

// SortedParties returns a copy of the party collection in ascending
// date order. The sort is stable, so equal dates keep collection order
// and sorting an already-sorted list changes nothing.
func (p *Planner) SortedParties() []model.Party {
	parties := make([]model.Party, len(p.parties))
	copy(parties, p.parties)

	sort.SliceStable(parties, func(i, j int) bool {
		return sortKey(parties[i]).Before(sortKey(parties[j]))
	})

	return parties
}

// DisplayStatus derives the list label for a party by comparing its
// date against the start of the current day. The stored status field is
// deliberately ignored and never rewritten when a date passes.
func DisplayStatus(party model.Party, now time.Time) string {
	if sortKey(party).Before(startOfDay(now)) {
		return DisplayRealized
	}

	return DisplayConfirmed
}
