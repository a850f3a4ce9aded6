package planner_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/animaart/planner/pkg/model"
	"github.com/animaart/planner/pkg/planner"
)

func TestMonthNavigationRollsOverYears(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	jan := planner.Month{Year: 2024, Month: time.January}

	dec := jan.Prev()
	assert.Equal(2023, dec.Year)
	assert.Equal(time.December, dec.Month)

	assert.Equal(jan, dec.Next())
}

func TestMonthDays(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	assert.Equal(29, planner.Month{Year: 2024, Month: time.February}.Days())
	assert.Equal(28, planner.Month{Year: 2023, Month: time.February}.Days())
	assert.Equal(31, planner.Month{Year: 2024, Month: time.July}.Days())
}

func TestMonthDayKey(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	m := planner.Month{Year: 2024, Month: time.June}
	assert.Equal("2024-06-01", m.DayKey(1))
	assert.Equal("2024-06-15", m.DayKey(15))
}

func TestDayIndexExactStringMatch(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	parties := []model.Party{
		{ID: "1", Date: "2024-06-01"},
		{ID: "2", Date: "2024-06-01"},
		{ID: "3", Date: "2024-06-02"},
		// never matches any canonical day key
		{ID: "4", Date: "junho 1, 2024"},
	}

	idx := planner.NewDayIndex(parties)

	assert.True(idx.HasParty("2024-06-01"))
	assert.Equal(2, len(idx.PartiesOn("2024-06-01")))
	assert.Equal("1", idx.PartiesOn("2024-06-01")[0].ID)

	assert.True(idx.HasParty("2024-06-02"))
	assert.False(idx.HasParty("2024-06-03"))

	m := planner.Month{Year: 2024, Month: time.June}
	for day := 1; day <= m.Days(); day++ {
		for _, party := range idx.PartiesOn(m.DayKey(day)) {
			assert.NotEqual("4", party.ID)
		}
	}
}

func TestClassifyDayPriority(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)
	idx := planner.NewDayIndex([]model.Party{{Date: "2024-06-10"}, {Date: "2024-06-15"}})

	// selected wins over has-party and today
	assert.Equal(planner.CellSelected, planner.ClassifyDay("2024-06-10", "2024-06-10", idx, now))
	// has-party wins over today
	assert.Equal(planner.CellHasParty, planner.ClassifyDay("2024-06-10", "2024-06-15", idx, now))
	assert.Equal(planner.CellHasParty, planner.ClassifyDay("2024-06-15", "", idx, now))

	quiet := planner.NewDayIndex(nil)
	assert.Equal(planner.CellToday, planner.ClassifyDay("2024-06-10", "", quiet, now))
	assert.Equal(planner.CellPlain, planner.ClassifyDay("2024-06-11", "", quiet, now))
}

func TestSelectedEmptyDayIsDistinctState(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	idx := planner.NewDayIndex([]model.Party{{Date: "2024-06-15"}})

	// a selected day with no parties yields an empty, non-nil query
	// result the views can render as an explicit empty state
	assert.False(idx.HasParty("2024-06-03"))
	assert.Equal(0, len(idx.PartiesOn("2024-06-03")))
}
