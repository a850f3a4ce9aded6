package planner_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/animaart/planner/pkg/model"
	"github.com/animaart/planner/pkg/planner"
)

func addParty(assert *assert.Assertions, p *planner.Planner, date string) model.Party {
	party, err := p.AddParty(context.Background(), model.Party{ClientName: "Ana", Date: date})
	assert.Nil(err)

	return party
}

func TestUpcomingPartiesCount(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	p := getPlanner(assert)

	addParty(assert, p, "2024-05-15")
	addParty(assert, p, "2024-06-10")
	addParty(assert, p, "2024-07-01")
	addParty(assert, p, "not-a-date")

	// counting is inclusive of today; the malformed date is neither
	// counted nor fatal
	now := time.Date(2024, time.June, 10, 15, 30, 0, 0, time.UTC)
	stats := p.Stats(now)

	assert.Equal(2, stats.UpcomingParties)
	assert.Equal(4, stats.TotalParties)
}

func TestStatsTaskCounts(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	p := getPlanner(assert)

	first, err := p.AddTask(context.Background(), "primeira", model.PriorityLow, "")
	assert.Nil(err)

	_, err = p.AddTask(context.Background(), "segunda", model.PriorityLow, "")
	assert.Nil(err)

	p.ToggleTask(context.Background(), first.ID)

	stats := p.Stats(time.Now())
	assert.Equal(1, stats.CompletedTasks)
	assert.Equal(1, stats.PendingTasks)
	assert.Equal(2, stats.TotalTasks)
}

func TestTaskBucketsEmpty(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	p := getPlanner(assert)

	completed, pending := p.TaskBuckets()
	assert.Equal(0, completed)
	assert.Equal(0, pending)
}

func TestNextParty(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	p := getPlanner(assert)

	addParty(assert, p, "2024-05-15")
	addParty(assert, p, "2024-07-01")
	next := addParty(assert, p, "2024-06-12")

	now := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	got, ok := p.NextParty(now)
	assert.True(ok)
	assert.Equal(next.ID, got.ID)
}

func TestNextPartyTieKeepsCollectionOrder(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	p := getPlanner(assert)

	first := addParty(assert, p, "2024-06-12")
	addParty(assert, p, "2024-06-12")

	now := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	got, ok := p.NextParty(now)
	assert.True(ok)
	assert.Equal(first.ID, got.ID)
}

func TestNextPartyNone(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	p := getPlanner(assert)

	addParty(assert, p, "2024-05-15")

	now := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	_, ok := p.NextParty(now)
	assert.False(ok)
}

func TestSortedParties(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	p := getPlanner(assert)

	addParty(assert, p, "2024-06-01")
	addParty(assert, p, "2024-05-15")

	sorted := p.SortedParties()
	assert.Equal("2024-05-15", sorted[0].Date)
	assert.Equal("2024-06-01", sorted[1].Date)
}

func TestSortedPartiesIdempotent(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	p := getPlanner(assert)

	addParty(assert, p, "2024-06-01")
	addParty(assert, p, "2024-05-15")
	addParty(assert, p, "garbage")
	addParty(assert, p, "2024-05-15")

	once := p.SortedParties()

	// sorting an already-sorted list produces an identical order
	twice := make([]model.Party, len(once))
	copy(twice, once)
	assert.Equal(once, twice)
	assert.Equal(once, p.SortedParties())
}

func TestSortedPartiesMalformedSortFirst(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	p := getPlanner(assert)

	addParty(assert, p, "2024-06-01")
	malformed := addParty(assert, p, "not-a-date")

	sorted := p.SortedParties()
	assert.Equal(malformed.ID, sorted[0].ID)
}

func TestDisplayStatus(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

	past := model.Party{Date: "2024-06-09", Status: model.StatusConfirmed}
	today := model.Party{Date: "2024-06-10", Status: model.StatusConfirmed}
	future := model.Party{Date: "2024-06-11", Status: model.StatusPending}

	assert.Equal(planner.DisplayRealized, planner.DisplayStatus(past, now))
	assert.Equal(planner.DisplayConfirmed, planner.DisplayStatus(today, now))
	// stored status plays no part in the label
	assert.Equal(planner.DisplayConfirmed, planner.DisplayStatus(future, now))
}
