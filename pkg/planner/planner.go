package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/animaart/planner/pkg/model"
	"github.com/animaart/planner/pkg/store"
)

// ErrValidation marks a mutation rejected because a required field was
// missing. Callers can test for it with errors.Is.
var ErrValidation = errors.New("validation failed")

// Planner owns the two in-memory collections and mirrors every mutation
// to the store. Collections are replaced wholesale, never mutated in
// place, so a snapshot handed to a view stays intact across mutations.
type Planner struct {
	store   *store.Store
	tasks   []model.Task
	parties []model.Party
}

// NewPlanner loads both collections from the store. A key with no prior
// value, or with a value that doesn't deserialize, falls back to the
// seed data; either way the loaded state is written back so the store
// reflects what's in memory from the start.
func NewPlanner(ctx context.Context, st *store.Store) (*Planner, error) {
	p := Planner{store: st}

	p.tasks = loadCollection(ctx, st, store.TasksKey, seedTasks())
	p.parties = loadCollection(ctx, st, store.PartiesKey, seedParties())

	p.saveTasks(ctx)
	p.saveParties(ctx)

	return &p, nil
}

func loadCollection[T any](ctx context.Context, st *store.Store, key string, seed []T) []T {
	raw, ok, err := st.Load(ctx, key)
	if err != nil {
		log.Warn().Err(err).Msgf("error loading %s; starting from seed data", key)

		return seed
	}

	if !ok {
		return seed
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn().Err(err).Msgf("unreadable value under %s; starting from seed data", key)

		return seed
	}

	return items
}

// Tasks returns the current task collection snapshot.
func (p *Planner) Tasks() []model.Task {
	return p.tasks
}

// Parties returns the current party collection snapshot.
func (p *Planner) Parties() []model.Party {
	return p.parties
}

// A failed save is not fatal: the in-memory collection stays the source
// of truth for the running session.
func (p *Planner) saveTasks(ctx context.Context) {
	raw, err := json.Marshal(p.tasks)
	if err != nil {
		log.Warn().Err(err).Msg("error serializing tasks")

		return
	}

	if err := p.store.Save(ctx, store.TasksKey, raw); err != nil {
		log.Warn().Err(err).Msg("error persisting tasks")
	}
}

func (p *Planner) saveParties(ctx context.Context) {
	raw, err := json.Marshal(p.parties)
	if err != nil {
		log.Warn().Err(err).Msg("error serializing parties")

		return
	}

	if err := p.store.Save(ctx, store.PartiesKey, raw); err != nil {
		log.Warn().Err(err).Msg("error persisting parties")
	}
}

func (p *Planner) setTasks(ctx context.Context, tasks []model.Task) {
	p.tasks = tasks
	p.saveTasks(ctx)
}

func (p *Planner) setParties(ctx context.Context, parties []model.Party) {
	p.parties = parties
	p.saveParties(ctx)
}

// AddTask appends a new task to the collection. The title must be
// non-empty after trimming; the due date defaults to now when empty.
func (p *Planner) AddTask(ctx context.Context, title, priority, dueDate string) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, fmt.Errorf("%w: task title is required", ErrValidation)
	}

	if dueDate == "" {
		dueDate = time.Now().Format(time.RFC3339)
	}

	task := model.Task{
		ID:       uuid.NewString(),
		Title:    title,
		Priority: priority,
		DueDate:  dueDate,
	}

	tasks := make([]model.Task, 0, len(p.tasks)+1)
	tasks = append(tasks, p.tasks...)
	tasks = append(tasks, task)

	p.setTasks(ctx, tasks)

	return task, nil
}

// ToggleTask flips the completed flag of the task with the given id.
// Every other field and every other task is carried over unchanged.
func (p *Planner) ToggleTask(ctx context.Context, id string) {
	tasks := make([]model.Task, len(p.tasks))

	for i, task := range p.tasks {
		if task.ID == id {
			task.Completed = !task.Completed
		}

		tasks[i] = task
	}

	p.setTasks(ctx, tasks)
}

// UpdateTask replaces the whole record matching task.ID. The same title
// requirement as AddTask applies.
func (p *Planner) UpdateTask(ctx context.Context, task model.Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return fmt.Errorf("%w: task title is required", ErrValidation)
	}

	tasks := make([]model.Task, len(p.tasks))

	for i, prior := range p.tasks {
		if prior.ID == task.ID {
			prior = task
		}

		tasks[i] = prior
	}

	p.setTasks(ctx, tasks)

	return nil
}

// DeleteTask removes the task with the given id. Nothing happens until
// the caller has confirmed the deletion; once confirmed, the removal is
// irreversible.
func (p *Planner) DeleteTask(ctx context.Context, id string, confirmed bool) {
	if !confirmed {
		return
	}

	tasks := make([]model.Task, 0, len(p.tasks))

	for _, task := range p.tasks {
		if task.ID != id {
			tasks = append(tasks, task)
		}
	}

	p.setTasks(ctx, tasks)
}

func validateParty(party model.Party) error {
	if strings.TrimSpace(party.ClientName) == "" {
		return fmt.Errorf("%w: party client name is required", ErrValidation)
	}

	if strings.TrimSpace(party.Date) == "" {
		return fmt.Errorf("%w: party date is required", ErrValidation)
	}

	return nil
}

// Party ids are the creation time in milliseconds, nudged forward on
// the rare collision so that ids stay unique within the collection.
func newPartyID(parties []model.Party) string {
	ms := time.Now().UnixMilli()

	for {
		id := strconv.FormatInt(ms, 10)

		taken := false

		for _, party := range parties {
			if party.ID == id {
				taken = true

				break
			}
		}

		if !taken {
			return id
		}

		ms++
	}
}

// AddParty appends a new booking. Client name and date are required. A
// saved booking is always confirmed, whatever status the form carried.
func (p *Planner) AddParty(ctx context.Context, party model.Party) (model.Party, error) {
	if err := validateParty(party); err != nil {
		return model.Party{}, err
	}

	party.ID = newPartyID(p.parties)
	party.Status = model.StatusConfirmed

	parties := make([]model.Party, 0, len(p.parties)+1)
	parties = append(parties, p.parties...)
	parties = append(parties, party)

	p.setParties(ctx, parties)

	return party, nil
}

// UpdateParty replaces the whole record matching party.ID. The edit
// form carries every field prefilled from the prior record, so a full
// replace preserves anything the user didn't touch. The same required
// fields as AddParty apply; a reject is reported, never swallowed.
func (p *Planner) UpdateParty(ctx context.Context, party model.Party) error {
	if err := validateParty(party); err != nil {
		return err
	}

	parties := make([]model.Party, len(p.parties))

	for i, prior := range p.parties {
		if prior.ID == party.ID {
			prior = party
		}

		parties[i] = prior
	}

	p.setParties(ctx, parties)

	return nil
}
