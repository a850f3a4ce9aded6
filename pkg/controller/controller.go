package controller

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/animaart/planner/pkg/ideas"
	"github.com/animaart/planner/pkg/model"
	"github.com/animaart/planner/pkg/planner"
)

// Page names for the view selector. Exactly one page is current at any
// time.
const (
	pageDashboard   = "dashboard"
	pageTasks       = "tasks"
	pageParties     = "parties"
	pageCalendar    = "calendar"
	pageTaskForm    = "taskForm"
	pagePartyForm   = "partyForm"
	pagePartyDetail = "partyDetail"
)

// Controller mediates between the planner and the terminal views. All
// rendering reads fresh snapshots from the planner; all changes go
// through the planner's mutation entry points.
type Controller struct {
	ctx     context.Context
	planner *planner.Planner
	gen     *ideas.Generator
	session *ideas.Session

	app   *tview.Application
	pages *tview.Pages

	// one event map per page; currentEvents switches with the page
	events        map[string]map[tcell.Key]KeyEvent
	currentEvents map[tcell.Key]KeyEvent

	dashboardText *tview.TextView

	taskTable    *tview.Table
	taskContent  *TaskContent
	selectedTask *model.Task

	taskForm      *tview.Form
	taskFormTitle *tview.TextView
	editingTask   *model.Task

	partyTable    *tview.Table
	partyContent  *PartyContent
	selectedParty *model.Party

	partyForm      *tview.Form
	partyFormTitle *tview.TextView
	suggestionView *tview.TextView
	suggestion     string
	editingParty   *model.Party

	detailText *tview.TextView

	month        planner.Month
	selectedDay  string
	monthText    *tview.TextView
	calendarGrid *tview.Table
	dayText      *tview.TextView
}

// KeyEvent defines an event associated with a keypress.
type KeyEvent struct {
	Description string
	Action      func(*tcell.EventKey) *tcell.EventKey
}

// NewController creates a new Controller to run the app.
func NewController(ctx context.Context, pl *planner.Planner, gen *ideas.Generator) (*Controller, error) {
	c := Controller{
		ctx:     ctx,
		planner: pl,
		gen:     gen,
		session: &ideas.Session{},
		app:     tview.NewApplication(),
		pages:   tview.NewPages(),
		month:   planner.MonthOf(time.Now()),
	}

	initKeys()
	c.initEvents()

	c.pages.AddPage(pageDashboard, c.getDashboardGrid(), true, true)
	c.pages.AddPage(pageTasks, c.getTasksGrid(), true, false)
	c.pages.AddPage(pageParties, c.getPartiesGrid(), true, false)
	c.pages.AddPage(pageCalendar, c.getCalendarPage(), true, false)
	c.pages.AddPage(pageTaskForm, c.getTaskFormGrid(), true, false)
	c.pages.AddPage(pagePartyForm, c.getPartyFormGrid(), true, false)
	c.pages.AddPage(pagePartyDetail, c.getPartyDetailGrid(), true, false)

	return &c, nil
}

// Go starts the app on the dashboard.
func (c *Controller) Go() {
	c.showDashboard()

	if err := c.app.SetRoot(c.pages, true).SetFocus(c.pages).Run(); err != nil {
		panic(err)
	}
}

func (c *Controller) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	key := AsKey(evt)
	if k, ok := c.currentEvents[key]; ok {
		return k.Action(evt)
	}

	return evt
}

// switchTo makes the named page current and installs its keymap.
func (c *Controller) switchTo(page string) {
	c.currentEvents = c.events[page]

	c.app.SetInputCapture(c.keyboard)
	c.pages.SwitchToPage(page)
}

// forms capture their own keys so that typing works; only Escape is
// intercepted, to cancel.
func (c *Controller) formCapture(cancel func()) func(evt *tcell.EventKey) *tcell.EventKey {
	return func(evt *tcell.EventKey) *tcell.EventKey {
		if evt.Key() == tcell.KeyEscape {
			cancel()

			return nil
		}

		return evt
	}
}

// getHeader returns the help header shown above each view: the view
// title followed by the view's keyboard shortcuts.
func (c *Controller) getHeader(title, page string) *tview.TextView {
	text := tview.NewTextView().SetDynamicColors(true)
	text.SetScrollable(false)

	shortcuts := []string{}
	for key, event := range c.events[page] {
		shortcuts = append(shortcuts, fmt.Sprintf("[orange]<%s>[white] %s", tcell.KeyNames[key], event.Description))
	}

	sort.Strings(shortcuts)

	msg := fmt.Sprintf("[yellow]%s[white]\n", title)
	for _, s := range shortcuts {
		msg += s + "  "
	}

	text.SetText(msg)

	return text
}
