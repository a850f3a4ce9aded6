package controller

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/animaart/planner/pkg/planner"
)

const daysPerWeek = 7

// monthNames translates time.Month for the calendar header.
var monthNames = map[time.Month]string{
	time.January:   "Janeiro",
	time.February:  "Fevereiro",
	time.March:     "Março",
	time.April:     "Abril",
	time.May:       "Maio",
	time.June:      "Junho",
	time.July:      "Julho",
	time.August:    "Agosto",
	time.September: "Setembro",
	time.October:   "Outubro",
	time.November:  "Novembro",
	time.December:  "Dezembro",
}

func (c *Controller) getCalendarPage() *tview.Grid {
	header := c.getHeader("Calendário", pageCalendar)

	c.monthText = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)

	c.calendarGrid = tview.NewTable().SetBorders(false)
	c.calendarGrid.SetSelectable(true, true)
	c.calendarGrid.SetSelectedFunc(c.selectDay)

	c.dayText = tview.NewTextView().SetDynamicColors(true)

	grid := tview.NewGrid().SetBorders(true).SetRows(2, 1, 9, 0)
	grid.AddItem(header, 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(c.monthText, 1, 0, 1, 1, 0, 0, false)
	grid.AddItem(c.calendarGrid, 2, 0, 1, 1, 0, 0, true)
	grid.AddItem(c.dayText, 3, 0, 1, 1, 0, 0, false)

	return grid
}

func (c *Controller) showCalendar() {
	c.renderCalendar()
	c.switchTo(pageCalendar)
	c.app.SetFocus(c.calendarGrid)
}

// dayAt maps a grid position back to a day of the viewed month, or 0
// for the blank cells before the first and after the last day.
func (c *Controller) dayAt(row, col int) int {
	if row < 1 {
		return 0
	}

	day := (row-1)*daysPerWeek + col - int(c.month.FirstWeekday()) + 1
	if day < 1 || day > c.month.Days() {
		return 0
	}

	return day
}

func (c *Controller) selectDay(row, col int) {
	day := c.dayAt(row, col)
	if day == 0 {
		return
	}

	c.selectedDay = c.month.DayKey(day)
	c.renderCalendar()
}

func (c *Controller) renderCalendar() {
	c.monthText.SetText(fmt.Sprintf("[yellow]%s %d", monthNames[c.month.Month], c.month.Year))

	idx := planner.NewDayIndex(c.planner.Parties())
	now := time.Now()

	c.calendarGrid.Clear()

	for col, name := range []string{"D", "S", "T", "Q", "Q", "S", "S"} {
		c.calendarGrid.SetCell(0, col,
			tview.NewTableCell(name).SetTextColor(tcell.ColorYellow).SetSelectable(false).SetExpansion(1))
	}

	offset := int(c.month.FirstWeekday())

	for day := 1; day <= c.month.Days(); day++ {
		pos := offset + day - 1
		row := pos/daysPerWeek + 1
		col := pos % daysPerWeek

		key := c.month.DayKey(day)
		cell := tview.NewTableCell(strconv.Itoa(day)).SetExpansion(1)

		// one style per cell, highest priority wins
		switch planner.ClassifyDay(key, c.selectedDay, idx, now) {
		case planner.CellSelected:
			cell.SetTextColor(tcell.ColorBlack).SetBackgroundColor(tcell.ColorHotPink)
		case planner.CellHasParty:
			cell.SetTextColor(tcell.ColorBlack).SetBackgroundColor(tcell.ColorTeal)
		case planner.CellToday:
			cell.SetTextColor(tcell.ColorBlue)
		case planner.CellPlain:
		}

		c.calendarGrid.SetCell(row, col, cell)
	}

	c.renderDayDetails(idx)
}

func (c *Controller) renderDayDetails(idx *planner.DayIndex) {
	if c.selectedDay == "" {
		c.dayText.SetText("\nSelecione um dia para ver os detalhes.")

		return
	}

	parties := idx.PartiesOn(c.selectedDay)
	if len(parties) == 0 {
		// a selected day with no parties is a valid, explicit state
		c.dayText.SetText(fmt.Sprintf("\n[yellow]%s[white]\n\nNenhuma festa neste dia.", formatDate(c.selectedDay)))

		return
	}

	msg := fmt.Sprintf("\n[yellow]%s[white]\n\n", formatDate(c.selectedDay))

	for _, party := range parties {
		msg += fmt.Sprintf("[pink]%s — %s[white]\n", party.Time, party.BirthdayPerson)
		msg += fmt.Sprintf("  Tema: %s    Cliente: %s", party.Theme, party.ClientName)

		if party.NumberOfChildren > 0 {
			msg += fmt.Sprintf("    Crianças: %d", party.NumberOfChildren)
		}

		msg += fmt.Sprintf("\n  Local: %s\n\n", party.Location)
	}

	c.dayText.SetText(msg)
}
