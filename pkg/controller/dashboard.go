package controller

import (
	"fmt"
	"time"

	"github.com/rivo/tview"

	"github.com/animaart/planner/pkg/model"
)

func (c *Controller) getDashboardGrid() *tview.Grid {
	header := c.getHeader("Anima Art Animação — Painel de Controle", pageDashboard)

	c.dashboardText = tview.NewTextView().SetDynamicColors(true)

	grid := tview.NewGrid().SetBorders(true)
	grid.AddItem(header, 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(c.dashboardText, 1, 0, 1, 1, 0, 0, true)

	return grid
}

func (c *Controller) showDashboard() {
	c.renderDashboard()
	c.switchTo(pageDashboard)
}

// formatDate renders a YYYY-MM-DD booking date the way the client reads
// it (dd/mm/yyyy). Malformed dates fall through unchanged.
func formatDate(date string) string {
	parsed, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}

	return parsed.Format("02/01/2006")
}

func (c *Controller) renderDashboard() {
	now := time.Now()
	stats := c.planner.Stats(now)

	msg := fmt.Sprintf("\n[yellow]Festas futuras:[white] %d    [yellow]Tarefas pendentes:[white] %d\n\n",
		stats.UpcomingParties, stats.PendingTasks)

	if next, ok := c.planner.NextParty(now); ok {
		msg += "[pink]Próxima festa[white]\n"
		msg += fmt.Sprintf("  %s — %s às %s\n", next.BirthdayPerson, formatDate(next.Date), next.Time)
		msg += fmt.Sprintf("  Tema: %s\n\n", next.Theme)
	} else {
		msg += "Nenhuma festa agendada.\n\n"
	}

	completed, pending := c.planner.TaskBuckets()
	msg += "[pink]Produtividade[white]\n"
	msg += fmt.Sprintf("  [green]Feitas:[white] %d    [red]Pendentes:[white] %d\n", completed, pending)

	c.dashboardText.SetText(msg)
}
