package controller

import (
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

func (c *Controller) initEvents() {
	c.events = map[string]map[tcell.Key]KeyEvent{
		pageDashboard:   {},
		pageTasks:       {},
		pageParties:     {},
		pageCalendar:    {},
		pagePartyDetail: {},
	}

	for _, page := range []string{pageDashboard, pageTasks, pageParties, pageCalendar} {
		c.initShowEvents(c.events[page])
		c.initExitEvent(c.events[page])
	}

	c.initTaskEvents(c.events[pageTasks])
	c.initPartyEvents(c.events[pageParties])
	c.initCalendarEvents(c.events[pageCalendar])
	c.initDetailEvents(c.events[pagePartyDetail])
}

func (c *Controller) getExitAction() func(key *tcell.EventKey) *tcell.EventKey {
	return func(key *tcell.EventKey) *tcell.EventKey {
		c.app.Stop()

		log.Info().Msg("terminating application")

		os.Exit(0)

		return key
	}
}

func (c *Controller) initExitEvent(events map[tcell.Key]KeyEvent) {
	events[KeyQ] = KeyEvent{
		Description: "Sair",
		Action:      c.getExitAction(),
	}
}

func (c *Controller) initShowEvents(events map[tcell.Key]KeyEvent) {
	events[KeyShiftD] = KeyEvent{
		Description: "Painel",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.showDashboard()

			return key
		},
	}

	events[KeyShiftT] = KeyEvent{
		Description: "Tarefas",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.showTasks()

			return key
		},
	}

	events[KeyShiftF] = KeyEvent{
		Description: "Festas",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.showParties()

			return key
		},
	}

	events[KeyShiftC] = KeyEvent{
		Description: "Calendário",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.showCalendar()

			return key
		},
	}
}

func (c *Controller) initTaskEvents(events map[tcell.Key]KeyEvent) {
	events[KeyN] = KeyEvent{
		Description: "Nova tarefa",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.switchToTaskForm(nil)

			return key
		},
	}

	events[KeyE] = KeyEvent{
		Description: "Editar tarefa",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			if c.selectedTask != nil {
				c.switchToTaskForm(c.selectedTask)
			}

			return key
		},
	}

	events[KeyX] = KeyEvent{
		Description: "Excluir tarefa",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			if c.selectedTask != nil {
				c.confirmDeleteTask(*c.selectedTask)
			}

			return key
		},
	}

	events[tcell.KeyEnter] = KeyEvent{
		Description: "Concluir/reabrir",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			if c.selectedTask != nil {
				c.planner.ToggleTask(c.ctx, c.selectedTask.ID)
				c.showTasks()
			}

			return key
		},
	}
}

func (c *Controller) initPartyEvents(events map[tcell.Key]KeyEvent) {
	events[KeyN] = KeyEvent{
		Description: "Nova festa",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.switchToPartyForm(nil)

			return key
		},
	}

	events[KeyE] = KeyEvent{
		Description: "Editar festa",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			if c.selectedParty != nil {
				c.switchToPartyForm(c.selectedParty)
			}

			return key
		},
	}

	events[tcell.KeyEnter] = KeyEvent{
		Description: "Detalhes",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			if c.selectedParty != nil {
				c.showPartyDetail(*c.selectedParty)
			}

			return key
		},
	}
}

func (c *Controller) initCalendarEvents(events map[tcell.Key]KeyEvent) {
	events[KeyH] = KeyEvent{
		Description: "Mês anterior",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			// month navigation always clears the selected day
			c.month = c.month.Prev()
			c.selectedDay = ""
			c.renderCalendar()

			return key
		},
	}

	events[KeyL] = KeyEvent{
		Description: "Próximo mês",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.month = c.month.Next()
			c.selectedDay = ""
			c.renderCalendar()

			return key
		},
	}
}

func (c *Controller) initDetailEvents(events map[tcell.Key]KeyEvent) {
	events[KeyE] = KeyEvent{
		Description: "Editar",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			if c.selectedParty != nil {
				c.switchToPartyForm(c.selectedParty)
			}

			return key
		},
	}

	events[tcell.KeyEscape] = KeyEvent{
		Description: "Voltar",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.showParties()

			return key
		},
	}
}
