package controller

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"github.com/animaart/planner/pkg/model"
)

// priorityLabel maps a stored priority onto its display form.
func priorityLabel(priority string) (string, tcell.Color) {
	switch priority {
	case model.PriorityHigh:
		return "Alta", tcell.ColorRed
	case model.PriorityLow:
		return "Baixa", tcell.ColorGreen
	default:
		return "Média", tcell.ColorOrange
	}
}

// TaskContent implements tview.TableContent over a task snapshot.
type TaskContent struct {
	tview.TableContentReadOnly
	tasks []model.Task
}

// GetCell returns the cell at the given position or nil if no cell.
func (t *TaskContent) GetCell(row, col int) *tview.TableCell {
	if row == 0 {
		switch col {
		case 0:
			return tview.NewTableCell("feita").SetTextColor(tcell.ColorYellow).SetSelectable(false)
		case 1:
			return tview.NewTableCell("tarefa").SetExpansion(2).
				SetTextColor(tcell.ColorYellow).SetSelectable(false)
		case 2:
			return tview.NewTableCell("prioridade").SetExpansion(1).
				SetTextColor(tcell.ColorYellow).SetSelectable(false)
		case 3:
			return tview.NewTableCell("prazo").SetExpansion(1).
				SetTextColor(tcell.ColorYellow).SetSelectable(false)
		}

		return nil
	}

	if row-1 >= len(t.tasks) {
		return nil
	}

	task := t.tasks[row-1]

	switch col {
	case 0:
		mark := "[ ]"
		if task.Completed {
			mark = "[x]"
		}

		return tview.NewTableCell(tview.Escape(mark)).SetReference(task)
	case 1:
		cell := tview.NewTableCell(task.Title).SetExpansion(2)
		if task.Completed {
			cell.SetTextColor(tcell.ColorGray)
		}

		return cell
	case 2:
		label, color := priorityLabel(task.Priority)

		return tview.NewTableCell(label).SetTextColor(color).SetExpansion(1)
	case 3:
		return tview.NewTableCell(formatDueDate(task.DueDate)).SetExpansion(1)
	}

	return nil
}

// GetRowCount returns the number of rows in the table.
func (t *TaskContent) GetRowCount() int {
	return len(t.tasks) + 1
}

// GetColumnCount returns the number of columns in the table.
func (t *TaskContent) GetColumnCount() int {
	return 4
}

// formatDueDate renders the due-date instant as a plain date; an empty
// or unreadable value renders blank.
func formatDueDate(dueDate string) string {
	if dueDate == "" {
		return ""
	}

	parsed, err := time.Parse(time.RFC3339, dueDate)
	if err != nil {
		return ""
	}

	return parsed.Format("02/01/2006")
}

func (c *Controller) getTasksGrid() *tview.Grid {
	header := c.getHeader("Tarefas", pageTasks)

	c.taskContent = &TaskContent{}

	c.taskTable = tview.NewTable().SetBorders(false)
	c.taskTable.SetContent(c.taskContent)
	c.taskTable.SetSelectable(true, false)
	c.taskTable.SetSelectionChangedFunc(c.setCurrentTask)

	grid := tview.NewGrid().SetBorders(true)
	grid.AddItem(header, 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(c.taskTable, 1, 0, 1, 1, 0, 0, true)

	return grid
}

// when the row selection changes, update the selected task.
func (c *Controller) setCurrentTask(row, col int) {
	if idx := row - 1; idx >= 0 && idx < len(c.taskContent.tasks) {
		task := c.taskContent.tasks[idx]
		c.selectedTask = &task

		return
	}

	c.selectedTask = nil
}

func (c *Controller) showTasks() {
	c.taskContent.tasks = c.planner.Tasks()

	if len(c.taskContent.tasks) > 0 {
		row, _ := c.taskTable.GetSelection()
		if row < 1 || row > len(c.taskContent.tasks) {
			row = 1
		}

		c.taskTable.Select(row, 0).SetFixed(1, 0)
		c.setCurrentTask(row, 0)
	} else {
		c.selectedTask = nil
	}

	c.switchTo(pageTasks)
	c.app.SetFocus(c.taskTable)
}

func (c *Controller) getTaskFormGrid() *tview.Grid {
	c.taskFormTitle = tview.NewTextView().SetDynamicColors(true)

	titleMax := 100
	dateMax := 10

	c.taskForm = tview.NewForm().
		AddInputField("Tarefa", "", titleMax, nil, nil).
		AddDropDown("Prioridade", []string{"Baixa", "Média", "Alta"}, 1, nil).
		AddInputField("Prazo (AAAA-MM-DD)", "", dateMax, nil, nil)

	c.taskForm.AddButton("Salvar", c.saveTaskForm)
	c.taskForm.AddButton("Cancelar", func() {
		c.showTasks()
	})

	grid := tview.NewGrid().SetBorders(true)
	grid.AddItem(c.taskFormTitle, 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(c.taskForm, 1, 0, 1, 1, 0, 0, true)

	return grid
}

func taskFormPriority(option string) string {
	switch option {
	case "Baixa":
		return model.PriorityLow
	case "Alta":
		return model.PriorityHigh
	default:
		return model.PriorityMedium
	}
}

func taskFormPriorityIndex(priority string) int {
	switch priority {
	case model.PriorityLow:
		return 0
	case model.PriorityHigh:
		return 2
	default:
		return 1
	}
}

func (c *Controller) switchToTaskForm(task *model.Task) {
	c.editingTask = task

	title := "[yellow]Nova Tarefa"
	titleField, _ := c.taskForm.GetFormItemByLabel("Tarefa").(*tview.InputField)
	priorityField, _ := c.taskForm.GetFormItemByLabel("Prioridade").(*tview.DropDown)
	dateField, _ := c.taskForm.GetFormItemByLabel("Prazo (AAAA-MM-DD)").(*tview.InputField)

	if task != nil {
		title = "[yellow]Editar Tarefa"

		titleField.SetText(task.Title)
		priorityField.SetCurrentOption(taskFormPriorityIndex(task.Priority))
		dateField.SetText(dueDateToFormValue(task.DueDate))
	} else {
		titleField.SetText("")
		priorityField.SetCurrentOption(1)
		dateField.SetText("")
	}

	c.taskFormTitle.SetText(title)
	c.taskForm.SetFocus(0)

	c.pages.SwitchToPage(pageTaskForm)
	c.app.SetInputCapture(c.formCapture(c.showTasks))
}

func dueDateToFormValue(dueDate string) string {
	if dueDate == "" {
		return ""
	}

	parsed, err := time.Parse(time.RFC3339, dueDate)
	if err != nil {
		return ""
	}

	return parsed.Format(model.DateLayout)
}

// formValueToDueDate widens a plain form date back into an instant, the
// shape the due date is stored in. Anything unreadable becomes empty.
func formValueToDueDate(value string) string {
	if value == "" {
		return ""
	}

	parsed, err := time.Parse(model.DateLayout, value)
	if err != nil {
		return ""
	}

	return parsed.Format(time.RFC3339)
}

func (c *Controller) saveTaskForm() {
	titleField, _ := c.taskForm.GetFormItemByLabel("Tarefa").(*tview.InputField)
	priorityField, _ := c.taskForm.GetFormItemByLabel("Prioridade").(*tview.DropDown)
	dateField, _ := c.taskForm.GetFormItemByLabel("Prazo (AAAA-MM-DD)").(*tview.InputField)

	_, priorityOption := priorityField.GetCurrentOption()
	priority := taskFormPriority(priorityOption)
	dueDate := formValueToDueDate(dateField.GetText())

	var err error

	if c.editingTask == nil {
		_, err = c.planner.AddTask(c.ctx, titleField.GetText(), priority, dueDate)
	} else {
		task := *c.editingTask
		task.Title = titleField.GetText()
		task.Priority = priority
		task.DueDate = dueDate

		err = c.planner.UpdateTask(c.ctx, task)
	}

	if err != nil {
		// stay on the form so the user can fix the input
		log.Debug().Err(err).Msg("task not saved")

		return
	}

	c.showTasks()
}

// confirmDeleteTask interposes an explicit confirmation before the
// irreversible removal.
func (c *Controller) confirmDeleteTask(task model.Task) {
	modal := tview.NewModal().
		SetText("Tem certeza que deseja excluir esta tarefa?").
		AddButtons([]string{"Excluir", "Cancelar"})

	modal.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		c.planner.DeleteTask(c.ctx, task.ID, buttonLabel == "Excluir")

		c.pages.RemovePage("confirmDelete")
		c.showTasks()
	})

	c.app.SetInputCapture(nil)
	c.pages.AddPage("confirmDelete", modal, true, true)
}
