package controller

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"github.com/animaart/planner/pkg/model"
	"github.com/animaart/planner/pkg/planner"
)

// PartyContent implements tview.TableContent over a pre-sorted party
// snapshot. The status column shows the date-derived display status,
// not the stored one.
type PartyContent struct {
	tview.TableContentReadOnly
	parties []model.Party
	now     time.Time
}

// GetCell returns the cell at the given position or nil if no cell.
func (p *PartyContent) GetCell(row, col int) *tview.TableCell {
	headers := []string{"data", "hora", "aniversariante", "tema", "cliente", "status"}

	if row == 0 {
		if col < len(headers) {
			return tview.NewTableCell(headers[col]).SetExpansion(1).
				SetTextColor(tcell.ColorYellow).SetSelectable(false)
		}

		return nil
	}

	if row-1 >= len(p.parties) {
		return nil
	}

	party := p.parties[row-1]

	switch col {
	case 0:
		return tview.NewTableCell(formatDate(party.Date)).SetExpansion(1).SetReference(party)
	case 1:
		return tview.NewTableCell(party.Time).SetExpansion(1)
	case 2:
		return tview.NewTableCell(party.BirthdayPerson).SetExpansion(1)
	case 3:
		return tview.NewTableCell(party.Theme).SetExpansion(1)
	case 4:
		return tview.NewTableCell(party.ClientName).SetExpansion(1)
	case 5:
		status := planner.DisplayStatus(party, p.now)

		color := tcell.ColorGreen
		if status == planner.DisplayRealized {
			color = tcell.ColorGray
		}

		return tview.NewTableCell(status).SetTextColor(color).SetExpansion(1)
	}

	return nil
}

// GetRowCount returns the number of rows in the table.
func (p *PartyContent) GetRowCount() int {
	return len(p.parties) + 1
}

// GetColumnCount returns the number of columns in the table.
func (p *PartyContent) GetColumnCount() int {
	return 6
}

func (c *Controller) getPartiesGrid() *tview.Grid {
	header := c.getHeader("Festas Agendadas", pageParties)

	c.partyContent = &PartyContent{}

	c.partyTable = tview.NewTable().SetBorders(false)
	c.partyTable.SetContent(c.partyContent)
	c.partyTable.SetSelectable(true, false)
	c.partyTable.SetSelectionChangedFunc(c.setCurrentParty)

	grid := tview.NewGrid().SetBorders(true)
	grid.AddItem(header, 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(c.partyTable, 1, 0, 1, 1, 0, 0, true)

	return grid
}

// when the row selection changes, update the selected party.
func (c *Controller) setCurrentParty(row, col int) {
	if idx := row - 1; idx >= 0 && idx < len(c.partyContent.parties) {
		party := c.partyContent.parties[idx]
		c.selectedParty = &party

		return
	}

	c.selectedParty = nil
}

func (c *Controller) showParties() {
	c.partyContent.parties = c.planner.SortedParties()
	c.partyContent.now = time.Now()

	if len(c.partyContent.parties) > 0 {
		row, _ := c.partyTable.GetSelection()
		if row < 1 || row > len(c.partyContent.parties) {
			row = 1
		}

		c.partyTable.Select(row, 0).SetFixed(1, 0)
		c.setCurrentParty(row, 0)
	} else {
		c.selectedParty = nil
	}

	c.switchTo(pageParties)
	c.app.SetFocus(c.partyTable)
}

func (c *Controller) getPartyDetailGrid() *tview.Grid {
	header := c.getHeader("Detalhes da Festa", pagePartyDetail)

	c.detailText = tview.NewTextView().SetDynamicColors(true)

	grid := tview.NewGrid().SetBorders(true)
	grid.AddItem(header, 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(c.detailText, 1, 0, 1, 1, 0, 0, true)

	return grid
}

func (c *Controller) showPartyDetail(party model.Party) {
	c.selectedParty = &party

	msg := fmt.Sprintf("\n[pink]%s — %d anos[white]\n\n", party.BirthdayPerson, party.Age)
	msg += fmt.Sprintf("[yellow]Cliente:[white] %s", party.ClientName)

	if party.ClientPhone != "" {
		msg += fmt.Sprintf("  (%s)", party.ClientPhone)
	}

	msg += fmt.Sprintf("\n[yellow]Data:[white] %s às %s\n", formatDate(party.Date), party.Time)
	msg += fmt.Sprintf("[yellow]Local:[white] %s\n", party.Location)
	msg += fmt.Sprintf("[yellow]Tema:[white] %s\n", party.Theme)
	msg += fmt.Sprintf("[yellow]Crianças:[white] %d\n", party.NumberOfChildren)

	if party.Workshops != "" {
		msg += fmt.Sprintf("\n[yellow]Oficinas e extras:[white]\n%s\n", party.Workshops)
	}

	if party.Observations != "" {
		msg += fmt.Sprintf("\n[yellow]Observações:[white]\n%s\n", party.Observations)
	}

	c.detailText.SetText(msg)
	c.switchTo(pagePartyDetail)
}

func (c *Controller) getPartyFormGrid() *tview.Grid {
	c.partyFormTitle = tview.NewTextView().SetDynamicColors(true)

	c.suggestionView = tview.NewTextView().SetDynamicColors(true)
	c.suggestionView.SetBorder(true).SetTitle("Sugestões da IA")

	fieldMax := 100
	shortMax := 20

	c.partyForm = tview.NewForm().
		AddInputField("Nome do cliente", "", fieldMax, nil, nil).
		AddInputField("Telefone", "", shortMax, nil, nil).
		AddInputField("Aniversariante", "", fieldMax, nil, nil).
		AddInputField("Idade", "", shortMax, tview.InputFieldInteger, nil).
		AddInputField("Nº de crianças", "", shortMax, tview.InputFieldInteger, nil).
		AddInputField("Data (AAAA-MM-DD)", "", shortMax, nil, nil).
		AddInputField("Hora (HH:mm)", "", shortMax, nil, nil).
		AddInputField("Local / Endereço", "", fieldMax, nil, nil).
		AddInputField("Tema da festa", "", fieldMax, nil, nil).
		AddInputField("Oficinas e extras", "", fieldMax, nil, nil).
		AddInputField("Observações", "", fieldMax, nil, nil)

	c.partyForm.AddButton("Gerar ideias (IA)", c.generateIdeas)
	c.partyForm.AddButton("Ideias → observações", c.applySuggestion)
	c.partyForm.AddButton("Salvar", c.savePartyForm)
	c.partyForm.AddButton("Cancelar", func() {
		c.closePartyForm()
	})

	grid := tview.NewGrid().SetBorders(true).SetRows(2, 0, 8)
	grid.AddItem(c.partyFormTitle, 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(c.partyForm, 1, 0, 1, 1, 0, 0, true)
	grid.AddItem(c.suggestionView, 2, 0, 1, 1, 0, 0, false)

	return grid
}

func (c *Controller) partyField(label string) *tview.InputField {
	field, _ := c.partyForm.GetFormItemByLabel(label).(*tview.InputField)

	return field
}

func (c *Controller) switchToPartyForm(party *model.Party) {
	c.editingParty = party

	// a fresh form is a fresh suggestion session; anything still in
	// flight from the previous one no longer applies
	c.session.Invalidate()
	c.suggestion = ""
	c.suggestionView.SetText("")

	title := "[yellow]Nova Festa"

	values := map[string]string{}

	if party != nil {
		title = "[yellow]Editar Festa"

		values = map[string]string{
			"Nome do cliente":   party.ClientName,
			"Telefone":          party.ClientPhone,
			"Aniversariante":    party.BirthdayPerson,
			"Idade":             strconv.Itoa(party.Age),
			"Nº de crianças":    strconv.Itoa(party.NumberOfChildren),
			"Data (AAAA-MM-DD)": party.Date,
			"Hora (HH:mm)":      party.Time,
			"Local / Endereço":  party.Location,
			"Tema da festa":     party.Theme,
			"Oficinas e extras": party.Workshops,
			"Observações":       party.Observations,
		}
	}

	for _, label := range []string{
		"Nome do cliente", "Telefone", "Aniversariante", "Idade", "Nº de crianças",
		"Data (AAAA-MM-DD)", "Hora (HH:mm)", "Local / Endereço", "Tema da festa",
		"Oficinas e extras", "Observações",
	} {
		c.partyField(label).SetText(values[label])
	}

	c.partyFormTitle.SetText(title)
	c.partyForm.SetFocus(0)

	c.pages.SwitchToPage(pagePartyForm)
	c.app.SetInputCapture(c.formCapture(c.closePartyForm))
}

func (c *Controller) closePartyForm() {
	// leaving the form also discards any suggestion still in flight
	c.session.Invalidate()

	c.showParties()
}

// generateIdeas fires the suggestion request off the UI thread. The
// result is applied only if this form session is still the open one, so
// a slow response never lands in a form it wasn't asked from.
func (c *Controller) generateIdeas() {
	theme := c.partyField("Tema da festa").GetText()

	age, err := strconv.Atoi(c.partyField("Idade").GetText())
	if err != nil || age <= 0 {
		age = 5
	}

	if theme == "" {
		c.suggestionView.SetText("Informe o tema da festa para gerar ideias.")

		return
	}

	token := c.session.Begin()

	c.suggestionView.SetText("Gerando ideias...")

	go func() {
		text := c.gen.PartyIdeas(c.ctx, theme, age)

		c.app.QueueUpdateDraw(func() {
			if !c.session.Current(token) {
				log.Debug().Msg("discarding stale suggestion response")

				return
			}

			c.suggestion = text
			c.suggestionView.SetText(text)
		})
	}()
}

// applySuggestion appends the accepted suggestion to the observations
// field, the only place suggestion text ever lands.
func (c *Controller) applySuggestion() {
	if c.suggestion == "" {
		return
	}

	field := c.partyField("Observações")
	field.SetText(field.GetText() + "\n\nIdeias:\n" + c.suggestion)
}

func (c *Controller) savePartyForm() {
	age, _ := strconv.Atoi(c.partyField("Idade").GetText())
	children, _ := strconv.Atoi(c.partyField("Nº de crianças").GetText())

	party := model.Party{
		ClientName:       c.partyField("Nome do cliente").GetText(),
		ClientPhone:      c.partyField("Telefone").GetText(),
		BirthdayPerson:   c.partyField("Aniversariante").GetText(),
		Age:              age,
		NumberOfChildren: children,
		Date:             c.partyField("Data (AAAA-MM-DD)").GetText(),
		Time:             c.partyField("Hora (HH:mm)").GetText(),
		Location:         c.partyField("Local / Endereço").GetText(),
		Theme:            c.partyField("Tema da festa").GetText(),
		Workshops:        c.partyField("Oficinas e extras").GetText(),
		Observations:     c.partyField("Observações").GetText(),
	}

	var err error

	if c.editingParty == nil {
		_, err = c.planner.AddParty(c.ctx, party)
	} else {
		party.ID = c.editingParty.ID
		party.Status = c.editingParty.Status

		err = c.planner.UpdateParty(c.ctx, party)
	}

	if err != nil {
		// stay on the form so the user can fix the input
		log.Debug().Err(err).Msg("party not saved")

		return
	}

	c.closePartyForm()
}
