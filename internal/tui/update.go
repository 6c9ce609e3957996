package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kendallross/studypace/internal/models"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.state {
		case stateList:
			return m.updateList(msg)
		case statePlan:
			return m.updatePlan(msg)
		case stateConfirmRedistribute:
			return m.updateConfirmRedistribute(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.worklets)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if _, ok := m.selected(); ok {
			m.state = statePlan
			m.dayCursor = 0
			m.status = ""
		}
	}
	return m, nil
}

func (m Model) updatePlan(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w, ok := m.selected()
	if !ok {
		m.state = stateList
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.state = stateList
		m.status = ""
	case key.Matches(msg, m.keys.Up):
		if m.dayCursor > 0 {
			m.dayCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.dayCursor < len(w.DailyTasks)-1 {
			m.dayCursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.dayCursor < len(w.DailyTasks) {
			task := w.DailyTasks[m.dayCursor]
			updated, err := m.planner.ReconcileDayCompletion(w, task.Date, !task.Completed)
			if err != nil {
				m.status = "Error: " + err.Error()
				break
			}
			m.saveAndReload(updated)
		}
	case key.Matches(msg, m.keys.Redistribute):
		if m.dayCursor < len(w.DailyTasks) {
			task := w.DailyTasks[m.dayCursor]
			if task.Date > m.today || task.Completed {
				m.status = "Only a missed day can be redistributed"
				break
			}
			m.state = stateConfirmRedistribute
		}
	case key.Matches(msg, m.keys.Undo):
		restored, err := m.planner.UndoRedistribute(w)
		if err != nil {
			m.status = "Error: " + err.Error()
			break
		}
		m.saveAndReload(restored)
		m.status = "Redistribution undone"
	}
	return m, nil
}

func (m Model) updateConfirmRedistribute(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		w, ok := m.selected()
		if ok && m.dayCursor < len(w.DailyTasks) {
			target := w.DailyTasks[m.dayCursor].Date
			updated, err := m.planner.Redistribute(w, target, m.today)
			if err != nil {
				m.status = "Error: " + err.Error()
			} else {
				m.saveAndReload(updated)
				m.status = fmt.Sprintf("Redistributed %s", target)
			}
		}
		m.state = statePlan
	case "n", "N", "esc":
		m.state = statePlan
	}
	return m, nil
}

func (m *Model) saveAndReload(w models.Worklet) {
	if err := m.store.SaveWorklet(w); err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.reload()
}
