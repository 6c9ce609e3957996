package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kendallross/studypace/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case stateList:
		content = m.viewList()
	case statePlan:
		content = m.viewPlan()
	case stateConfirmRedistribute:
		content = m.viewConfirmRedistribute()
	}

	var status string
	if m.status != "" {
		status = warningStyle.Render(m.status)
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		status,
		m.help.View(m.keys),
	))
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Worklets"))
	b.WriteString("\n\n")

	if len(m.worklets) == 0 {
		b.WriteString("No worklets. Add one with 'studypace add'.\n")
		return b.String()
	}

	for i, w := range m.worklets {
		line := fmt.Sprintf("%-10s  due %s  %s", w.Kind, w.Deadline.Format(constants.DateFormat), w.Name)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewPlan() string {
	w, ok := m.selected()
	if !ok {
		return "No worklet selected"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (due %s)", w.Name, w.Deadline.Format(constants.DateFormat))))
	b.WriteString("\n")
	if w.UndoState != nil {
		b.WriteString(mutedStyle.Render("(redistributed; press u to revert)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(w.DailyTasks) == 0 {
		b.WriteString("No work days scheduled\n")
		return b.String()
	}

	for i, task := range w.DailyTasks {
		marker := "[ ]"
		if task.Completed {
			marker = "[x]"
		}
		line := fmt.Sprintf("%s %s  %6.2f %s  %s", marker, task.Date, task.WeightForDay, w.WeightUnit, task.Title)

		switch {
		case i == m.dayCursor:
			line = selectedStyle.Render("> " + line)
		case task.Completed:
			line = "  " + doneStyle.Render(line)
		case strings.HasPrefix(task.Title, constants.RedistributedTag):
			line = "  " + mutedStyle.Render(line)
		case task.Date < m.today:
			line = "  " + missedStyle.Render(line)
		default:
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewConfirmRedistribute() string {
	w, ok := m.selected()
	if !ok || m.dayCursor >= len(w.DailyTasks) {
		return "No day selected"
	}
	date := w.DailyTasks[m.dayCursor].Date
	return fmt.Sprintf("Redistribute %s across the remaining days of %q? [y/N]", date, w.Name)
}
