package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kendallross/studypace/internal/constants"
	"github.com/kendallross/studypace/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	missedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// RenderPlan renders a worklet's daily plan as a table-like listing.
func RenderPlan(w models.Worklet, todayKey string) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%s) due %s", w.Name, w.Kind, w.Deadline.Format(constants.DateTimeFormat))))
	b.WriteString("\n")

	if w.UndoState != nil {
		b.WriteString(mutedStyle.Render("(redistributed; run 'studypace undo' to revert)"))
		b.WriteString("\n")
	}

	if len(w.DailyTasks) == 0 {
		b.WriteString("No work days scheduled\n")
		return b.String()
	}

	pctByDate := make(map[string]float64, len(w.DailyWorkload))
	for _, dw := range w.DailyWorkload {
		pctByDate[dw.Date] = dw.Percentage
	}

	for _, task := range w.DailyTasks {
		marker := "[ ]"
		line := fmt.Sprintf("%s %s  %6.2f %s (%5.1f%%)  %s",
			marker, task.Date, task.WeightForDay, w.WeightUnit, pctByDate[task.Date], task.Title)

		switch {
		case task.Completed:
			line = strings.Replace(line, "[ ]", "[x]", 1)
			line = doneStyle.Render(line)
		case strings.HasPrefix(task.Title, constants.RedistributedTag):
			line = mutedStyle.Render(line)
		case task.Date < todayKey:
			line = missedStyle.Render(line)
		case task.Date == todayKey:
			line = headerStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderSubtasks renders a worklet's subtask backlog with progress.
func RenderSubtasks(w models.Worklet) string {
	if len(w.Subtasks) == 0 {
		return "No subtasks\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Subtasks:"))
	b.WriteString("\n")
	for _, st := range w.Subtasks {
		marker := "[ ]"
		if st.Completed {
			marker = "[x]"
		}
		line := fmt.Sprintf("%s %s: %s/%s %s", marker, st.Name,
			formatFloat(st.Progress), formatFloat(st.Weight), w.WeightUnit)
		if st.MaterialID != "" {
			if mat, ok := w.MaterialByID(st.MaterialID); ok {
				line += mutedStyle.Render(fmt.Sprintf(" (material: %s)", mat.Name))
			}
		}
		if st.Completed {
			line = doneStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

func formatFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
