package planner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kendallross/studypace/internal/models"
)

// cursor tracks the allocation position inside the subtask backlog: which
// subtask is being consumed and how much of it is already accounted for
// (prior progress plus slices handed to earlier days). A single cursor is
// shared across the whole day walk, never restarted per day.
type cursor struct {
	index    int
	consumed float64
}

// Allocate maps a normalized daily workload onto the subtask backlog,
// producing one DailyTask per active day. Days are walked chronologically
// and subtasks in their existing order; each day receives work segments
// until its budget (percentage of the total remaining work) is spent.
//
// Floating-point remainder is absorbed entirely by the last day so that the
// weights sum exactly to the total remaining work, rather than leaving every
// day slightly short.
func (p *Planner) Allocate(dailyWorkload []models.DailyWorkload, subtasks []models.Subtask, weightUnit string) []models.DailyTask {
	totalRemaining := 0.0
	for _, st := range subtasks {
		if !st.Completed {
			totalRemaining += st.Remaining()
		}
	}

	tasks := make([]models.DailyTask, 0, len(dailyWorkload))

	if totalRemaining <= 0 {
		// Preserve the schedule shape even when there is nothing left to plan.
		for _, day := range dailyWorkload {
			tasks = append(tasks, models.DailyTask{
				Date:         day.Date,
				Title:        "No remaining work",
				WeightForDay: 0,
				WorkSegments: []models.WorkSegment{},
			})
		}
		return tasks
	}

	cur := firstIncomplete(subtasks, cursor{})
	allocated := 0.0

	for i, day := range dailyWorkload {
		budget := day.Percentage / 100.0 * totalRemaining
		if i == len(dailyWorkload)-1 {
			// Last active day takes whatever is actually left, absorbing
			// any floating drift from the per-day divisions.
			budget = totalRemaining - allocated
		}

		var segments []models.WorkSegment
		segments, cur = consume(subtasks, cur, budget)

		weight := 0.0
		for _, seg := range segments {
			weight += seg.Size()
		}
		allocated += weight

		tasks = append(tasks, models.DailyTask{
			Date:         day.Date,
			Title:        describeDay(segments, subtasks, weightUnit),
			WeightForDay: weight,
			WorkSegments: segments,
		})
	}
	return tasks
}

// consume takes up to budget units of work starting at the cursor, emitting
// one segment per subtask touched, and returns the advanced cursor.
func consume(subtasks []models.Subtask, cur cursor, budget float64) ([]models.WorkSegment, cursor) {
	segments := []models.WorkSegment{}
	for budget > 0 && cur.index < len(subtasks) {
		st := subtasks[cur.index]
		available := st.Weight - cur.consumed
		if available <= 0 {
			cur = firstIncomplete(subtasks, cursor{index: cur.index + 1})
			continue
		}

		take := budget
		if take > available {
			take = available
		}
		segments = append(segments, models.WorkSegment{
			SubtaskID:  st.ID,
			MaterialID: st.MaterialID,
			Start:      cur.consumed,
			End:        cur.consumed + take,
		})
		cur.consumed += take
		budget -= take

		if cur.consumed >= st.Weight {
			cur = firstIncomplete(subtasks, cursor{index: cur.index + 1})
		}
	}
	return segments, cur
}

// firstIncomplete positions the cursor at the next incomplete subtask at or
// after the given index, starting from that subtask's current progress.
func firstIncomplete(subtasks []models.Subtask, cur cursor) cursor {
	for i := cur.index; i < len(subtasks); i++ {
		if !subtasks[i].Completed && subtasks[i].Remaining() > 0 {
			return cursor{index: i, consumed: subtasks[i].Progress}
		}
	}
	return cursor{index: len(subtasks)}
}

// describeDay builds a human-readable label for a day's slice, e.g.
// "12 pages of Chapter 3" or "5 pages of Ch. 1, 3 pages of Ch. 2".
func describeDay(segments []models.WorkSegment, subtasks []models.Subtask, weightUnit string) string {
	if len(segments) == 0 {
		return "No work scheduled"
	}
	if weightUnit == "" {
		weightUnit = "units"
	}

	names := make(map[string]string, len(subtasks))
	for _, st := range subtasks {
		names[st.ID] = st.Name
	}

	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		parts = append(parts, fmt.Sprintf("%s %s of %s", formatQuantity(seg.Size()), weightUnit, names[seg.SubtaskID]))
	}
	return strings.Join(parts, ", ")
}

// formatQuantity renders a work quantity with at most two decimals, dropping
// trailing zeros ("12", "16.67").
func formatQuantity(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
