package planner

import (
	"strings"

	"github.com/kendallross/studypace/internal/constants"
	"github.com/kendallross/studypace/internal/models"
)

// Redistribute removes a missed day's unfinished share from the plan and
// folds it proportionally into the remaining future days. The missed day's
// task stays in the plan for history, tagged and zeroed, and a snapshot of
// the pre-redistribution plan is attached so the operation can be undone
// exactly.
//
// Only a missed day is eligible: the target must be today or earlier and not
// already completed, otherwise the engine returns ErrDayNotMissed. Only one
// redistribution may be pending at a time: if an undo snapshot is already
// attached the engine returns ErrAlreadyRedistributed rather than overwriting
// it, which would make undo lossy.
func (p *Planner) Redistribute(w models.Worklet, targetDateKey, todayKey string) (models.Worklet, error) {
	if w.UndoState != nil {
		return w, ErrAlreadyRedistributed
	}

	target := w.TaskForDate(targetDateKey)
	if target == nil {
		return w, ErrNoSuchDay
	}
	if targetDateKey > todayKey || target.Completed {
		return w, ErrDayNotMissed
	}
	if strings.HasPrefix(target.Title, constants.RedistributedTag) {
		return w, ErrAlreadyRedistributed
	}

	out := w.Clone()
	out.UndoState = &models.UndoState{
		OriginalDailyTasks:    models.CloneDailyTasks(w.DailyTasks),
		OriginalDailyWorkload: append([]models.DailyWorkload(nil), w.DailyWorkload...),
	}

	// The days still eligible for work: today or later, excluding the missed
	// day itself and any day already marked complete. Their original shares
	// are re-normalized among themselves, so relative effort is preserved.
	remaining := make([]DayEffort, 0, len(w.DailyWorkload))
	for _, dw := range w.DailyWorkload {
		if dw.Date == targetDateKey || dw.Date < todayKey {
			continue
		}
		if t := w.TaskForDate(dw.Date); t != nil && t.Completed {
			continue
		}
		remaining = append(remaining, DayEffort{Date: dw.Date, Effort: dw.Percentage})
	}

	newWorkload := p.Normalize(remaining, nil)

	// Allocation restarts from the true completed progress of the subtasks,
	// so finished work stays excluded while the missed day's planned-but-
	// undone share is folded back in.
	newTasks := p.Allocate(newWorkload, w.Subtasks, string(w.WeightUnit))
	tasksByDate := make(map[string]models.DailyTask, len(newTasks))
	for _, t := range newTasks {
		tasksByDate[t.Date] = t
	}

	merged := make([]models.DailyTask, 0, len(out.DailyTasks))
	for _, t := range out.DailyTasks {
		switch {
		case t.Date == targetDateKey:
			t.Title = tagRedistributed(t.Title)
			t.WeightForDay = 0
			t.WorkSegments = []models.WorkSegment{}
			t.Completed = false
		default:
			if nt, ok := tasksByDate[t.Date]; ok {
				nt.Completed = t.Completed
				t = nt
			}
		}
		merged = append(merged, t)
	}

	out.DailyWorkload = newWorkload
	out.DailyTasks = merged
	return out, nil
}

// UndoRedistribute restores the plan captured by the most recent
// redistribution and clears the snapshot. This is an exact inverse with no
// recomputation, so it is always safe and lossless.
func (p *Planner) UndoRedistribute(w models.Worklet) (models.Worklet, error) {
	if w.UndoState == nil {
		return w, ErrNothingToUndo
	}

	out := w.Clone()
	out.DailyTasks = models.CloneDailyTasks(w.UndoState.OriginalDailyTasks)
	out.DailyWorkload = append([]models.DailyWorkload(nil), w.UndoState.OriginalDailyWorkload...)
	out.UndoState = nil
	return out, nil
}

func tagRedistributed(title string) string {
	if strings.HasPrefix(title, constants.RedistributedTag) {
		return title
	}
	return constants.RedistributedTag + " " + title
}
