package planner

import (
	"errors"

	"github.com/kendallross/studypace/internal/models"
	"github.com/kendallross/studypace/internal/utils"
)

// Planner implements the workload distribution engine. All methods are pure:
// they never mutate their inputs and always return freshly built slices, so a
// caller holding a previous plan is unaffected by a recompute.
type Planner struct{}

func New() *Planner {
	return &Planner{}
}

var (
	// ErrAlreadyRedistributed is returned when a redistribution is requested
	// while an undo snapshot is still attached. Overwriting the snapshot
	// would make undo lossy, so the engine rejects the request instead.
	ErrAlreadyRedistributed = errors.New("worklet already has a pending redistribution; undo it first")

	// ErrNothingToUndo is returned when an undo is requested with no snapshot present.
	ErrNothingToUndo = errors.New("no redistribution to undo")

	// ErrNoSuchDay is returned when an operation targets a date that has no
	// daily task in the worklet's plan.
	ErrNoSuchDay = errors.New("no planned task for that date")

	// ErrDayNotMissed is returned when a redistribution targets a day that
	// is not actually missed: a day still in the future, or one already
	// marked complete.
	ErrDayNotMissed = errors.New("only a past, uncompleted day can be redistributed")
)

// Replan recomputes a worklet's full plan from its schedule parameters and
// subtask state: window generation, normalization, then allocation. This is
// the save-time entry point used whenever a worklet or its subtasks are
// edited. Per-day effort edits stored on the worklet survive the recompute
// via merge-by-key; the returned worklet carries replaced Efforts,
// DailyWorkload, and DailyTasks. Any pending redistribution snapshot is
// dropped, since the plan it captured no longer matches the edited schedule.
func (p *Planner) Replan(w models.Worklet, todayKey string) (models.Worklet, error) {
	out := w.Clone()
	out.UndoState = nil

	loc := w.Deadline.Location()
	today := w.Deadline // fallback keeps the full lead window
	if todayKey != "" {
		t, err := utils.ParseDateKey(todayKey, loc)
		if err != nil {
			return out, err
		}
		today = t
	}

	window := p.BuildWindow(WindowParams{
		Deadline:           w.Deadline,
		Today:              today,
		LeadDays:           w.LeadDays,
		IncludeDeadlineDay: w.IncludeDeadlineDay,
		RestrictToWeekdays: w.UseSpecificWeekdays,
		SelectedWeekdays:   w.SelectedWeekdays,
	}, w.Efforts)

	out.Efforts = make(map[string]float64, len(window))
	for _, d := range window {
		out.Efforts[d.Date] = d.Effort
	}

	out.DailyWorkload = p.Normalize(window, w.OffDays)
	out.DailyTasks = p.Allocate(out.DailyWorkload, w.Subtasks, string(w.WeightUnit))
	return out, nil
}
