package planner

import (
	"fmt"

	"github.com/kendallross/studypace/internal/models"
)

// ReconcileDayCompletion applies a whole-day completion toggle back onto the
// subtask progress model. Marking a day done consumes every work segment on
// it; un-marking performs the exact inverse subtraction. Progress is clamped
// to [0, weight] and the completed flag is derived from it, so an
// over-completion is absorbed silently rather than rejected.
//
// The previously computed daily tasks become stale for any later planning
// pass; the caller decides when to replan.
func (p *Planner) ReconcileDayCompletion(w models.Worklet, dateKey string, completed bool) (models.Worklet, error) {
	task := w.TaskForDate(dateKey)
	if task == nil {
		return w, ErrNoSuchDay
	}

	out := w.Clone()
	outTask := out.TaskForDate(dateKey)
	if outTask.Completed == completed {
		return out, nil
	}
	outTask.Completed = completed

	for _, seg := range outTask.WorkSegments {
		st := out.SubtaskByID(seg.SubtaskID)
		if st == nil {
			continue
		}
		delta := seg.Size()
		if !completed {
			delta = -delta
		}
		applyProgress(st, delta)
	}
	return out, nil
}

// ReconcilePageCompletion applies a single material-page toggle onto the
// owning subtask. Each page is worth an equal share of the subtask's weight
// (weight / material length). The allocator needs no page-level awareness:
// the next planning pass picks the change up through progress and completed.
func (p *Planner) ReconcilePageCompletion(w models.Worklet, materialID string, page int, completed bool) (models.Worklet, error) {
	material, ok := w.MaterialByID(materialID)
	if !ok {
		return w, fmt.Errorf("unknown material %q", materialID)
	}
	if page < 1 || float64(page) > material.Length {
		return w, fmt.Errorf("material %q has %v %s; page %d is out of range", material.Name, material.Length, material.Kind, page)
	}

	out := w.Clone()
	if out.PageDone == nil {
		out.PageDone = make(map[string]map[int]bool)
	}
	if out.PageDone[materialID] == nil {
		out.PageDone[materialID] = make(map[int]bool)
	}
	if out.PageDone[materialID][page] == completed {
		return out, nil
	}
	out.PageDone[materialID][page] = completed

	for i := range out.Subtasks {
		st := &out.Subtasks[i]
		if st.MaterialID != materialID {
			continue
		}
		length := material.Length
		if length <= 0 {
			length = 1
		}
		delta := st.Weight / length
		if !completed {
			delta = -delta
		}
		applyProgress(st, delta)
	}
	return out, nil
}

// applyProgress shifts a subtask's progress by delta, clamping to the valid
// range and keeping the completed flag consistent with it.
func applyProgress(st *models.Subtask, delta float64) {
	st.Progress += delta
	if st.Progress > st.Weight {
		st.Progress = st.Weight
	}
	if st.Progress < 0 {
		st.Progress = 0
	}
	st.Completed = st.Progress >= st.Weight
}
