package models

import (
	"time"

	"github.com/kendallross/studypace/internal/constants"
)

// Worklet is a deadline-driven schedulable item. Assignments and exams share
// the same planning behavior; the kind is a display tag only.
type Worklet struct {
	ID         string                `json:"id"`
	Kind       constants.WorkletKind `json:"kind"`
	Name       string                `json:"name"`
	Color      string                `json:"color,omitempty"`
	WeightUnit constants.WeightUnit  `json:"weight_unit"`

	// Scheduling window parameters
	Deadline            time.Time      `json:"deadline"`
	LeadDays            int            `json:"lead_days"`
	IncludeDeadlineDay  bool           `json:"include_deadline_day"`
	UseSpecificWeekdays bool           `json:"use_specific_weekdays"`
	SelectedWeekdays    []time.Weekday `json:"selected_weekdays,omitempty"`

	// Per-day schedule state, keyed by date (YYYY-MM-DD)
	Efforts map[string]float64 `json:"efforts,omitempty"`
	OffDays map[string]bool    `json:"off_days,omitempty"`

	Subtasks  []Subtask  `json:"subtasks"`
	Materials []Material `json:"materials,omitempty"`

	// PageDone tracks per-page completion per material
	PageDone map[string]map[int]bool `json:"page_done,omitempty"`

	DailyWorkload []DailyWorkload `json:"daily_workload"`
	DailyTasks    []DailyTask     `json:"daily_tasks"`
	UndoState     *UndoState      `json:"undo_state,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Clone returns a deep copy of the worklet. Planning operations are
// copy-on-write: they clone, modify the clone, and return it, so a caller
// holding the previous value is unaffected.
func (w Worklet) Clone() Worklet {
	c := w
	c.SelectedWeekdays = append([]time.Weekday(nil), w.SelectedWeekdays...)
	c.Subtasks = append([]Subtask(nil), w.Subtasks...)
	c.Materials = append([]Material(nil), w.Materials...)
	c.DailyWorkload = append([]DailyWorkload(nil), w.DailyWorkload...)
	c.DailyTasks = CloneDailyTasks(w.DailyTasks)

	if w.Efforts != nil {
		c.Efforts = make(map[string]float64, len(w.Efforts))
		for k, v := range w.Efforts {
			c.Efforts[k] = v
		}
	}
	if w.OffDays != nil {
		c.OffDays = make(map[string]bool, len(w.OffDays))
		for k, v := range w.OffDays {
			c.OffDays[k] = v
		}
	}
	if w.PageDone != nil {
		c.PageDone = make(map[string]map[int]bool, len(w.PageDone))
		for id, pages := range w.PageDone {
			m := make(map[int]bool, len(pages))
			for p, done := range pages {
				m[p] = done
			}
			c.PageDone[id] = m
		}
	}
	if w.UndoState != nil {
		c.UndoState = &UndoState{
			OriginalDailyTasks:    CloneDailyTasks(w.UndoState.OriginalDailyTasks),
			OriginalDailyWorkload: append([]DailyWorkload(nil), w.UndoState.OriginalDailyWorkload...),
		}
	}
	return c
}

// CloneDailyTasks deep-copies a task slice including each day's segments.
func CloneDailyTasks(tasks []DailyTask) []DailyTask {
	if tasks == nil {
		return nil
	}
	out := make([]DailyTask, len(tasks))
	for i, t := range tasks {
		out[i] = t
		if t.WorkSegments != nil {
			segs := make([]WorkSegment, len(t.WorkSegments))
			copy(segs, t.WorkSegments)
			out[i].WorkSegments = segs
		}
	}
	return out
}

// SubtaskByID returns a pointer to the subtask with the given ID, or nil.
func (w *Worklet) SubtaskByID(id string) *Subtask {
	for i := range w.Subtasks {
		if w.Subtasks[i].ID == id {
			return &w.Subtasks[i]
		}
	}
	return nil
}

// MaterialByID returns the material with the given ID, or false.
func (w *Worklet) MaterialByID(id string) (Material, bool) {
	for _, m := range w.Materials {
		if m.ID == id {
			return m, true
		}
	}
	return Material{}, false
}

// TaskForDate returns a pointer to the daily task for the given date key, or nil.
func (w *Worklet) TaskForDate(dateKey string) *DailyTask {
	for i := range w.DailyTasks {
		if w.DailyTasks[i].Date == dateKey {
			return &w.DailyTasks[i]
		}
	}
	return nil
}
