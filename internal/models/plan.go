package models

// DailyWorkload is one day's percentage share of the total remaining work.
// Across a worklet the percentages sum to 100 whenever at least one active
// day exists.
type DailyWorkload struct {
	Date       string  `json:"date"` // YYYY-MM-DD format
	Percentage float64 `json:"percentage"`
}

// WorkSegment is a concrete slice [Start, End) of one subtask's unit space
// consumed on a single day.
type WorkSegment struct {
	SubtaskID  string  `json:"subtask_id"`
	MaterialID string  `json:"material_id,omitempty"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
}

// Size returns the amount of work the segment covers.
func (w WorkSegment) Size() float64 {
	return w.End - w.Start
}

// DailyTask is the concrete assignment for one active day: which slices of
// which subtasks to work through, and the absolute quantity they add up to.
type DailyTask struct {
	Date         string        `json:"date"` // YYYY-MM-DD format
	Title        string        `json:"title"`
	Completed    bool          `json:"completed"`
	WeightForDay float64       `json:"weight_for_day"`
	WorkSegments []WorkSegment `json:"work_segments"`
}

// UndoState snapshots a worklet's plan immediately before a redistribution.
// Its presence marks the worklet as currently redistributed; at most one
// level is ever kept.
type UndoState struct {
	OriginalDailyTasks    []DailyTask     `json:"original_daily_tasks"`
	OriginalDailyWorkload []DailyWorkload `json:"original_daily_workload"`
}
