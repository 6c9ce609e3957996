package planner

import (
	"time"

	"github.com/kendallross/studypace/internal/constants"
	"github.com/kendallross/studypace/internal/utils"
)

// WindowParams describes how the set of eligible work days is generated.
type WindowParams struct {
	Deadline           time.Time
	Today              time.Time // clamps the lead window so it never starts in the past
	LeadDays           int
	IncludeDeadlineDay bool
	RestrictToWeekdays bool
	SelectedWeekdays   []time.Weekday
}

// DayEffort is one eligible work day with its raw (un-normalized) effort weight.
type DayEffort struct {
	Date   string // YYYY-MM-DD format
	Effort float64
}

// BuildWindow computes the ordered list of calendar dates eligible for work.
// Each date carries the raw effort previously set by the user for that date
// key, or the default effort for dates new to the window, so user edits
// survive a window recompute. An empty result is a valid, displayable state,
// not an error: a deadline with lead time 0 and the deadline day excluded
// legitimately has no work days.
func (p *Planner) BuildWindow(params WindowParams, previousEfforts map[string]float64) []DayEffort {
	if params.Deadline.IsZero() {
		return nil
	}

	deadline := utils.Midnight(params.Deadline)

	leadDays := params.LeadDays
	if leadDays < 0 {
		leadDays = 0
	}
	if !params.Today.IsZero() {
		if daysUntil := utils.DaysBetween(params.Today, deadline); leadDays > daysUntil {
			leadDays = daysUntil
		}
		if leadDays < 0 {
			leadDays = 0
		}
	}

	start := utils.AddDays(deadline, -leadDays)
	lastWorkDay := deadline
	if !params.IncludeDeadlineDay {
		lastWorkDay = utils.AddDays(deadline, -1)
	}

	var window []DayEffort
	for d := start; !d.After(lastWorkDay); d = utils.AddDays(d, 1) {
		if params.RestrictToWeekdays && !weekdaySelected(d.Weekday(), params.SelectedWeekdays) {
			continue
		}
		key := utils.DateKey(d)
		effort := constants.DefaultDayEffort
		if prev, ok := previousEfforts[key]; ok {
			effort = prev
		}
		window = append(window, DayEffort{Date: key, Effort: effort})
	}
	return window
}

func weekdaySelected(wd time.Weekday, selected []time.Weekday) bool {
	for _, s := range selected {
		if s == wd {
			return true
		}
	}
	return false
}
