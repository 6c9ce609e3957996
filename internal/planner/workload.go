package planner

import (
	"github.com/kendallross/studypace/internal/constants"
	"github.com/kendallross/studypace/internal/models"
)

// Normalize converts raw per-day efforts into a percentage distribution
// summing to 100 across the active days. Days present in offDays are absent
// from the sum entirely, which is different from a day whose effort is zero:
// the latter still appears in the output with a zero share.
//
// If every active day has zero effort, the distribution falls back to an
// equal split so a fully-zeroed schedule never collapses to nothing. Zero
// active days yields an empty distribution.
func (p *Planner) Normalize(efforts []DayEffort, offDays map[string]bool) []models.DailyWorkload {
	var active []DayEffort
	total := 0.0
	for _, d := range efforts {
		if offDays[d.Date] {
			continue
		}
		active = append(active, d)
		if d.Effort > 0 {
			total += d.Effort
		}
	}
	if len(active) == 0 {
		return nil
	}

	workload := make([]models.DailyWorkload, len(active))
	for i, d := range active {
		pct := 100.0 / float64(len(active)) // all-zero fallback: equal split
		if total > 0 {
			effort := d.Effort
			if effort < 0 {
				effort = 0
			}
			pct = effort / total * 100.0
		}
		workload[i] = models.DailyWorkload{Date: d.Date, Percentage: pct}
	}
	return workload
}

// DistributeEvenly resets every non-off day's raw effort to the default so
// that a subsequent Normalize yields an equal split.
func (p *Planner) DistributeEvenly(efforts []DayEffort, offDays map[string]bool) []DayEffort {
	out := make([]DayEffort, len(efforts))
	for i, d := range efforts {
		out[i] = d
		if !offDays[d.Date] {
			out[i].Effort = constants.DefaultDayEffort
		}
	}
	return out
}
