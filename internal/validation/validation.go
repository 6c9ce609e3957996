package validation

import (
	"fmt"
	"time"

	"github.com/kendallross/studypace/internal/models"
)

// IssueType represents the type of validation issue
type IssueType string

const (
	IssueMissingName      IssueType = "missing_name"
	IssueMissingDeadline  IssueType = "missing_deadline"
	IssueNegativeLead     IssueType = "negative_lead"
	IssueNoWeekdays       IssueType = "no_weekdays"
	IssueBadSubtaskWeight IssueType = "bad_subtask_weight"
	IssueProgressOverrun  IssueType = "progress_overrun"
	IssueUnknownMaterial  IssueType = "unknown_material"
)

// Issue represents a detected problem with a worklet's definition
type Issue struct {
	Type        IssueType
	Description string
	Item        string // subtask or material name involved, when applicable
}

// Result contains all detected issues
type Result struct {
	Issues []Issue
}

// HasIssues returns true if there are any issues
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// FormatReport returns a human-readable report of all issues
func (r *Result) FormatReport() string {
	if !r.HasIssues() {
		return "No issues detected."
	}
	report := "Issues detected:\n"
	for _, issue := range r.Issues {
		report += fmt.Sprintf("- %s\n", issue.Description)
	}
	return report
}

// ValidateWorklet checks a worklet's definition before it is planned and
// saved. Planning itself degrades gracefully (an empty window is a valid
// state), so these checks exist to catch user input mistakes early, not to
// protect the planner.
func ValidateWorklet(w models.Worklet) Result {
	var result Result

	if w.Name == "" {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueMissingName,
			Description: "worklet has no name",
		})
	}
	if w.Deadline.IsZero() {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueMissingDeadline,
			Description: "worklet has no deadline",
		})
	}
	if w.LeadDays < 0 {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueNegativeLead,
			Description: fmt.Sprintf("lead days must not be negative (got %d)", w.LeadDays),
		})
	}
	if w.UseSpecificWeekdays && len(w.SelectedWeekdays) == 0 {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueNoWeekdays,
			Description: "weekday restriction enabled but no weekdays selected",
		})
	}

	for _, st := range w.Subtasks {
		if st.Weight <= 0 {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueBadSubtaskWeight,
				Description: fmt.Sprintf("subtask %q must have a positive weight (got %v)", st.Name, st.Weight),
				Item:        st.Name,
			})
		}
		if st.Progress < 0 || st.Progress > st.Weight {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueProgressOverrun,
				Description: fmt.Sprintf("subtask %q progress %v is outside [0, %v]", st.Name, st.Progress, st.Weight),
				Item:        st.Name,
			})
		}
		if st.MaterialID != "" {
			if _, ok := w.MaterialByID(st.MaterialID); !ok {
				result.Issues = append(result.Issues, Issue{
					Type:        IssueUnknownMaterial,
					Description: fmt.Sprintf("subtask %q references unknown material %q", st.Name, st.MaterialID),
					Item:        st.Name,
				})
			}
		}
	}

	return result
}

// ValidateWeekdays checks that every weekday value is within Sunday..Saturday.
func ValidateWeekdays(weekdays []time.Weekday) error {
	for _, wd := range weekdays {
		if wd < time.Sunday || wd > time.Saturday {
			return fmt.Errorf("invalid weekday value: %d", wd)
		}
	}
	return nil
}
