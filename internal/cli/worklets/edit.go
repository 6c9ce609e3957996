package worklets

import (
	"fmt"

	"github.com/kendallross/studypace/internal/cli"
	"github.com/kendallross/studypace/internal/logger"
	"github.com/kendallross/studypace/internal/utils"
	"github.com/kendallross/studypace/internal/validation"
)

type EditCmd struct {
	ID                 string  `arg:"" help:"Worklet ID."`
	Name               *string `help:"New name."`
	Deadline           *string `help:"New deadline as 'YYYY-MM-DD' or 'YYYY-MM-DD HH:MM'."`
	LeadDays           *int    `help:"New lead days."`
	IncludeDeadlineDay *bool   `help:"Schedule work on the deadline day itself."`
	Weekdays           *string `help:"Restrict work to these weekdays (comma-separated). Empty string lifts the restriction."`
	Color              *string `help:"New display color."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	w, err := ctx.Store.GetWorklet(c.ID)
	if err != nil {
		return err
	}

	if c.Name != nil {
		w.Name = *c.Name
	}
	if c.Color != nil {
		w.Color = *c.Color
	}

	// Window parameter changes reset off days and any pending undo snapshot.
	// Effort overrides survive since the window builder merges them by date.
	windowChanged := false

	if c.Deadline != nil {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		loc, err := utils.LoadLocation(settings.Timezone)
		if err != nil {
			return err
		}
		deadline, err := parseDeadline(*c.Deadline, loc)
		if err != nil {
			return err
		}
		w.Deadline = deadline
		windowChanged = true
	}
	if c.LeadDays != nil {
		w.LeadDays = *c.LeadDays
		windowChanged = true
	}
	if c.IncludeDeadlineDay != nil {
		w.IncludeDeadlineDay = *c.IncludeDeadlineDay
		windowChanged = true
	}
	if c.Weekdays != nil {
		if *c.Weekdays == "" {
			w.UseSpecificWeekdays = false
			w.SelectedWeekdays = nil
		} else {
			weekdays, err := cli.ParseWeekdays(*c.Weekdays)
			if err != nil {
				return err
			}
			w.UseSpecificWeekdays = true
			w.SelectedWeekdays = weekdays
		}
		windowChanged = true
	}

	if windowChanged {
		w.OffDays = nil
		w.UndoState = nil
	}

	if result := validation.ValidateWorklet(w); result.HasIssues() {
		return fmt.Errorf("%s", result.FormatReport())
	}

	ctx.PerformAutomaticBackup()

	updated, err := ctx.ReplanAndSave(w)
	if err != nil {
		return err
	}

	logger.Info("Worklet updated", "id", updated.ID)
	fmt.Printf("Updated %q with %d work days\n", updated.Name, len(updated.DailyTasks))
	return nil
}
