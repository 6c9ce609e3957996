package plans

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/kendallross/studypace/internal/cli"
	"github.com/kendallross/studypace/internal/logger"
	"github.com/kendallross/studypace/internal/utils"
)

type RedistributeCmd struct {
	ID   string `arg:"" help:"Worklet ID."`
	Date string `arg:"" optional:"" help:"Missed day to clear (YYYY-MM-DD). Defaults to yesterday."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

// Run clears a missed day's workload and spreads it over the remaining days.
// Only one redistribution can be pending at a time; undo it before the next.
func (c *RedistributeCmd) Run(ctx *cli.Context) error {
	today, err := ctx.TodayKey()
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		t, err := utils.ParseDateKey(today, time.UTC)
		if err != nil {
			return err
		}
		date = utils.DateKey(utils.AddDays(t, -1))
	} else if _, err := utils.ParseDateKey(date, time.UTC); err != nil {
		return err
	}

	if date > today {
		return fmt.Errorf("%s is still in the future; only a missed day can be redistributed", date)
	}

	w, err := ctx.Store.GetWorklet(c.ID)
	if err != nil {
		return err
	}

	if t := w.TaskForDate(date); t != nil && t.Completed {
		return fmt.Errorf("%s is already completed; nothing to redistribute", date)
	}

	if !c.Yes {
		var confirmed bool
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Redistribute %s across the remaining days of %q?", date, w.Name)).
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	updated, err := ctx.Planner.Redistribute(w, date, today)
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveWorklet(updated); err != nil {
		return fmt.Errorf("failed to save worklet: %w", err)
	}

	logger.Info("Workload redistributed", "id", c.ID, "date", date)
	fmt.Print(cli.RenderPlan(updated, today))
	return nil
}
