package plans

import (
	"fmt"
	"time"

	"github.com/kendallross/studypace/internal/cli"
	"github.com/kendallross/studypace/internal/logger"
	"github.com/kendallross/studypace/internal/utils"
)

type DoneCmd struct {
	ID   string `arg:"" help:"Worklet ID."`
	Date string `arg:"" optional:"" help:"Day to mark done (YYYY-MM-DD). Defaults to today."`
}

func (c *DoneCmd) Run(ctx *cli.Context) error {
	return setDayCompletion(ctx, c.ID, c.Date, true)
}

type UndoneCmd struct {
	ID   string `arg:"" help:"Worklet ID."`
	Date string `arg:"" optional:"" help:"Day to mark not done (YYYY-MM-DD). Defaults to today."`
}

func (c *UndoneCmd) Run(ctx *cli.Context) error {
	return setDayCompletion(ctx, c.ID, c.Date, false)
}

func setDayCompletion(ctx *cli.Context, id, date string, completed bool) error {
	if date == "" {
		today, err := ctx.TodayKey()
		if err != nil {
			return err
		}
		date = today
	} else if _, err := utils.ParseDateKey(date, time.UTC); err != nil {
		return err
	}

	w, err := ctx.Store.GetWorklet(id)
	if err != nil {
		return err
	}

	updated, err := ctx.Planner.ReconcileDayCompletion(w, date, completed)
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveWorklet(updated); err != nil {
		return fmt.Errorf("failed to save worklet: %w", err)
	}

	state := "done"
	if !completed {
		state = "not done"
	}
	logger.Info("Day completion updated", "id", id, "date", date, "state", state)
	fmt.Printf("Marked %s %s for %q\n", date, state, updated.Name)
	return nil
}
