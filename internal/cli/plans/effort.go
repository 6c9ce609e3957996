package plans

import (
	"fmt"
	"time"

	"github.com/kendallross/studypace/internal/cli"
	"github.com/kendallross/studypace/internal/logger"
	"github.com/kendallross/studypace/internal/planner"
	"github.com/kendallross/studypace/internal/utils"
)

type EffortCmd struct {
	Set  EffortSetCmd  `cmd:"" help:"Set the relative effort for one day."`
	Even EffortEvenCmd `cmd:"" help:"Reset all non-off days to equal effort."`
}

type EffortSetCmd struct {
	ID     string  `arg:"" help:"Worklet ID."`
	Date   string  `arg:"" help:"Day to adjust (YYYY-MM-DD)."`
	Effort float64 `arg:"" help:"Relative effort for the day. Zero keeps the day in the schedule with no work."`
}

func (c *EffortSetCmd) Run(ctx *cli.Context) error {
	if _, err := utils.ParseDateKey(c.Date, time.UTC); err != nil {
		return err
	}
	if c.Effort < 0 {
		return fmt.Errorf("effort cannot be negative")
	}

	w, err := ctx.Store.GetWorklet(c.ID)
	if err != nil {
		return err
	}
	if w.Efforts == nil {
		w.Efforts = make(map[string]float64)
	}
	w.Efforts[c.Date] = c.Effort

	updated, err := ctx.ReplanAndSave(w)
	if err != nil {
		return err
	}

	logger.Info("Effort updated", "id", updated.ID, "date", c.Date, "effort", c.Effort)
	fmt.Printf("Set effort for %s to %.1f\n", c.Date, c.Effort)
	return nil
}

type EffortEvenCmd struct {
	ID string `arg:"" help:"Worklet ID."`
}

func (c *EffortEvenCmd) Run(ctx *cli.Context) error {
	w, err := ctx.Store.GetWorklet(c.ID)
	if err != nil {
		return err
	}

	efforts := make([]planner.DayEffort, 0, len(w.Efforts))
	for date, effort := range w.Efforts {
		efforts = append(efforts, planner.DayEffort{Date: date, Effort: effort})
	}
	for _, de := range ctx.Planner.DistributeEvenly(efforts, w.OffDays) {
		w.Efforts[de.Date] = de.Effort
	}

	updated, err := ctx.ReplanAndSave(w)
	if err != nil {
		return err
	}

	logger.Info("Effort evened", "id", updated.ID)
	fmt.Printf("Reset %q to even effort across work days\n", updated.Name)
	return nil
}
