package plans

import (
	"fmt"

	"github.com/kendallross/studypace/internal/cli"
	"github.com/kendallross/studypace/internal/logger"
)

type PlanCmd struct {
	ID string `arg:"" help:"Worklet ID."`
}

// Run recomputes the worklet's schedule from today and prints it.
func (c *PlanCmd) Run(ctx *cli.Context) error {
	w, err := ctx.Store.GetWorklet(c.ID)
	if err != nil {
		return err
	}

	planned, err := ctx.ReplanAndSave(w)
	if err != nil {
		return err
	}

	today, err := ctx.TodayKey()
	if err != nil {
		return err
	}

	logger.Info("Plan recomputed", "id", planned.ID, "days", len(planned.DailyTasks))
	fmt.Print(cli.RenderPlan(planned, today))
	return nil
}
