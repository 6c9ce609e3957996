package plans

import (
	"errors"
	"fmt"

	"github.com/kendallross/studypace/internal/cli"
	"github.com/kendallross/studypace/internal/logger"
	"github.com/kendallross/studypace/internal/planner"
)

type UndoCmd struct {
	ID string `arg:"" help:"Worklet ID."`
}

// Run reverts the most recent redistribution, restoring the exact schedule
// that preceded it.
func (c *UndoCmd) Run(ctx *cli.Context) error {
	w, err := ctx.Store.GetWorklet(c.ID)
	if err != nil {
		return err
	}

	restored, err := ctx.Planner.UndoRedistribute(w)
	if errors.Is(err, planner.ErrNothingToUndo) {
		// Nothing pending is not a failure, just a disabled control
		fmt.Println("Nothing to undo")
		return nil
	}
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveWorklet(restored); err != nil {
		return fmt.Errorf("failed to save worklet: %w", err)
	}

	today, err := ctx.TodayKey()
	if err != nil {
		return err
	}

	logger.Info("Redistribution undone", "id", c.ID)
	fmt.Print(cli.RenderPlan(restored, today))
	return nil
}
