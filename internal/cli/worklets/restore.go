package worklets

import (
	"fmt"

	"github.com/kendallross/studypace/internal/cli"
	"github.com/kendallross/studypace/internal/logger"
)

type RestoreCmd struct {
	ID string `arg:"" help:"Worklet ID."`
}

func (c *RestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.RestoreWorklet(c.ID); err != nil {
		return err
	}

	// Replan on restore so the schedule reflects the days lost while deleted.
	w, err := ctx.Store.GetWorklet(c.ID)
	if err != nil {
		return err
	}
	restored, err := ctx.ReplanAndSave(w)
	if err != nil {
		return err
	}

	logger.Info("Worklet restored", "id", c.ID)
	fmt.Printf("Restored %q with %d work days\n", restored.Name, len(restored.DailyTasks))
	return nil
}
