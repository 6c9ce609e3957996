package worklets

import (
	"fmt"

	"github.com/kendallross/studypace/internal/cli"
)

type ShowCmd struct {
	ID       string `arg:"" help:"Worklet ID."`
	Subtasks bool   `help:"Also show the subtask backlog."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	w, err := ctx.Store.GetWorklet(c.ID)
	if err != nil {
		return err
	}
	today, err := ctx.TodayKey()
	if err != nil {
		return err
	}

	fmt.Print(cli.RenderPlan(w, today))
	if c.Subtasks {
		fmt.Println()
		fmt.Print(cli.RenderSubtasks(w))
	}
	return nil
}
