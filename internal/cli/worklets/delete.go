package worklets

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/kendallross/studypace/internal/cli"
	"github.com/kendallross/studypace/internal/logger"
)

type DeleteCmd struct {
	ID  string `arg:"" help:"Worklet ID."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	w, err := ctx.Store.GetWorklet(c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		var confirmed bool
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete %q? It can be restored with 'studypace restore'.", w.Name)).
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

	if err := ctx.Store.DeleteWorklet(c.ID); err != nil {
		return err
	}
	logger.Info("Worklet deleted", "id", c.ID)
	fmt.Printf("Deleted %q\n", w.Name)
	return nil
}
