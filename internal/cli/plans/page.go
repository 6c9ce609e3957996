package plans

import (
	"fmt"

	"github.com/kendallross/studypace/internal/cli"
	"github.com/kendallross/studypace/internal/logger"
)

type PageCmd struct {
	ID       string `arg:"" help:"Worklet ID."`
	Material string `arg:"" help:"Material name or ID."`
	Page     int    `arg:"" help:"Page (or minute/unit) number to toggle."`
	Undone   bool   `help:"Mark the page as not done instead."`
}

// Run toggles per-page completion for a material and rolls the resulting
// progress into every subtask backed by that material.
func (c *PageCmd) Run(ctx *cli.Context) error {
	w, err := ctx.Store.GetWorklet(c.ID)
	if err != nil {
		return err
	}

	materialID := c.Material
	if _, ok := w.MaterialByID(materialID); !ok {
		for _, mat := range w.Materials {
			if mat.Name == c.Material {
				materialID = mat.ID
				break
			}
		}
	}

	updated, err := ctx.Planner.ReconcilePageCompletion(w, materialID, c.Page, !c.Undone)
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveWorklet(updated); err != nil {
		return fmt.Errorf("failed to save worklet: %w", err)
	}

	state := "done"
	if c.Undone {
		state = "not done"
	}
	logger.Info("Page completion updated", "id", c.ID, "material", materialID, "page", c.Page, "state", state)
	fmt.Printf("Marked page %d of %s %s\n", c.Page, c.Material, state)
	return nil
}
