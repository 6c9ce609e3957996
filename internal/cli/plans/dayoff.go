package plans

import (
	"fmt"
	"time"

	"github.com/kendallross/studypace/internal/cli"
	"github.com/kendallross/studypace/internal/logger"
	"github.com/kendallross/studypace/internal/utils"
)

type DayoffCmd struct {
	ID    string `arg:"" help:"Worklet ID."`
	Date  string `arg:"" help:"Day to toggle (YYYY-MM-DD)."`
	Clear bool   `help:"Force the day back to working instead of toggling."`
}

// Run toggles the given date between working and off. Off days are removed
// from the workload entirely and their share moves to the remaining days.
func (c *DayoffCmd) Run(ctx *cli.Context) error {
	if _, err := utils.ParseDateKey(c.Date, time.UTC); err != nil {
		return err
	}

	w, err := ctx.Store.GetWorklet(c.ID)
	if err != nil {
		return err
	}
	if w.OffDays == nil {
		w.OffDays = make(map[string]bool)
	}

	if c.Clear || w.OffDays[c.Date] {
		delete(w.OffDays, c.Date)
	} else {
		w.OffDays[c.Date] = true
	}

	updated, err := ctx.ReplanAndSave(w)
	if err != nil {
		return err
	}

	state := "working"
	if updated.OffDays[c.Date] {
		state = "off"
	}
	logger.Info("Day toggled", "id", updated.ID, "date", c.Date, "state", state)
	fmt.Printf("%s is now %s for %q\n", c.Date, state, updated.Name)
	return nil
}
