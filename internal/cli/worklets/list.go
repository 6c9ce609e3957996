package worklets

import (
	"fmt"
	"sort"

	"github.com/kendallross/studypace/internal/cli"
	"github.com/kendallross/studypace/internal/constants"
	"github.com/kendallross/studypace/internal/models"
)

type ListCmd struct {
	All  bool   `help:"Include soft-deleted worklets."`
	Kind string `help:"Filter by kind." enum:"assignment,exam," default:""`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	var worklets []models.Worklet
	var err error
	if c.All {
		worklets, err = ctx.Store.GetAllWorkletsIncludingDeleted()
	} else {
		worklets, err = ctx.Store.GetAllWorklets()
	}
	if err != nil {
		return err
	}

	if c.Kind != "" {
		filtered := worklets[:0]
		for _, w := range worklets {
			if string(w.Kind) == c.Kind {
				filtered = append(filtered, w)
			}
		}
		worklets = filtered
	}

	if len(worklets) == 0 {
		fmt.Println("No worklets found. Add one with 'studypace add'.")
		return nil
	}

	sort.Slice(worklets, func(i, j int) bool {
		return worklets[i].Deadline.Before(worklets[j].Deadline)
	})

	today, err := ctx.TodayKey()
	if err != nil {
		return err
	}

	for _, w := range worklets {
		remaining, total := progressTotals(w)
		status := fmt.Sprintf("%.0f/%.0f %s remaining", remaining, total, w.WeightUnit)
		if remaining <= 0 && total > 0 {
			status = "complete"
		}
		line := fmt.Sprintf("%-36s  %-10s  due %s  %s", w.ID, w.Kind, w.Deadline.Format(constants.DateFormat), w.Name)
		if w.DeletedAt != nil {
			line += "  (deleted)"
		} else if w.Deadline.Format(constants.DateFormat) < today && remaining > 0 {
			line += "  (overdue)"
		}
		fmt.Printf("%s  [%s]\n", line, status)
	}
	return nil
}

func progressTotals(w models.Worklet) (remaining, total float64) {
	for _, st := range w.Subtasks {
		total += st.Weight
		if !st.Completed {
			remaining += st.Remaining()
		}
	}
	return remaining, total
}
