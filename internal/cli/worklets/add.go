package worklets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kendallross/studypace/internal/cli"
	"github.com/kendallross/studypace/internal/constants"
	"github.com/kendallross/studypace/internal/logger"
	"github.com/kendallross/studypace/internal/models"
	"github.com/kendallross/studypace/internal/utils"
	"github.com/kendallross/studypace/internal/validation"
)

type AddCmd struct {
	Name               string   `arg:"" help:"Worklet name."`
	Kind               string   `help:"Worklet kind." enum:"assignment,exam" default:"assignment"`
	Deadline           string   `required:"" help:"Deadline as 'YYYY-MM-DD' or 'YYYY-MM-DD HH:MM'."`
	LeadDays           int      `help:"Days before the deadline to start working. Defaults to the configured setting." default:"-1"`
	IncludeDeadlineDay bool     `help:"Schedule work on the deadline day itself."`
	Weekdays           string   `help:"Restrict work to these weekdays (comma-separated, e.g. mon,wed,fri)."`
	WeightUnit         string   `help:"Unit for subtask weights (pages, minutes, units). Defaults to the configured setting."`
	Color              string   `help:"Display color."`
	Subtask            []string `help:"Subtask as name:weight or name:weight:materialID. Repeatable." sep:"none"`
	Material           []string `help:"Material as name:kind:length. Repeatable." sep:"none"`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return err
	}
	deadline, err := parseDeadline(c.Deadline, loc)
	if err != nil {
		return err
	}

	leadDays := c.LeadDays
	if leadDays < 0 {
		leadDays = settings.DefaultLeadDays
	}
	weightUnit := c.WeightUnit
	if weightUnit == "" {
		weightUnit = settings.DefaultWeightUnit
	}

	w := models.Worklet{
		ID:                 uuid.New().String(),
		Kind:               constants.WorkletKind(c.Kind),
		Name:               c.Name,
		Color:              c.Color,
		WeightUnit:         constants.WeightUnit(weightUnit),
		Deadline:           deadline,
		LeadDays:           leadDays,
		IncludeDeadlineDay: c.IncludeDeadlineDay,
		CreatedAt:          time.Now(),
	}

	if c.Weekdays != "" {
		weekdays, err := cli.ParseWeekdays(c.Weekdays)
		if err != nil {
			return err
		}
		w.UseSpecificWeekdays = true
		w.SelectedWeekdays = weekdays
	}

	for _, spec := range c.Material {
		mat, err := parseMaterial(spec)
		if err != nil {
			return err
		}
		w.Materials = append(w.Materials, mat)
	}
	for _, spec := range c.Subtask {
		st, err := parseSubtask(spec, w.Materials)
		if err != nil {
			return err
		}
		w.Subtasks = append(w.Subtasks, st)
	}

	if result := validation.ValidateWorklet(w); result.HasIssues() {
		return fmt.Errorf("%s", result.FormatReport())
	}

	ctx.PerformAutomaticBackup()

	planned, err := ctx.ReplanAndSave(w)
	if err != nil {
		return err
	}

	logger.Info("Worklet added", "id", planned.ID, "name", planned.Name)
	fmt.Printf("Added %s %q (ID: %s) with %d work days\n", planned.Kind, planned.Name, planned.ID, len(planned.DailyTasks))
	return nil
}

func parseDeadline(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(constants.DateTimeFormat, s, loc); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(constants.DateFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid deadline %q: use 'YYYY-MM-DD' or 'YYYY-MM-DD HH:MM'", s)
	}
	// A bare date means end of that day
	return t.Add(23*time.Hour + 59*time.Minute), nil
}

// parseSubtask parses "name:weight" or "name:weight:material-name".
func parseSubtask(spec string, materials []models.Material) (models.Subtask, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return models.Subtask{}, fmt.Errorf("invalid subtask %q: use name:weight or name:weight:material", spec)
	}
	weight, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return models.Subtask{}, fmt.Errorf("invalid subtask weight in %q: %w", spec, err)
	}

	st := models.Subtask{
		ID:     uuid.New().String(),
		Name:   parts[0],
		Weight: weight,
	}
	if len(parts) == 3 {
		for _, mat := range materials {
			if mat.Name == parts[2] || mat.ID == parts[2] {
				st.MaterialID = mat.ID
				break
			}
		}
		if st.MaterialID == "" {
			return models.Subtask{}, fmt.Errorf("subtask %q references unknown material %q", parts[0], parts[2])
		}
	}
	return st, nil
}

// parseMaterial parses "name:kind:length".
func parseMaterial(spec string) (models.Material, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return models.Material{}, fmt.Errorf("invalid material %q: use name:kind:length", spec)
	}
	kind := models.MaterialKind(parts[1])
	switch kind {
	case models.MaterialPages, models.MaterialMinutes, models.MaterialUnits:
	default:
		return models.Material{}, fmt.Errorf("invalid material kind %q: use pages, minutes, or units", parts[1])
	}
	length, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || length <= 0 {
		return models.Material{}, fmt.Errorf("invalid material length in %q", spec)
	}
	return models.Material{
		ID:     uuid.New().String(),
		Name:   parts[0],
		Kind:   kind,
		Length: length,
	}, nil
}
