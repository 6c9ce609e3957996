package settings

import (
	"fmt"

	"github.com/kendallross/studypace/internal/cli"
	"github.com/kendallross/studypace/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone                  *string `help:"IANA timezone used to determine 'today' (e.g. America/New_York)."`
	DefaultLeadDays           *int    `help:"Default days before a deadline to start working."`
	DefaultWeightUnit         *string `help:"Default unit for subtask weights (pages, minutes, units)."`
	IncludeDeadlineDayDefault *bool   `help:"Schedule work on deadline days by default."`
	AutoBackup                *bool   `help:"Create an automatic backup before mutating commands."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Timezone:                     %s\n", settings.Timezone)
		fmt.Printf("  Default Lead Days:            %d\n", settings.DefaultLeadDays)
		fmt.Printf("  Default Weight Unit:          %s\n", settings.DefaultWeightUnit)
		fmt.Printf("  Include Deadline Day Default: %v\n", settings.IncludeDeadlineDayDefault)
		fmt.Printf("  Auto Backup:                  %v\n", settings.AutoBackup)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone %q", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.DefaultLeadDays != nil {
		if *c.DefaultLeadDays < 0 {
			return fmt.Errorf("default lead days cannot be negative")
		}
		settings.DefaultLeadDays = *c.DefaultLeadDays
		updated = true
	}
	if c.DefaultWeightUnit != nil {
		switch *c.DefaultWeightUnit {
		case "pages", "minutes", "units":
		default:
			return fmt.Errorf("invalid weight unit %q: use pages, minutes, or units", *c.DefaultWeightUnit)
		}
		settings.DefaultWeightUnit = *c.DefaultWeightUnit
		updated = true
	}
	if c.IncludeDeadlineDayDefault != nil {
		settings.IncludeDeadlineDayDefault = *c.IncludeDeadlineDayDefault
		updated = true
	}
	if c.AutoBackup != nil {
		settings.AutoBackup = *c.AutoBackup
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
