package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kendallross/studypace/internal/backup"
	"github.com/kendallross/studypace/internal/logger"
	"github.com/kendallross/studypace/internal/models"
	"github.com/kendallross/studypace/internal/planner"
	"github.com/kendallross/studypace/internal/storage"
	"github.com/kendallross/studypace/internal/utils"
)

type Context struct {
	Store   storage.Provider
	Planner *planner.Planner
}

// TodayKey returns today's date key in the configured timezone.
func (c *Context) TodayKey() (string, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return "", fmt.Errorf("failed to get settings: %w", err)
	}
	return utils.GetTodayInTimezone(settings.Timezone)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	settings, err := c.Store.GetSettings()
	if err == nil && !settings.AutoBackup {
		return
	}
	if storage.IsPostgresConnString(c.Store.GetConfigPath()) {
		return // file backups only apply to the SQLite backend
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ReplanAndSave recomputes a worklet's plan as of today and persists it.
// Planning is treated as an atomic read-modify-write: the caller passes the
// freshly loaded worklet and nothing else touches it in between.
func (c *Context) ReplanAndSave(w models.Worklet) (models.Worklet, error) {
	today, err := c.TodayKey()
	if err != nil {
		return w, err
	}
	planned, err := c.Planner.Replan(w, today)
	if err != nil {
		return w, err
	}
	if err := c.Store.SaveWorklet(planned); err != nil {
		return w, fmt.Errorf("failed to save worklet: %w", err)
	}
	return planned, nil
}

// ParseWeekdays parses a comma-separated list of weekdays
func ParseWeekdays(s string) ([]time.Weekday, error) {
	parts := strings.Split(s, ",")
	var weekdays []time.Weekday

	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
		} else {
			// Try parsing as number (0=Sunday, 6=Saturday)
			num, err := strconv.Atoi(part)
			if err == nil && num >= 0 && num <= 6 {
				weekdays = append(weekdays, time.Weekday(num))
			} else {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
		}
	}

	return weekdays, nil
}
