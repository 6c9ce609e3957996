package settings

import (
	"path/filepath"
	"testing"

	"github.com/kendallross/studypace/internal/cli"
	"github.com/kendallross/studypace/internal/planner"
	"github.com/kendallross/studypace/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	ctx := &cli.Context{
		Store:   store,
		Planner: planner.New(),
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, cleanup
}

func TestSettingsCmd_List(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &SettingsCmd{List: true}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("settings list failed: %v", err)
	}
}

func TestSettingsCmd_UpdateTimezone(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	tz := "America/New_York"
	cmd := &SettingsCmd{Timezone: &tz}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if settings.Timezone != tz {
		t.Errorf("timezone = %q, want %q", settings.Timezone, tz)
	}
}

func TestSettingsCmd_RejectsInvalidTimezone(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	tz := "Not/AZone"
	cmd := &SettingsCmd{Timezone: &tz}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for invalid timezone")
	}
}

func TestSettingsCmd_RejectsInvalidWeightUnit(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	unit := "furlongs"
	cmd := &SettingsCmd{DefaultWeightUnit: &unit}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for invalid weight unit")
	}
}

func TestSettingsCmd_UpdateMultiple(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	lead := 3
	auto := false
	cmd := &SettingsCmd{DefaultLeadDays: &lead, AutoBackup: &auto}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if settings.DefaultLeadDays != 3 {
		t.Errorf("default lead days = %d, want 3", settings.DefaultLeadDays)
	}
	if settings.AutoBackup {
		t.Error("auto backup should be disabled")
	}
}
