package worklets

import (
	"path/filepath"
	"testing"
	"time"

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

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestAddCmd_CreatesPlannedWorklet(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &AddCmd{
		Name:     "Essay",
		Kind:     "assignment",
		Deadline: futureDate(7),
		LeadDays: 5,
		Subtask:  []string{"Draft:10", "Edit:5"},
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	worklets, err := ctx.Store.GetAllWorklets()
	if err != nil {
		t.Fatalf("failed to list worklets: %v", err)
	}
	if len(worklets) != 1 {
		t.Fatalf("expected 1 worklet, got %d", len(worklets))
	}

	w := worklets[0]
	if len(w.Subtasks) != 2 {
		t.Errorf("expected 2 subtasks, got %d", len(w.Subtasks))
	}
	if len(w.DailyTasks) == 0 {
		t.Error("expected the worklet to be planned on add")
	}
	if len(w.DailyWorkload) != len(w.DailyTasks) {
		t.Errorf("workload has %d days, tasks have %d", len(w.DailyWorkload), len(w.DailyTasks))
	}
}

func TestAddCmd_RejectsInvalidSubtask(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &AddCmd{
		Name:     "Essay",
		Kind:     "assignment",
		Deadline: futureDate(7),
		Subtask:  []string{"Draft:-10"},
	}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for negative subtask weight")
	}
}

func TestEditCmd_DeadlineChangeResetsOffDays(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	add := &AddCmd{
		Name:     "Essay",
		Kind:     "assignment",
		Deadline: futureDate(7),
		LeadDays: 5,
		Subtask:  []string{"Draft:10"},
	}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	worklets, err := ctx.Store.GetAllWorklets()
	if err != nil {
		t.Fatalf("failed to list worklets: %v", err)
	}
	w := worklets[0]

	// Mark a day off, then move the deadline
	w.OffDays = map[string]bool{w.DailyTasks[0].Date: true}
	if _, err := ctx.ReplanAndSave(w); err != nil {
		t.Fatalf("replan failed: %v", err)
	}

	newDeadline := futureDate(10)
	edit := &EditCmd{ID: w.ID, Deadline: &newDeadline}
	if err := edit.Run(ctx); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	updated, err := ctx.Store.GetWorklet(w.ID)
	if err != nil {
		t.Fatalf("failed to load worklet: %v", err)
	}
	if len(updated.OffDays) != 0 {
		t.Errorf("expected off days to be cleared after deadline change, got %v", updated.OffDays)
	}
}

func TestDeleteAndRestoreCmd(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	add := &AddCmd{
		Name:     "Essay",
		Kind:     "assignment",
		Deadline: futureDate(7),
		Subtask:  []string{"Draft:10"},
	}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	worklets, err := ctx.Store.GetAllWorklets()
	if err != nil {
		t.Fatalf("failed to list worklets: %v", err)
	}
	id := worklets[0].ID

	del := &DeleteCmd{ID: id, Yes: true}
	if err := del.Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	remaining, err := ctx.Store.GetAllWorklets()
	if err != nil {
		t.Fatalf("failed to list worklets: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected 0 visible worklets after delete, got %d", len(remaining))
	}

	restore := &RestoreCmd{ID: id}
	if err := restore.Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	restored, err := ctx.Store.GetWorklet(id)
	if err != nil {
		t.Fatalf("failed to load restored worklet: %v", err)
	}
	if restored.DeletedAt != nil {
		t.Error("restored worklet still marked deleted")
	}
}
