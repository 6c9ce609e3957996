package planner

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/kendallross/studypace/internal/constants"
	"github.com/kendallross/studypace/internal/models"
)

// plannedWorklet builds a worklet with a computed plan: one 100-unit subtask
// spread uniformly over Mar 5..10.
func plannedWorklet(t *testing.T) models.Worklet {
	t.Helper()
	p := New()

	w := models.Worklet{
		ID:                 "w1",
		Kind:               constants.WorkletAssignment,
		Name:               "Thesis draft",
		WeightUnit:         constants.UnitPages,
		Deadline:           time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC),
		LeadDays:           5,
		IncludeDeadlineDay: true,
		Subtasks: []models.Subtask{
			{ID: "st1", Name: "Chapter 3", Weight: 100},
		},
	}

	planned, err := p.Replan(w, "2025-03-01")
	if err != nil {
		t.Fatalf("Replan failed: %v", err)
	}
	return planned
}

func TestRedistribute_ZeroesTheMissedDayAndConservesWork(t *testing.T) {
	p := New()
	w := plannedWorklet(t)

	before := totalWeight(w.DailyTasks)

	// Day 7 was missed; it's now the morning of day 8.
	out, err := p.Redistribute(w, "2025-03-07", "2025-03-08")
	if err != nil {
		t.Fatalf("Redistribute failed: %v", err)
	}

	missed := out.TaskForDate("2025-03-07")
	if missed == nil {
		t.Fatal("missed day dropped from the plan; it must stay for history")
	}
	if missed.WeightForDay != 0 || len(missed.WorkSegments) != 0 {
		t.Errorf("missed day not zeroed: %+v", missed)
	}
	if !strings.HasPrefix(missed.Title, constants.RedistributedTag) {
		t.Errorf("missed day not tagged: %q", missed.Title)
	}

	// Days 8..10 now carry all 100 units between them.
	future := 0.0
	for _, dt := range out.DailyTasks {
		if dt.Date >= "2025-03-08" {
			future += dt.WeightForDay
		}
	}
	if math.Abs(future-before) > 1e-9 {
		t.Errorf("expected the future days to absorb the full remaining work (%v), got %v", before, future)
	}

	// The new workload covers the remaining future days only and sums to 100.
	sum := 0.0
	for _, dw := range out.DailyWorkload {
		if dw.Date == "2025-03-07" || dw.Date < "2025-03-08" {
			t.Errorf("stale day %s left in the recomputed workload", dw.Date)
		}
		sum += dw.Percentage
	}
	if math.Abs(sum-100) > constants.PercentTolerance {
		t.Errorf("recomputed workload sums to %v, want 100", sum)
	}

	if out.UndoState == nil {
		t.Error("expected an undo snapshot to be attached")
	}
	// The input worklet is untouched.
	if w.UndoState != nil || w.TaskForDate("2025-03-07").WeightForDay == 0 {
		t.Error("Redistribute mutated its input")
	}
}

func TestRedistribute_ExcludesCompletedWork(t *testing.T) {
	p := New()
	w := plannedWorklet(t)

	// Days 5 and 6 were done; their share is reconciled into the subtask.
	var err error
	w, err = p.ReconcileDayCompletion(w, "2025-03-05", true)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	w, err = p.ReconcileDayCompletion(w, "2025-03-06", true)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	out, err := p.Redistribute(w, "2025-03-07", "2025-03-08")
	if err != nil {
		t.Fatalf("Redistribute failed: %v", err)
	}

	remaining := w.Subtasks[0].Weight - w.Subtasks[0].Progress
	future := 0.0
	for _, dt := range out.DailyTasks {
		if dt.Date >= "2025-03-08" {
			future += dt.WeightForDay
		}
	}
	if math.Abs(future-remaining) > 1e-9 {
		t.Errorf("future days should carry exactly the unreconciled work %v, got %v", remaining, future)
	}

	// Allocation resumes from the true progress.
	first := out.TaskForDate("2025-03-08")
	if len(first.WorkSegments) == 0 || math.Abs(first.WorkSegments[0].Start-w.Subtasks[0].Progress) > 1e-9 {
		t.Errorf("expected allocation to resume at progress %v, got %+v", w.Subtasks[0].Progress, first.WorkSegments)
	}
}

func TestRedistribute_RejectedWhileSnapshotPending(t *testing.T) {
	p := New()
	w := plannedWorklet(t)

	out, err := p.Redistribute(w, "2025-03-07", "2025-03-08")
	if err != nil {
		t.Fatalf("first redistribute failed: %v", err)
	}

	_, err = p.Redistribute(out, "2025-03-08", "2025-03-09")
	if !errors.Is(err, ErrAlreadyRedistributed) {
		t.Errorf("expected ErrAlreadyRedistributed, got %v", err)
	}
}

func TestRedistribute_RejectsFutureDay(t *testing.T) {
	p := New()
	w := plannedWorklet(t)

	// Day 8 hasn't happened yet on the morning of day 6.
	out, err := p.Redistribute(w, "2025-03-08", "2025-03-06")
	if !errors.Is(err, ErrDayNotMissed) {
		t.Fatalf("expected ErrDayNotMissed, got %v", err)
	}
	if task := out.TaskForDate("2025-03-08"); task.WeightForDay == 0 || strings.HasPrefix(task.Title, constants.RedistributedTag) {
		t.Errorf("rejected redistribution still altered the plan: %+v", task)
	}
}

func TestRedistribute_RejectsCompletedDay(t *testing.T) {
	p := New()
	w := plannedWorklet(t)

	var err error
	w, err = p.ReconcileDayCompletion(w, "2025-03-07", true)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	out, err := p.Redistribute(w, "2025-03-07", "2025-03-08")
	if !errors.Is(err, ErrDayNotMissed) {
		t.Fatalf("expected ErrDayNotMissed, got %v", err)
	}
	if !out.TaskForDate("2025-03-07").Completed {
		t.Error("completion record must survive a rejected redistribution")
	}
}

func TestRedistribute_UnknownDate(t *testing.T) {
	p := New()
	w := plannedWorklet(t)

	_, err := p.Redistribute(w, "2030-01-01", "2025-03-08")
	if !errors.Is(err, ErrNoSuchDay) {
		t.Errorf("expected ErrNoSuchDay, got %v", err)
	}
}

func TestUndoRedistribute_ExactRoundTrip(t *testing.T) {
	p := New()
	w := plannedWorklet(t)

	redistributed, err := p.Redistribute(w, "2025-03-07", "2025-03-08")
	if err != nil {
		t.Fatalf("Redistribute failed: %v", err)
	}

	restored, err := p.UndoRedistribute(redistributed)
	if err != nil {
		t.Fatalf("UndoRedistribute failed: %v", err)
	}

	if restored.UndoState != nil {
		t.Error("undo state should be cleared after undo")
	}
	if !reflect.DeepEqual(restored.DailyTasks, w.DailyTasks) {
		t.Errorf("daily tasks not restored exactly:\n%+v\nvs\n%+v", restored.DailyTasks, w.DailyTasks)
	}
	if !reflect.DeepEqual(restored.DailyWorkload, w.DailyWorkload) {
		t.Errorf("daily workload not restored exactly:\n%+v\nvs\n%+v", restored.DailyWorkload, w.DailyWorkload)
	}
}

func TestUndoRedistribute_NothingToUndo(t *testing.T) {
	p := New()
	w := plannedWorklet(t)

	_, err := p.UndoRedistribute(w)
	if !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
}
