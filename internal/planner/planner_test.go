package planner

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/kendallross/studypace/internal/constants"
	"github.com/kendallross/studypace/internal/models"
)

func TestReplan_FullPipeline(t *testing.T) {
	p := New()

	w := models.Worklet{
		Kind:               constants.WorkletExam,
		Name:               "Linear algebra final",
		WeightUnit:         constants.UnitMinutes,
		Deadline:           time.Date(2025, time.June, 20, 9, 0, 0, 0, time.UTC),
		LeadDays:           3,
		IncludeDeadlineDay: false,
		Subtasks: []models.Subtask{
			{ID: "rev", Name: "Revision videos", Weight: 90},
			{ID: "ex", Name: "Practice exams", Weight: 120},
		},
	}

	out, err := p.Replan(w, "2025-06-10")
	if err != nil {
		t.Fatalf("Replan failed: %v", err)
	}

	if len(out.DailyWorkload) != 3 {
		t.Fatalf("expected 3 work days (Jun 17..19), got %d", len(out.DailyWorkload))
	}
	sum := 0.0
	for _, dw := range out.DailyWorkload {
		sum += dw.Percentage
	}
	if math.Abs(sum-100) > constants.PercentTolerance {
		t.Errorf("workload sums to %v, want 100", sum)
	}
	if math.Abs(totalWeight(out.DailyTasks)-210) > 1e-9 {
		t.Errorf("expected all 210 minutes allocated, got %v", totalWeight(out.DailyTasks))
	}
	if len(out.Efforts) != 3 {
		t.Errorf("expected efforts rebuilt for the 3 window days, got %d", len(out.Efforts))
	}
	if w.DailyTasks != nil || w.DailyWorkload != nil {
		t.Error("Replan mutated its input")
	}
}

func TestReplan_PreservesEffortEditsAndOffDays(t *testing.T) {
	p := New()

	w := models.Worklet{
		Name:               "Essay",
		WeightUnit:         constants.UnitPages,
		Deadline:           time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC),
		LeadDays:           2,
		IncludeDeadlineDay: true,
		Efforts:            map[string]float64{"2025-06-19": 300},
		OffDays:            map[string]bool{"2025-06-18": true},
		Subtasks:           []models.Subtask{{ID: "st1", Name: "Draft", Weight: 40}},
	}

	out, err := p.Replan(w, "2025-06-10")
	if err != nil {
		t.Fatalf("Replan failed: %v", err)
	}

	// Jun 18 is off, so the work splits 300:100 over Jun 19 and Jun 20.
	if len(out.DailyWorkload) != 2 {
		t.Fatalf("expected 2 active days, got %d", len(out.DailyWorkload))
	}
	if math.Abs(out.DailyWorkload[0].Percentage-75) > constants.PercentTolerance {
		t.Errorf("expected the edited day to keep its 3x share, got %v", out.DailyWorkload[0].Percentage)
	}
}

func TestReplan_EmptyWindowYieldsEmptyPlan(t *testing.T) {
	p := New()

	w := models.Worklet{
		Name:       "Due tonight",
		Deadline:   time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC),
		LeadDays:   0,
		WeightUnit: constants.UnitPages,
		Subtasks:   []models.Subtask{{ID: "st1", Name: "Draft", Weight: 40}},
	}

	out, err := p.Replan(w, "2025-06-10")
	if err != nil {
		t.Fatalf("Replan failed: %v", err)
	}
	if len(out.DailyWorkload) != 0 || len(out.DailyTasks) != 0 {
		t.Errorf("expected an empty plan, got %d workloads / %d tasks", len(out.DailyWorkload), len(out.DailyTasks))
	}
}

func TestReplan_DropsPendingUndoSnapshot(t *testing.T) {
	p := New()
	w := plannedWorklet(t)

	redistributed, err := p.Redistribute(w, "2025-03-07", "2025-03-08")
	if err != nil {
		t.Fatalf("Redistribute failed: %v", err)
	}

	// An effort edit replans; the snapshot captured before it is stale.
	redistributed.Efforts["2025-03-09"] = 3
	replanned, err := p.Replan(redistributed, "2025-03-08")
	if err != nil {
		t.Fatalf("Replan failed: %v", err)
	}
	if replanned.UndoState != nil {
		t.Error("expected the undo snapshot to be dropped on replan")
	}
	if _, err := p.UndoRedistribute(replanned); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo after a replan, got %v", err)
	}
}

func TestReplan_Idempotent(t *testing.T) {
	p := New()
	w := plannedWorklet(t)

	again, err := p.Replan(w, "2025-03-01")
	if err != nil {
		t.Fatalf("Replan failed: %v", err)
	}
	if !reflect.DeepEqual(again.DailyTasks, w.DailyTasks) {
		t.Errorf("replanning unchanged inputs altered the daily tasks")
	}
	if !reflect.DeepEqual(again.DailyWorkload, w.DailyWorkload) {
		t.Errorf("replanning unchanged inputs altered the workload")
	}
}
