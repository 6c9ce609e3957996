package planner

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/kendallross/studypace/internal/models"
)

func uniformWorkload(dates ...string) []models.DailyWorkload {
	workload := make([]models.DailyWorkload, len(dates))
	for i, d := range dates {
		workload[i] = models.DailyWorkload{Date: d, Percentage: 100.0 / float64(len(dates))}
	}
	return workload
}

func totalWeight(tasks []models.DailyTask) float64 {
	sum := 0.0
	for _, t := range tasks {
		sum += t.WeightForDay
	}
	return sum
}

func TestAllocate_SingleSubtaskUniformDays(t *testing.T) {
	p := New()

	workload := uniformWorkload(
		"2025-03-05", "2025-03-06", "2025-03-07",
		"2025-03-08", "2025-03-09", "2025-03-10",
	)
	subtasks := []models.Subtask{
		{ID: "st1", Name: "Chapter 3", Weight: 100},
	}

	tasks := p.Allocate(workload, subtasks, "pages")

	if len(tasks) != 6 {
		t.Fatalf("expected one task per day, got %d", len(tasks))
	}
	if math.Abs(totalWeight(tasks)-100) > 1e-9 {
		t.Errorf("expected the full remaining work to be allocated, got %v", totalWeight(tasks))
	}
	for i, task := range tasks[:5] {
		if math.Abs(task.WeightForDay-100.0/6) > 1e-9 {
			t.Errorf("day %d: expected ~16.67, got %v", i, task.WeightForDay)
		}
	}
	// Any floating drift lands on the last day, never spread across all days.
	last := tasks[5]
	if math.Abs(last.WeightForDay-(100-totalWeight(tasks[:5]))) > 1e-12 {
		t.Errorf("last day does not absorb the remainder: %v", last.WeightForDay)
	}
	if !strings.Contains(last.Title, "Chapter 3") {
		t.Errorf("expected the title to name the subtask, got %q", last.Title)
	}
}

func TestAllocate_SharedCursorSpansSubtasks(t *testing.T) {
	p := New()

	workload := []models.DailyWorkload{
		{Date: "2025-03-05", Percentage: 50},
		{Date: "2025-03-06", Percentage: 50},
	}
	subtasks := []models.Subtask{
		{ID: "read", Name: "Reading", Weight: 30, MaterialID: "mat1"},
		{ID: "notes", Name: "Notes", Weight: 10},
	}

	tasks := p.Allocate(workload, subtasks, "pages")

	// Day 1 takes 20 units: all inside "read".
	if len(tasks[0].WorkSegments) != 1 {
		t.Fatalf("day 1: expected a single segment, got %d", len(tasks[0].WorkSegments))
	}
	seg := tasks[0].WorkSegments[0]
	if seg.SubtaskID != "read" || seg.Start != 0 || seg.End != 20 {
		t.Errorf("day 1: unexpected segment %+v", seg)
	}
	if seg.MaterialID != "mat1" {
		t.Errorf("day 1: segment should carry the subtask's material, got %q", seg.MaterialID)
	}

	// Day 2 takes the remaining 10 of "read" plus all of "notes": the cursor
	// continues where day 1 left off instead of restarting.
	if len(tasks[1].WorkSegments) != 2 {
		t.Fatalf("day 2: expected two segments, got %d", len(tasks[1].WorkSegments))
	}
	first, second := tasks[1].WorkSegments[0], tasks[1].WorkSegments[1]
	if first.SubtaskID != "read" || first.Start != 20 || first.End != 30 {
		t.Errorf("day 2: unexpected first segment %+v", first)
	}
	if second.SubtaskID != "notes" || second.Start != 0 || second.End != 10 {
		t.Errorf("day 2: unexpected second segment %+v", second)
	}
}

func TestAllocate_StartsFromCurrentProgress(t *testing.T) {
	p := New()

	workload := uniformWorkload("2025-03-05", "2025-03-06")
	subtasks := []models.Subtask{
		{ID: "done", Name: "Done already", Weight: 20, Progress: 20, Completed: true},
		{ID: "half", Name: "Half read", Weight: 40, Progress: 10},
	}

	tasks := p.Allocate(workload, subtasks, "pages")

	if math.Abs(totalWeight(tasks)-30) > 1e-9 {
		t.Fatalf("expected only the remaining 30 units allocated, got %v", totalWeight(tasks))
	}
	seg := tasks[0].WorkSegments[0]
	if seg.SubtaskID != "half" || seg.Start != 10 {
		t.Errorf("expected allocation to resume at the subtask's progress, got %+v", seg)
	}
}

func TestAllocate_SegmentsConservePerSubtaskRemaining(t *testing.T) {
	p := New()

	workload := []models.DailyWorkload{
		{Date: "2025-03-05", Percentage: 37.5},
		{Date: "2025-03-06", Percentage: 12.5},
		{Date: "2025-03-07", Percentage: 50},
	}
	subtasks := []models.Subtask{
		{ID: "a", Name: "A", Weight: 25, Progress: 5},
		{ID: "b", Name: "B", Weight: 60},
		{ID: "c", Name: "C", Weight: 15, Progress: 15, Completed: true},
	}

	tasks := p.Allocate(workload, subtasks, "units")

	consumed := map[string]float64{}
	for _, task := range tasks {
		for _, seg := range task.WorkSegments {
			consumed[seg.SubtaskID] += seg.Size()
		}
	}
	if math.Abs(consumed["a"]-20) > 1e-9 {
		t.Errorf("subtask a: expected 20 units consumed, got %v", consumed["a"])
	}
	if math.Abs(consumed["b"]-60) > 1e-9 {
		t.Errorf("subtask b: expected 60 units consumed, got %v", consumed["b"])
	}
	if consumed["c"] != 0 {
		t.Errorf("completed subtask c should not be consumed, got %v", consumed["c"])
	}
}

func TestAllocate_NoRemainingWorkKeepsTheSchedule(t *testing.T) {
	p := New()

	workload := uniformWorkload("2025-03-05", "2025-03-06")
	subtasks := []models.Subtask{
		{ID: "st1", Name: "All done", Weight: 50, Progress: 50, Completed: true},
	}

	tasks := p.Allocate(workload, subtasks, "pages")

	if len(tasks) != 2 {
		t.Fatalf("expected every day to remain in the plan, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.WeightForDay != 0 || len(task.WorkSegments) != 0 {
			t.Errorf("expected a zero-work day, got %+v", task)
		}
	}
}

func TestAllocate_EmptyWorkload(t *testing.T) {
	p := New()

	tasks := p.Allocate(nil, []models.Subtask{{ID: "st1", Name: "X", Weight: 10}}, "pages")
	if len(tasks) != 0 {
		t.Errorf("expected no tasks for an empty workload, got %d", len(tasks))
	}
}

func TestAllocate_Idempotent(t *testing.T) {
	p := New()

	workload := uniformWorkload("2025-03-05", "2025-03-06", "2025-03-07")
	subtasks := []models.Subtask{
		{ID: "a", Name: "A", Weight: 33.5, Progress: 3},
		{ID: "b", Name: "B", Weight: 12},
	}

	first := p.Allocate(workload, subtasks, "minutes")
	second := p.Allocate(workload, subtasks, "minutes")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("allocation is not deterministic:\n%+v\nvs\n%+v", first, second)
	}
}

func TestDescribeDay_QuantityFormatting(t *testing.T) {
	subtasks := []models.Subtask{{ID: "st1", Name: "Chapter 3", Weight: 100}}

	segments := []models.WorkSegment{{SubtaskID: "st1", Start: 0, End: 12}}
	if got := describeDay(segments, subtasks, "pages"); got != "12 pages of Chapter 3" {
		t.Errorf("unexpected title: %q", got)
	}

	segments = []models.WorkSegment{{SubtaskID: "st1", Start: 0, End: 100.0 / 6}}
	if got := describeDay(segments, subtasks, "pages"); got != "16.67 pages of Chapter 3" {
		t.Errorf("unexpected title: %q", got)
	}
}
