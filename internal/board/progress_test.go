package board

import (
	"fmt"
	"testing"
	"time"

	"github.com/akyairhashvil/teamboard/internal/models"
	"github.com/akyairhashvil/teamboard/internal/util"
)

const doneStatus = "done"

func TestProjectsForTeam(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", TeamID: "t1"},
		{ID: "p2", TeamID: "t2"},
		{ID: "p3", TeamID: "t1"},
	}

	all := ProjectsForTeam(projects, AllID)
	if len(all) != 3 {
		t.Fatalf("expected full list for %q, got %d projects", AllID, len(all))
	}
	for i := range projects {
		if all[i].ID != projects[i].ID {
			t.Fatalf("expected input order preserved, got %s at %d", all[i].ID, i)
		}
	}

	t1 := ProjectsForTeam(projects, "t1")
	if len(t1) != 2 || t1[0].ID != "p1" || t1[1].ID != "p3" {
		t.Fatalf("expected [p1 p3] for t1, got %+v", t1)
	}

	if got := ProjectsForTeam(projects, "ghost"); len(got) != 0 {
		t.Fatalf("expected empty result for unknown team, got %+v", got)
	}
}

func TestProgressForProjectEmpty(t *testing.T) {
	got := ProgressForProject(nil, "p1", doneStatus)
	if got != (Progress{}) {
		t.Fatalf("expected zero snapshot for empty set, got %+v", got)
	}

	tasks := []models.Task{{ID: "x1", ProjectID: "p1", Status: doneStatus}}
	got = ProgressForProject(tasks, "p2", doneStatus)
	if got != (Progress{}) {
		t.Fatalf("expected zero snapshot for unknown project, got %+v", got)
	}
}

func TestProgressForProjectHalfDone(t *testing.T) {
	tasks := []models.Task{
		{ID: "x1", ProjectID: "p1", Status: doneStatus},
		{ID: "x2", ProjectID: "p1", Status: "todo"},
	}
	got := ProgressForProject(tasks, "p1", doneStatus)
	want := Progress{Percent: 50, Completed: 1, Total: 2}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestProgressCompletionSignals(t *testing.T) {
	now := time.Now()
	tasks := []models.Task{
		{ID: "x1", ProjectID: "p1", Status: doneStatus},                            // status only
		{ID: "x2", ProjectID: "p1", Status: "todo", CompletedAt: util.Ptr(now)},    // timestamp only
		{ID: "x3", ProjectID: "p1", Status: doneStatus, CompletedAt: util.Ptr(now)}, // both, counted once
	}
	got := ProgressForProject(tasks, "p1", doneStatus)
	want := Progress{Percent: 100, Completed: 3, Total: 3}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestProgressRounding(t *testing.T) {
	var tasks []models.Task
	for i := 0; i < 3; i++ {
		task := models.Task{ID: string(rune('a' + i)), ProjectID: "p1", Status: "todo"}
		if i == 0 {
			task.Status = doneStatus
		}
		tasks = append(tasks, task)
	}
	// 1/3 rounds to 33, 2/3 rounds to 67.
	if got := ProgressForProject(tasks, "p1", doneStatus); got.Percent != 33 {
		t.Fatalf("expected 33%%, got %d%%", got.Percent)
	}
	tasks[1].Status = doneStatus
	if got := ProgressForProject(tasks, "p1", doneStatus); got.Percent != 67 {
		t.Fatalf("expected 67%%, got %d%%", got.Percent)
	}
}

func TestProgressRoundingTie(t *testing.T) {
	// 1 of 8 is exactly 12.5%; rounding is half away from zero, so the
	// tie lands on 13, not 12.
	var tasks []models.Task
	for i := 0; i < 8; i++ {
		task := models.Task{ID: fmt.Sprintf("x%d", i), ProjectID: "p1", Status: "todo"}
		if i == 0 {
			task.Status = doneStatus
		}
		tasks = append(tasks, task)
	}
	if got := ProgressForProject(tasks, "p1", doneStatus); got.Percent != 13 {
		t.Fatalf("expected 13%%, got %d%%", got.Percent)
	}
	// 3 of 8 (37.5%) rounds up to 38 for the same reason.
	tasks[1].Status = doneStatus
	tasks[2].Status = doneStatus
	if got := ProgressForProject(tasks, "p1", doneStatus); got.Percent != 38 {
		t.Fatalf("expected 38%%, got %d%%", got.Percent)
	}
}

func TestTasksForProject(t *testing.T) {
	tasks := []models.Task{
		{ID: "x1", ProjectID: "p1"},
		{ID: "x2", ProjectID: "p2"},
		{ID: "x3", ProjectID: "p1"},
	}
	if got := TasksForProject(tasks, AllID); len(got) != 3 {
		t.Fatalf("expected full list for %q, got %d", AllID, len(got))
	}
	got := TasksForProject(tasks, "p1")
	if len(got) != 2 || got[0].ID != "x1" || got[1].ID != "x3" {
		t.Fatalf("expected [x1 x3], got %+v", got)
	}
	if got := TasksForProject(tasks, "ghost"); len(got) != 0 {
		t.Fatalf("expected empty result for unknown project, got %+v", got)
	}
}
