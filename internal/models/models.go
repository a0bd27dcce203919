package models

import "time"

// TaskStatus enumerates the built-in task states. Which status counts
// as "completed" for progress purposes is configuration, not code; see
// config.DefaultCompletedStatus.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
	StatusBlocked    TaskStatus = "blocked"
)

// Team is the top-level organizational grouping. Teams own projects.
type Team struct {
	ID          string
	Name        string
	Color       string
	Description string
}

// Project groups tasks and belongs to exactly one team.
type Project struct {
	ID     string
	Name   string
	Color  string
	TeamID string
}

// Task is an atomic work item belonging to one project. CompletedAt is
// set when the task was checked off; a task also counts as completed
// when its status matches the configured completed status.
type Task struct {
	ID          string
	ProjectID   string
	Title       string
	Status      string
	CreatedAt   time.Time
	CompletedAt *time.Time
}
