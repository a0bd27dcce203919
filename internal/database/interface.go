package database

import (
	"context"

	"github.com/akyairhashvil/teamboard/internal/models"
)

// TeamRepository defines team-related database operations.
type TeamRepository interface {
	GetTeams(ctx context.Context) ([]models.Team, error)
	AddTeam(ctx context.Context, team models.Team) error
}

// ProjectRepository defines project-related database operations.
type ProjectRepository interface {
	GetProjects(ctx context.Context) ([]models.Project, error)
	AddProject(ctx context.Context, project models.Project) error
}

// TaskRepository defines task-related database operations.
type TaskRepository interface {
	GetTasks(ctx context.Context) ([]models.Task, error)
	AddTask(ctx context.Context, projectID, title string) (models.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID string, status string) error
	SetTaskCompleted(ctx context.Context, taskID string, completed bool) error
	DeleteTask(ctx context.Context, taskID string) error
}

// SettingsRepository defines key/value settings operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	TeamRepository
	ProjectRepository
	TaskRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
