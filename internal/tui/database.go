package tui

import (
	"context"

	"github.com/akyairhashvil/teamboard/internal/database"
	"github.com/akyairhashvil/teamboard/internal/models"
)

// Database defines the persistence methods the TUI requires.
//
//go:generate mockgen -source=database.go -destination=mock_database_test.go -package=tui
type Database interface {
	GetTeams(ctx context.Context) ([]models.Team, error)
	GetProjects(ctx context.Context) ([]models.Project, error)
	GetTasks(ctx context.Context) ([]models.Task, error)

	AddTask(ctx context.Context, projectID, title string) (models.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID string, status string) error
	SetTaskCompleted(ctx context.Context, taskID string, completed bool) error
	DeleteTask(ctx context.Context, taskID string) error

	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	CompletedStatus(ctx context.Context) string

	ExportSnapshot(ctx context.Context) (database.Snapshot, error)
	WriteSnapshotFile(ctx context.Context, path string) error
	ImportSnapshot(ctx context.Context, snap database.Snapshot) error
}

var _ Database = (*database.Database)(nil)
