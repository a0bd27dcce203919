package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Export types mirror the table rows with stable JSON field names, so a
// snapshot survives schema shuffles.

type ExportTeam struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

type ExportProject struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color,omitempty"`
	TeamID string `json:"team_id"`
}

type ExportTask struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	Title       string  `json:"title"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

// Snapshot is a full JSON dump of the domain tables.
type Snapshot struct {
	ExportedAt string          `json:"exported_at"`
	Teams      []ExportTeam    `json:"teams"`
	Projects   []ExportProject `json:"projects"`
	Tasks      []ExportTask    `json:"tasks"`
}

// ExportSnapshot collects every team, project and task.
func (d *Database) ExportSnapshot(ctx context.Context) (Snapshot, error) {
	snap := Snapshot{ExportedAt: time.Now().UTC().Format(time.RFC3339)}

	teams, err := d.GetTeams(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("export teams: %w", err)
	}
	for _, t := range teams {
		snap.Teams = append(snap.Teams, ExportTeam{ID: t.ID, Name: t.Name, Color: t.Color, Description: t.Description})
	}

	projects, err := d.GetProjects(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("export projects: %w", err)
	}
	for _, p := range projects {
		snap.Projects = append(snap.Projects, ExportProject{ID: p.ID, Name: p.Name, Color: p.Color, TeamID: p.TeamID})
	}

	tasks, err := d.GetTasks(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("export tasks: %w", err)
	}
	for _, t := range tasks {
		et := ExportTask{
			ID:        t.ID,
			ProjectID: t.ProjectID,
			Title:     t.Title,
			Status:    t.Status,
			CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
		}
		if t.CompletedAt != nil {
			s := t.CompletedAt.UTC().Format(time.RFC3339)
			et.CompletedAt = &s
		}
		snap.Tasks = append(snap.Tasks, et)
	}

	return snap, nil
}

// WriteSnapshotFile exports and writes the snapshot as indented JSON.
func (d *Database) WriteSnapshotFile(ctx context.Context, path string) error {
	snap, err := d.ExportSnapshot(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// ImportSnapshot loads a snapshot into an empty database. Existing rows
// win on id collisions; the import is transactional.
func (d *Database) ImportSnapshot(ctx context.Context, snap Snapshot) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}

	for _, t := range snap.Teams {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO teams (id, name, color, description) VALUES (?, ?, ?, ?)",
			t.ID, t.Name, t.Color, t.Description); err != nil {
			tx.Rollback()
			return fmt.Errorf("import team %s: %w", t.ID, err)
		}
	}
	for _, p := range snap.Projects {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO projects (id, name, color, team_id) VALUES (?, ?, ?, ?)",
			p.ID, p.Name, p.Color, p.TeamID); err != nil {
			tx.Rollback()
			return fmt.Errorf("import project %s: %w", p.ID, err)
		}
	}
	for _, t := range snap.Tasks {
		createdAt, err := time.Parse(time.RFC3339, t.CreatedAt)
		if err != nil {
			createdAt = time.Now().UTC()
		}
		var completedAt interface{}
		if t.CompletedAt != nil {
			if at, err := time.Parse(time.RFC3339, *t.CompletedAt); err == nil {
				completedAt = at
			}
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO tasks (id, project_id, title, status, created_at, completed_at) VALUES (?, ?, ?, ?, ?, ?)",
			t.ID, t.ProjectID, t.Title, t.Status, createdAt, completedAt); err != nil {
			tx.Rollback()
			return fmt.Errorf("import task %s: %w", t.ID, err)
		}
	}

	return tx.Commit()
}

// ReadSnapshotFile parses a snapshot file written by WriteSnapshotFile.
func ReadSnapshotFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}
