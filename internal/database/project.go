package database

import (
	"context"
	"strings"

	"github.com/akyairhashvil/teamboard/internal/models"
)

// GetProjects returns all projects, grouped by team and then by name.
func (d *Database) GetProjects(ctx context.Context) ([]models.Project, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, name, color, team_id
		FROM projects
		ORDER BY team_id ASC, name ASC`)
	if err != nil {
		return nil, wrapProjectErr("list", "", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Color, &p.TeamID); err != nil {
			return nil, wrapProjectErr("scan", "", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// AddProject inserts a project. A blank id gets a generated one.
func (d *Database) AddProject(ctx context.Context, project models.Project) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	if strings.TrimSpace(project.ID) == "" {
		project.ID = newID("p")
	}
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO projects (id, name, color, team_id) VALUES (?, ?, ?, ?)",
		project.ID, project.Name, project.Color, project.TeamID)
	return wrapProjectErr("insert", project.ID, err)
}
