package database

import (
	"context"
	"strings"

	"github.com/akyairhashvil/teamboard/internal/models"
)

// GetTeams returns all teams in name order.
func (d *Database) GetTeams(ctx context.Context) ([]models.Team, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, name, color, description
		FROM teams
		ORDER BY name ASC`)
	if err != nil {
		return nil, wrapTeamErr("list", "", err)
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.Description); err != nil {
			return nil, wrapTeamErr("scan", "", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// AddTeam inserts a team. A blank id gets a generated one.
func (d *Database) AddTeam(ctx context.Context, team models.Team) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	if strings.TrimSpace(team.ID) == "" {
		team.ID = newID("t")
	}
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO teams (id, name, color, description) VALUES (?, ?, ?, ?)",
		team.ID, team.Name, team.Color, team.Description)
	return wrapTeamErr("insert", team.ID, err)
}
