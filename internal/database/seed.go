package database

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/teamboard/internal/models"
)

// Seed populates an empty database with a small demo workspace so the
// board is not blank on first run.
func (d *Database) Seed(ctx context.Context) error {
	teams := []models.Team{
		{ID: "t-core", Name: "Core", Color: "63", Description: "Platform and infrastructure"},
		{ID: "t-design", Name: "Design", Color: "205", Description: "Product design"},
	}
	projects := []models.Project{
		{ID: "p-api", Name: "API", Color: "63", TeamID: "t-core"},
		{ID: "p-cli", Name: "CLI", Color: "81", TeamID: "t-core"},
		{ID: "p-brand", Name: "Brand refresh", Color: "205", TeamID: "t-design"},
	}
	tasks := []struct {
		projectID string
		title     string
		done      bool
	}{
		{"p-api", "Define resource routes", true},
		{"p-api", "Wire request validation", false},
		{"p-cli", "Ship init command", true},
		{"p-cli", "Add shell completions", false},
		{"p-brand", "Collect moodboards", false},
	}

	for _, t := range teams {
		if err := d.AddTeam(ctx, t); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	for _, p := range projects {
		if err := d.AddProject(ctx, p); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	for _, t := range tasks {
		task, err := d.AddTask(ctx, t.projectID, t.title)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		if t.done {
			if err := d.UpdateTaskStatus(ctx, task.ID, string(models.StatusDone)); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
		}
	}
	return nil
}
