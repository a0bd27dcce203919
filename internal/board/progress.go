package board

import (
	"math"

	"github.com/akyairhashvil/teamboard/internal/models"
)

// Progress is a point-in-time completion snapshot for one project.
// Task completion changes outside this process, so snapshots are
// recomputed on every read and never cached.
type Progress struct {
	Percent   int
	Completed int
	Total     int
}

// ProjectsForTeam filters projects to those owned by teamID, preserving
// input order. AllID returns the full input slice; an unknown team id
// yields an empty result.
func ProjectsForTeam(projects []models.Project, teamID string) []models.Project {
	if teamID == AllID {
		return projects
	}
	var out []models.Project
	for _, p := range projects {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out
}

// TasksForProject filters tasks to those belonging to projectID,
// preserving input order. AllID returns the full input slice.
func TasksForProject(tasks []models.Task, projectID string) []models.Task {
	if projectID == AllID {
		return tasks
	}
	var out []models.Task
	for _, t := range tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// ProgressForProject computes the completion snapshot for projectID.
// A task counts as completed when its status matches completedStatus or
// its CompletedAt timestamp is set; a task satisfying both signals is
// counted once. A project with no tasks yields the zero snapshot.
func ProgressForProject(tasks []models.Task, projectID, completedStatus string) Progress {
	var total, completed int
	for _, t := range tasks {
		if t.ProjectID != projectID {
			continue
		}
		total++
		if t.Status == completedStatus || t.CompletedAt != nil {
			completed++
		}
	}
	if total == 0 {
		return Progress{}
	}
	return Progress{
		Percent:   int(math.Round(float64(completed) / float64(total) * 100)),
		Completed: completed,
		Total:     total,
	}
}
