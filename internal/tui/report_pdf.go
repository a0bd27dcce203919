package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/teamboard/internal/board"
	"github.com/akyairhashvil/teamboard/internal/models"
	"github.com/go-pdf/fpdf"
)

// GeneratePDFReport writes a progress report grouped by team to dir and
// returns the file path. Progress numbers come from the same
// aggregation the board header uses.
func GeneratePDFReport(teams []models.Team, projects []models.Project, tasks []models.Task, completedStatus, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Progress Report: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(12)

	for _, team := range teams {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, team.Name)
		pdf.Ln(8)

		teamProjects := board.ProjectsForTeam(projects, team.ID)
		if len(teamProjects) == 0 {
			pdf.SetFont("Arial", "I", 11)
			pdf.Cell(0, 8, "  No projects.")
			pdf.Ln(8)
			continue
		}

		for _, p := range teamProjects {
			prog := board.ProgressForProject(tasks, p.ID, completedStatus)
			pdf.SetFont("Arial", "B", 12)
			pdf.Cell(0, 8, fmt.Sprintf("  %s - %d%% (%d/%d)", p.Name, prog.Percent, prog.Completed, prog.Total))
			pdf.Ln(7)

			pdf.SetFont("Arial", "", 11)
			for _, t := range board.TasksForProject(tasks, p.ID) {
				check := "[ ]"
				if t.Status == completedStatus || t.CompletedAt != nil {
					check = "[x]"
				}
				pdf.Cell(0, 6, fmt.Sprintf("    %s %s", check, t.Title))
				pdf.Ln(5)
			}
			pdf.Ln(2)
		}
		pdf.Ln(4)
	}

	path := filepath.Join(dir, fmt.Sprintf("report_%s.pdf", time.Now().Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
