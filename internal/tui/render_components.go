package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/teamboard/internal/board"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	projectNameWidth = 24
	taskTitleWidth   = 60
)

// padName truncates or pads a name to a fixed display width so bars and
// counts line up across rows.
func padName(name string, width int) string {
	name = ansi.Truncate(name, width, "…")
	if gap := width - ansi.StringWidth(name); gap > 0 {
		name += strings.Repeat(" ", gap)
	}
	return name
}

func (m BoardModel) renderHeader() string {
	title := m.theme.Header.Render("TEAMBOARD")

	chips := make([]string, 0, m.chipCount())
	for i := 0; i < m.chipCount(); i++ {
		id := m.chipID(i)
		label := "All"
		if i > 0 {
			label = m.teams[i-1].Name
		}
		marker := "▸"
		if m.selection.IsExpanded(id) {
			marker = "▾"
		}
		label = fmt.Sprintf("%s %s", label, marker)
		if m.focus == focusTeams && i == m.teamIdx {
			label = "› " + label
		}

		style := m.theme.TeamChip
		if id == m.selection.TeamID {
			style = m.theme.SelectedChip
		}
		chips = append(chips, style.Render(label))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, chips...)
	return title + "\n" + row
}

func (m BoardModel) renderProjectRows() string {
	if !m.selection.ProjectRowVisible() {
		return m.theme.Dim.Render("Projects collapsed. Press enter on the team to expand.")
	}

	projects := m.visibleProjects()
	if len(projects) == 0 {
		return m.theme.Dim.Render("No projects for this team.")
	}

	var rows []string
	for i, p := range projects {
		prog := board.ProgressForProject(m.tasks, p.ID, m.completedStatus)
		cursor := "  "
		if m.focus == focusProjects && i == m.projectIdx {
			cursor = "› "
		}

		name := padName(p.Name, projectNameWidth)
		style := m.theme.ProjectRow
		if p.ID == m.selection.ProjectID {
			style = m.theme.Focused
		}

		bar := m.bar.ViewAs(float64(prog.Percent) / 100)
		counts := fmt.Sprintf("%3d%%  %d/%d", prog.Percent, prog.Completed, prog.Total)
		rows = append(rows, cursor+style.Render(name)+" "+bar+" "+m.theme.Dim.Render(counts))
	}
	return strings.Join(rows, "\n")
}

func (m BoardModel) renderTasks() string {
	tasks := m.tasksInScope()
	if len(tasks) == 0 {
		return m.theme.Dim.Render("No tasks in scope.")
	}

	var rows []string
	for i, t := range tasks {
		cursor := "  "
		if m.focus == focusTasks && i == m.taskIdx {
			cursor = "› "
		}
		check := "[ ]"
		style := m.theme.Task
		if m.taskDone(t) {
			check = "[x]"
			style = m.theme.CompletedTask
		}
		title := ansi.Truncate(t.Title, taskTitleWidth, "…")
		rows = append(rows, fmt.Sprintf("%s%s %s", cursor, check, style.Render(title)))
	}
	return strings.Join(rows, "\n")
}

func (m BoardModel) renderTaskInput() string {
	return m.theme.Input.Render(m.textInput.View())
}
