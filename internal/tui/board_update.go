package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/teamboard/internal/board"
	"github.com/akyairhashvil/teamboard/internal/config"
	"github.com/akyairhashvil/teamboard/internal/database"
	"github.com/akyairhashvil/teamboard/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dataLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.teams = msg.teams
		m.projects = msg.projects
		m.tasks = msg.tasks
		m.completedStatus = msg.completedStatus
		m.clampIndices()
		return m, nil

	case tea.KeyMsg:
		if m.creatingTask {
			return m.updateCreatingTask(msg)
		}
		if m.confirmingDelete {
			return m.updateConfirmingDelete(msg)
		}
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		next, cmd, handled := m.registry.Handle(m, key)
		if handled {
			next.clampIndices()
			return next, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m *BoardModel) clampIndices() {
	m.teamIdx = util.Clamp(m.teamIdx, 0, m.chipCount()-1)
	if n := len(m.visibleProjects()); n > 0 {
		m.projectIdx = util.Clamp(m.projectIdx, 0, n-1)
	} else {
		m.projectIdx = 0
	}
	if n := len(m.tasksInScope()); n > 0 {
		m.taskIdx = util.Clamp(m.taskIdx, 0, n-1)
	} else {
		m.taskIdx = 0
	}
}

func (m BoardModel) updateCreatingTask(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.creatingTask = false
		m.textInput.SetValue("")
		return m, nil
	case tea.KeyEnter:
		title := strings.TrimSpace(m.textInput.Value())
		if title == "" {
			return m, nil
		}
		projectID, ok := m.targetProjectID()
		if !ok {
			m.Message = "No project to add the task to."
			m.creatingTask = false
			return m, nil
		}
		if _, err := m.db.AddTask(m.ctx, projectID, title); err != nil {
			m.err = err
			return m, nil
		}
		m.creatingTask = false
		m.textInput.SetValue("")
		m.Message = fmt.Sprintf("Added task to %s.", projectID)
		return m, m.loadDataCmd()
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m BoardModel) updateConfirmingDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.db.DeleteTask(m.ctx, m.deleteTargetID); err != nil {
			m.err = err
		} else {
			m.Message = "Task deleted."
		}
		m.confirmingDelete = false
		m.deleteTargetID = ""
		return m, m.loadDataCmd()
	case "n", "N", "esc":
		m.confirmingDelete = false
		m.deleteTargetID = ""
		return m, nil
	}
	return m, nil
}

func newBoardRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()

	focusedOn := func(area focusArea) func(BoardModel) bool {
		return func(m BoardModel) bool { return m.focus == area }
	}

	r.Register(KeyBinding{Key: "q", Description: "quit", Handler: func(m BoardModel) (BoardModel, tea.Cmd, bool) {
		return m, tea.Quit, true
	}})

	r.Register(KeyBinding{Key: "tab", Description: "switch pane", Handler: func(m BoardModel) (BoardModel, tea.Cmd, bool) {
		m.focus = (m.focus + 1) % 3
		if m.focus == focusProjects && !m.selection.ProjectRowVisible() {
			m.focus = focusTasks
		}
		return m, nil, true
	}})

	for _, key := range []string{"left", "h"} {
		r.Register(KeyBinding{Key: key, Description: "prev team", Hidden: key == "h", When: focusedOn(focusTeams), Handler: func(m BoardModel) (BoardModel, tea.Cmd, bool) {
			m.teamIdx--
			return m, nil, true
		}})
	}
	for _, key := range []string{"right", "l"} {
		r.Register(KeyBinding{Key: key, Description: "next team", Hidden: key == "l", When: focusedOn(focusTeams), Handler: func(m BoardModel) (BoardModel, tea.Cmd, bool) {
			m.teamIdx++
			return m, nil, true
		}})
	}

	for _, key := range []string{"up", "k"} {
		r.Register(KeyBinding{Key: key, Description: "up", Hidden: key == "k", When: focusedOn(focusProjects), Handler: func(m BoardModel) (BoardModel, tea.Cmd, bool) {
			m.projectIdx--
			return m, nil, true
		}})
		r.Register(KeyBinding{Key: key, Hidden: true, When: focusedOn(focusTasks), Handler: func(m BoardModel) (BoardModel, tea.Cmd, bool) {
			m.taskIdx--
			return m, nil, true
		}})
	}
	for _, key := range []string{"down", "j"} {
		r.Register(KeyBinding{Key: key, Description: "down", Hidden: key == "j", When: focusedOn(focusProjects), Handler: func(m BoardModel) (BoardModel, tea.Cmd, bool) {
			m.projectIdx++
			return m, nil, true
		}})
		r.Register(KeyBinding{Key: key, Hidden: true, When: focusedOn(focusTasks), Handler: func(m BoardModel) (BoardModel, tea.Cmd, bool) {
			m.taskIdx++
			return m, nil, true
		}})
	}

	r.Register(KeyBinding{Key: "enter", Description: "select", Handler: func(m BoardModel) (BoardModel, tea.Cmd, bool) {
		switch m.focus {
		case focusTeams:
			m.selection.SelectTeam(m.chipID(m.teamIdx))
			m.projectIdx = 0
			m.taskIdx = 0
			return m, nil, true
		case focusProjects:
			ps := m.visibleProjects()
			if len(ps) == 0 {
				return m, nil, false
			}
			m.selection.SelectProject(ps[m.projectIdx].ID)
			m.taskIdx = 0
			return m, nil, true
		case focusTasks:
			return m.toggleFocusedTask()
		}
		return m, nil, false
	}})

	r.Register(KeyBinding{Key: " ", Description: "toggle done", When: focusedOn(focusTasks), Handler: func(m BoardModel) (BoardModel, tea.Cmd, bool) {
		return m.toggleFocusedTask()
	}})

	r.Register(KeyBinding{Key: "a", Description: "show all", When: func(m BoardModel) bool { return m.focus == focusTeams }, Handler: func(m BoardModel) (BoardModel, tea.Cmd, bool) {
		m.teamIdx = 0
		m.selection.SelectTeam(board.AllID)
		return m, nil, true
	}})

	r.Register(KeyBinding{Key: "n", Description: "new task", Handler: func(m BoardModel) (BoardModel, tea.Cmd, bool) {
		if _, ok := m.targetProjectID(); !ok {
			m.Message = "No project selected."
			return m, nil, true
		}
		m.creatingTask = true
		m.textInput.Focus()
		return m, nil, true
	}})

	r.Register(KeyBinding{Key: "d", Description: "delete task", When: focusedOn(focusTasks), Handler: func(m BoardModel) (BoardModel, tea.Cmd, bool) {
		tasks := m.tasksInScope()
		if len(tasks) == 0 {
			return m, nil, false
		}
		m.confirmingDelete = true
		m.deleteTargetID = tasks[m.taskIdx].ID
		return m, nil, true
	}})

	r.Register(KeyBinding{Key: "e", Description: "export", Handler: func(m BoardModel) (BoardModel, tea.Cmd, bool) {
		path := m.snapshotPath()
		if err := m.db.WriteSnapshotFile(m.ctx, path); err != nil {
			m.err = err
			return m, nil, true
		}
		m.Message = fmt.Sprintf("Snapshot written to %s.", path)
		return m, nil, true
	}})

	r.Register(KeyBinding{Key: "i", Description: "import", Handler: func(m BoardModel) (BoardModel, tea.Cmd, bool) {
		path := m.snapshotPath()
		snap, err := database.ReadSnapshotFile(path)
		if err != nil {
			m.Message = fmt.Sprintf("No snapshot at %s.", path)
			return m, nil, true
		}
		if err := m.db.ImportSnapshot(m.ctx, snap); err != nil {
			m.err = err
			return m, nil, true
		}
		m.Message = fmt.Sprintf("Snapshot imported from %s.", path)
		return m, m.loadDataCmd(), true
	}})

	r.Register(KeyBinding{Key: "r", Description: "pdf report", Handler: func(m BoardModel) (BoardModel, tea.Cmd, bool) {
		path, err := GeneratePDFReport(m.teams, m.projects, m.tasks, m.completedStatus, util.ReportsDir(config.AppName))
		if err != nil {
			m.err = err
			return m, nil, true
		}
		m.Message = fmt.Sprintf("Report written to %s.", path)
		return m, nil, true
	}})

	r.Register(KeyBinding{Key: "t", Description: "theme", Handler: func(m BoardModel) (BoardModel, tea.Cmd, bool) {
		m.themeName = NextThemeName(m.themeName)
		m.theme = ThemeByName(m.themeName)
		util.LogError("persist theme", m.db.SetSetting(m.ctx, "theme", m.themeName))
		return m, nil, true
	}})

	return r
}

func (m BoardModel) toggleFocusedTask() (BoardModel, tea.Cmd, bool) {
	tasks := m.tasksInScope()
	if len(tasks) == 0 {
		return m, nil, false
	}
	task := tasks[m.taskIdx]
	if err := m.db.SetTaskCompleted(m.ctx, task.ID, task.CompletedAt == nil); err != nil {
		m.err = err
		return m, nil, true
	}
	return m, m.loadDataCmd(), true
}
