package tui

import (
	"context"
	"path/filepath"

	"github.com/akyairhashvil/teamboard/internal/board"
	"github.com/akyairhashvil/teamboard/internal/config"
	"github.com/akyairhashvil/teamboard/internal/models"
	"github.com/akyairhashvil/teamboard/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// focusArea identifies which pane receives navigation keys.
type focusArea int

const (
	focusTeams focusArea = iota
	focusProjects
	focusTasks
)

// dataLoadedMsg carries a fresh read of the whole board.
type dataLoadedMsg struct {
	teams           []models.Team
	projects        []models.Project
	tasks           []models.Task
	completedStatus string
	err             error
}

// BoardModel renders teams, their project rows with live progress, and
// the task list for the current selection. Selection semantics live in
// the board package; this model only feeds it input and renders its
// queries.
type BoardModel struct {
	ctx context.Context
	db  Database
	cfg config.Config

	selection       *board.Selection
	teams           []models.Team
	projects        []models.Project
	tasks           []models.Task
	completedStatus string

	focus      focusArea
	teamIdx    int // 0 is the "all" chip
	projectIdx int
	taskIdx    int

	creatingTask     bool
	confirmingDelete bool
	deleteTargetID   string

	textInput textinput.Model
	bar       progress.Model
	theme     Theme
	themeName string
	registry  *HandlerRegistry

	Message       string
	err           error
	width, height int
}

// NewBoardModel builds the board in its initial selection state. Data
// arrives asynchronously via the Init command.
func NewBoardModel(ctx context.Context, db Database, cfg config.Config) BoardModel {
	ti := textinput.New()
	ti.Placeholder = "New task..."
	ti.CharLimit = config.MaxTitleLength
	ti.Width = 40

	m := BoardModel{
		ctx:       ctx,
		db:        db,
		cfg:       cfg,
		selection: board.NewSelection(),
		textInput: ti,
		bar:       progress.New(progress.WithDefaultGradient()),
		theme:     ThemeByName(cfg.Theme),
		themeName: cfg.Theme,
	}
	m.bar.Width = 24
	m.registry = newBoardRegistry()
	return m
}

func (m BoardModel) Init() tea.Cmd {
	return m.loadDataCmd()
}

func (m BoardModel) loadDataCmd() tea.Cmd {
	ctx, db := m.ctx, m.db
	return func() tea.Msg {
		teams, err := db.GetTeams(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		projects, err := db.GetProjects(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		tasks, err := db.GetTasks(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		return dataLoadedMsg{
			teams:           teams,
			projects:        projects,
			tasks:           tasks,
			completedStatus: db.CompletedStatus(ctx),
		}
	}
}

// snapshotPath is where the export and import keys read and write the
// JSON snapshot.
func (m BoardModel) snapshotPath() string {
	dir := m.cfg.DataDir
	if dir == "" {
		dir = util.DataDir(config.AppName)
	}
	return filepath.Join(dir, "snapshot.json")
}

// chipID maps a chip index to a team id; index 0 is the pseudo-team.
func (m BoardModel) chipID(idx int) string {
	if idx <= 0 {
		return board.AllID
	}
	if idx-1 < len(m.teams) {
		return m.teams[idx-1].ID
	}
	return board.AllID
}

func (m BoardModel) chipCount() int {
	return len(m.teams) + 1
}

// visibleProjects is the project row content for the current selection.
func (m BoardModel) visibleProjects() []models.Project {
	ps := board.ProjectsForTeam(m.projects, m.selection.TeamID)
	if m.cfg.ShowEmptyProjects {
		return ps
	}
	var out []models.Project
	for _, p := range ps {
		if board.ProgressForProject(m.tasks, p.ID, m.completedStatus).Total > 0 {
			out = append(out, p)
		}
	}
	return out
}

// tasksInScope is the task list for the current selection: a concrete
// project when one is selected, otherwise every task under the selected
// team's projects.
func (m BoardModel) tasksInScope() []models.Task {
	var scoped []models.Task
	if m.selection.ProjectID != board.AllID {
		scoped = board.TasksForProject(m.tasks, m.selection.ProjectID)
	} else if m.selection.TeamID == board.AllID {
		scoped = m.tasks
	} else {
		ids := make(map[string]bool)
		for _, p := range board.ProjectsForTeam(m.projects, m.selection.TeamID) {
			ids[p.ID] = true
		}
		for _, t := range m.tasks {
			if ids[t.ProjectID] {
				scoped = append(scoped, t)
			}
		}
	}
	if m.cfg.ShowCompleted {
		return scoped
	}
	var out []models.Task
	for _, t := range scoped {
		if !m.taskDone(t) {
			out = append(out, t)
		}
	}
	return out
}

func (m BoardModel) taskDone(t models.Task) bool {
	return t.Status == m.completedStatus || t.CompletedAt != nil
}

// targetProjectID is where a newly created task lands: the selected
// project when concrete, otherwise the focused project row.
func (m BoardModel) targetProjectID() (string, bool) {
	if m.selection.ProjectID != board.AllID {
		return m.selection.ProjectID, true
	}
	ps := m.visibleProjects()
	if len(ps) == 0 {
		return "", false
	}
	idx := m.projectIdx
	if idx >= len(ps) {
		idx = 0
	}
	return ps[idx].ID, true
}
