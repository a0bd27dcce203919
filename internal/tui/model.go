package tui

import (
	"context"

	"github.com/akyairhashvil/teamboard/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// MainModel is the root bubbletea model. It owns window bookkeeping and
// global quit handling and delegates everything else to the board.
type MainModel struct {
	board         BoardModel
	width, height int
}

func NewMainModel(ctx context.Context, db Database, cfg config.Config) MainModel {
	return MainModel{board: NewBoardModel(ctx, db, cfg)}
}

func (m MainModel) Init() tea.Cmd {
	return m.board.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	newBoard, cmd := m.board.Update(msg)
	m.board = newBoard.(BoardModel)
	return m, cmd
}

func (m MainModel) View() string {
	return m.board.View()
}
