package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/teamboard/internal/config"
	"github.com/akyairhashvil/teamboard/internal/database"
	"github.com/akyairhashvil/teamboard/internal/tui"
	"github.com/akyairhashvil/teamboard/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	ctx := context.Background()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "teamboard needs an interactive terminal.")
		os.Exit(1)
	}

	// 1. Load Configuration
	cfgPath := filepath.Join(util.ConfigDir(config.AppName), config.ConfigFile)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize Database
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = util.DataDir(config.AppName)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	db, err := database.Open(ctx, filepath.Join(dataDir, config.DBFileName))
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// The config file is the source of truth for the completed status;
	// mirror it into settings so every reader agrees.
	util.LogError("persist completed status",
		db.SetSetting(ctx, database.SettingCompletedStatus, cfg.CompletedStatus))

	if !db.HasData(ctx) {
		util.LogError("seed demo data", db.Seed(ctx))
	}

	// 3. Start Program
	model := tui.NewMainModel(ctx, db, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
