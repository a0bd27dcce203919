package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/teamboard/internal/util"
)

func (m BoardModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\nPress Ctrl+C to quit.", m.err)
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderProjectRows())
	sections = append(sections, m.renderTasks())

	if m.creatingTask {
		sections = append(sections, m.renderTaskInput())
	}
	if m.confirmingDelete {
		sections = append(sections, m.theme.Focused.Render("Delete this task? (y/n)"))
	}

	sections = append(sections, m.renderFooter())
	return m.theme.Base.Render(strings.Join(sections, "\n\n"))
}

func (m BoardModel) renderFooter() string {
	var parts []string
	if m.Message != "" {
		parts = append(parts, m.theme.Highlight.Render(m.Message))
	}

	var keys []string
	for _, b := range m.registry.HelpEntries(m) {
		if b.Description == "" {
			continue
		}
		key := b.Key
		if key == " " {
			key = "space"
		}
		keys = append(keys, fmt.Sprintf("[%s] %s", key, b.Description))
	}
	parts = append(parts, m.theme.Dim.Render(strings.Join(keys, "  ")))

	flags := util.EnabledLabels([]util.Flag{
		{Label: "completed", Enabled: m.cfg.ShowCompleted},
		{Label: "empty projects", Enabled: m.cfg.ShowEmptyProjects},
	})
	if len(flags) > 0 {
		parts = append(parts, m.theme.Dim.Render("showing: "+strings.Join(flags, ", ")))
	}

	return strings.Join(parts, "\n")
}
