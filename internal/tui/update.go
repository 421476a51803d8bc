package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.dataset != nil {
			m.paymentsTable.SetHeight(maxInt(4, m.height-8))
		}
		return m, nil

	case DatasetLoadedMsg:
		m.dataset = msg.Dataset
		m.loading = false
		m.evaluate()
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "right", "l":
		m.currentScene = Scene((int(m.currentScene) + 1) % len(sceneTitles))
		return m, nil
	case "shift+tab", "left", "h":
		m.currentScene = Scene((int(m.currentScene) + len(sceneTitles) - 1) % len(sceneTitles))
		return m, nil
	case "1":
		m.currentScene = SceneOverview
		return m, nil
	case "2":
		m.currentScene = ScenePayments
		return m, nil
	case "3":
		m.currentScene = SceneRetirement
		return m, nil
	}

	if m.currentScene == ScenePayments && m.dataset != nil {
		var cmd tea.Cmd
		m.paymentsTable, cmd = m.paymentsTable.Update(msg)
		return m, cmd
	}
	return m, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
