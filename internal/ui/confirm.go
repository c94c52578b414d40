package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel is a yes/no prompt
type ConfirmModel struct {
	prompt    string
	confirmed bool
	done      bool
}

// NewConfirmModel creates a prompt showing the given question
func NewConfirmModel(prompt string) ConfirmModel {
	return ConfirmModel{prompt: prompt}
}

// Init implements tea.Model
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
		// Enter accepts the default, which is no
		m.done = true
		return m, tea.Quit

	case tea.KeyRunes:
		switch strings.ToLower(string(key.Runes)) {
		case "y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "q":
			m.done = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model
func (m ConfirmModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s ", HeaderStyle.Render(m.prompt), MutedStyle.Render("[y/N]"))
}

// Confirmed reports whether the user answered yes
func (m ConfirmModel) Confirmed() bool {
	return m.confirmed
}

// Confirm runs an interactive yes/no prompt
func Confirm(prompt string) (bool, error) {
	p := tea.NewProgram(NewConfirmModel(prompt))

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("error running prompt: %w", err)
	}

	return finalModel.(ConfirmModel).Confirmed(), nil
}
