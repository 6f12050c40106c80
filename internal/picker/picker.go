// Package picker implements the interactive wallpaper picker.
package picker

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model listing wallpaper candidates.
type Model struct {
	paths  []string
	cursor int

	// choice holds the selected path once the user confirms.
	choice   string
	quitting bool
}

// New creates a picker over the given image paths.
func New(paths []string) Model {
	return Model{paths: paths}
}

// Choice returns the confirmed selection, empty when the picker was
// aborted.
func (m Model) Choice() string {
	return m.choice
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.paths)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.paths) - 1
	case "enter":
		if len(m.paths) > 0 {
			m.choice = m.paths[m.cursor]
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := titleStyle.Render("Pick a wallpaper") + "\n\n"
	for i, path := range m.paths {
		name := filepath.Base(path)
		if i == m.cursor {
			s += selectedStyle.Render("> "+name) + "\n"
		} else {
			s += "  " + name + "\n"
		}
	}
	s += "\n" + dimStyle.Render("j/k move - enter select - q quit") + "\n"
	return s
}

// Run shows the picker and returns the chosen path. An empty string
// with a nil error means the user aborted.
func Run(paths []string) (string, error) {
	if len(paths) == 0 {
		return "", fmt.Errorf("no wallpapers to pick from")
	}

	final, err := tea.NewProgram(New(paths)).Run()
	if err != nil {
		return "", fmt.Errorf("picker failed: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return "", fmt.Errorf("picker returned unexpected model %T", final)
	}
	return m.Choice(), nil
}
