package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DropdownModel is the choice list opened on a constrained cell. The first entry is
// always the empty selection.
type DropdownModel struct {
	heading  string
	choices  []string
	cursor   int
	chosen   bool
	canceled bool
}

func NewDropdownModel(heading string, choices []string, current string) *DropdownModel {
	m := &DropdownModel{heading: heading, choices: choices}
	for i, choice := range choices {
		if choice == current {
			m.cursor = i
			break
		}
	}
	return m
}

func (m *DropdownModel) Update(msg tea.Msg) (*DropdownModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = len(m.choices) - 1
		case "enter", " ":
			m.chosen = true
		case "esc":
			m.canceled = true
		}
	}
	return m, nil
}

// Value returns the highlighted choice.
func (m *DropdownModel) Value() string {
	if len(m.choices) == 0 {
		return ""
	}
	return m.choices[m.cursor]
}

// Done reports whether the list was closed and whether a value was picked.
func (m *DropdownModel) Done() (closed, chosen bool) {
	return m.chosen || m.canceled, m.chosen
}

func (m *DropdownModel) View() string {
	var list string
	for i, choice := range m.choices {
		label := choice
		if label == "" {
			label = "(leer)"
		}
		cursor := " "
		if m.cursor == i {
			cursor = ">"
			label = selectedMenuItemStyle.Render(label)
		} else {
			label = menuItemStyle.Render(label)
		}
		list += fmt.Sprintf("%s %s\n", cursor, label)
	}

	return formStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		labelStyle.Render(m.heading+":"),
		list,
	))
}
