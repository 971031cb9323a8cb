package tui

import (
	"fmt"

	"cheesecatalog/internal/editor"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Model is the program root. It owns the editor screen and turns an ErrorMsg into
// a fatal exit.
type Model struct {
	editorModel *EditorModel
	err         error
	quitting    bool
	width       int
	height      int
}

func NewModel(ed *editor.Editor, logger *zap.Logger) Model {
	return Model{
		editorModel: NewEditorModel(ed, logger),
	}
}

func (m Model) Init() tea.Cmd {
	return m.editorModel.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editorModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "q":
			if !m.editorModel.Capturing() {
				m.quitting = true
				return m, tea.Quit
			}
		}

	case ErrorMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	newEditorModel, cmd := m.editorModel.Update(msg)
	m.editorModel = newEditorModel
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		if m.err != nil {
			return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
		}
		return "Bye! 🧀\n"
	}
	return m.editorModel.View()
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

type ErrorMsg struct {
	Err error
}

func ShowError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}
