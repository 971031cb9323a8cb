package tui

import (
	"fmt"
	"strings"

	"cheesecatalog/internal/editor"
	"cheesecatalog/internal/models"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// dismissKey acknowledges the notice on top of the queue.
var dismissKey = key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", "OK"))

type EditorState int

const (
	GridState EditorState = iota
	TextEditState
	MultilineEditState
	DropdownState
)

// reloadedMsg carries the result of reading the catalog file.
type reloadedMsg struct {
	catalog models.Catalog
	err     error
}

// savedMsg carries the result of writing a snapshot.
type savedMsg struct {
	notices []editor.Notice
	err     error
}

// EditorModel is the table screen: the grid, its Update and Save buttons and the
// notices they raise.
type EditorModel struct {
	state    EditorState
	editor   *editor.Editor
	table    table.Model
	input    textinput.Model
	area     textarea.Model
	shown    string
	dropdown *DropdownModel
	notices  []editor.Notice
	col      int
	window   window
	busy     string
	logger   *zap.Logger
	width    int
	height   int
}

func NewEditorModel(ed *editor.Editor, logger *zap.Logger) *EditorModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	keys := table.DefaultKeyMap()
	keys.HalfPageUp.SetEnabled(false)
	keys.HalfPageDown.SetEnabled(false)

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(12),
		table.WithKeyMap(keys),
	)
	t.SetStyles(gridStyles())

	input := textinput.New()
	input.CharLimit = 0
	input.Width = 48

	area := textarea.New()
	area.CharLimit = 0
	area.MaxHeight = 0
	area.ShowLineNumbers = false
	area.SetWidth(48)
	area.SetHeight(5)

	m := &EditorModel{
		state:  GridState,
		editor: ed,
		table:  t,
		input:  input,
		area:   area,
		window: window{count: visibleColumns(0)},
		logger: logger,
	}
	m.refresh()
	return m
}

// Init loads the catalog once the program starts.
func (m *EditorModel) Init() tea.Cmd {
	m.busy = "Loading"
	return m.reloadCmd()
}

func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	m.window.count = visibleColumns(width)
	m.window = m.window.scrollTo(m.col)

	// title, border, status, buttons and help take the rest
	tableHeight := height - 14
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.table.SetHeight(tableHeight)
	m.refresh()
}

// Capturing reports whether keys are consumed by an edit or a notice.
func (m *EditorModel) Capturing() bool {
	return m.state != GridState || len(m.notices) > 0
}

func (m *EditorModel) Update(msg tea.Msg) (*EditorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reloadedMsg:
		m.busy = ""
		m.state = GridState
		notices, err := m.editor.Apply(msg.catalog, msg.err)
		m.refreshAt(0)
		if err != nil {
			return m, ShowError(fmt.Errorf("reload failed: %w", err))
		}
		m.notices = append(m.notices, notices...)
		return m, nil

	case savedMsg:
		m.busy = ""
		if msg.err != nil {
			m.logger.Error("Save failed", zap.Error(msg.err))
			return m, ShowError(fmt.Errorf("save failed: %w", msg.err))
		}
		m.notices = append(m.notices, msg.notices...)
		return m, nil

	case tea.KeyMsg:
		if len(m.notices) > 0 {
			return m.updateNotice(msg)
		}
		switch m.state {
		case GridState:
			return m.updateGridState(msg)
		case TextEditState:
			return m.updateTextEditState(msg)
		case MultilineEditState:
			return m.updateMultilineEditState(msg)
		case DropdownState:
			return m.updateDropdownState(msg)
		}
	}

	return m, nil
}

func (m *EditorModel) updateNotice(msg tea.KeyMsg) (*EditorModel, tea.Cmd) {
	if key.Matches(msg, dismissKey) {
		m.notices = m.notices[1:]
	}
	return m, nil
}

func (m *EditorModel) updateGridState(msg tea.KeyMsg) (*EditorModel, tea.Cmd) {
	switch msg.String() {
	case "left", "h", "shift+tab":
		if m.col > 0 {
			m.moveColumn(m.col - 1)
		}
		return m, nil
	case "right", "l", "tab":
		if m.col < models.ColumnCount-1 {
			m.moveColumn(m.col + 1)
		}
		return m, nil
	case "enter", "e":
		return m.startEdit()
	case "u", "ctrl+r":
		return m.reload()
	case "s", "ctrl+s":
		return m.save()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *EditorModel) updateTextEditState(msg tea.KeyMsg) (*EditorModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.applyText(m.input.Value())
		m.finishEdit()
		return m, nil
	case "esc":
		m.finishEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *EditorModel) updateMultilineEditState(msg tea.KeyMsg) (*EditorModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.applyText(m.area.Value())
		m.finishEdit()
		return m, nil
	case "esc":
		m.finishEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

// applyText stores value unless it is what the editor showed when it opened. The
// widgets normalise some characters, so accepting an untouched editor must not write.
func (m *EditorModel) applyText(value string) {
	if value == m.shown {
		return
	}
	if err := m.editor.SetText(m.row(), m.col, value); err != nil {
		m.logger.Warn("Edit rejected", zap.Error(err))
	}
}

func (m *EditorModel) updateDropdownState(msg tea.KeyMsg) (*EditorModel, tea.Cmd) {
	m.dropdown, _ = m.dropdown.Update(msg)
	closed, chosen := m.dropdown.Done()
	if !closed {
		return m, nil
	}
	if chosen {
		m.editor.Select(m.row(), m.col, m.dropdown.Value())
	}
	m.finishEdit()
	return m, nil
}

func (m *EditorModel) startEdit() (*EditorModel, tea.Cmd) {
	if m.editor.Empty() {
		return m, nil
	}

	row := m.row()
	current := m.editor.Cell(row, m.col)
	if models.IsConstrained(m.col) {
		m.dropdown = NewDropdownModel(models.Columns[m.col], m.editor.Choices(m.col), current)
		m.state = DropdownState
		return m, nil
	}

	// the single-line input folds newlines and tabs into spaces
	if strings.ContainsAny(current, "\n\t") {
		m.area.SetValue(current)
		m.shown = m.area.Value()
		m.state = MultilineEditState
		return m, m.area.Focus()
	}

	m.input.SetValue(current)
	m.input.CursorEnd()
	m.shown = m.input.Value()
	m.state = TextEditState
	return m, m.input.Focus()
}

func (m *EditorModel) finishEdit() {
	m.input.Blur()
	m.input.SetValue("")
	m.area.Blur()
	m.area.Reset()
	m.shown = ""
	m.dropdown = nil
	m.state = GridState
	m.refresh()
}

func (m *EditorModel) reload() (*EditorModel, tea.Cmd) {
	if m.busy != "" {
		return m, nil
	}
	m.busy = "Loading"
	return m, m.reloadCmd()
}

func (m *EditorModel) save() (*EditorModel, tea.Cmd) {
	if m.busy != "" {
		return m, nil
	}
	m.busy = "Saving"
	return m, m.saveCmd(m.editor.Snapshot())
}

func (m *EditorModel) reloadCmd() tea.Cmd {
	ed := m.editor
	return func() tea.Msg {
		catalog, err := ed.Load()
		return reloadedMsg{catalog: catalog, err: err}
	}
}

func (m *EditorModel) saveCmd(snapshot models.Catalog) tea.Cmd {
	ed := m.editor
	return func() tea.Msg {
		notices, err := ed.Write(snapshot)
		return savedMsg{notices: notices, err: err}
	}
}

func (m *EditorModel) moveColumn(col int) {
	m.col = col
	m.window = m.window.scrollTo(col)
	m.refresh()
}

func (m *EditorModel) row() int {
	return m.table.Cursor()
}

// refresh projects the editor grid onto the table widget. Rows are cleared first so
// the widget never renders old rows against a different column set.
func (m *EditorModel) refresh() {
	m.refreshAt(m.table.Cursor())
}

func (m *EditorModel) refreshAt(cursor int) {
	if cursor >= m.editor.Rows() {
		cursor = m.editor.Rows() - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	m.table.SetRows(nil)
	m.table.SetColumns(projectColumns(m.window, m.col))
	m.table.SetRows(projectRows(m.editor.Snapshot(), m.window, cursor, m.col))
	m.table.SetCursor(cursor)
}

func (m *EditorModel) View() string {
	if len(m.notices) > 0 {
		return m.renderNotice(m.notices[0])
	}

	adaptiveTitleStyle, adaptiveFormStyle, adaptiveHelpStyle := GetAdaptiveStyles(m.width)

	title := adaptiveTitleStyle.Render("🧀 Cheese Catalog · " + m.editor.StoreName())
	grid := adaptiveFormStyle.Render(m.table.View())

	var below string
	switch m.state {
	case TextEditState:
		below = labelStyle.Render(models.Columns[m.col]+":") + "\n" + m.input.View()
	case MultilineEditState:
		below = labelStyle.Render(models.Columns[m.col]+":") + "\n" + m.area.View()
	case DropdownState:
		below = m.dropdown.View()
	default:
		below = m.renderButtons()
	}

	help := adaptiveHelpStyle.Render(m.helpText())

	return lipgloss.JoinVertical(lipgloss.Left, title, grid, m.renderStatus(), below, help)
}

func (m *EditorModel) renderStatus() string {
	if m.busy != "" {
		return statusStyle.Render(m.busy + "...")
	}
	if m.editor.Empty() {
		return statusStyle.Render("No rows loaded")
	}
	heading := models.Columns[m.col]
	return statusStyle.Render(fmt.Sprintf("Row %d/%d · %s: %s",
		m.row()+1, m.editor.Rows(), heading, m.editor.Cell(m.row(), m.col)))
}

func (m *EditorModel) renderButtons() string {
	style := buttonStyle
	if m.busy != "" {
		style = busyButtonStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		style.Render("Update (u)"),
		style.Render("Save (s)"),
	)
}

func (m *EditorModel) helpText() string {
	switch m.state {
	case TextEditState:
		return "Enter: Apply • Esc: Cancel"
	case MultilineEditState:
		return "Enter: New line • Ctrl+S: Apply • Esc: Cancel"
	case DropdownState:
		return "↑/↓: Choose • Enter: Select • Esc: Cancel"
	}
	return "↑/↓/←/→: Move • Enter: Edit cell • u: Update • s: Save • q: Quit"
}

func (m *EditorModel) renderNotice(n editor.Notice) string {
	heading := successStyle.Render(n.Title)
	if n.Kind == editor.NoticeWarning {
		heading = warningStyle.Render(n.Title)
	}

	box := noticeStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		heading,
		"",
		n.Text,
		"",
		helpStyle.Render(fmt.Sprintf("%s: %s", dismissKey.Help().Key, dismissKey.Help().Desc)),
	))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
