package cmd

import (
	"fmt"

	"cheesecatalog/internal/editor"
	"cheesecatalog/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the catalog editor (same as default)",
	Long: `Start the terminal table editor for the cheese catalog.
The catalog is loaded on start; u reloads it from disk and s saves it.

Note: This is the same as running the program without any commands.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	options, err := loadOptions()
	if err != nil {
		return err
	}

	ed := editor.New(newStore(), options, editor.DefaultRows, logger)
	model := tui.NewModel(ed, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
