package cmd

import (
	"fmt"
	"os"

	"cheesecatalog/internal/catalog"
	"cheesecatalog/internal/logging"
	"cheesecatalog/internal/models"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dataFile    string
	optionsFile string
	logFile     string
	debug       bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "cheese-catalog",
	Short: "Edit the cheese catalog in a terminal table",
	Long: `Cheese Catalog edits cheesedata.json in a table whose dropdown columns
are restricted to the values listed in dropddata.json.

Running without a command starts the editor.`,
	SilenceUsage:      true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) { _ = logger.Sync() },
	RunE:              runTUI,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Assigned here to avoid an initialization cycle: setupLogger refers to rootCmd.
	rootCmd.PersistentPreRunE = setupLogger

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "cheesedata.json", "Catalog data file")
	rootCmd.PersistentFlags().StringVar(&optionsFile, "options", "dropddata.json", "Dropdown options file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}

func initConfig() {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	envOverride(&dataFile, "CHEESE_DATA_FILE", "data")
	envOverride(&optionsFile, "CHEESE_OPTIONS_FILE", "options")
	envOverride(&logFile, "CHEESE_LOG_FILE", "log-file")
	envOverride(&dbURI, "DB_URI", "db-uri")
	envOverride(&dbName, "DB_NAME", "database")
	envOverride(&collection, "DB_COLLECTION", "collection")
}

// envOverride applies an environment value unless the flag was given explicitly.
func envOverride(target *string, key, flag string) {
	value := os.Getenv(key)
	if value == "" || flagChanged(flag) {
		return
	}
	*target = value
}

func flagChanged(name string) bool {
	if f := rootCmd.PersistentFlags().Lookup(name); f != nil && f.Changed {
		return true
	}
	for _, c := range rootCmd.Commands() {
		if f := c.Flags().Lookup(name); f != nil && f.Changed {
			return true
		}
	}
	return false
}

func setupLogger(cmd *cobra.Command, args []string) error {
	l, err := logging.New(logging.Config{
		File:  logFile,
		Debug: debug,
		// the editor owns the terminal
		Quiet: cmd == rootCmd || cmd == tuiCmd,
	})
	if err != nil {
		return err
	}
	logger = l
	return nil
}

func newStore() *catalog.Store {
	return catalog.NewStore(dataFile, logger)
}

func loadOptions() (*models.OptionSet, error) {
	options, err := catalog.LoadOptions(optionsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load dropdown options: %w", err)
	}
	return options, nil
}
