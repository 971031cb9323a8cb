package cmd

import (
	"fmt"

	"cheesecatalog/internal/csv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to CSV",
	Long: `Export every record of the catalog to a CSV file. The header row uses the
catalog column names so the file can be imported again.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&csvFile, "csv", "c", "", "CSV file to write (required)")

	exportCmd.MarkFlagRequired("csv")
}

func runExport(cmd *cobra.Command, args []string) error {
	store := newStore()
	records, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if err := csv.NewParser(csvFile).WriteRecords(records); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	logger.Info("Export completed",
		zap.String("catalog", store.Path()),
		zap.String("file", csvFile),
		zap.Int("records", len(records)))
	return nil
}
