package cmd

import (
	"errors"
	"fmt"

	"cheesecatalog/internal/catalog"
	"cheesecatalog/internal/csv"
	"cheesecatalog/internal/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	csvFile      string
	appendImport bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import cheese records from CSV",
	Long: `Import cheese records from a CSV file whose header row uses the catalog
column names. Dropdown values that are not listed in the options file are cleared.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&csvFile, "csv", "c", "", "CSV file to import (required)")
	importCmd.Flags().BoolVarP(&appendImport, "append", "a", false, "Append to the catalog instead of replacing it")

	importCmd.MarkFlagRequired("csv")
}

func runImport(cmd *cobra.Command, args []string) error {
	options, err := loadOptions()
	if err != nil {
		return err
	}

	records, err := csv.NewParser(csvFile).ParseRecords()
	if err != nil {
		return fmt.Errorf("failed to parse CSV: %w", err)
	}
	logger.Info("Parsed CSV", zap.String("file", csvFile), zap.Int("records", len(records)))

	store := newStore()
	result := models.Catalog{}
	if appendImport {
		existing, err := store.Load()
		if err != nil && !errors.Is(err, catalog.ErrNotFound) {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		result = append(result, existing...)
	}

	imported, skipped, cleared := mergeRecords(&result, records, options)
	for _, c := range cleared {
		logger.Warn("Cleared dropdown values not in the options file",
			zap.Int("record", c.index+1), zap.String("name", c.name), zap.Int("fields", c.count))
	}
	if skipped > 0 {
		logger.Warn("Skipped empty records", zap.Int("count", skipped))
	}

	if err := store.Save(result); err != nil {
		return err
	}

	logger.Info("Import completed",
		zap.Int("imported", imported),
		zap.Int("total", len(result)),
		zap.String("catalog", store.Path()))
	return nil
}

type clearedRecord struct {
	index int
	name  string
	count int
}

// mergeRecords appends the non-empty records to dst after clearing dropdown values
// outside the vocabulary.
func mergeRecords(dst *models.Catalog, records models.Catalog, options *models.OptionSet) (imported, skipped int, cleared []clearedRecord) {
	for i, record := range records {
		if record.IsEmpty() {
			skipped++
			continue
		}
		if n := options.Conform(&record); n > 0 {
			cleared = append(cleared, clearedRecord{index: i, name: record.Get("Name"), count: n})
		}
		*dst = append(*dst, record)
		imported++
	}
	return imported, skipped, cleared
}
