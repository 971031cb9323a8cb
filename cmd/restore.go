package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"cheesecatalog/internal/backup"
	"cheesecatalog/internal/database"

	"github.com/spf13/cobra"
)

var skipConfirmation bool

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the catalog from MongoDB",
	Long: `Overwrite the catalog file with the records of a MongoDB collection.
Dropdown values that are not listed in the options file are cleared.`,
	RunE: runRestore,
}

func init() {
	addDBFlags(restoreCmd)
	restoreCmd.Flags().BoolVar(&skipConfirmation, "yes", false, "Skip confirmation prompts")
}

func runRestore(cmd *cobra.Command, args []string) error {
	options, err := loadOptions()
	if err != nil {
		return err
	}

	if !skipConfirmation {
		fmt.Println("About to restore:")
		fmt.Printf("  Source: %s.%s\n", dbName, collection)
		fmt.Printf("  Target file: %s\n", dataFile)
		fmt.Println("  WARNING: The catalog file will be OVERWRITTEN!")

		if !confirmAction("Do you want to continue?") {
			fmt.Println("Restore cancelled")
			return nil
		}
	}

	db, err := database.NewMongoDB(dbURI, dbName, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), dbTimeout)
	defer cancel()

	count, err := backup.NewService(db, newStore(), logger).Restore(ctx, collection, options)
	if err != nil {
		return err
	}

	fmt.Printf("Restored %d records into %s\n", count, dataFile)
	return nil
}

func confirmAction(message string) bool {
	fmt.Printf("%s (y/N): ", message)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
