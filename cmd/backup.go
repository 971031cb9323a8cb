package cmd

import (
	"context"
	"fmt"
	"time"

	"cheesecatalog/internal/backup"
	"cheesecatalog/internal/database"

	"github.com/spf13/cobra"
)

const dbTimeout = 30 * time.Second

var (
	dbURI      string
	dbName     string
	collection string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up the catalog to MongoDB",
	Long: `Copy every record of the catalog file into a MongoDB collection. The
collection is replaced, so it always mirrors the file at the time of the backup.`,
	RunE: runBackup,
}

func init() {
	addDBFlags(backupCmd)
}

// addDBFlags registers the connection flags shared by backup and restore.
func addDBFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&dbURI, "db-uri", "u", "mongodb://localhost:27017", "MongoDB connection URI")
	cmd.Flags().StringVarP(&dbName, "database", "d", "cheesecatalog", "Database name")
	cmd.Flags().StringVarP(&collection, "collection", "c", "cheeses", "Collection holding the catalog")
}

func runBackup(cmd *cobra.Command, args []string) error {
	db, err := database.NewMongoDB(dbURI, dbName, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), dbTimeout)
	defer cancel()

	count, err := backup.NewService(db, newStore(), logger).Backup(ctx, collection)
	if err != nil {
		return err
	}

	fmt.Printf("Backed up %d records to %s.%s\n", count, dbName, collection)
	return nil
}
