package backup

import (
	"context"
	"errors"
	"fmt"

	"cheesecatalog/internal/models"

	"go.uber.org/zap"
)

// ErrNoCollection is returned by Restore when the source collection does not exist.
var ErrNoCollection = errors.New("collection does not exist")

// Remote is the database side of a backup. *database.MongoDB satisfies it.
type Remote interface {
	ListCollections(ctx context.Context) ([]string, error)
	ReplaceCatalog(ctx context.Context, collection string, catalog models.Catalog) (int, error)
	FetchCatalog(ctx context.Context, collection string) (models.Catalog, error)
}

// Local is the catalog file side of a backup.
type Local interface {
	Load() (models.Catalog, error)
	Save(models.Catalog) error
}

type Service struct {
	remote Remote
	local  Local
	logger *zap.Logger
}

func NewService(remote Remote, local Local, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{remote: remote, local: local, logger: logger}
}

// Backup copies the catalog file into collection, replacing its contents.
func (s *Service) Backup(ctx context.Context, collection string) (int, error) {
	catalog, err := s.local.Load()
	if err != nil {
		return 0, fmt.Errorf("failed to load catalog: %w", err)
	}

	count, err := s.remote.ReplaceCatalog(ctx, collection, catalog)
	if err != nil {
		return 0, fmt.Errorf("backup failed: %w", err)
	}

	s.logger.Info("Backup completed", zap.String("collection", collection), zap.Int("records", count))
	return count, nil
}

// Restore overwrites the catalog file with the records stored in collection. Values
// outside the dropdown vocabulary are cleared before writing.
func (s *Service) Restore(ctx context.Context, collection string, opts *models.OptionSet) (int, error) {
	names, err := s.remote.ListCollections(ctx)
	if err != nil {
		return 0, err
	}
	if !contains(names, collection) {
		return 0, fmt.Errorf("%w: %s", ErrNoCollection, collection)
	}

	catalog, err := s.remote.FetchCatalog(ctx, collection)
	if err != nil {
		return 0, fmt.Errorf("restore failed: %w", err)
	}

	cleared := 0
	for i := range catalog {
		cleared += opts.Conform(&catalog[i])
	}
	if cleared > 0 {
		s.logger.Warn("Cleared values outside the dropdown vocabulary", zap.Int("cells", cleared))
	}

	if err := s.local.Save(catalog); err != nil {
		return 0, fmt.Errorf("failed to write catalog: %w", err)
	}

	s.logger.Info("Restore completed", zap.String("collection", collection), zap.Int("records", len(catalog)))
	return len(catalog), nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
