package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cheesecatalog/internal/models"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned by Load when the data file does not exist.
	ErrNotFound = errors.New("catalog file not found")
	// ErrInvalidJSON is returned by Load when the data file is empty or not a JSON array of records.
	ErrInvalidJSON = errors.New("catalog file is empty or not valid JSON")
)

// Store reads and writes the catalog data file.
type Store struct {
	path   string
	logger *zap.Logger
}

func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the data file location.
func (s *Store) Path() string {
	return s.path
}

// Name returns the base name of the data file, as shown to the user.
func (s *Store) Name() string {
	return filepath.Base(s.path)
}

func (s *Store) Load() (models.Catalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var catalog models.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if catalog == nil {
		// "null" decodes without error but is not a catalog
		return nil, fmt.Errorf("%w: top-level value is null", ErrInvalidJSON)
	}

	s.logger.Debug("Loaded catalog", zap.String("path", s.path), zap.Int("records", len(catalog)))
	return catalog, nil
}

// Save overwrites the data file with the whole catalog.
func (s *Store) Save(catalog models.Catalog) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(catalog); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	s.logger.Info("Saved catalog", zap.String("path", s.path), zap.Int("records", len(catalog)))
	return nil
}
