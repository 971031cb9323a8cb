// Package editor holds the table editor state: a grid of records whose dropdown
// columns only ever show values from the OptionSet. The grid is independent of any
// display; the terminal UI projects it onto a table widget.
package editor

import (
	"errors"
	"fmt"

	"cheesecatalog/internal/catalog"
	"cheesecatalog/internal/models"

	"go.uber.org/zap"
)

// DefaultRows is the number of blank rows shown before the first reload.
const DefaultRows = 20

// ErrConstrained is returned when free text is written into a dropdown column.
var ErrConstrained = errors.New("column only accepts values from its dropdown")

// Store is the persistence the editor reloads from and saves to.
type Store interface {
	Load() (models.Catalog, error)
	Save(models.Catalog) error
	Name() string
}

type Editor struct {
	store   Store
	options *models.OptionSet
	rows    models.Catalog
	logger  *zap.Logger
}

// New builds an editor with rows blank records.
func New(store Store, options *models.OptionSet, rows int, logger *zap.Logger) *Editor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rows < 0 {
		rows = 0
	}
	return &Editor{
		store:   store,
		options: options,
		rows:    make(models.Catalog, rows),
		logger:  logger,
	}
}

func (e *Editor) Rows() int {
	return len(e.rows)
}

// Empty reports whether the grid holds no rows.
func (e *Editor) Empty() bool {
	return len(e.rows) == 0
}

func (e *Editor) StoreName() string {
	return e.store.Name()
}

// Cell returns the displayed value at row, col.
func (e *Editor) Cell(row, col int) string {
	if !e.inRange(row, col) {
		return ""
	}
	return e.rows[row][col]
}

// Choices returns the dropdown entries for col, or nil for free text columns.
func (e *Editor) Choices(col int) []string {
	if !models.IsConstrained(col) {
		return nil
	}
	return e.options.Choices(models.Columns[col])
}

// SetText writes a free text cell.
func (e *Editor) SetText(row, col int, value string) error {
	if !e.inRange(row, col) {
		return fmt.Errorf("cell %d,%d out of range", row, col)
	}
	if models.IsConstrained(col) {
		return fmt.Errorf("%s: %w", models.Columns[col], ErrConstrained)
	}
	e.rows[row][col] = value
	return nil
}

// Select sets a dropdown cell. Values outside the vocabulary leave the cell unchanged.
func (e *Editor) Select(row, col int, value string) bool {
	if !e.inRange(row, col) || !models.IsConstrained(col) {
		return false
	}
	if !e.options.Allows(models.Columns[col], value) {
		return false
	}
	e.rows[row][col] = value
	return true
}

// Snapshot returns the grid contents as a catalog, one record per row.
func (e *Editor) Snapshot() models.Catalog {
	return e.rows.Clone()
}

// Reload replaces the grid with the stored catalog. A missing or undecodable file is
// reported as a notice; any other read fault is returned.
func (e *Editor) Reload() ([]Notice, error) {
	loaded, err := e.Load()
	return e.Apply(loaded, err)
}

// Apply replaces the grid with the result of a catalog load. The grid is cleared
// first, so a failed load leaves it empty.
func (e *Editor) Apply(loaded models.Catalog, err error) ([]Notice, error) {
	e.rows = models.Catalog{}

	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			e.logger.Warn("Catalog file not found", zap.String("file", e.store.Name()))
			return []Notice{notFoundNotice(e.store.Name())}, nil
		case errors.Is(err, catalog.ErrInvalidJSON):
			e.logger.Warn("Catalog file could not be decoded", zap.Error(err))
			return []Notice{loadErrorNotice()}, nil
		default:
			e.logger.Error("Catalog reload failed", zap.Error(err))
			return nil, err
		}
	}

	cleared := 0
	for _, row := range loaded {
		cleared += e.options.Conform(&row)
		e.rows = append(e.rows, row)
	}

	if cleared > 0 {
		e.logger.Debug("Dropped values outside the dropdown vocabulary", zap.Int("cells", cleared))
	}
	e.logger.Info("Catalog reloaded", zap.Int("rows", len(e.rows)))
	return []Notice{updateCompleteNotice()}, nil
}

// Load reads the stored catalog without touching the grid. Pass the result to Apply.
func (e *Editor) Load() (models.Catalog, error) {
	return e.store.Load()
}

// Save writes every row back to the store. Write failures are returned to the caller.
func (e *Editor) Save() ([]Notice, error) {
	return e.Write(e.Snapshot())
}

// Write stores a snapshot taken earlier with Snapshot.
func (e *Editor) Write(snapshot models.Catalog) ([]Notice, error) {
	if err := e.store.Save(snapshot); err != nil {
		return nil, err
	}
	return []Notice{saveCompleteNotice()}, nil
}

func (e *Editor) inRange(row, col int) bool {
	return row >= 0 && row < len(e.rows) && col >= 0 && col < models.ColumnCount
}
