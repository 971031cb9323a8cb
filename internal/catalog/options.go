package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"cheesecatalog/internal/models"
)

// LoadOptions reads the dropdown vocabulary file once. Every constrained column must
// have an entry.
func LoadOptions(path string) (*models.OptionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}

	var values map[string][]string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse options file %s: %w", path, err)
	}

	for _, heading := range models.ConstrainedColumns() {
		if _, ok := values[heading]; !ok {
			return nil, fmt.Errorf("options file %s has no entry for %q", path, heading)
		}
	}

	return models.NewOptionSet(values), nil
}
