package backup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cheesecatalog/internal/catalog"
	"cheesecatalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	collections map[string]models.Catalog
	failInsert  bool
}

func (f *fakeRemote) ListCollections(context.Context) ([]string, error) {
	var names []string
	for name := range f.collections {
		names = append(names, name)
	}
	return names, nil
}

func (f *fakeRemote) ReplaceCatalog(_ context.Context, collection string, c models.Catalog) (int, error) {
	if f.failInsert {
		return 0, errors.New("connection reset")
	}
	f.collections[collection] = c.Clone()
	return len(c), nil
}

func (f *fakeRemote) FetchCatalog(_ context.Context, collection string) (models.Catalog, error) {
	return f.collections[collection].Clone(), nil
}

func record(name, milchart string) models.Record {
	var r models.Record
	r.Set("Name", name)
	r.Set("Milchart", milchart)
	return r
}

func newLocal(t *testing.T, content string) *catalog.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cheesedata.json")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return catalog.NewStore(path, nil)
}

func TestBackup(t *testing.T) {
	remote := &fakeRemote{collections: map[string]models.Catalog{}}
	local := newLocal(t, `[{"Name":"Brie","Milchart":"Kuh"},{"Name":"Feta","Milchart":"Schaf"}]`)

	count, err := NewService(remote, local, nil).Backup(context.Background(), "cheeses")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, models.Catalog{record("Brie", "Kuh"), record("Feta", "Schaf")}, remote.collections["cheeses"])
}

func TestBackupErrors(t *testing.T) {
	remote := &fakeRemote{collections: map[string]models.Catalog{}}
	_, err := NewService(remote, newLocal(t, ""), nil).Backup(context.Background(), "cheeses")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	remote.failInsert = true
	_, err = NewService(remote, newLocal(t, `[]`), nil).Backup(context.Background(), "cheeses")
	assert.ErrorContains(t, err, "connection reset")
}

func TestRestore(t *testing.T) {
	remote := &fakeRemote{collections: map[string]models.Catalog{
		"cheeses": {record("Brie", "Kuh"), record("Pecorino", "Schaf")},
	}}
	local := newLocal(t, "")
	opts := models.NewOptionSet(map[string][]string{"Milchart": {"Kuh", "Ziege"}})

	count, err := NewService(remote, local, nil).Restore(context.Background(), "cheeses", opts)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	restored, err := local.Load()
	require.NoError(t, err)
	assert.Equal(t, models.Catalog{record("Brie", "Kuh"), record("Pecorino", "")}, restored)
}

func TestRestoreMissingCollection(t *testing.T) {
	remote := &fakeRemote{collections: map[string]models.Catalog{}}
	local := newLocal(t, `[{"Name":"Brie"}]`)

	_, err := NewService(remote, local, nil).Restore(context.Background(), "cheeses", models.NewOptionSet(nil))
	assert.ErrorIs(t, err, ErrNoCollection)

	kept, err := local.Load()
	require.NoError(t, err)
	assert.Len(t, kept, 1, "catalog file is untouched")
}
