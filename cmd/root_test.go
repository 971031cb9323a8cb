package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cheesecatalog/internal/catalog"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args after restoring every flag to its default.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	reset := func(flags *pflag.FlagSet) {
		flags.VisitAll(func(f *pflag.Flag) {
			require.NoError(t, f.Value.Set(f.DefValue))
			f.Changed = false
		})
	}
	reset(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		reset(c.Flags())
	}

	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	return rootCmd.Execute()
}

func writeCatalog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestExportUsesDataFileFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	data := writeCatalog(t, dir, "env.json", `[{"Name":"Brie","Milchart":"Kuh"}]`)
	out := filepath.Join(dir, "out.csv")
	t.Setenv("CHEESE_DATA_FILE", data)

	require.NoError(t, execute(t, "export", "--csv", out))
	assert.Equal(t, data, dataFile)

	lines := readLines(t, out)
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Name,Herkunft/Region,Milchart,"))
	assert.True(t, strings.HasSuffix(lines[0], ",Preis pro Kg,Foto"))
	assert.True(t, strings.HasPrefix(lines[1], "Brie,,Kuh,"))
}

func TestDataFlagOverridesEnvironment(t *testing.T) {
	dir := t.TempDir()
	data := writeCatalog(t, dir, "flag.json", `[{"Name":"Gouda"},{"Name":"Feta"}]`)
	out := filepath.Join(dir, "out.csv")
	t.Setenv("CHEESE_DATA_FILE", filepath.Join(dir, "missing.json"))

	require.NoError(t, execute(t, "--data", data, "export", "--csv", out))
	assert.Equal(t, data, dataFile)

	lines := readLines(t, out)
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "Gouda,"))
	assert.True(t, strings.HasPrefix(lines[2], "Feta,"))
}

func TestExportMissingCatalog(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CHEESE_DATA_FILE", "")

	err := execute(t, "--data", filepath.Join(dir, "none.json"), "export", "--csv", filepath.Join(dir, "out.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.NoFileExists(t, filepath.Join(dir, "out.csv"))
}
