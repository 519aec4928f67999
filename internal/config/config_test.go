package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFrom_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "category_column: type\ndefault_show_rows: 10\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "type", cfg.CategoryColumn)
	assert.Equal(t, 10, cfg.DefaultShowRows)
	assert.Equal(t, "debug", cfg.LogLevel)

	// Untouched keys keep their defaults.
	assert.Equal(t, "quantity", cfg.QuantityColumn)
	assert.Equal(t, "summary_report.csv", cfg.DefaultReportPath)
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("category_column: type\n"), 0644))

	t.Setenv("STOCKTAKE_CATEGORY_COLUMN", "group")
	t.Setenv("STOCKTAKE_SHOW_ROWS", "12")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "group", cfg.CategoryColumn)
	assert.Equal(t, 12, cfg.DefaultShowRows)
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("category_column: [unclosed"), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestLoadFrom_NonPositiveShowRowsResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("default_show_rows: -3\n"), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, Default().DefaultShowRows, cfg.DefaultShowRows)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	want := Default()
	want.CategoryColumn = "type"
	require.NoError(t, want.Save(path))

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
