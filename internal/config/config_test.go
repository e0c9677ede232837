package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"role": "Data Engineer",
		"location": "Germany",
		"query_count": 5,
		"search_provider": "google"
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer", cfg.Role)
	assert.Equal(t, "Germany", cfg.Location)
	assert.Equal(t, 5, cfg.QueryCount)
	assert.Equal(t, "google", cfg.SearchProvider)
	assert.Empty(t, cfg.Language)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantError bool
	}{
		{"defaults are valid", Default(), false},
		{"negative query count", Config{QueryCount: -1}, true},
		{"negative results per query", Config{ResultsPerQuery: -2}, true},
		{"unknown provider", Config{SearchProvider: "bing"}, true},
		{"empty provider allowed", Config{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_MergeWithDefaults(t *testing.T) {
	cfg := Config{Role: "Backend Engineer", QueryCount: 3}
	merged := cfg.MergeWithDefaults(Default())

	assert.Equal(t, "Backend Engineer", merged.Role)
	assert.Equal(t, 3, merged.QueryCount)
	assert.Equal(t, "Egypt", merged.Location)
	assert.Equal(t, "English", merged.Language)
	assert.Equal(t, DefaultResultsPerQuery, merged.ResultsPerQuery)
	assert.Equal(t, DefaultOutputDir, merged.OutputDir)
	assert.Equal(t, "tavily", merged.SearchProvider)
}
