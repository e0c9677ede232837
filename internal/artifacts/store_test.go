package artifacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rankyx/jobscout/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")
	store, err := NewStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, dir, store.Dir())
}

func TestNewStore_EmptyDir(t *testing.T) {
	_, err := NewStore("")
	assert.Error(t, err)
}

func TestStore_JSONRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	records := []types.JobRecord{
		{
			Title:       "ML Engineer",
			Company:     "Acme",
			Location:    "Cairo, Egypt",
			Salary:      "$100k",
			Description: "Build ML pipelines",
			ApplyURL:    "https://acme.com/apply",
			SourceURL:   "https://acme.com/jobs/1",
		},
		{
			Title:       "Data Scientist",
			Company:     "Globex",
			Location:    "Remote",
			Description: "Analyze product data",
			ApplyURL:    "https://globex.com/careers/7/apply",
			SourceURL:   "https://globex.com/careers/7",
		},
	}

	_, err = store.WriteJSON(JobRecordsFile, records)
	require.NoError(t, err)

	var loaded []types.JobRecord
	require.NoError(t, store.ReadJSON(JobRecordsFile, &loaded))
	assert.Equal(t, records, loaded)
}

func TestStore_WriteJSON_Deterministic(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	queries := []string{"ml engineer egypt", "data scientist cairo"}

	_, err = store.WriteJSON(QueriesFile, queries)
	require.NoError(t, err)
	first, err := store.ReadBytes(QueriesFile)
	require.NoError(t, err)

	_, err = store.WriteJSON(QueriesFile, queries)
	require.NoError(t, err)
	second, err := store.ReadBytes(QueriesFile)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStore_WriteJSON_OverwritesPreviousRun(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.WriteJSON(QueriesFile, []string{"old query"})
	require.NoError(t, err)
	_, err = store.WriteJSON(QueriesFile, []string{"new query"})
	require.NoError(t, err)

	var queries []string
	require.NoError(t, store.ReadJSON(QueriesFile, &queries))
	assert.Equal(t, []string{"new query"}, queries)
}

func TestStore_WriteText(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.WriteText(ReportFile, "<html></html>")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}

func TestStore_ReadJSON_MissingFile(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	var out []string
	assert.Error(t, store.ReadJSON(QueriesFile, &out))
}
