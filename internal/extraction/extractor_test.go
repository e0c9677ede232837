package extraction

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankyx/jobscout/internal/types"
)

// fakeScraper returns canned per-URL records or errors
type fakeScraper struct {
	records map[string]*types.JobRecord
	errs    map[string]error
	calls   []string
}

func (f *fakeScraper) Name() string { return "fake" }

func (f *fakeScraper) Extract(_ context.Context, pageURL string) (*types.JobRecord, error) {
	f.calls = append(f.calls, pageURL)
	if err, ok := f.errs[pageURL]; ok {
		return nil, err
	}
	if record, ok := f.records[pageURL]; ok {
		return record, nil
	}
	return nil, errors.New("unexpected URL")
}

func recordFor(url string) *types.JobRecord {
	return &types.JobRecord{
		Title:       "ML Engineer",
		Company:     "Acme",
		Location:    "Cairo",
		Description: "Build models",
		ApplyURL:    url + "/apply",
		SourceURL:   url,
	}
}

func searchResults(urls ...string) []types.SearchResult {
	out := make([]types.SearchResult, len(urls))
	for i, u := range urls {
		out[i] = types.SearchResult{Query: fmt.Sprintf("q%d", i), URL: u, Title: "t", Snippet: "s"}
	}
	return out
}

func TestExtractJobs_AllSucceed(t *testing.T) {
	scraper := &fakeScraper{records: map[string]*types.JobRecord{
		"https://a.com/1": recordFor("https://a.com/1"),
		"https://b.com/2": recordFor("https://b.com/2"),
	}}

	records, err := ExtractJobs(context.Background(), scraper, searchResults("https://a.com/1", "https://b.com/2"), zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "https://a.com/1", records[0].SourceURL)
	assert.Equal(t, "https://b.com/2", records[1].SourceURL)
}

func TestExtractJobs_FailedURLSkipped(t *testing.T) {
	scraper := &fakeScraper{
		records: map[string]*types.JobRecord{
			"https://a.com/1": recordFor("https://a.com/1"),
			"https://c.com/3": recordFor("https://c.com/3"),
		},
		errs: map[string]error{"https://b.com/2": errors.New("unreachable")},
	}

	input := searchResults("https://a.com/1", "https://b.com/2", "https://c.com/3")
	records, err := ExtractJobs(context.Background(), scraper, input, zerolog.Nop())
	require.NoError(t, err)

	// Never more records than input results; the failed URL is excluded
	require.Len(t, records, 2)
	assert.LessOrEqual(t, len(records), len(input))
	for _, r := range records {
		assert.NotEqual(t, "https://b.com/2", r.SourceURL)
	}
}

func TestExtractJobs_IncompleteRecordDropped(t *testing.T) {
	incomplete := recordFor("https://a.com/1")
	incomplete.Company = "" // partial extraction

	scraper := &fakeScraper{records: map[string]*types.JobRecord{
		"https://a.com/1": incomplete,
		"https://b.com/2": recordFor("https://b.com/2"),
	}}

	records, err := ExtractJobs(context.Background(), scraper, searchResults("https://a.com/1", "https://b.com/2"), zerolog.Nop())
	require.NoError(t, err)

	// No partial record is retained
	require.Len(t, records, 1)
	assert.Equal(t, "https://b.com/2", records[0].SourceURL)
}

func TestExtractJobs_SalaryMayBeEmpty(t *testing.T) {
	record := recordFor("https://a.com/1")
	record.Salary = ""

	scraper := &fakeScraper{records: map[string]*types.JobRecord{"https://a.com/1": record}}

	records, err := ExtractJobs(context.Background(), scraper, searchResults("https://a.com/1"), zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Salary)
}

func TestExtractJobs_DuplicateURLScrapedOnce(t *testing.T) {
	scraper := &fakeScraper{records: map[string]*types.JobRecord{
		"https://a.com/1": recordFor("https://a.com/1"),
	}}

	input := []types.SearchResult{
		{Query: "q1", URL: "https://a.com/1", Title: "t"},
		{Query: "q2", URL: "https://a.com/1", Title: "t"},
	}

	records, err := ExtractJobs(context.Background(), scraper, input, zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Len(t, scraper.calls, 1)
}

func TestExtractJobs_AllFailedIsFatal(t *testing.T) {
	scraper := &fakeScraper{errs: map[string]error{
		"https://a.com/1": errors.New("outage"),
		"https://b.com/2": errors.New("outage"),
	}}

	_, err := ExtractJobs(context.Background(), scraper, searchResults("https://a.com/1", "https://b.com/2"), zerolog.Nop())
	require.Error(t, err)

	var stageErr *AllExtractionsFailedError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, 2, stageErr.URLs)
}

func TestExtractJobs_EmptyInput(t *testing.T) {
	scraper := &fakeScraper{}

	records, err := ExtractJobs(context.Background(), scraper, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, records)
}
