package search

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rankyx/jobscout/internal/types"
)

// AllQueriesFailedError reports a whole-stage failure: every query errored,
// which usually means a provider outage or a bad credential.
type AllQueriesFailedError struct {
	Provider string
	Queries  int
	LastErr  error
}

func (e *AllQueriesFailedError) Error() string {
	return fmt.Sprintf("all %d queries failed against %s provider: %v", e.Queries, e.Provider, e.LastErr)
}

func (e *AllQueriesFailedError) Unwrap() error {
	return e.LastErr
}

// FindJobs runs each query in order against the provider and concatenates the
// results, query order first, provider rank second. A failed query yields
// zero results and a warning; only every query failing aborts the stage.
func FindJobs(ctx context.Context, client Client, queries []string, perQuery int, logger zerolog.Logger) ([]types.SearchResult, error) {
	var results []types.SearchResult
	var lastErr error
	failed := 0

	for _, query := range queries {
		found, err := client.Search(ctx, query, perQuery)
		if err != nil {
			failed++
			lastErr = err
			logger.Warn().
				Str("provider", client.Name()).
				Str("query", query).
				Err(err).
				Msg("query failed, skipping")
			continue
		}
		logger.Debug().
			Str("query", query).
			Int("results", len(found)).
			Msg("query completed")
		results = append(results, found...)
	}

	if len(queries) > 0 && failed == len(queries) {
		return nil, &AllQueriesFailedError{
			Provider: client.Name(),
			Queries:  len(queries),
			LastErr:  lastErr,
		}
	}

	return results, nil
}
