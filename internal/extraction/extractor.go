package extraction

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rankyx/jobscout/internal/types"
)

// AllExtractionsFailedError reports a whole-stage failure: every URL errored,
// which usually means the scraping provider is down or the credential is bad.
type AllExtractionsFailedError struct {
	Provider string
	URLs     int
	LastErr  error
}

func (e *AllExtractionsFailedError) Error() string {
	return fmt.Sprintf("all %d extractions failed against %s provider: %v", e.URLs, e.Provider, e.LastErr)
}

func (e *AllExtractionsFailedError) Unwrap() error {
	return e.LastErr
}

// ExtractJobs scrapes each search result's URL in order. A URL that cannot be
// extracted or yields an invalid record is skipped entirely; no partial
// record is retained. Duplicate URLs across queries are scraped once.
func ExtractJobs(ctx context.Context, client Client, results []types.SearchResult, logger zerolog.Logger) ([]types.JobRecord, error) {
	var records []types.JobRecord
	var lastErr error
	failed := 0
	seen := make(map[string]bool, len(results))

	for _, result := range results {
		if seen[result.URL] {
			logger.Debug().Str("url", result.URL).Msg("duplicate URL, skipping")
			continue
		}
		seen[result.URL] = true

		record, err := client.Extract(ctx, result.URL)
		if err != nil {
			failed++
			lastErr = err
			logger.Warn().
				Str("provider", client.Name()).
				Str("url", result.URL).
				Err(err).
				Msg("extraction failed, skipping")
			continue
		}

		if err := record.Validate(); err != nil {
			failed++
			lastErr = err
			logger.Warn().
				Str("url", result.URL).
				Err(err).
				Msg("extracted record incomplete, skipping")
			continue
		}

		logger.Debug().
			Str("url", result.URL).
			Str("title", record.Title).
			Str("company", record.Company).
			Msg("job extracted")
		records = append(records, *record)
	}

	if len(seen) > 0 && failed == len(seen) {
		return nil, &AllExtractionsFailedError{
			Provider: client.Name(),
			URLs:     len(seen),
			LastErr:  lastErr,
		}
	}

	return records, nil
}
