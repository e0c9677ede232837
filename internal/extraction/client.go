// Package extraction turns raw search results into structured job records by
// delegating page scraping to an external extraction API.
package extraction

import (
	"context"

	"github.com/rankyx/jobscout/internal/types"
)

// Client is the interface scraping providers implement.
type Client interface {
	// Name returns the provider identifier (e.g., "scrapegraph")
	Name() string
	// Extract scrapes one page and returns the structured job record found
	// on it. The returned record always carries pageURL as its SourceURL.
	Extract(ctx context.Context, pageURL string) (*types.JobRecord, error)
}
