// Package search issues generated queries against a web-search provider and
// collects raw result records.
package search

import (
	"context"

	"github.com/rankyx/jobscout/internal/types"
)

// Client is the interface all search providers implement.
type Client interface {
	// Name returns the provider identifier (e.g., "tavily", "google")
	Name() string
	// Search runs one query and returns up to maxResults results, each
	// stamped with the query that produced it.
	Search(ctx context.Context, query string, maxResults int) ([]types.SearchResult, error)
}
