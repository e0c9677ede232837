package search

import (
	"context"
	"fmt"

	customsearch "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/rankyx/jobscout/internal/fetch"
	"github.com/rankyx/jobscout/internal/types"
)

// GoogleClient implements Client for the Google Custom Search API.
type GoogleClient struct {
	svc *customsearch.Service
	cx  string
}

// NewGoogleClient creates a Google Custom Search client.
func NewGoogleClient(ctx context.Context, apiKey string, cx string) (*GoogleClient, error) {
	if apiKey == "" || cx == "" {
		return nil, fmt.Errorf("API key and search engine ID are required")
	}
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &GoogleClient{svc: svc, cx: cx}, nil
}

// Name returns the provider identifier.
func (c *GoogleClient) Name() string { return "google" }

// Search runs one query against the Custom Search engine.
func (c *GoogleClient) Search(ctx context.Context, query string, maxResults int) ([]types.SearchResult, error) {
	call := c.svc.Cse.List().Cx(c.cx).Q(query).Context(ctx)
	if maxResults > 0 {
		call = call.Num(int64(maxResults))
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("google search failed: %w", err)
	}

	results := make([]types.SearchResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Link == "" || item.Title == "" {
			continue
		}
		results = append(results, types.SearchResult{
			Query:   query,
			URL:     item.Link,
			Title:   fetch.StripHTML(item.Title),
			Snippet: fetch.StripHTML(item.Snippet),
		})
		if len(results) == maxResults {
			break
		}
	}

	return results, nil
}
