package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/rankyx/jobscout/internal/fetch"
	"github.com/rankyx/jobscout/internal/types"
)

const defaultTavilyBaseURL = "https://api.tavily.com"

// TavilyClient implements Client for the Tavily search API.
type TavilyClient struct {
	apiKey  string
	baseURL string
}

// NewTavilyClient creates a Tavily client.
func NewTavilyClient(apiKey string) (*TavilyClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	return &TavilyClient{
		apiKey:  apiKey,
		baseURL: defaultTavilyBaseURL,
	}, nil
}

// WithBaseURL overrides the API endpoint. Used by tests.
func (c *TavilyClient) WithBaseURL(baseURL string) *TavilyClient {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

// Name returns the provider identifier.
func (c *TavilyClient) Name() string { return "tavily" }

// tavilyRequest is the POST /search payload.
type tavilyRequest struct {
	Query       string `json:"query"`
	MaxResults  int    `json:"max_results"`
	SearchDepth string `json:"search_depth"`
}

// tavilyResponse mirrors the fields of the search response we consume.
type tavilyResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// Search runs one query against the Tavily search endpoint.
func (c *TavilyClient) Search(ctx context.Context, query string, maxResults int) ([]types.SearchResult, error) {
	payload := tavilyRequest{
		Query:       query,
		MaxResults:  maxResults,
		SearchDepth: "basic",
	}

	opts := fetch.DefaultOptions()
	opts.Headers = map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}

	var response tavilyResponse
	if _, err := fetch.PostJSON(ctx, c.baseURL+"/search", payload, &response, opts); err != nil {
		return nil, fmt.Errorf("tavily search failed: %w", err)
	}

	results := make([]types.SearchResult, 0, len(response.Results))
	for _, item := range response.Results {
		if item.URL == "" || item.Title == "" {
			continue
		}
		results = append(results, types.SearchResult{
			Query:   query,
			URL:     item.URL,
			Title:   fetch.StripHTML(item.Title),
			Snippet: fetch.StripHTML(item.Content),
		})
		if len(results) == maxResults {
			break
		}
	}

	return results, nil
}
