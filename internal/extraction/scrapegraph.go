package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rankyx/jobscout/internal/fetch"
	"github.com/rankyx/jobscout/internal/schemas"
	"github.com/rankyx/jobscout/internal/types"
)

const defaultScrapeGraphBaseURL = "https://api.scrapegraphai.com/v1"

// ScrapeGraphClient implements Client for the ScrapeGraphAI smartscraper API.
type ScrapeGraphClient struct {
	apiKey  string
	baseURL string
	prompt  string
}

// NewScrapeGraphClient creates a ScrapeGraph client. The extraction prompt
// embeds the job record JSON Schema so the provider returns exactly the
// fields the checkpoint format expects.
func NewScrapeGraphClient(apiKey string) (*ScrapeGraphClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	schemaJSON, err := schemas.SchemaJSON(schemas.JobRecordSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to load job record schema: %w", err)
	}

	prompt := fmt.Sprintf(
		"Extract ```json\n%s\n``` from the job posting web page. "+
			"Return ONLY the JSON object. Use an empty string for salary when the page does not state one. "+
			"Omit job_posting_date, job_specs, recommendation_rank and recommendation_notes when they cannot be determined from the page.",
		schemaJSON,
	)

	return &ScrapeGraphClient{
		apiKey:  apiKey,
		baseURL: defaultScrapeGraphBaseURL,
		prompt:  prompt,
	}, nil
}

// WithBaseURL overrides the API endpoint. Used by tests.
func (c *ScrapeGraphClient) WithBaseURL(baseURL string) *ScrapeGraphClient {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

// Name returns the provider identifier.
func (c *ScrapeGraphClient) Name() string { return "scrapegraph" }

// smartScraperRequest is the POST /smartscraper payload.
type smartScraperRequest struct {
	WebsiteURL string `json:"website_url"`
	UserPrompt string `json:"user_prompt"`
}

// smartScraperResponse mirrors the fields of the response we consume.
type smartScraperResponse struct {
	RequestID string          `json:"request_id"`
	Status    string          `json:"status"`
	Result    json.RawMessage `json:"result"`
	Error     string          `json:"error,omitempty"`
}

// Extract scrapes one page through the smartscraper endpoint.
func (c *ScrapeGraphClient) Extract(ctx context.Context, pageURL string) (*types.JobRecord, error) {
	payload := smartScraperRequest{
		WebsiteURL: pageURL,
		UserPrompt: c.prompt,
	}

	opts := fetch.DefaultOptions()
	opts.Headers = map[string]string{
		"SGAI-APIKEY": c.apiKey,
	}

	var response smartScraperResponse
	if _, err := fetch.PostJSON(ctx, c.baseURL+"/smartscraper", payload, &response, opts); err != nil {
		return nil, fmt.Errorf("smartscraper call failed: %w", err)
	}

	if response.Error != "" {
		return nil, fmt.Errorf("smartscraper rejected %s: %s", pageURL, response.Error)
	}
	if len(response.Result) == 0 {
		return nil, fmt.Errorf("smartscraper returned no result for %s", pageURL)
	}

	var record types.JobRecord
	if err := json.Unmarshal(response.Result, &record); err != nil {
		return nil, fmt.Errorf("smartscraper result did not match schema for %s: %w", pageURL, err)
	}

	record.Description = fetch.StripHTML(record.Description)
	if record.SourceURL == "" {
		record.SourceURL = pageURL
	}
	if record.ApplyURL == "" {
		record.ApplyURL = pageURL
	}

	return &record, nil
}
