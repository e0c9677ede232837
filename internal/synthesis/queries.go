// Package synthesis generates search engine queries for a job search run
// using LLM text generation.
package synthesis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rankyx/jobscout/internal/llm"
	"github.com/rankyx/jobscout/internal/prompts"
	"github.com/rankyx/jobscout/internal/types"
)

// queriesResponse is the expected JSON response from the LLM
type queriesResponse struct {
	Queries []string `json:"queries"`
}

// GenerateQueries asks the model for exactly inputs.QueryCount search queries.
// The model returning more queries than requested is tolerated and truncated;
// fewer is an error, since downstream stages size their work on the requested
// count.
func GenerateQueries(ctx context.Context, client llm.Client, inputs types.SearchInputs) ([]string, error) {
	if err := inputs.Validate(); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid search inputs: %v", err)}
	}

	prompt := buildQueryPrompt(inputs)

	// Query construction is a simple generation task
	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate search queries",
			Cause:   err,
		}
	}

	responseText = llm.CleanJSONBlock(responseText)

	var response queriesResponse
	if err := json.Unmarshal([]byte(responseText), &response); err != nil {
		return nil, &ParseError{
			Message: "failed to parse query response",
			Cause:   err,
		}
	}

	queries := make([]string, 0, len(response.Queries))
	for i, q := range response.Queries {
		q = strings.TrimSpace(q)
		if q == "" {
			return nil, &ValidationError{Message: fmt.Sprintf("query %d is empty", i)}
		}
		queries = append(queries, q)
	}

	if len(queries) < inputs.QueryCount {
		return nil, &ValidationError{
			Message: fmt.Sprintf("model returned %d queries, requested %d", len(queries), inputs.QueryCount),
		}
	}
	if len(queries) > inputs.QueryCount {
		queries = queries[:inputs.QueryCount]
	}

	return queries, nil
}

// buildQueryPrompt constructs the query generation prompt
func buildQueryPrompt(inputs types.SearchInputs) string {
	template := prompts.MustGet("synthesis.json", "generate-search-queries")
	return prompts.Format(template, map[string]string{
		"QueryCount": strconv.Itoa(inputs.QueryCount),
		"Role":       inputs.Role,
		"Location":   inputs.Location,
		"Language":   inputs.Language,
	})
}
