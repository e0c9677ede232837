// Package report renders the extracted job records into a single styled HTML
// document with an LLM-generated summary.
package report

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rankyx/jobscout/internal/llm"
	"github.com/rankyx/jobscout/internal/prompts"
	"github.com/rankyx/jobscout/internal/types"
)

// noJobsSummary is used instead of an LLM call when nothing was extracted.
// The report still renders so the run leaves a complete artifact trail.
const noJobsSummary = "No job postings could be extracted for this search. " +
	"Consider broadening the role, location, or query count and running again."

// Compose builds the final report: an LLM-written summary plus all job
// records. The now argument pins the generation timestamp so repeated runs
// can be compared.
func Compose(ctx context.Context, client llm.Client, inputs types.SearchInputs, jobs []types.JobRecord, now time.Time) (*types.Report, error) {
	summary, err := Summarize(ctx, client, inputs, jobs)
	if err != nil {
		return nil, err
	}

	return &types.Report{
		Summary:     summary,
		Jobs:        jobs,
		GeneratedAt: now.UTC(),
	}, nil
}

// Summarize asks the model for a short natural-language summary of the
// extracted postings. With zero records the model is not called at all.
func Summarize(ctx context.Context, client llm.Client, inputs types.SearchInputs, jobs []types.JobRecord) (string, error) {
	if len(jobs) == 0 {
		return noJobsSummary, nil
	}

	jobsJSON, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return "", &APICallError{Message: "failed to encode jobs for prompt", Cause: err}
	}

	template := prompts.MustGet("report.json", "summarize-jobs")
	prompt := prompts.Format(template, map[string]string{
		"Role":     inputs.Role,
		"Location": inputs.Location,
		"Jobs":     string(jobsJSON),
	})

	summary, err := client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", &APICallError{
			Message: "failed to generate report summary",
			Cause:   err,
		}
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", &APICallError{Message: "model returned an empty summary"}
	}

	return summary, nil
}
