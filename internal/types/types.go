// Package types provides type definitions for the structured data that flows
// through the job search pipeline.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// SearchInputs holds the parameters for a single pipeline run. It is created
// once at startup and never mutated afterwards.
type SearchInputs struct {
	Role       string `json:"role" validate:"required"`
	Location   string `json:"location" validate:"required"`
	Language   string `json:"language" validate:"required"`
	QueryCount int    `json:"query_count" validate:"required,min=1"`
}

// SearchResult represents one raw web-search hit for a generated query.
type SearchResult struct {
	Query   string `json:"query"`
	URL     string `json:"url"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// JobSpec is one named requirement or attribute listed on a posting, such as
// years of experience or a required degree.
type JobSpec struct {
	Name  string `json:"specification_name" validate:"required"`
	Value string `json:"specification_value" validate:"required"`
}

// JobRecord is a structured job posting extracted from a single result URL.
// The core fields must all be present; salary, posting date, specs, and the
// recommendation fields depend on what the page states and may be empty.
type JobRecord struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Salary      string `json:"salary,omitempty"`
	Description string `json:"description" validate:"required"`
	ApplyURL    string `json:"apply_url" validate:"required,url"`
	SourceURL   string `json:"source_url" validate:"required,url"`

	PostingDate         string    `json:"job_posting_date,omitempty"`
	Specs               []JobSpec `json:"job_specs,omitempty" validate:"omitempty,dive"`
	RecommendationRank  int       `json:"recommendation_rank,omitempty" validate:"omitempty,min=1,max=5"`
	RecommendationNotes []string  `json:"recommendation_notes,omitempty"`
}

// Report aggregates all extracted job records with a generated summary.
type Report struct {
	Summary     string      `json:"summary"`
	Jobs        []JobRecord `json:"jobs"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// Validate validates the SearchInputs using the validator.
func (s *SearchInputs) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// Validate validates the JobRecord using the validator.
func (r *JobRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
