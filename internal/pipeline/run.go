// Package pipeline provides the high-level orchestration for the job search process.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rankyx/jobscout/internal/artifacts"
	"github.com/rankyx/jobscout/internal/config"
	"github.com/rankyx/jobscout/internal/db"
	"github.com/rankyx/jobscout/internal/extraction"
	"github.com/rankyx/jobscout/internal/llm"
	"github.com/rankyx/jobscout/internal/observability"
	"github.com/rankyx/jobscout/internal/report"
	"github.com/rankyx/jobscout/internal/schemas"
	"github.com/rankyx/jobscout/internal/search"
	"github.com/rankyx/jobscout/internal/synthesis"
	"github.com/rankyx/jobscout/internal/telemetry"
	"github.com/rankyx/jobscout/internal/types"
)

// RunOptions holds configuration and provider clients for running the pipeline
type RunOptions struct {
	Config config.Config

	LLM       llm.Client
	Search    search.Client
	Extractor extraction.Client

	// Telemetry is optional; a nil session disables event recording.
	Telemetry *telemetry.Session

	Logger zerolog.Logger

	// Now overrides the clock, mainly for tests. Defaults to time.Now.
	Now func() time.Time
}

// Result summarizes a completed pipeline run
type Result struct {
	Queries       []string
	SearchResults []types.SearchResult
	Jobs          []types.JobRecord
	Report        *types.Report
	ReportPath    string
}

// Run executes the four pipeline stages in order, writing a checkpoint
// artifact after each stage. Checkpoints are validated against their JSON
// schemas before the next stage starts.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	inputs := types.SearchInputs{
		Role:       cfg.Role,
		Location:   cfg.Location,
		Language:   cfg.Language,
		QueryCount: cfg.QueryCount,
	}

	store, err := artifacts.NewStore(cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output directory failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)

	// Initialize database mirroring if configured
	var database *db.DB
	var runID uuid.UUID
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			opts.Logger.Warn().Err(err).Msg("failed to connect to database, continuing without persistence")
			database = nil
		} else {
			defer database.Close()
			if err := database.EnsureSchema(ctx); err != nil {
				opts.Logger.Warn().Err(err).Msg("failed to ensure database schema, continuing without persistence")
				database.Close()
				database = nil
			}
		}
	}
	if database != nil {
		runID, err = database.CreateRun(ctx, cfg.Role, cfg.Location)
		if err != nil {
			opts.Logger.Warn().Err(err).Msg("failed to create database run")
			runID = uuid.Nil
		}
	}

	// Step 1: Synthesize search queries
	fmt.Printf("Step 1/4: Synthesizing job search queries...\n")
	queries, err := synthesis.GenerateQueries(ctx, opts.LLM, inputs)
	if err != nil {
		return nil, fmt.Errorf("query synthesis failed: %w", err)
	}
	if err := writeCheckpoint(store, artifacts.QueriesFile, schemas.QueriesSchema, queries); err != nil {
		return nil, err
	}
	if cfg.Verbose {
		printer.PrintQueries(queries)
	}
	opts.Telemetry.RecordEvent(ctx, "query_synthesis", map[string]any{"query_count": len(queries)})
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepQueries, db.CategorySynthesis, queries)
	}

	// Step 2: Search for job postings
	fmt.Printf("Step 2/4: Searching for job postings (%s)...\n", opts.Search.Name())
	results, err := search.FindJobs(ctx, opts.Search, queries, cfg.ResultsPerQuery, opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("job search failed: %w", err)
	}
	if results == nil {
		results = []types.SearchResult{}
	}
	if err := writeCheckpoint(store, artifacts.SearchResultsFile, schemas.SearchResultsSchema, results); err != nil {
		return nil, err
	}
	if cfg.Verbose {
		printer.PrintSearchResults(results)
	}
	opts.Telemetry.RecordEvent(ctx, "job_search", map[string]any{"result_count": len(results)})
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepSearchResults, db.CategorySearch, results)
	}

	// Step 3: Extract structured job records
	fmt.Printf("Step 3/4: Extracting job details from %d pages (%s)...\n", len(results), opts.Extractor.Name())
	jobs, err := extraction.ExtractJobs(ctx, opts.Extractor, results, opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("job extraction failed: %w", err)
	}
	if jobs == nil {
		jobs = []types.JobRecord{}
	}
	if _, err := store.WriteJSON(artifacts.JobRecordsFile, jobs); err != nil {
		return nil, fmt.Errorf("writing checkpoint %s failed: %w", artifacts.JobRecordsFile, err)
	}
	doc, err := store.ReadBytes(artifacts.JobRecordsFile)
	if err != nil {
		return nil, fmt.Errorf("reading checkpoint %s failed: %w", artifacts.JobRecordsFile, err)
	}
	if err := schemas.ValidateJobRecords(doc); err != nil {
		return nil, fmt.Errorf("checkpoint %s failed schema validation: %w", artifacts.JobRecordsFile, err)
	}
	if cfg.Verbose {
		printer.PrintJobRecords(jobs)
	}
	opts.Telemetry.RecordEvent(ctx, "job_extraction", map[string]any{
		"page_count": len(results),
		"job_count":  len(jobs),
	})
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepJobRecords, db.CategoryExtraction, jobs)
	}

	// Step 4: Compose the recruitment report
	fmt.Printf("Step 4/4: Composing recruitment report...\n")
	rep, err := report.Compose(ctx, opts.LLM, inputs, jobs, now().UTC())
	if err != nil {
		return nil, fmt.Errorf("report composition failed: %w", err)
	}
	html, err := report.RenderHTML(rep, inputs)
	if err != nil {
		return nil, fmt.Errorf("report rendering failed: %w", err)
	}
	reportPath, err := store.WriteText(artifacts.ReportFile, html)
	if err != nil {
		return nil, fmt.Errorf("writing report failed: %w", err)
	}
	if cfg.Verbose {
		printer.PrintReportSummary(rep)
	}
	opts.Telemetry.RecordEvent(ctx, "report_composition", map[string]any{"job_count": len(rep.Jobs)})
	if database != nil && runID != uuid.Nil {
		_ = database.SaveTextArtifact(ctx, runID, db.StepReport, db.CategoryReport, html)
		_ = database.CompleteRun(ctx, runID, "completed")
	}

	fmt.Printf("Done! Report written to %s\n", reportPath)

	return &Result{
		Queries:       queries,
		SearchResults: results,
		Jobs:          jobs,
		Report:        rep,
		ReportPath:    reportPath,
	}, nil
}

// writeCheckpoint persists a stage artifact and validates the written bytes
// against the named schema.
func writeCheckpoint(store *artifacts.Store, file, schema string, v any) error {
	if _, err := store.WriteJSON(file, v); err != nil {
		return fmt.Errorf("writing checkpoint %s failed: %w", file, err)
	}
	doc, err := store.ReadBytes(file)
	if err != nil {
		return fmt.Errorf("reading checkpoint %s failed: %w", file, err)
	}
	if err := schemas.ValidateBytes(schema, doc); err != nil {
		return fmt.Errorf("checkpoint %s failed schema validation: %w", file, err)
	}
	return nil
}
