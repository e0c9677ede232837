package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rankyx/jobscout/internal/artifacts"
	"github.com/rankyx/jobscout/internal/config"
	"github.com/rankyx/jobscout/internal/extraction"
	"github.com/rankyx/jobscout/internal/schemas"
	"github.com/rankyx/jobscout/internal/types"
)

var extractJobsCmd = &cobra.Command{
	Use:   "extract-jobs",
	Short: "Extract structured job records from the stage 2 search results",
	Long:  "Scrape each search result URL from the stage 2 checkpoint and write the validated job records to the stage 3 checkpoint file. Pages that cannot be extracted are skipped.",
	RunE:  runExtractJobs,
}

var (
	extractOutputDir string
	extractAPIKey    string
	extractVerbose   bool
)

func init() {
	extractJobsCmd.Flags().StringVarP(&extractOutputDir, "output-dir", "o", "", "Directory for checkpoint artifacts")
	extractJobsCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "ScrapeGraph API key (overrides SCRAPEGRAPH_API_KEY env var)")
	extractJobsCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(extractJobsCmd)
}

func runExtractJobs(_ *cobra.Command, _ []string) error {
	apiKey, err := apiKeyFromFlagOrEnv(extractAPIKey, config.EnvScrapeGraphAPIKey)
	if err != nil {
		return err
	}

	cfg := config.Config{OutputDir: extractOutputDir}
	cfg = cfg.MergeWithDefaults(config.Default())

	ctx := context.Background()

	client, err := extraction.NewScrapeGraphClient(apiKey)
	if err != nil {
		return fmt.Errorf("failed to initialize extraction client: %w", err)
	}

	store, err := artifacts.NewStore(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var results []types.SearchResult
	if err := store.ReadJSON(artifacts.SearchResultsFile, &results); err != nil {
		return fmt.Errorf("failed to read checkpoint %s (run find-jobs first): %w", artifacts.SearchResultsFile, err)
	}

	jobs, err := extraction.ExtractJobs(ctx, client, results, newLogger(extractVerbose))
	if err != nil {
		return fmt.Errorf("job extraction failed: %w", err)
	}
	if jobs == nil {
		jobs = []types.JobRecord{}
	}

	if _, err := store.WriteJSON(artifacts.JobRecordsFile, jobs); err != nil {
		return fmt.Errorf("failed to write checkpoint %s: %w", artifacts.JobRecordsFile, err)
	}
	doc, err := store.ReadBytes(artifacts.JobRecordsFile)
	if err != nil {
		return fmt.Errorf("failed to read checkpoint %s: %w", artifacts.JobRecordsFile, err)
	}
	if err := schemas.ValidateJobRecords(doc); err != nil {
		return fmt.Errorf("checkpoint %s does not validate against schema: %w", artifacts.JobRecordsFile, err)
	}

	fmt.Fprintf(os.Stdout, "Extracted %d jobs from %d search results\n", len(jobs), len(results))
	fmt.Fprintf(os.Stdout, "Output: %s\n", store.Path(artifacts.JobRecordsFile))

	return nil
}
