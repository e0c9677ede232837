package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rankyx/jobscout/internal/artifacts"
	"github.com/rankyx/jobscout/internal/config"
	"github.com/rankyx/jobscout/internal/schemas"
	"github.com/rankyx/jobscout/internal/search"
	"github.com/rankyx/jobscout/internal/types"
)

var findJobsCmd = &cobra.Command{
	Use:   "find-jobs",
	Short: "Search the web for job postings using the stage 1 queries",
	Long:  "Run each query from the stage 1 checkpoint against the search provider and write the collected results to the stage 2 checkpoint file.",
	RunE:  runFindJobs,
}

var (
	findOutputDir       string
	findResultsPerQuery int
	findProvider        string
	findAPIKey          string
	findVerbose         bool
)

func init() {
	findJobsCmd.Flags().StringVarP(&findOutputDir, "output-dir", "o", "", "Directory for checkpoint artifacts")
	findJobsCmd.Flags().IntVar(&findResultsPerQuery, "results-per-query", 0, "Top-N search results kept per query")
	findJobsCmd.Flags().StringVar(&findProvider, "provider", "", "Search provider: tavily (default) or google")
	findJobsCmd.Flags().StringVar(&findAPIKey, "api-key", "", "Search API key (overrides TAVILY_API_KEY or GOOGLE_SEARCH_API_KEY env var)")
	findJobsCmd.Flags().BoolVarP(&findVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(findJobsCmd)
}

func runFindJobs(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		OutputDir:       findOutputDir,
		ResultsPerQuery: findResultsPerQuery,
		SearchProvider:  findProvider,
	}
	cfg = cfg.MergeWithDefaults(config.Default())
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()

	var client search.Client
	var err error
	if cfg.SearchProvider == "google" {
		apiKey, keyErr := apiKeyFromFlagOrEnv(findAPIKey, config.EnvGoogleSearchAPIKey)
		if keyErr != nil {
			return keyErr
		}
		cx := os.Getenv(config.EnvGoogleSearchCX)
		if cx == "" {
			return &config.MissingSecretError{Variable: config.EnvGoogleSearchCX}
		}
		client, err = search.NewGoogleClient(ctx, apiKey, cx)
	} else {
		apiKey, keyErr := apiKeyFromFlagOrEnv(findAPIKey, config.EnvTavilyAPIKey)
		if keyErr != nil {
			return keyErr
		}
		client, err = search.NewTavilyClient(apiKey)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize search client: %w", err)
	}

	store, err := artifacts.NewStore(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var queries []string
	if err := store.ReadJSON(artifacts.QueriesFile, &queries); err != nil {
		return fmt.Errorf("failed to read checkpoint %s (run synthesize-queries first): %w", artifacts.QueriesFile, err)
	}

	results, err := search.FindJobs(ctx, client, queries, cfg.ResultsPerQuery, newLogger(findVerbose))
	if err != nil {
		return fmt.Errorf("job search failed: %w", err)
	}
	if results == nil {
		results = []types.SearchResult{}
	}

	if err := writeStageCheckpoint(store, artifacts.SearchResultsFile, schemas.SearchResultsSchema, results); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Collected %d search results from %d queries\n", len(results), len(queries))
	fmt.Fprintf(os.Stdout, "Output: %s\n", store.Path(artifacts.SearchResultsFile))

	return nil
}
