package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rankyx/jobscout/internal/config"
	"github.com/rankyx/jobscout/internal/extraction"
	"github.com/rankyx/jobscout/internal/llm"
	"github.com/rankyx/jobscout/internal/pipeline"
	"github.com/rankyx/jobscout/internal/search"
	"github.com/rankyx/jobscout/internal/telemetry"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full job search pipeline end-to-end",
	Long: `Orchestrates the entire job search process: query synthesis -> web search -> job extraction -> report composition.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values. Each stage writes its checkpoint artifact to the output directory before the next stage starts.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath      string
	runRole            string
	runLocation        string
	runLanguage        string
	runQueryCount      int
	runResultsPerQuery int
	runOutputDir       string
	runProvider        string
	runVerbose         bool
	runDatabaseURL     string
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runRole, "role", "r", "", "Job title to search for")
	runCommand.Flags().StringVarP(&runLocation, "location", "l", "", "Country or city to focus the search on")
	runCommand.Flags().StringVar(&runLanguage, "language", "", "Language for the generated queries")
	runCommand.Flags().IntVarP(&runQueryCount, "query-count", "q", 0, "Number of search queries to generate")
	runCommand.Flags().IntVar(&runResultsPerQuery, "results-per-query", 0, "Top-N search results kept per query")
	runCommand.Flags().StringVarP(&runOutputDir, "output-dir", "o", "", "Directory for checkpoint artifacts")
	runCommand.Flags().StringVar(&runProvider, "provider", "", "Search provider: tavily (default) or google")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// Database URL for artifact mirroring
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loaded, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Apply CLI overrides, only when the flag was explicitly set
	if cmd.Flags().Changed("role") {
		cfg.Role = runRole
	}
	if cmd.Flags().Changed("location") {
		cfg.Location = runLocation
	}
	if cmd.Flags().Changed("language") {
		cfg.Language = runLanguage
	}
	if cmd.Flags().Changed("query-count") {
		cfg.QueryCount = runQueryCount
	}
	if cmd.Flags().Changed("results-per-query") {
		cfg.ResultsPerQuery = runResultsPerQuery
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = runOutputDir
	}
	if cmd.Flags().Changed("provider") {
		cfg.SearchProvider = runProvider
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	} else if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	cfg = cfg.MergeWithDefaults(config.Default())
	if err := cfg.Validate(); err != nil {
		return err
	}

	// All provider credentials are checked before any network call is made
	secrets, err := config.LoadSecrets()
	if err != nil {
		return err
	}
	if cfg.SearchProvider == "google" {
		if err := secrets.ValidateGoogleProvider(); err != nil {
			return err
		}
	}

	logger := newLogger(cfg.Verbose)

	llmClient, err := llm.NewClient(ctx, nil, secrets.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	defer llmClient.Close()

	var searchClient search.Client
	if cfg.SearchProvider == "google" {
		searchClient, err = search.NewGoogleClient(ctx, secrets.GoogleSearchAPIKey, secrets.GoogleSearchCX)
	} else {
		searchClient, err = search.NewTavilyClient(secrets.TavilyAPIKey)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize search client: %w", err)
	}

	extractor, err := extraction.NewScrapeGraphClient(secrets.ScrapeGraphAPIKey)
	if err != nil {
		return fmt.Errorf("failed to initialize extraction client: %w", err)
	}

	session := telemetry.NewSession(secrets.AgentOpsAPIKey, logger)
	session.Start(ctx, []string{"jobscout", cfg.SearchProvider})

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		Config:    cfg,
		LLM:       llmClient,
		Search:    searchClient,
		Extractor: extractor,
		Telemetry: session,
		Logger:    logger,
	})
	if err != nil {
		session.End(ctx, "Fail")
		return err
	}
	session.End(ctx, "Success")

	fmt.Fprintf(os.Stdout, "Extracted %d jobs across %d search results.\n", len(result.Jobs), len(result.SearchResults))
	fmt.Fprintf(os.Stdout, "Report: %s\n", result.ReportPath)

	return nil
}
