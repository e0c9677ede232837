package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rankyx/jobscout/internal/artifacts"
	"github.com/rankyx/jobscout/internal/config"
	"github.com/rankyx/jobscout/internal/llm"
	"github.com/rankyx/jobscout/internal/schemas"
	"github.com/rankyx/jobscout/internal/synthesis"
	"github.com/rankyx/jobscout/internal/types"
)

var synthesizeQueriesCmd = &cobra.Command{
	Use:   "synthesize-queries",
	Short: "Generate job search queries with the LLM",
	Long:  "Generate search engine queries for the given role and location, and write them to the stage 1 checkpoint file.",
	RunE:  runSynthesizeQueries,
}

var (
	synthRole       string
	synthLocation   string
	synthLanguage   string
	synthQueryCount int
	synthOutputDir  string
	synthAPIKey     string
)

func init() {
	synthesizeQueriesCmd.Flags().StringVarP(&synthRole, "role", "r", "", "Job title to search for")
	synthesizeQueriesCmd.Flags().StringVarP(&synthLocation, "location", "l", "", "Country or city to focus the search on")
	synthesizeQueriesCmd.Flags().StringVar(&synthLanguage, "language", "", "Language for the generated queries")
	synthesizeQueriesCmd.Flags().IntVarP(&synthQueryCount, "query-count", "q", 0, "Number of search queries to generate")
	synthesizeQueriesCmd.Flags().StringVarP(&synthOutputDir, "output-dir", "o", "", "Directory for checkpoint artifacts")
	synthesizeQueriesCmd.Flags().StringVar(&synthAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(synthesizeQueriesCmd)
}

func runSynthesizeQueries(_ *cobra.Command, _ []string) error {
	apiKey, err := apiKeyFromFlagOrEnv(synthAPIKey, config.EnvGeminiAPIKey)
	if err != nil {
		return err
	}

	cfg := config.Config{
		Role:       synthRole,
		Location:   synthLocation,
		Language:   synthLanguage,
		QueryCount: synthQueryCount,
		OutputDir:  synthOutputDir,
	}
	cfg = cfg.MergeWithDefaults(config.Default())

	ctx := context.Background()

	client, err := llm.NewClient(ctx, nil, apiKey)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	defer client.Close()

	queries, err := synthesis.GenerateQueries(ctx, client, types.SearchInputs{
		Role:       cfg.Role,
		Location:   cfg.Location,
		Language:   cfg.Language,
		QueryCount: cfg.QueryCount,
	})
	if err != nil {
		return fmt.Errorf("failed to generate queries: %w", err)
	}

	store, err := artifacts.NewStore(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := writeStageCheckpoint(store, artifacts.QueriesFile, schemas.QueriesSchema, queries); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Generated %d queries\n", len(queries))
	fmt.Fprintf(os.Stdout, "Output: %s\n", store.Path(artifacts.QueriesFile))

	return nil
}
