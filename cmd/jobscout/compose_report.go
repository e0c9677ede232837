package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rankyx/jobscout/internal/artifacts"
	"github.com/rankyx/jobscout/internal/config"
	"github.com/rankyx/jobscout/internal/llm"
	"github.com/rankyx/jobscout/internal/report"
	"github.com/rankyx/jobscout/internal/types"
)

var composeReportCmd = &cobra.Command{
	Use:   "compose-report",
	Short: "Compose the HTML recruitment report from the stage 3 job records",
	Long:  "Summarize the extracted job records with the LLM and render the final styled HTML report to the stage 4 checkpoint file.",
	RunE:  runComposeReport,
}

var (
	composeRole      string
	composeLocation  string
	composeOutputDir string
	composeAPIKey    string
)

func init() {
	composeReportCmd.Flags().StringVarP(&composeRole, "role", "r", "", "Job title the search was run for")
	composeReportCmd.Flags().StringVarP(&composeLocation, "location", "l", "", "Country or city the search was focused on")
	composeReportCmd.Flags().StringVarP(&composeOutputDir, "output-dir", "o", "", "Directory for checkpoint artifacts")
	composeReportCmd.Flags().StringVar(&composeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(composeReportCmd)
}

func runComposeReport(_ *cobra.Command, _ []string) error {
	apiKey, err := apiKeyFromFlagOrEnv(composeAPIKey, config.EnvGeminiAPIKey)
	if err != nil {
		return err
	}

	cfg := config.Config{
		Role:      composeRole,
		Location:  composeLocation,
		OutputDir: composeOutputDir,
	}
	cfg = cfg.MergeWithDefaults(config.Default())

	ctx := context.Background()

	client, err := llm.NewClient(ctx, nil, apiKey)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	defer client.Close()

	store, err := artifacts.NewStore(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var jobs []types.JobRecord
	if err := store.ReadJSON(artifacts.JobRecordsFile, &jobs); err != nil {
		return fmt.Errorf("failed to read checkpoint %s (run extract-jobs first): %w", artifacts.JobRecordsFile, err)
	}

	inputs := types.SearchInputs{
		Role:       cfg.Role,
		Location:   cfg.Location,
		Language:   cfg.Language,
		QueryCount: cfg.QueryCount,
	}

	rep, err := report.Compose(ctx, client, inputs, jobs, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("report composition failed: %w", err)
	}
	html, err := report.RenderHTML(rep, inputs)
	if err != nil {
		return fmt.Errorf("report rendering failed: %w", err)
	}
	path, err := store.WriteText(artifacts.ReportFile, html)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Composed report covering %d jobs\n", len(rep.Jobs))
	fmt.Fprintf(os.Stdout, "Output: %s\n", path)

	return nil
}
