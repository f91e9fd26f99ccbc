package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-finder/internal/config"
	"github.com/jonathan/job-finder/internal/discovery"
	"github.com/jonathan/job-finder/internal/display"
	"github.com/jonathan/job-finder/internal/embedding"
	"github.com/jonathan/job-finder/internal/fetch"
	"github.com/jonathan/job-finder/internal/llm"
	"github.com/jonathan/job-finder/internal/logger"
	"github.com/jonathan/job-finder/internal/matching"
	"github.com/jonathan/job-finder/internal/pipeline"
	"github.com/jonathan/job-finder/internal/reputation"
	"github.com/jonathan/job-finder/internal/resume"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run a full job search end-to-end",
	Long: `Analyzes your resume, discovers job postings, researches each employer and prints the postings ranked by match score.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runSearchCmd,
}

var (
	runConfigPath string
	runResume     string
	runRole       string
	runLocation   string
	runNumJobs    int
	runTopN       int
	runMock       bool
	runUseBrowser bool
	runVerbose    bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVar(&runResume, "cv", "", "Path to resume file (.txt or .pdf)")
	runCommand.Flags().StringVarP(&runRole, "role", "r", "", "Role to search for, e.g. \"Backend Engineer\"")
	runCommand.Flags().StringVarP(&runLocation, "location", "l", "", "Preferred location (optional)")
	runCommand.Flags().IntVar(&runNumJobs, "num-jobs", 0, "Maximum jobs to fetch (default 20)")
	runCommand.Flags().IntVar(&runTopN, "top", 10, "Number of top matches to display")
	runCommand.Flags().BoolVar(&runMock, "mock", false, "Use built-in mock jobs and employer data instead of external search APIs")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use headless browser for script-rendered discussion pages (requires Chrome)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(runCommand)
}

func runSearchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadCLIConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.JobTitle == "" {
		return fmt.Errorf("--role is required (via flag or config)")
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--cv is required (via flag or config)")
	}

	log, err := logger.New(false, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	pipe, cleanup, err := buildPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	printer := display.NewPrinter(os.Stdout)

	result, err := pipe.Run(ctx, pipeline.Options{
		ResumePath: cfg.Resume,
		JobTitle:   cfg.JobTitle,
		Location:   cfg.Location,
		NumJobs:    cfg.NumJobs,
		OnProgress: func(event pipeline.ProgressEvent) {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", event.Stage, event.Message)
		},
	})
	if err != nil {
		return fmt.Errorf("job search failed: %w", err)
	}

	printer.PrintProfile(&result.Profile)
	printer.PrintMatches(result.Matches, runTopN)
	printer.PrintSummary(result.Matches)
	return nil
}

// loadCLIConfig layers flag values over an optional config file and the
// environment.
func loadCLIConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if runConfigPath != "" {
		loaded, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// CLI flags take priority, but only when explicitly set
	if cmd.Flags().Changed("cv") {
		cfg.Resume = runResume
	}
	if cmd.Flags().Changed("role") {
		cfg.JobTitle = runRole
	}
	if cmd.Flags().Changed("location") {
		cfg.Location = runLocation
	}
	if cmd.Flags().Changed("num-jobs") {
		cfg.NumJobs = runNumJobs
	}
	if cmd.Flags().Changed("mock") {
		cfg.Mock = runMock
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = runUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	cfg.LoadEnv()
	cfg = cfg.MergeWithDefaults(config.Config{
		NumJobs: pipeline.DefaultNumJobs,
		Port:    8080,
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildPipeline wires the pipeline collaborators from configuration. The
// returned cleanup closes the LLM client.
func buildPipeline(ctx context.Context, cfg config.Config, log *zap.Logger) (*pipeline.Pipeline, func(), error) {
	if cfg.GeminiAPIKey == "" {
		return nil, nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	llmClient, err := llm.NewClient(ctx, nil, cfg.GeminiAPIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("creating LLM client: %w", err)
	}
	cleanup := func() { _ = llmClient.Close() }

	embedder, err := embedding.NewGeminiEmbedder(ctx, cfg.GeminiAPIKey, "")
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("creating embedder: %w", err)
	}

	analyzer := resume.NewAnalyzer(llmClient, log)
	matcher := matching.NewMatcher(embedder, log)

	finder, insights, err := buildResearch(cfg, llmClient, log)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return pipeline.New(analyzer, finder, insights, matcher, log), cleanup, nil
}

// buildResearch picks the job discovery chain and the employer insight
// provider. Mock mode needs no search credentials.
func buildResearch(cfg config.Config, llmClient llm.Client, log *zap.Logger) (*discovery.Service, reputation.Provider, error) {
	if cfg.Mock {
		return discovery.NewService(log, discovery.NewMockSource()), reputation.NewMockProvider(), nil
	}

	var sources []discovery.Source
	if cfg.JSearchAPIKey != "" {
		jsearch, err := discovery.NewJSearchSource(cfg.JSearchAPIKey, log)
		if err != nil {
			return nil, nil, fmt.Errorf("creating jsearch source: %w", err)
		}
		sources = append(sources, jsearch)
	}

	var brave *discovery.BraveSource
	if cfg.BraveAPIKey != "" {
		var err error
		brave, err = discovery.NewBraveSource(cfg.BraveAPIKey, log)
		if err != nil {
			return nil, nil, fmt.Errorf("creating brave source: %w", err)
		}
		sources = append(sources, brave)
	}

	if len(sources) == 0 {
		return nil, nil, fmt.Errorf("JSEARCH_API_KEY or BRAVE_SEARCH_API_KEY is required (or pass --mock)")
	}

	// Employer research needs web search; without Brave it falls back to
	// the built-in mock insights.
	var insights reputation.Provider
	if brave != nil {
		insights = reputation.NewService(brave, &reputation.Config{
			Fetcher: fetch.NewCachedFetcher(&fetch.CachedFetcherConfig{
				UseBrowser: cfg.UseBrowser,
				Logger:     log,
			}),
			LLM:    llmClient,
			Logger: log,
		})
	} else {
		insights = reputation.NewMockProvider()
	}

	return discovery.NewService(log, sources...), insights, nil
}
