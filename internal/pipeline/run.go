// Package pipeline provides the high-level orchestration for a job-finding run:
// résumé analysis and job discovery in parallel, then employer research,
// then match ranking.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-finder/internal/discovery"
	"github.com/jonathan/job-finder/internal/ingestion"
	"github.com/jonathan/job-finder/internal/reputation"
	"github.com/jonathan/job-finder/internal/types"
)

// Stage names reported through progress events.
const (
	StageAnalysis  = "cv_analysis"
	StageDiscovery = "job_discovery"
	StageInsights  = "company_insights"
	StageMatching  = "matching"
)

// DefaultNumJobs is the posting count requested when the caller does not say.
const DefaultNumJobs = 20

// maxInsightWorkers bounds concurrent employer lookups; the research backend
// rate-limits aggressively.
const maxInsightWorkers = 4

// ProgressEvent represents a progress update during a pipeline run.
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called as pipeline stages start and finish.
type ProgressCallback func(event ProgressEvent)

// Options holds the inputs for one pipeline run.
type Options struct {
	ResumePath string
	JobTitle   string
	Location   string
	NumJobs    int
	OnProgress ProgressCallback
}

// Analyzer turns a résumé file into a structured candidate profile.
type Analyzer interface {
	AnalyzeFile(ctx context.Context, path string) (*types.CandidateProfile, *ingestion.Metadata, error)
}

// JobFinder walks the discovery source chain.
type JobFinder interface {
	Discover(ctx context.Context, title, location string, limit int) *discovery.ChainResult
}

// Matcher ranks postings against a candidate profile.
type Matcher interface {
	Rank(ctx context.Context, profile types.CandidateProfile, jobs []types.JobPosting,
		insights []types.EmployerInsight, desiredRole, desiredLocation string) ([]types.MatchResult, error)
}

// RunResult is the outcome of one complete pipeline run.
type RunResult struct {
	RunID    uuid.UUID
	Profile  types.CandidateProfile
	Jobs     []types.JobPosting
	Source   string // discovery source that produced the postings
	Insights []types.EmployerInsight
	Matches  []types.MatchResult
}

// Pipeline wires the four collaborators together.
type Pipeline struct {
	analyzer Analyzer
	finder   JobFinder
	insights reputation.Provider
	matcher  Matcher
	logger   *zap.Logger
}

// New builds a pipeline. All collaborators are required.
func New(analyzer Analyzer, finder JobFinder, insights reputation.Provider, matcher Matcher, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		analyzer: analyzer,
		finder:   finder,
		insights: insights,
		matcher:  matcher,
		logger:   logger,
	}
}

func emitProgress(opts *Options, runID uuid.UUID, stage, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Stage: stage, Message: message, RunID: runID.String()})
	}
}

// Run executes the full pipeline. Résumé analysis and job discovery run
// concurrently; employer research fans out with bounded concurrency and never
// fails the run. An analysis or ranking failure aborts the run.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*RunResult, error) {
	if opts.JobTitle == "" {
		return nil, errors.New("job title is required")
	}
	if opts.ResumePath == "" {
		return nil, errors.New("resume path is required")
	}
	if opts.NumJobs <= 0 {
		opts.NumJobs = DefaultNumJobs
	}

	runID := uuid.New()
	p.logger.Info("pipeline starting",
		zap.String("run_id", runID.String()),
		zap.String("job_title", opts.JobTitle),
		zap.String("location", opts.Location),
		zap.Int("num_jobs", opts.NumJobs))

	var (
		profile *types.CandidateProfile
		chain   *discovery.ChainResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		emitProgress(&opts, runID, StageAnalysis, "analyzing resume")
		var err error
		profile, _, err = p.analyzer.AnalyzeFile(gctx, opts.ResumePath)
		if err != nil {
			return fmt.Errorf("resume analysis: %w", err)
		}
		emitProgress(&opts, runID, StageAnalysis,
			fmt.Sprintf("extracted %d skills, %s level", len(profile.Skills), profile.ExperienceLevel))
		return nil
	})
	g.Go(func() error {
		emitProgress(&opts, runID, StageDiscovery, "searching for jobs")
		chain = p.finder.Discover(gctx, opts.JobTitle, opts.Location, opts.NumJobs)
		emitProgress(&opts, runID, StageDiscovery,
			fmt.Sprintf("found %d jobs (source chain %s)", len(chain.Jobs), chain.State))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	emitProgress(&opts, runID, StageInsights,
		fmt.Sprintf("researching %d companies", len(uniqueCompanies(chain.Jobs))))
	insights := p.gatherInsights(ctx, chain.Jobs)

	emitProgress(&opts, runID, StageMatching, fmt.Sprintf("ranking %d jobs", len(chain.Jobs)))
	matches, err := p.matcher.Rank(ctx, *profile, chain.Jobs, insights, opts.JobTitle, opts.Location)
	if err != nil {
		return nil, fmt.Errorf("matching: %w", err)
	}
	emitProgress(&opts, runID, StageMatching, fmt.Sprintf("ranked %d matches", len(matches)))

	p.logger.Info("pipeline complete",
		zap.String("run_id", runID.String()),
		zap.Int("matches", len(matches)))

	return &RunResult{
		RunID:    runID,
		Profile:  *profile,
		Jobs:     chain.Jobs,
		Source:   chain.Source,
		Insights: insights,
		Matches:  matches,
	}, nil
}

// gatherInsights researches each distinct employer once, with bounded
// concurrency. Providers degrade internally, so this cannot fail.
func (p *Pipeline) gatherInsights(ctx context.Context, jobs []types.JobPosting) []types.EmployerInsight {
	companies := uniqueCompanies(jobs)
	out := make([]types.EmployerInsight, len(companies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxInsightWorkers)
	for i, company := range companies {
		i, company := i, company
		g.Go(func() error {
			out[i] = p.insights.GetInsight(gctx, company)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func uniqueCompanies(jobs []types.JobPosting) []string {
	seen := make(map[string]bool, len(jobs))
	companies := make([]string, 0, len(jobs))
	for _, job := range jobs {
		if job.Company == "" || seen[job.Company] {
			continue
		}
		seen[job.Company] = true
		companies = append(companies, job.Company)
	}
	return companies
}
