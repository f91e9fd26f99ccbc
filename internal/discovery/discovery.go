// Package discovery finds job postings through external search backends.
//
// Sources are tried in a fixed order; the first one that returns postings
// wins. A failing source is logged and skipped so a single bad backend never
// sinks the whole search.
package discovery

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/job-finder/internal/types"
)

// Source is a single job-search backend.
type Source interface {
	// Name identifies the source in logs and chain results.
	Name() string

	// Search returns up to limit postings for the given title and optional
	// location. A backend that answers with no results returns an empty
	// slice and a nil error.
	Search(ctx context.Context, title, location string, limit int) ([]types.JobPosting, error)
}

// ChainState describes where the source fallback chain ended up.
type ChainState int

const (
	// ChainTrying means a source is currently being queried.
	ChainTrying ChainState = iota
	// ChainSucceeded means a source returned at least one posting.
	ChainSucceeded
	// ChainExhausted means every source was tried and none returned postings.
	ChainExhausted
)

func (s ChainState) String() string {
	switch s {
	case ChainTrying:
		return "trying"
	case ChainSucceeded:
		return "succeeded"
	case ChainExhausted:
		return "exhausted"
	}
	return "unknown"
}

// Attempt records the outcome of querying one source.
type Attempt struct {
	Source string
	Jobs   int
	Err    error
}

// ChainResult is the outcome of walking the source chain. Jobs is never nil.
type ChainResult struct {
	Jobs     []types.JobPosting
	State    ChainState
	Source   string // name of the source that succeeded, empty when exhausted
	Attempts []Attempt
}

// Service walks an ordered chain of job sources.
type Service struct {
	sources []Source
	logger  *zap.Logger
}

// NewService builds a discovery service over the given sources, tried in
// the order supplied.
func NewService(logger *zap.Logger, sources ...Source) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{sources: sources, logger: logger}
}

// Discover queries each source in order until one returns postings.
// Source failures degrade to the next source in the chain; Discover itself
// never fails, it reports an exhausted chain instead.
func (s *Service) Discover(ctx context.Context, title, location string, limit int) *ChainResult {
	result := &ChainResult{Jobs: []types.JobPosting{}, State: ChainExhausted}

	for i, src := range s.sources {
		result.State = ChainTrying
		s.logger.Info("querying job source",
			zap.Int("position", i),
			zap.String("source", src.Name()),
			zap.String("title", title),
			zap.String("location", location))

		jobs, err := src.Search(ctx, title, location, limit)
		result.Attempts = append(result.Attempts, Attempt{Source: src.Name(), Jobs: len(jobs), Err: err})

		if err != nil {
			s.logger.Warn("job source failed",
				zap.String("source", src.Name()),
				zap.Error(err))
			result.State = ChainExhausted
			continue
		}
		if len(jobs) == 0 {
			s.logger.Info("job source returned nothing",
				zap.String("source", src.Name()))
			result.State = ChainExhausted
			continue
		}

		result.Jobs = Dedupe(jobs)
		result.State = ChainSucceeded
		result.Source = src.Name()
		s.logger.Info("job source succeeded",
			zap.String("source", src.Name()),
			zap.Int("jobs", len(result.Jobs)))
		return result
	}

	return result
}

// Dedupe removes postings that share a URL, falling back to a lowercased
// (title, company) pair for postings without one. Order is preserved and the
// first occurrence wins.
func Dedupe(jobs []types.JobPosting) []types.JobPosting {
	seen := make(map[string]bool, len(jobs))
	out := make([]types.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		key := job.URL
		if key == "" {
			key = strings.ToLower(job.Title) + "|" + strings.ToLower(job.Company)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, job)
	}
	return out
}
