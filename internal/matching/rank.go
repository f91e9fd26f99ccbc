package matching

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/jonathan/job-finder/internal/embedding"
	"github.com/jonathan/job-finder/internal/types"
)

// Embedding failures abort the whole ranking run; these sentinels let the
// caller tell a candidate-side failure from a job-side one when deciding
// whether to retry.
var (
	ErrCandidateEmbedding = errors.New("could not embed candidate text")
	ErrJobEmbedding       = errors.New("could not embed job texts")
)

// Matcher ranks job postings against a candidate profile using embeddings,
// skill overlap, and employer sentiment.
type Matcher struct {
	embedder embedding.Embedder
	logger   *zap.Logger
}

// NewMatcher creates a Matcher backed by the given embedder.
func NewMatcher(embedder embedding.Embedder, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{embedder: embedder, logger: logger}
}

// Rank scores every posting against the candidate and returns the results
// sorted by score, highest first. The returned slice always has one entry per
// posting; an empty posting list returns an empty slice without touching the
// embedder. A missing employer insight falls back to a neutral default and
// never fails the run; an embedding failure fails the whole run.
func (m *Matcher) Rank(
	ctx context.Context,
	profile types.CandidateProfile,
	jobs []types.JobPosting,
	insights []types.EmployerInsight,
	desiredRole string,
	desiredLocation string,
) ([]types.MatchResult, error) {
	results := make([]types.MatchResult, 0, len(jobs))
	if len(jobs) == 0 {
		return results, nil
	}

	m.logger.Info("matching candidate to jobs",
		zap.Int("jobs", len(jobs)),
		zap.Int("skills", len(profile.Skills)),
	)

	candidateText := buildCandidateText(profile, desiredRole, desiredLocation)
	cvEmbedding, err := m.embedder.EmbedText(ctx, candidateText)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCandidateEmbedding, err)
	}

	jobTexts := make([]string, 0, len(jobs))
	for _, job := range jobs {
		jobTexts = append(jobTexts, job.Title+" "+job.Description)
	}
	jobEmbeddings, err := m.embedder.EmbedBatch(ctx, jobTexts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJobEmbedding, err)
	}
	if len(jobEmbeddings) != len(jobs) {
		return nil, fmt.Errorf("%w: got %d embeddings for %d jobs", ErrJobEmbedding, len(jobEmbeddings), len(jobs))
	}

	byCompany := make(map[string]types.EmployerInsight, len(insights))
	for _, insight := range insights {
		byCompany[insight.CompanyName] = insight
	}

	for i, job := range jobs {
		overlap, gaps := OverlapAndGaps(profile.Skills, job.Description)

		baseScore, err := BaseScore(cvEmbedding, jobEmbeddings[i], profile.Skills, job.Description)
		if err != nil {
			return nil, fmt.Errorf("scoring %q at %q: %w", job.Title, job.Company, err)
		}

		insight, ok := byCompany[job.Company]
		if !ok {
			insight = types.NeutralInsight(job.Company)
		}

		finalScore := ApplySentiment(baseScore, insight.Sentiment)

		results = append(results, types.MatchResult{
			Job:            job,
			Insight:        insight,
			Score:          finalScore,
			SkillOverlap:   overlap,
			SkillGaps:      gaps,
			Recommendation: RecommendationFor(finalScore),
			Reasoning:      BuildReasoning(finalScore, overlap, gaps, insight),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	m.logger.Info("matching complete",
		zap.Int("results", len(results)),
		zap.Float64("top_score", results[0].Score),
	)

	return results, nil
}
