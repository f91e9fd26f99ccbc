// Package reputation gathers employer sentiment from public web discussions.
//
// The service searches for discussions about an employer, scores them with a
// keyword heuristic and folds the results into a types.EmployerInsight. It
// never returns an error: any failure, including a timeout, degrades to the
// neutral insight so the ranking pipeline keeps moving.
package reputation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/job-finder/internal/discovery"
	"github.com/jonathan/job-finder/internal/fetch"
	"github.com/jonathan/job-finder/internal/llm"
	"github.com/jonathan/job-finder/internal/logger"
	"github.com/jonathan/job-finder/internal/prompts"
	"github.com/jonathan/job-finder/internal/types"
)

const (
	// DefaultTimeout bounds one company lookup end to end.
	DefaultTimeout = 60 * time.Second

	// DataSourceWeb tags insights built from live web discussions.
	DataSourceWeb = "brave_search"

	maxDiscussionResults = 10
	maxHighlights        = 5
	maxCultureNotes      = 3
	minTextLength        = 20
	highlightLength      = 200
	cultureNoteLength    = 150
	pageExcerptLength    = 500
)

// Searcher finds public web results about a company.
type Searcher interface {
	SearchCompanyInfo(ctx context.Context, company string, limit int) ([]discovery.WebResult, error)
}

// PageFetcher pulls page text for discussion URLs.
type PageFetcher interface {
	Fetch(ctx context.Context, urlStr string) (*fetch.CachedResult, error)
}

// Provider yields an insight for a company. Implementations never fail;
// they substitute a neutral insight instead.
type Provider interface {
	GetInsight(ctx context.Context, company string) types.EmployerInsight
}

// Config carries the optional collaborators of a Service.
type Config struct {
	// Fetcher, when set, enriches search snippets with extracted page text.
	Fetcher PageFetcher
	// LLM, when set, filters results and writes the narrative summary.
	LLM llm.Client
	// Logger defaults to a nop logger.
	Logger *zap.Logger
	// Timeout defaults to DefaultTimeout.
	Timeout time.Duration
}

// Service builds employer insights from live web discussion data.
type Service struct {
	search  Searcher
	fetcher PageFetcher
	llm     llm.Client
	logger  *zap.Logger
	timeout time.Duration
}

// NewService builds a reputation service over the given discussion searcher.
func NewService(search Searcher, config *Config) *Service {
	if config == nil {
		config = &Config{}
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		search:  search,
		fetcher: config.Fetcher,
		llm:     config.LLM,
		logger:  logger,
		timeout: timeout,
	}
}

// GetInsight implements Provider.
func (s *Service) GetInsight(ctx context.Context, company string) types.EmployerInsight {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.logger.Info("researching employer", zap.String("company", company))

	results, err := s.search.SearchCompanyInfo(ctx, company, maxDiscussionResults)
	if err != nil {
		s.logger.Warn("discussion search failed",
			zap.String("company", company),
			zap.Error(err))
		return types.NeutralInsight(company)
	}

	var (
		highlights   []string
		cultureNotes []string
		scores       []int
	)
	for _, result := range results {
		if ctx.Err() != nil {
			s.logger.Warn("employer research timed out", zap.String("company", company))
			return types.NeutralInsight(company)
		}
		if s.llm != nil && !s.isWorkDiscussion(ctx, company, result) {
			continue
		}

		text := result.Title
		if result.Description != "" {
			text = result.Title + " - " + result.Description
		}
		if s.fetcher != nil && result.URL != "" {
			if page, fetchErr := s.fetcher.Fetch(ctx, result.URL); fetchErr == nil && page.Text != "" {
				text += " " + truncate(page.Text, pageExcerptLength)
			}
		}
		if len(text) < minTextLength {
			continue
		}

		highlights = append(highlights, truncate(text, highlightLength))
		scores = append(scores, ScoreText(text))
		if isCultureNote(text) {
			cultureNotes = append(cultureNotes, truncate(text, cultureNoteLength))
		}
	}

	if len(highlights) == 0 {
		s.logger.Info("no discussions found", zap.String("company", company))
		insight := types.NeutralInsight(company)
		insight.Highlights = []string{fmt.Sprintf("No public discussions found for %s", company)}
		insight.DataSource = DataSourceWeb
		return insight
	}

	insight := types.EmployerInsight{
		CompanyName:  company,
		Sentiment:    OverallSentiment(scores),
		Highlights:   highlights[:min(len(highlights), maxHighlights)],
		RecentNews:   []string{fmt.Sprintf("Active discussions about %s on the web", company)},
		CultureNotes: cultureNotes[:min(len(cultureNotes), maxCultureNotes)],
		DataSource:   DataSourceWeb,
	}
	if insight.CultureNotes == nil {
		insight.CultureNotes = []string{}
	}
	if s.llm != nil {
		insight.AISummary = s.summarize(ctx, company, insight.Highlights)
	}

	s.logger.Info("employer insight built",
		zap.String("company", company),
		zap.String("sentiment", insight.Sentiment),
		zap.Int("highlights", len(insight.Highlights)))
	return insight
}

// isWorkDiscussion asks the model whether a search result is about working
// at the company. Model failures keep the result in.
func (s *Service) isWorkDiscussion(ctx context.Context, company string, result discovery.WebResult) bool {
	template, err := prompts.Get("reputation.json", "classify-discussion")
	if err != nil {
		return true
	}
	prompt := prompts.Format(template, map[string]string{
		"Company": company,
		"Title":   result.Title,
		"Snippet": result.Description,
	})

	answer, err := s.llm.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		s.logger.Debug("discussion classification failed",
			zap.String("company", company),
			zap.Error(err))
		return true
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "yes")
}

func (s *Service) summarize(ctx context.Context, company string, highlights []string) string {
	template, err := prompts.Get("reputation.json", "summarize-discussions")
	if err != nil {
		return ""
	}
	prompt := prompts.Format(template, map[string]string{
		"Company":     company,
		"Discussions": strings.Join(highlights, "\n"),
	})

	summary, err := s.llm.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		s.logger.Warn("discussion summary failed",
			zap.String("company", company),
			zap.Error(err))
		return ""
	}
	summary = strings.TrimSpace(summary)
	s.logger.Debug("discussion summary built",
		zap.String("company", company),
		zap.String("summary", logger.TruncateForLog(summary, 120)))
	return summary
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
