package discovery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/jonathan/job-finder/internal/types"
)

const braveSearchPath = "/res/v1/web/search"

// Search results that match these URL fragments are profile or search-result
// pages, not individual postings.
var braveSkipURLPatterns = []string{
	"linkedin.com/in/",
	"/profile/",
	"/resume/",
	"/cv/",
	"/jobs?",
	"/jobs/search",
	"glassdoor.com/Job/",
}

// Titles matching these fragments are job-board search pages
// ("793 AI Engineer jobs in Paris"), not individual postings.
var braveSkipTitlePatterns = []string{
	" jobs in ",
	" Jobs in ",
	" job openings",
	" Job Openings",
	"search results",
	"Search Results",
	" positions in ",
	" Positions in ",
}

// Keywords that mark a result as an article about hiring rather than a
// posting. Compared against the lowercased title.
var braveSkipKeywords = []string{
	"how to hire",
	"hire developers",
	"hire python",
	"salary",
	"best websites",
	"top sites",
	"top 12 sites",
	"freelance",
	"guide",
	"tips",
	"tutorial",
	"course",
	"job description",
	"template",
	"vetted engineers",
}

// WebResult is one simplified Brave web-search hit.
type WebResult struct {
	Title       string
	URL         string
	Description string
}

// BraveSource finds job postings through the Brave Search web API. It also
// serves as the company research backend for the reputation service.
type BraveSource struct {
	client *resty.Client
	logger *zap.Logger
}

// NewBraveSource builds a Brave-backed source.
func NewBraveSource(apiKey string, logger *zap.Logger) (*BraveSource, error) {
	if apiKey == "" {
		return nil, errors.New("brave: API key is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client := resty.New().
		SetBaseURL("https://api.search.brave.com").
		SetHeader("Accept", "application/json").
		SetHeader("Accept-Encoding", "gzip").
		SetHeader("X-Subscription-Token", apiKey).
		SetTimeout(30 * time.Second)

	return &BraveSource{client: client, logger: logger}, nil
}

// Name implements Source.
func (s *BraveSource) Name() string { return types.SourceBraveSearch }

// buildJobQuery biases the web search toward actual postings and away from
// people profiles.
func buildJobQuery(title, location string) string {
	parts := []string{title}
	if location != "" {
		parts = append(parts, location)
	}
	parts = append(parts,
		`"job posting" OR "careers" OR "apply now"`,
		`-"linkedin.com/in/" -"profile" -"resume"`)
	return strings.Join(parts, " ")
}

// Search implements Source. Any transport or API failure degrades to an
// empty result set; the fallback chain decides what happens next.
func (s *BraveSource) Search(ctx context.Context, title, location string, limit int) ([]types.JobPosting, error) {
	query := buildJobQuery(title, location)
	count := limit
	if count > 20 || count <= 0 {
		count = 20 // Brave API cap per request
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":                query,
			"count":            strconv.Itoa(count),
			"search_lang":      "en",
			"freshness":        "pm",
			"text_decorations": "false",
			"spellcheck":       "true",
		}).
		Get(braveSearchPath)
	if err != nil {
		s.logger.Warn("brave search failed", zap.Error(err))
		return []types.JobPosting{}, nil
	}
	if resp.StatusCode() != http.StatusOK {
		s.logger.Warn("brave search rejected", zap.Int("status", resp.StatusCode()))
		return []types.JobPosting{}, nil
	}

	jobs := parseBraveJobs(resp.Body(), s.logger)
	s.logger.Info("brave search answered", zap.Int("jobs", len(jobs)))
	return jobs, nil
}

// SearchCompanyInfo runs a company research query and returns simplified web
// results. Failures degrade to an empty list.
func (s *BraveSource) SearchCompanyInfo(ctx context.Context, company string, limit int) ([]WebResult, error) {
	query := fmt.Sprintf(`"%s" (about OR products OR services OR "what does")`, company)
	count := limit
	if count > 10 || count <= 0 {
		count = 10
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":                query,
			"count":            strconv.Itoa(count),
			"search_lang":      "en",
			"text_decorations": "false",
			"spellcheck":       "true",
		}).
		Get(braveSearchPath)
	if err != nil {
		s.logger.Warn("brave company search failed",
			zap.String("company", company),
			zap.Error(err))
		return []WebResult{}, nil
	}
	if resp.StatusCode() != http.StatusOK {
		s.logger.Warn("brave company search rejected",
			zap.String("company", company),
			zap.Int("status", resp.StatusCode()))
		return []WebResult{}, nil
	}

	results := []WebResult{}
	gjson.GetBytes(resp.Body(), "web.results").ForEach(func(_, item gjson.Result) bool {
		results = append(results, WebResult{
			Title:       item.Get("title").String(),
			URL:         item.Get("url").String(),
			Description: item.Get("description").String(),
		})
		return true
	})
	return results, nil
}

func parseBraveJobs(body []byte, logger *zap.Logger) []types.JobPosting {
	jobs := []types.JobPosting{}
	gjson.GetBytes(body, "web.results").ForEach(func(_, item gjson.Result) bool {
		title := textOr(item.Get("title"), "Unknown Position")
		resultURL := item.Get("url").String()
		description := item.Get("description").String()

		if matchesAny(strings.ToLower(resultURL), braveSkipURLPatterns) {
			logger.Debug("skipping profile or search page", zap.String("title", title))
			return true
		}
		if matchesAny(title, braveSkipTitlePatterns) {
			logger.Debug("skipping job board search page", zap.String("title", title))
			return true
		}
		if matchesAny(strings.ToLower(title), braveSkipKeywords) {
			logger.Debug("skipping non-job result", zap.String("title", title))
			return true
		}

		location := extractLocation(description)
		if location == "" {
			location = "Location not specified"
		}

		jobs = append(jobs, types.JobPosting{
			Title:       title,
			Company:     extractCompany(title, resultURL),
			Location:    location,
			Description: description,
			URL:         resultURL,
			Source:      types.SourceBraveSearch,
		})
		return true
	})
	return jobs
}

func matchesAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// extractCompany guesses the employer from posting-title conventions
// ("Engineer - Acme", "Engineer at Acme") and falls back to the URL domain.
func extractCompany(title, resultURL string) string {
	if strings.Contains(title, " - ") {
		parts := strings.Split(title, " - ")
		if len(parts) > 1 {
			return strings.TrimSpace(parts[len(parts)-1])
		}
	}
	if strings.Contains(title, " at ") {
		parts := strings.Split(title, " at ")
		if len(parts) > 1 {
			return strings.TrimSpace(parts[len(parts)-1])
		}
	}

	if idx := strings.Index(resultURL, "linkedin.com/company/"); idx >= 0 {
		slug := resultURL[idx+len("linkedin.com/company/"):]
		if end := strings.Index(slug, "/"); end >= 0 {
			slug = slug[:end]
		}
		return titleCase(strings.ReplaceAll(slug, "-", " "))
	}

	if parsed, err := url.Parse(resultURL); err == nil && parsed.Host != "" {
		domain := strings.TrimPrefix(parsed.Host, "www.")
		if name, _, found := strings.Cut(domain, "."); found && name != "" {
			return titleCase(name)
		}
	}

	return "Unknown Company"
}

// knownCities seed the location heuristic; descriptions rarely carry
// structured location data.
var knownCities = []string{
	"Tel Aviv", "Jerusalem", "Haifa", "Beer Sheva", "Herzliya",
	"Raanana", "Petah Tikva", "Rishon LeZion", "Netanya",
}

var remoteMarkers = []string{"remote", "work from home", "wfh"}

func extractLocation(text string) string {
	lower := strings.ToLower(text)

	for _, marker := range remoteMarkers {
		if strings.Contains(lower, marker) {
			return "Remote"
		}
	}
	for _, city := range knownCities {
		if strings.Contains(lower, strings.ToLower(city)) {
			return city
		}
	}
	if strings.Contains(lower, "israel") {
		return "Israel"
	}
	return ""
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
