package discovery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/jonathan/job-finder/internal/types"
)

const defaultRapidAPIHost = "jsearch.p.rapidapi.com"

// JSearchSource queries the JSearch API on RapidAPI. It walks three query
// strategies per search: title scoped to the location, a remote-only retry,
// and finally a global title-only query.
type JSearchSource struct {
	client *resty.Client
	logger *zap.Logger
}

// NewJSearchSource builds a JSearch-backed source. The API host defaults to
// jsearch.p.rapidapi.com and can be overridden through RAPIDAPI_HOST.
func NewJSearchSource(apiKey string, logger *zap.Logger) (*JSearchSource, error) {
	if apiKey == "" {
		return nil, errors.New("jsearch: API key is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	host := os.Getenv("RAPIDAPI_HOST")
	if host == "" {
		host = defaultRapidAPIHost
	}

	client := resty.New().
		SetBaseURL("https://" + host).
		SetHeader("X-RapidAPI-Key", apiKey).
		SetHeader("X-RapidAPI-Host", host).
		SetTimeout(30 * time.Second)

	return &JSearchSource{client: client, logger: logger}, nil
}

// Name implements Source.
func (s *JSearchSource) Name() string { return types.SourceJSearch }

// jsearchQuery is one attempt against the /search endpoint.
type jsearchQuery struct {
	label  string
	params map[string]string
}

func jsearchParams(query string, extra map[string]string) map[string]string {
	params := map[string]string{
		"query":       query,
		"page":        "1",
		"num_pages":   "1",
		"date_posted": "all",
	}
	for k, v := range extra {
		params[k] = v
	}
	return params
}

// jsearchQueries builds the strategy sequence for a search. The remote retry
// is skipped when the requested location is already remote or worldwide.
func jsearchQueries(title, location string) []jsearchQuery {
	var queries []jsearchQuery
	if location != "" {
		queries = append(queries, jsearchQuery{
			label:  "location",
			params: jsearchParams(fmt.Sprintf("%s in %s", title, location), nil),
		})
		switch strings.ToLower(location) {
		case "remote", "worldwide":
		default:
			queries = append(queries, jsearchQuery{
				label:  "remote",
				params: jsearchParams(title+" remote", map[string]string{"remote_jobs_only": "true"}),
			})
		}
	}
	queries = append(queries, jsearchQuery{
		label:  "global",
		params: jsearchParams(title, nil),
	})
	return queries
}

// Search implements Source. Earlier strategies that fail or come back empty
// fall through to the next one; only a failure of the final global strategy
// is an error.
func (s *JSearchSource) Search(ctx context.Context, title, location string, limit int) ([]types.JobPosting, error) {
	queries := jsearchQueries(title, location)

	for i, q := range queries {
		last := i == len(queries)-1

		resp, err := s.client.R().
			SetContext(ctx).
			SetQueryParams(q.params).
			Get("/search")
		if err != nil {
			if last {
				return nil, fmt.Errorf("jsearch request failed: %w", err)
			}
			s.logger.Warn("jsearch strategy failed",
				zap.String("strategy", q.label),
				zap.Error(err))
			continue
		}
		if resp.StatusCode() != http.StatusOK {
			if last {
				return nil, fmt.Errorf("jsearch API error: %d - %s", resp.StatusCode(), resp.String())
			}
			s.logger.Warn("jsearch strategy rejected",
				zap.String("strategy", q.label),
				zap.Int("status", resp.StatusCode()))
			continue
		}

		jobs := parseJSearchJobs(resp.Body(), limit)
		s.logger.Info("jsearch strategy answered",
			zap.String("strategy", q.label),
			zap.Int("jobs", len(jobs)))
		if len(jobs) > 0 || last {
			return jobs, nil
		}
	}

	return []types.JobPosting{}, nil
}

func parseJSearchJobs(body []byte, limit int) []types.JobPosting {
	jobs := []types.JobPosting{}
	gjson.GetBytes(body, "data").ForEach(func(_, item gjson.Result) bool {
		if limit > 0 && len(jobs) >= limit {
			return false
		}
		jobs = append(jobs, types.JobPosting{
			Title:       textOr(item.Get("job_title"), "Unknown"),
			Company:     textOr(item.Get("employer_name"), "Unknown"),
			Location:    jsearchLocation(item),
			Description: textOr(item.Get("job_description"), "No description available"),
			URL:         item.Get("job_apply_link").String(),
			PostedDate:  item.Get("job_posted_at_datetime_utc").String(),
			Source:      types.SourceJSearch,
		})
		return true
	})
	return jobs
}

func jsearchLocation(item gjson.Result) string {
	city := item.Get("job_city").String()
	state := item.Get("job_state").String()
	country := item.Get("job_country").String()

	switch {
	case city != "" && country != "":
		return city + ", " + country
	case city != "" && state != "":
		return city + ", " + state
	case country != "":
		return country
	case item.Get("job_is_remote").Bool():
		return "Remote"
	}
	return "Not specified"
}

func textOr(v gjson.Result, fallback string) string {
	if s := v.String(); s != "" {
		return s
	}
	return fallback
}
