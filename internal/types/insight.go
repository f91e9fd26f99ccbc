// Package types provides type definitions for structured data shared across the job-finder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Sentiment values produced by the employer-reputation heuristic.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// EmployerInsight holds reputation signals gathered for one employer.
// CompanyName is the join key against JobPosting.Company (exact string match).
type EmployerInsight struct {
	CompanyName  string   `json:"company_name"`
	Sentiment    string   `json:"sentiment"`
	Highlights   []string `json:"highlights"`
	RecentNews   []string `json:"recent_news"`
	CultureNotes []string `json:"culture_notes"`
	DataSource   string   `json:"data_source"`
	AISummary    string   `json:"ai_summary,omitempty"`
}

// NeutralInsight returns the default insight substituted when no reputation
// data exists for an employer. The ranker must never fail for lack of insight.
func NeutralInsight(company string) EmployerInsight {
	return EmployerInsight{
		CompanyName:  company,
		Sentiment:    SentimentNeutral,
		Highlights:   []string{},
		RecentNews:   []string{},
		CultureNotes: []string{},
		DataSource:   "default",
	}
}
