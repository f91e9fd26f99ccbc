// Package types provides type definitions for structured data shared across the job-finder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Recommendation labels assigned from the final match score.
const (
	RecommendationStrongMatch = "Strong Match"
	RecommendationGoodFit     = "Good Fit"
	RecommendationConsider    = "Consider"
	RecommendationSkip        = "Skip"
)

// MatchResult pairs a job posting with its employer insight and the scoring
// outcome for one candidate. Immutable after creation; only its position in
// the ranked output changes.
type MatchResult struct {
	Job            JobPosting      `json:"job"`
	Insight        EmployerInsight `json:"company_insights"`
	Score          float64         `json:"match_score"`
	SkillOverlap   []string        `json:"skill_overlap"`
	SkillGaps      []string        `json:"skill_gaps"`
	Recommendation string          `json:"recommendation"`
	Reasoning      []string        `json:"reasoning"`
}
