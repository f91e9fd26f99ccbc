// Package types provides type definitions for structured data shared across the job-finder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Seniority levels recognized by the résumé analyzer.
const (
	SeniorityJunior = "Junior"
	SeniorityMid    = "Mid"
	SenioritySenior = "Senior"
	SeniorityLead   = "Lead"
)

// CandidateProfile represents structured data extracted from a candidate's résumé.
// Skill order and casing are preserved exactly as extracted; deduplication is
// not guaranteed.
type CandidateProfile struct {
	Skills             []string `json:"skills"`
	ExperienceLevel    string   `json:"experience_level"`
	YearsOfExperience  int      `json:"years_of_experience"`
	PreferredLocations []string `json:"preferred_locations"`
	KeyAchievements    []string `json:"key_achievements"`
}

// ValidSeniority reports whether level is one of the recognized seniority labels.
func ValidSeniority(level string) bool {
	switch level {
	case SeniorityJunior, SeniorityMid, SenioritySenior, SeniorityLead:
		return true
	}
	return false
}
