// Package types provides type definitions for structured data shared across the job-finder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Job posting source tags.
const (
	SourceLinkedIn    = "linkedin"
	SourceIndeed      = "indeed"
	SourceDirect      = "direct"
	SourceJSearch     = "jsearch"
	SourceBraveSearch = "brave_search"
	SourceMock        = "mock"
)

// JobPosting represents a single job posting gathered from a discovery source.
// The URL acts as the posting's identity key; deduplication against it is a
// discovery-layer responsibility, not enforced here.
type JobPosting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PostedDate  string `json:"posted_date,omitempty"`
	Source      string `json:"source"`
}
