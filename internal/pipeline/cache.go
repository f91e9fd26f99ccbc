package pipeline

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-finder/internal/types"
)

// SearchConfig records the search parameters behind a cached result set.
// Field names follow the frontend wire contract.
type SearchConfig struct {
	Role       string `json:"role"`
	Location   string `json:"location"`
	CVAnalyzed bool   `json:"cv_analyzed"`
	NumJobs    int    `json:"num_jobs"`
}

// Snapshot is one cached run.
type Snapshot struct {
	RunID     uuid.UUID           `json:"run_id"`
	Matches   []types.MatchResult `json:"matches"`
	Config    SearchConfig        `json:"config"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// ResultsCache keeps the most recent pipeline run for the API layer.
// Safe for concurrent use.
type ResultsCache struct {
	mu     sync.RWMutex
	latest *Snapshot
}

// NewResultsCache returns an empty cache.
func NewResultsCache() *ResultsCache {
	return &ResultsCache{}
}

// Store replaces the cached run.
func (c *ResultsCache) Store(runID uuid.UUID, matches []types.MatchResult, config SearchConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latest = &Snapshot{
		RunID:     runID,
		Matches:   matches,
		Config:    config,
		UpdatedAt: time.Now().UTC(),
	}
}

// Latest returns a copy of the cached run, or false when no run has
// completed yet.
func (c *ResultsCache) Latest() (Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.latest == nil {
		return Snapshot{}, false
	}
	return *c.latest, true
}
