// Package fetch - cached.go wraps URL fetching with an in-memory TTL cache.
package fetch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCacheTTL is how long a fetched page stays fresh. Reputation research
// revisits the same discussion pages across runs; a day is plenty.
const DefaultCacheTTL = 24 * time.Hour

// renderFunc renders a page in a headless browser. Swappable in tests.
type renderFunc func(ctx context.Context, url string, logger *zap.Logger) (string, error)

// CachedFetcher wraps URL fetching with an in-memory cache so repeated
// lookups of the same page within a process do not refetch it. Extraction
// picks content selectors per discussion platform, with an optional headless
// browser fallback for pages that render their content with JavaScript.
type CachedFetcher struct {
	options    *Options
	cacheTTL   time.Duration
	skipCache  bool // For testing or forcing fresh fetches
	useBrowser bool
	render     renderFunc
	logger     *zap.Logger

	mu    sync.Mutex
	pages map[string]*cachedPage
}

type cachedPage struct {
	id        uuid.UUID
	result    *Result
	fetchedAt time.Time
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL   time.Duration
	SkipCache  bool
	UseBrowser bool // Fall back to headless browser for SPA pages (requires Chrome)
	Options    *Options
	Logger     *zap.Logger
}

// DefaultCachedFetcherConfig returns sensible defaults.
func DefaultCachedFetcherConfig() *CachedFetcherConfig {
	return &CachedFetcherConfig{
		CacheTTL:  DefaultCacheTTL,
		SkipCache: false,
		Options:   DefaultOptions(),
	}
}

// NewCachedFetcher creates a new cached fetcher.
func NewCachedFetcher(config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &CachedFetcher{
		options:    config.Options,
		cacheTTL:   config.CacheTTL,
		skipCache:  config.SkipCache,
		useBrowser: config.UseBrowser,
		render:     BrowserSimple,
		logger:     config.Logger,
		pages:      make(map[string]*cachedPage),
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool      // Whether this result came from cache
	PageID    uuid.UUID // Stable ID of the cached page
}

// Fetch retrieves a URL, using cache if available and fresh.
// Returns cached content if within TTL, otherwise fetches fresh content and caches it.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if !f.skipCache {
		if page := f.lookup(urlStr); page != nil {
			return &CachedResult{
				Result:    page.result,
				FromCache: true,
				PageID:    page.id,
			}, nil
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	// Extract text from HTML once; callers mostly want the text
	f.extractText(ctx, urlStr, result)

	page := &cachedPage{
		id:        uuid.New(),
		result:    result,
		fetchedAt: time.Now(),
	}
	f.mu.Lock()
	f.pages[urlStr] = page
	f.mu.Unlock()

	return &CachedResult{
		Result:    result,
		FromCache: false,
		PageID:    page.id,
	}, nil
}

// extractText fills result.Text using selectors for the page's platform.
// When the static HTML yields too little text and the browser fallback is
// enabled, the page is re-rendered headlessly and re-extracted; a browser
// failure keeps the HTTP content.
func (f *CachedFetcher) extractText(ctx context.Context, urlStr string, result *Result) {
	platform := DetectPlatform(urlStr)
	contentSelectors := PlatformContentSelectors(platform)
	noiseSelectors := PlatformNoiseSelectors(platform)

	text, _ := ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)

	if f.useBrowser && ShouldUseBrowser(text) {
		f.logger.Debug("static content too short, rendering in browser",
			zap.String("url", urlStr),
			zap.String("platform", string(platform)),
			zap.Int("chars", len(text)))

		html, err := f.render(ctx, urlStr, f.logger)
		if err != nil {
			f.logger.Debug("browser rendering failed, keeping static content",
				zap.String("url", urlStr), zap.Error(err))
		} else if rendered, rerr := ExtractMainText(html, contentSelectors, noiseSelectors...); rerr == nil {
			result.HTML = html
			text = rendered
		}
	}

	result.Text = text
}

// FetchMultiple fetches multiple URLs sequentially with caching.
// Returns results in the same order as input URLs. Failed fetches are nil in the result slice.
func (f *CachedFetcher) FetchMultiple(ctx context.Context, urls []string) ([]*CachedResult, []error) {
	results := make([]*CachedResult, len(urls))
	errors := make([]error, len(urls))

	for i, url := range urls {
		result, err := f.Fetch(ctx, url)
		if err != nil {
			errors[i] = err
		} else {
			results[i] = result
		}
	}

	return results, errors
}

// InvalidateCache drops a cached page, forcing a re-fetch on next request.
func (f *CachedFetcher) InvalidateCache(urlStr string) {
	f.mu.Lock()
	delete(f.pages, urlStr)
	f.mu.Unlock()
}

func (f *CachedFetcher) lookup(urlStr string) *cachedPage {
	f.mu.Lock()
	defer f.mu.Unlock()

	page, ok := f.pages[urlStr]
	if !ok {
		return nil
	}
	if time.Since(page.fetchedAt) > f.cacheTTL {
		delete(f.pages, urlStr)
		return nil
	}
	return page
}
