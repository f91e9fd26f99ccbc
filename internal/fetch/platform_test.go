package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform_Reddit(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://www.reddit.com/r/cscareerquestions/comments/abc123", PlatformReddit},
		{"https://old.reddit.com/r/jobs/comments/xyz", PlatformReddit},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			result := DetectPlatform(tt.url)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDetectPlatform_Glassdoor(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://www.glassdoor.com/Reviews/Acme-Reviews-E12345.htm", PlatformGlassdoor},
		{"https://www.glassdoor.co.uk/Reviews/Acme-Reviews.htm", PlatformGlassdoor},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			result := DetectPlatform(tt.url)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDetectPlatform_Blind(t *testing.T) {
	result := DetectPlatform("https://www.teamblind.com/company/Acme/posts")
	assert.Equal(t, PlatformBlind, result)
}

func TestDetectPlatform_HackerNews(t *testing.T) {
	result := DetectPlatform("https://news.ycombinator.com/item?id=12345")
	assert.Equal(t, PlatformHackerNews, result)
}

func TestDetectPlatform_Unknown(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://example.com/reviews", PlatformUnknown},
		{"https://linkedin.com/company/acme", PlatformUnknown},
		{"not a url at all ://", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			result := DetectPlatform(tt.url)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPlatformContentSelectors_Reddit(t *testing.T) {
	selectors := PlatformContentSelectors(PlatformReddit)
	assert.Contains(t, selectors, ".commentarea")
	assert.Contains(t, selectors, "shreddit-comment-tree")
}

func TestPlatformContentSelectors_Unknown(t *testing.T) {
	selectors := PlatformContentSelectors(PlatformUnknown)
	// Should fall back to generic discussion selectors
	assert.Contains(t, selectors, ".comments")
	assert.Contains(t, selectors, "main")
}

func TestPlatformNoiseSelectors_Glassdoor(t *testing.T) {
	selectors := PlatformNoiseSelectors(PlatformGlassdoor)
	// Common selectors
	assert.Contains(t, selectors, "form")
	assert.Contains(t, selectors, ".cookie-banner")
	// Glassdoor-specific
	assert.Contains(t, selectors, ".hardsell-overlay")
	assert.Contains(t, selectors, ".content-wall")
}

func TestPlatformNoiseSelectors_Unknown(t *testing.T) {
	selectors := PlatformNoiseSelectors(PlatformUnknown)
	assert.Contains(t, selectors, "form")
	assert.Contains(t, selectors, ".login-prompt")
	assert.Contains(t, selectors, ".cookie-banner")
}
