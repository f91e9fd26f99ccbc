// Package fetch - platform.go provides platform detection and platform-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known discussion or review platform.
type Platform string

const (
	// PlatformReddit is reddit.com and its mirrors
	PlatformReddit Platform = "reddit"
	// PlatformGlassdoor is the Glassdoor review site
	PlatformGlassdoor Platform = "glassdoor"
	// PlatformBlind is the Blind anonymous forum
	PlatformBlind Platform = "blind"
	// PlatformHackerNews is news.ycombinator.com
	PlatformHackerNews Platform = "hackernews"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the discussion platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	if strings.Contains(host, "reddit.com") {
		return PlatformReddit
	}

	if strings.Contains(host, "glassdoor.") {
		return PlatformGlassdoor
	}

	if strings.Contains(host, "teamblind.com") {
		return PlatformBlind
	}

	if strings.Contains(host, "news.ycombinator.com") {
		return PlatformHackerNews
	}

	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors optimized for a specific platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformReddit:
		return []string{
			"shreddit-comment-tree",
			".commentarea",
			"[data-testid='comment']",
			".Post",
			"main",
		}
	case PlatformGlassdoor:
		return []string{
			".review-content",
			"[data-test='review-details']",
			".empReviews",
			"main",
			"#content",
		}
	case PlatformBlind:
		return []string{
			".article-view",
			".comments",
			"main",
			".content",
		}
	case PlatformHackerNews:
		return []string{
			".comment-tree",
			"#hnmain",
		}
	default:
		return DiscussionPageSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific platform.
func PlatformNoiseSelectors(platform Platform) []string {
	// Common noise selectors for all platforms
	common := []string{
		// Login and signup prompts
		"form",
		".login-prompt",
		".signup-wall",
		".auth-modal",
		"[data-testid='login-form']",

		// Social and share buttons
		".social-share",
		".share-buttons",
		".social-links",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",

		// Generic navigation already handled in fetch.go
	}

	// Platform-specific noise selectors
	switch platform {
	case PlatformReddit:
		return append(common,
			".promotedlink",
			"[data-promoted='true']",
			".premium-banner",
		)
	case PlatformGlassdoor:
		return append(common,
			".hardsell-overlay",
			"[data-test='hardsell']",
			".content-wall",
		)
	case PlatformBlind:
		return append(common,
			".app-download-banner",
			".paywall",
		)
	default:
		return common
	}
}
