package config

import "time"

// Provider endpoints
const (
	// NewsAPIBaseURL is the newsapi.org v2 API root
	NewsAPIBaseURL = "https://newsapi.org/v2"

	// GuardianBaseURL is the Guardian Open Platform content API root
	GuardianBaseURL = "https://content.guardianapis.com"

	// MediaStackBaseURL is the MediaStack API root (free tier is HTTP only)
	MediaStackBaseURL = "http://api.mediastack.com/v1"
)

// Aggregation constants
const (
	// PageSize caps how many items of a provider list response are mapped
	PageSize = 10

	// ProviderTimeout bounds each outbound provider call
	ProviderTimeout = 10 * time.Second

	// CategoryAll is the sentinel meaning "no category filter"
	CategoryAll = "All"

	// DefaultCategory labels articles when no category was requested
	DefaultCategory = "General"
)

// PlaceholderImageBase is the stand-in image service, keyed by category
const PlaceholderImageBase = "https://source.unsplash.com/featured/800x600/?"

// Rate limiting constants
const (
	// RateLimitRPS is the sustained per-client request rate
	RateLimitRPS = 5

	// RateLimitBurst is the maximum burst allowed per client
	RateLimitBurst = 10
)
