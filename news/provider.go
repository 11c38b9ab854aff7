package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"enlighten/config"
	"enlighten/types"
)

// Provider adapts one external news API to the normalized Article shape.
type Provider interface {
	// Name is the human-readable provider name used in logs and errors.
	Name() string
	// FetchList returns up to config.PageSize normalized articles. An empty
	// category (or the "All" sentinel) selects the provider's top/default
	// query; anything else is passed as a keyword in the provider's idiom.
	FetchList(ctx context.Context, category string) ([]types.Article, error)
}

// DetailProvider is the subset of providers able to look up one article's
// full detail from an identifier.
type DetailProvider interface {
	Name() string
	// FetchDetail returns ErrNotFound when the provider simply has no match,
	// and a *ProviderError when the call itself failed.
	FetchDetail(ctx context.Context, id string) (*types.ArticleDetail, error)
}

// getJSON performs a single GET and decodes the 2xx JSON body into out.
func getJSON(ctx context.Context, client *http.Client, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}
	return nil
}

// hasFilter reports whether the request asked for a keyword search rather
// than the provider's top/default listing.
func hasFilter(category string) bool {
	return category != "" && category != config.CategoryAll
}

// orDefault substitutes fallback for an empty provider field.
func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// placeholderImage builds a deterministic stand-in image URL for articles the
// provider shipped without one.
func placeholderImage(key string) string {
	return config.PlaceholderImageBase + orDefault(key, "news")
}

// parsePublished parses a provider timestamp, falling back to the request
// wall-clock when the field is absent or unparsable so that every Article
// carries a valid time for sorting.
func parsePublished(raw string, now time.Time) time.Time {
	if raw == "" {
		return now
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05Z0700"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return now
}
