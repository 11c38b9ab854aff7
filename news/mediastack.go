package news

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"enlighten/config"
	"enlighten/types"
)

// mediaStackResponse is the MediaStack /news wire format.
type mediaStackResponse struct {
	Data []mediaStackArticle `json:"data"`
}

type mediaStackArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
}

// MediaStackConfig holds settings for the MediaStack adapter.
type MediaStackConfig struct {
	APIKey  string
	BaseURL string // defaults to config.MediaStackBaseURL
}

// MediaStack adapts the MediaStack API to the normalized Article shape.
// It is list-only: the API has no per-article lookup, so the adapter does not
// take part in detail resolution.
type MediaStack struct {
	cfg    MediaStackConfig
	client *http.Client
}

// NewMediaStack creates the MediaStack adapter.
func NewMediaStack(cfg MediaStackConfig) *MediaStack {
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.MediaStackBaseURL
	}
	return &MediaStack{
		cfg:    cfg,
		client: &http.Client{Timeout: config.ProviderTimeout},
	}
}

func (p *MediaStack) Name() string { return "MediaStack" }

// FetchList fetches the latest news, optionally filtered by keyword.
func (p *MediaStack) FetchList(ctx context.Context, category string) ([]types.Article, error) {
	q := url.Values{}
	q.Set("access_key", p.cfg.APIKey)
	q.Set("languages", "en")
	q.Set("limit", "10")
	q.Set("sort", "published_desc")
	if hasFilter(category) {
		q.Set("keywords", category)
	}

	var payload mediaStackResponse
	if err := getJSON(ctx, p.client, p.cfg.BaseURL+"/news?"+q.Encode(), &payload); err != nil {
		return nil, providerErr(p.Name(), err)
	}

	now := time.Now()
	count := min(len(payload.Data), config.PageSize)
	articles := make([]types.Article, 0, count)
	for _, raw := range payload.Data[:count] {
		articles = append(articles, types.Article{
			ID:          raw.URL,
			Title:       orDefault(raw.Title, "No Title"),
			Description: orDefault(raw.Description, "Click to read more about this topic."),
			URL:         orDefault(raw.URL, "#"),
			Source:      orDefault(raw.Source, "MediaStack"),
			Image:       orDefault(raw.Image, placeholderImage(category)),
			Category:    orDefault(category, config.DefaultCategory),
			PublishedAt: parsePublished(raw.PublishedAt, now),
		})
	}
	return articles, nil
}
