package news

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"enlighten/config"
	"enlighten/types"
)

// guardianListResponse is the Guardian content API search envelope.
type guardianListResponse struct {
	Response struct {
		Results []guardianItem `json:"results"`
	} `json:"response"`
}

// guardianDetailResponse is the envelope for a single-item path lookup.
type guardianDetailResponse struct {
	Response struct {
		Content *guardianItem `json:"content"`
	} `json:"response"`
}

type guardianItem struct {
	ID                 string `json:"id"`
	WebTitle           string `json:"webTitle"`
	WebURL             string `json:"webUrl"`
	WebPublicationDate string `json:"webPublicationDate"`
	Fields             struct {
		Thumbnail string `json:"thumbnail"`
		BodyText  string `json:"bodyText"`
		Body      string `json:"body"`
		Byline    string `json:"byline"`
		ShortURL  string `json:"shortUrl"`
	} `json:"fields"`
}

// GuardianConfig holds settings for the Guardian adapter.
type GuardianConfig struct {
	APIKey  string
	BaseURL string // defaults to config.GuardianBaseURL
}

// Guardian adapts the Guardian Open Platform to the normalized Article shape.
type Guardian struct {
	cfg    GuardianConfig
	client *http.Client
}

// NewGuardian creates the Guardian adapter.
func NewGuardian(cfg GuardianConfig) *Guardian {
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.GuardianBaseURL
	}
	return &Guardian{
		cfg:    cfg,
		client: &http.Client{Timeout: config.ProviderTimeout},
	}
}

func (p *Guardian) Name() string { return "Guardian" }

// FetchList searches Guardian content, or lists the default front when no
// category filter is present.
func (p *Guardian) FetchList(ctx context.Context, category string) ([]types.Article, error) {
	q := url.Values{}
	q.Set("api-key", p.cfg.APIKey)
	q.Set("show-fields", "headline,thumbnail,bodyText,shortUrl")
	q.Set("page-size", "10")
	if hasFilter(category) {
		q.Set("q", category)
	}

	var payload guardianListResponse
	if err := getJSON(ctx, p.client, p.cfg.BaseURL+"/search?"+q.Encode(), &payload); err != nil {
		return nil, providerErr(p.Name(), err)
	}

	now := time.Now()
	results := payload.Response.Results
	count := min(len(results), config.PageSize)
	articles := make([]types.Article, 0, count)
	for _, raw := range results[:count] {
		articles = append(articles, types.Article{
			ID:          raw.ID,
			Title:       orDefault(raw.WebTitle, "No Title"),
			Description: guardianExcerpt(raw.Fields.BodyText),
			URL:         orDefault(raw.Fields.ShortURL, orDefault(raw.WebURL, "#")),
			Source:      "The Guardian",
			Image:       orDefault(raw.Fields.Thumbnail, placeholderImage("guardian-"+orDefault(category, "news"))),
			Category:    orDefault(category, config.DefaultCategory),
			PublishedAt: parsePublished(raw.WebPublicationDate, now),
		})
	}
	return articles, nil
}

// FetchDetail requests a single piece of content by path. Identifiers that
// are full Guardian URLs are reduced to their last path segment first.
func (p *Guardian) FetchDetail(ctx context.Context, id string) (*types.ArticleDetail, error) {
	if strings.Contains(id, "theguardian.com") {
		parts := strings.Split(id, "/")
		id = parts[len(parts)-1]
	}

	q := url.Values{}
	q.Set("api-key", p.cfg.APIKey)
	q.Set("show-fields", "headline,thumbnail,bodyText,byline,shortUrl,body")

	var payload guardianDetailResponse
	if err := getJSON(ctx, p.client, p.cfg.BaseURL+"/"+id+"?"+q.Encode(), &payload); err != nil {
		return nil, providerErr(p.Name(), err)
	}
	if payload.Response.Content == nil {
		return nil, ErrNotFound
	}

	raw := payload.Response.Content
	return &types.ArticleDetail{
		Article: types.Article{
			ID:          raw.ID,
			Title:       raw.WebTitle,
			Description: guardianExcerpt(raw.Fields.BodyText),
			URL:         raw.WebURL,
			Source:      "The Guardian",
			Image:       raw.Fields.Thumbnail,
			PublishedAt: parsePublished(raw.WebPublicationDate, time.Now()),
		},
		Content: orDefault(raw.Fields.Body, raw.Fields.BodyText),
		Author:  raw.Fields.Byline,
	}, nil
}

// guardianExcerpt trims body text to the first 200 characters for list views.
func guardianExcerpt(body string) string {
	if body == "" {
		return "Read more about this topic..."
	}
	if len(body) > 200 {
		body = body[:200]
	}
	return body + "..."
}
