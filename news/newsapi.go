package news

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"enlighten/config"
	"enlighten/types"
)

// newsAPIResponse is the newsapi.org wire format shared by the
// top-headlines and everything endpoints.
type newsAPIResponse struct {
	Status   string           `json:"status"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

// NewsAPIConfig holds settings for the NewsAPI adapter.
type NewsAPIConfig struct {
	APIKey  string
	BaseURL string // defaults to config.NewsAPIBaseURL
}

// NewsAPI adapts newsapi.org responses to the normalized Article shape.
type NewsAPI struct {
	cfg    NewsAPIConfig
	client *http.Client
}

// NewNewsAPI creates the NewsAPI adapter.
func NewNewsAPI(cfg NewsAPIConfig) *NewsAPI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.NewsAPIBaseURL
	}
	return &NewsAPI{
		cfg:    cfg,
		client: &http.Client{Timeout: config.ProviderTimeout},
	}
}

func (p *NewsAPI) Name() string { return "NewsAPI" }

// FetchList fetches top headlines, or an "everything" keyword search when a
// category filter is present.
func (p *NewsAPI) FetchList(ctx context.Context, category string) ([]types.Article, error) {
	q := url.Values{}
	q.Set("language", "en")
	q.Set("apiKey", p.cfg.APIKey)

	endpoint := p.cfg.BaseURL + "/top-headlines"
	if hasFilter(category) {
		endpoint = p.cfg.BaseURL + "/everything"
		q.Set("q", category)
	}

	var payload newsAPIResponse
	if err := getJSON(ctx, p.client, endpoint+"?"+q.Encode(), &payload); err != nil {
		return nil, providerErr(p.Name(), err)
	}

	now := time.Now()
	count := min(len(payload.Articles), config.PageSize)
	articles := make([]types.Article, 0, count)
	for _, raw := range payload.Articles[:count] {
		articles = append(articles, types.Article{
			ID:          raw.URL,
			Title:       orDefault(raw.Title, "No Title"),
			Description: orDefault(raw.Description, "No Description"),
			URL:         orDefault(raw.URL, "#"),
			Source:      orDefault(raw.Source.Name, "Unknown"),
			Image:       orDefault(raw.URLToImage, placeholderImage(category)),
			Category:    orDefault(category, config.DefaultCategory),
			PublishedAt: parsePublished(raw.PublishedAt, now),
		})
	}
	return articles, nil
}

// FetchDetail treats the identifier as a title-search term and accepts the
// first hit, if any.
func (p *NewsAPI) FetchDetail(ctx context.Context, id string) (*types.ArticleDetail, error) {
	q := url.Values{}
	q.Set("qInTitle", id)
	q.Set("language", "en")
	q.Set("pageSize", "1")
	q.Set("apiKey", p.cfg.APIKey)

	var payload newsAPIResponse
	if err := getJSON(ctx, p.client, p.cfg.BaseURL+"/everything?"+q.Encode(), &payload); err != nil {
		return nil, providerErr(p.Name(), err)
	}
	if len(payload.Articles) == 0 {
		return nil, ErrNotFound
	}

	raw := payload.Articles[0]
	return &types.ArticleDetail{
		Article: types.Article{
			ID:          raw.URL,
			Title:       raw.Title,
			Description: raw.Description,
			URL:         raw.URL,
			Source:      raw.Source.Name,
			Image:       raw.URLToImage,
			PublishedAt: parsePublished(raw.PublishedAt, time.Now()),
		},
		Content: raw.Content,
		Author:  raw.Author,
	}, nil
}
