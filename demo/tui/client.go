package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"enlighten/types"
)

// APIClient is a thin HTTP client for the news API
type APIClient struct {
	baseURL string
	client  *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type newsEnvelope struct {
	Success  bool            `json:"success"`
	Articles []types.Article `json:"articles"`
}

type articleEnvelope struct {
	Success bool                 `json:"success"`
	Article *types.ArticleDetail `json:"article"`
	Message string               `json:"message"`
}

// GetNews fetches the aggregated article list for a category
func (c *APIClient) GetNews(category string) ([]types.Article, error) {
	endpoint := c.baseURL + "/api/news/all"
	if category != "" {
		endpoint += "?category=" + url.QueryEscape(category)
	}

	resp, err := c.client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var env newsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return env.Articles, nil
}

// GetArticle fetches one article's full detail by identifier
func (c *APIClient) GetArticle(id string) (*types.ArticleDetail, error) {
	resp, err := c.client.Get(c.baseURL + "/api/news/article/" + url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article: %w", err)
	}
	defer resp.Body.Close()

	var env articleEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !env.Success || env.Article == nil {
		if env.Message != "" {
			return nil, fmt.Errorf("%s", env.Message)
		}
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}
	return env.Article, nil
}
