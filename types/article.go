package types

import "time"

// Article is the normalized shape every provider response is mapped into.
// Values are built fresh per request and never cached or mutated afterwards.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	PublishedAt time.Time `json:"publishedAt"`
}

// ArticleDetail extends Article with the full-text fields a detail lookup can
// return. Content and Author are provider-specific and may be empty.
type ArticleDetail struct {
	Article
	Content string `json:"content,omitempty"`
	Author  string `json:"author,omitempty"`
}
