package news

import (
	"context"
	"log"
	"sync"

	"enlighten/config"
	"enlighten/types"
)

// Aggregator fans a category filter out to every configured provider and
// merges whatever comes back.
type Aggregator struct {
	providers []Provider
}

// NewAggregator builds an aggregator over the given providers. Order is
// priority order: when two providers return the same title, the later one's
// article wins the merge.
func NewAggregator(providers ...Provider) *Aggregator {
	return &Aggregator{providers: providers}
}

// Aggregate invokes every provider concurrently for the same category and
// returns the deduplicated, recency-ordered merge of the ones that succeeded.
// A failing provider is logged and contributes nothing; ErrNoProviders is
// returned alongside the empty list only when every provider failed, and is
// informational rather than fatal.
func (a *Aggregator) Aggregate(ctx context.Context, category string) ([]types.Article, error) {
	// One slot per provider so the merge order stays priority order, not
	// completion order.
	results := make([][]types.Article, len(a.providers))
	ok := make([]bool, len(a.providers))
	var wg sync.WaitGroup

	for i, p := range a.providers {
		wg.Add(1)
		go func(slot int, p Provider) {
			defer wg.Done()

			cctx, cancel := context.WithTimeout(ctx, config.ProviderTimeout)
			defer cancel()

			articles, err := p.FetchList(cctx, category)
			if err != nil {
				log.Printf("⚠️ %s fetch failed: %v", p.Name(), err)
				return
			}
			log.Printf("✅ Fetched %d articles from %s", len(articles), p.Name())
			results[slot] = articles
			ok[slot] = true
		}(i, p)
	}
	wg.Wait()

	succeeded := 0
	var merged []types.Article
	for i, r := range results {
		if !ok[i] {
			continue
		}
		succeeded++
		merged = append(merged, r...)
	}

	if succeeded == 0 {
		return []types.Article{}, ErrNoProviders
	}
	return Normalize(merged), nil
}
