package news

import (
	"sort"

	"enlighten/types"
)

// Normalize collapses articles sharing a title and orders the result by
// recency, newest first. The title-keyed map gives last-write-wins semantics:
// callers feed it input in provider priority order, so a later provider's
// version of a duplicated title replaces an earlier one's. It performs no I/O
// and running it on its own output is a no-op.
func Normalize(articles []types.Article) []types.Article {
	byTitle := make(map[string]types.Article, len(articles))
	for _, a := range articles {
		byTitle[a.Title] = a
	}

	out := make([]types.Article, 0, len(byTitle))
	for _, a := range byTitle {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out
}
