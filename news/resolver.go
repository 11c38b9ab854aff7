package news

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"enlighten/types"
)

// Resolver looks up a single article's full detail by probing detail-capable
// providers in priority order.
type Resolver struct {
	providers []DetailProvider
}

// NewResolver builds a resolver over the given providers. Order is priority
// order: the first provider to yield a detail wins and later ones are never
// probed.
func NewResolver(providers ...DetailProvider) *Resolver {
	return &Resolver{providers: providers}
}

// Resolve decodes the identifier if it arrived percent-encoded, then probes
// providers sequentially, returning the first successful detail. Probe
// failures are logged and skipped; only an undecodable identifier is a hard
// error, everything else exhausts to ErrNotFound.
func (r *Resolver) Resolve(ctx context.Context, id string) (*types.ArticleDetail, error) {
	if strings.Contains(id, "%") {
		decoded, err := url.PathUnescape(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
		}
		id = decoded
	}

	for _, p := range r.providers {
		detail, err := p.FetchDetail(ctx, id)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				log.Printf("⚠️ %s detail lookup failed: %v", p.Name(), err)
			}
			continue
		}
		return detail, nil
	}
	return nil, ErrNotFound
}
