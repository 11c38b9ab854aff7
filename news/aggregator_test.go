package news

import (
	"context"
	"errors"
	"testing"
	"time"

	"enlighten/types"
)

// fakeProvider is a canned-response stand-in for one news source.
type fakeProvider struct {
	name      string
	articles  []types.Article
	err       error
	detail    *types.ArticleDetail
	detailErr error

	gotCategory string
	gotDetailID string
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) FetchList(ctx context.Context, category string) ([]types.Article, error) {
	f.gotCategory = category
	if f.err != nil {
		return nil, f.err
	}
	return f.articles, nil
}

func (f *fakeProvider) FetchDetail(ctx context.Context, id string) (*types.ArticleDetail, error) {
	f.gotDetailID = id
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	return f.detail, nil
}

func article(title, source string, at time.Time) types.Article {
	return types.Article{Title: title, Source: source, PublishedAt: at}
}

func TestAggregatePartialFailure(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	p1 := &fakeProvider{name: "P1", articles: []types.Article{article("one", "P1", now)}}
	p2 := &fakeProvider{name: "P2", err: providerErr("P2", errors.New("boom"))}
	p3 := &fakeProvider{name: "P3", articles: []types.Article{article("three", "P3", now.Add(-time.Hour))}}

	out, err := NewAggregator(p1, p2, p3).Aggregate(context.Background(), "")
	if err != nil {
		t.Fatalf("one provider down must not fail aggregation: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 articles from surviving providers, got %d", len(out))
	}
}

func TestAggregateTotalFailure(t *testing.T) {
	down := errors.New("unreachable")
	p1 := &fakeProvider{name: "P1", err: down}
	p2 := &fakeProvider{name: "P2", err: down}
	p3 := &fakeProvider{name: "P3", err: down}

	out, err := NewAggregator(p1, p2, p3).Aggregate(context.Background(), "")
	if !errors.Is(err, ErrNoProviders) {
		t.Fatalf("expected ErrNoProviders, got %v", err)
	}
	if out == nil {
		t.Fatal("expected an empty list, got nil")
	}
	if len(out) != 0 {
		t.Fatalf("expected no articles, got %d", len(out))
	}
}

func TestAggregatePriorityDecidesCollisions(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	p1 := &fakeProvider{name: "P1", articles: []types.Article{article("shared", "P1", now)}}
	p2 := &fakeProvider{name: "P2", articles: []types.Article{article("shared", "P2", now)}}
	p3 := &fakeProvider{name: "P3", articles: []types.Article{article("shared", "P3", now)}}

	out, err := NewAggregator(p1, p2, p3).Aggregate(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected the shared title collapsed to 1 article, got %d", len(out))
	}
	if out[0].Source != "P3" {
		t.Fatalf("expected the last-priority provider to win, got %q", out[0].Source)
	}
}

func TestAggregatePassesCategoryToEveryProvider(t *testing.T) {
	p1 := &fakeProvider{name: "P1", articles: []types.Article{}}
	p2 := &fakeProvider{name: "P2", articles: []types.Article{}}

	if _, err := NewAggregator(p1, p2).Aggregate(context.Background(), "Science"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p1.gotCategory != "Science" || p2.gotCategory != "Science" {
		t.Fatalf("category not propagated: %q, %q", p1.gotCategory, p2.gotCategory)
	}
}
