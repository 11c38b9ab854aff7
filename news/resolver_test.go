package news

import (
	"context"
	"errors"
	"testing"

	"enlighten/types"
)

func detail(title, source string) *types.ArticleDetail {
	return &types.ArticleDetail{Article: types.Article{Title: title, Source: source}}
}

func TestResolvePriorityWins(t *testing.T) {
	p1 := &fakeProvider{name: "P1", detail: detail("hit", "P1")}
	p2 := &fakeProvider{name: "P2", detail: detail("hit", "P2")}

	got, err := NewResolver(p1, p2).Resolve(context.Background(), "hit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Source != "P1" {
		t.Fatalf("expected the first provider's version, got %q", got.Source)
	}
	if p2.gotDetailID != "" {
		t.Fatal("second provider must not be probed after the first succeeded")
	}
}

func TestResolveContinuesPastFailedProbe(t *testing.T) {
	p1 := &fakeProvider{name: "P1", detailErr: providerErr("P1", errors.New("timeout"))}
	p2 := &fakeProvider{name: "P2", detail: detail("hit", "P2")}

	got, err := NewResolver(p1, p2).Resolve(context.Background(), "hit")
	if err != nil {
		t.Fatalf("probe failure must be swallowed, got %v", err)
	}
	if got.Source != "P2" {
		t.Fatalf("expected fallback to the second provider, got %q", got.Source)
	}
}

func TestResolveExhaustion(t *testing.T) {
	p1 := &fakeProvider{name: "P1", detailErr: ErrNotFound}
	p2 := &fakeProvider{name: "P2", detailErr: providerErr("P2", errors.New("boom"))}

	_, err := NewResolver(p1, p2).Resolve(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after exhausting providers, got %v", err)
	}
}

func TestResolveDecodesEncodedIdentifier(t *testing.T) {
	p1 := &fakeProvider{name: "P1", detail: detail("hit", "P1")}

	if _, err := NewResolver(p1).Resolve(context.Background(), "https%3A%2F%2Fexample.com%2Fstory"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p1.gotDetailID != "https://example.com/story" {
		t.Fatalf("identifier not decoded, provider saw %q", p1.gotDetailID)
	}
}

func TestResolvePlainIdentifierUntouched(t *testing.T) {
	p1 := &fakeProvider{name: "P1", detail: detail("hit", "P1")}

	if _, err := NewResolver(p1).Resolve(context.Background(), "world/2024/story"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p1.gotDetailID != "world/2024/story" {
		t.Fatalf("identifier without escapes must pass through, provider saw %q", p1.gotDetailID)
	}
}

func TestResolveInvalidIdentifier(t *testing.T) {
	p1 := &fakeProvider{name: "P1", detail: detail("hit", "P1")}

	_, err := NewResolver(p1).Resolve(context.Background(), "%zz")
	if !errors.Is(err, ErrInvalidIdentifier) {
		t.Fatalf("expected ErrInvalidIdentifier, got %v", err)
	}
	if p1.gotDetailID != "" {
		t.Fatal("providers must not be probed with an undecodable identifier")
	}
}
