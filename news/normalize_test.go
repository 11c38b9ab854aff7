package news

import (
	"testing"
	"time"

	"enlighten/types"
)

func TestNormalizeLastWriteWins(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	out := Normalize([]types.Article{
		{Title: "A", Source: "P1", PublishedAt: t1},
		{Title: "A", Source: "P2", PublishedAt: t2},
	})

	if len(out) != 1 {
		t.Fatalf("expected 1 article after dedup, got %d", len(out))
	}
	if out[0].Source != "P2" {
		t.Fatalf("expected later article to win the title collision, got source %q", out[0].Source)
	}
}

func TestNormalizeSortsByRecency(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	out := Normalize([]types.Article{
		{Title: "jan", PublishedAt: jan},
		{Title: "mar", PublishedAt: mar},
		{Title: "feb", PublishedAt: feb},
	})

	if len(out) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(out))
	}
	want := []string{"mar", "feb", "jan"}
	for i, title := range want {
		if out[i].Title != title {
			t.Fatalf("position %d: expected %q, got %q", i, title, out[i].Title)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	in := []types.Article{
		{Title: "A", Source: "P1", PublishedAt: base.Add(2 * time.Hour)},
		{Title: "B", Source: "P2", PublishedAt: base.Add(time.Hour)},
		{Title: "A", Source: "P3", PublishedAt: base},
	}

	once := Normalize(in)
	twice := Normalize(once)

	if len(once) != len(twice) {
		t.Fatalf("second pass changed length: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("second pass changed element %d: %+v vs %+v", i, once[i], twice[i])
		}
	}
}
