package search

import (
	"context"
	"testing"

	"github.com/gem5-vision/catalogd/internal/db"
	"github.com/gem5-vision/catalogd/internal/domain/search/filter"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchTextFn func(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

func (m *mockStore) SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	if m.searchTextFn != nil {
		return m.searchTextFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms, Config{IndexName: "catalog:idx", MaxCandidates: 1000})
	return repo, ms
}

func mustFilters(t *testing.T, s string) filter.Expression {
	t.Helper()
	expr, err := filter.ParseMustInclude(s)
	if err != nil {
		t.Fatalf("ParseMustInclude(%q): %v", s, err)
	}
	return expr
}
