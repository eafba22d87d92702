package catalog

import (
	"context"
	"testing"

	"github.com/gem5-vision/catalogd/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	jsonGetFn      func(ctx context.Context, key string, paths ...string) ([]byte, error)
	jsonGetMultiFn func(ctx context.Context, keys []string) ([][]byte, error)
	searchTextFn   func(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
	tagValuesFn    func(ctx context.Context, index, field string) ([]string, error)
}

func (m *mockStore) JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error) {
	if m.jsonGetFn != nil {
		return m.jsonGetFn(ctx, key, paths...)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockStore) JSONGetMulti(ctx context.Context, keys []string) ([][]byte, error) {
	if m.jsonGetMultiFn != nil {
		return m.jsonGetMultiFn(ctx, keys)
	}
	return make([][]byte, len(keys)), nil
}

func (m *mockStore) SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	if m.searchTextFn != nil {
		return m.searchTextFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) TagValues(ctx context.Context, index, field string) ([]string, error) {
	if m.tagValuesFn != nil {
		return m.tagValuesFn(ctx, index, field)
	}
	return nil, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms, Config{
		IndexName:     "catalog:idx",
		KeyPrefix:     "catalog:resource:",
		MaxCandidates: 1000,
	})
	return repo, ms
}
