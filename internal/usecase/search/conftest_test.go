package search

import (
	"context"
	"testing"

	"github.com/gem5-vision/catalogd/internal/domain/resource"
	"github.com/gem5-vision/catalogd/internal/domain/search/filter"
	"github.com/gem5-vision/catalogd/internal/domain/search/policy"
	"github.com/gem5-vision/catalogd/internal/domain/search/request"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	searchFn func(ctx context.Context, phrase string, filters filter.Expression) ([]resource.Resource, error)
}

func (m *mockRepo) Search(
	ctx context.Context, phrase string, filters filter.Expression,
) ([]resource.Resource, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, phrase, filters)
	}
	return nil, nil
}

func newTestService(t *testing.T) (*Service, *mockRepo) {
	t.Helper()
	repo := &mockRepo{}
	return New(repo), repo
}

func mustRequest(t *testing.T, query string, sort policy.Policy, page, pageSize int) *request.Request {
	t.Helper()
	req, err := request.New(query, filter.Expression{}, sort, page, pageSize)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return &req
}

// res builds a minimal candidate for pipeline tests.
func res(id, version, date string, score float64, gem5Versions ...string) resource.Resource {
	return resource.Reconstruct(id, version, "", "", date, nil, gem5Versions, score, nil)
}
