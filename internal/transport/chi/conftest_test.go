package chi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/gem5-vision/catalogd/internal/domain/resource"
	"github.com/gem5-vision/catalogd/internal/domain/search/filter"
	batchuc "github.com/gem5-vision/catalogd/internal/usecase/batch"
	filtersuc "github.com/gem5-vision/catalogd/internal/usecase/filters"
	healthuc "github.com/gem5-vision/catalogd/internal/usecase/health"
	listinguc "github.com/gem5-vision/catalogd/internal/usecase/listing"
	searchuc "github.com/gem5-vision/catalogd/internal/usecase/search"
)

// mockBackend implements every repository contract the services need, so
// handler tests drive the real pipeline over canned data.
type mockBackend struct {
	searchFn          func(ctx context.Context, phrase string, filters filter.Expression) ([]resource.Resource, error)
	findMultiFn       func(ctx context.Context, ids, versions []string) ([]resource.Resource, error)
	findAllVersionsFn func(ctx context.Context, id string) ([]resource.Resource, error)
	listFn            func(ctx context.Context, versions []string) ([]resource.Resource, error)
	fieldValuesFn     func(ctx context.Context, field string) ([]string, error)
	pingErr           error
}

func (m *mockBackend) Search(ctx context.Context, phrase string, filters filter.Expression) ([]resource.Resource, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, phrase, filters)
	}
	return nil, nil
}

func (m *mockBackend) FindMulti(ctx context.Context, ids, versions []string) ([]resource.Resource, error) {
	if m.findMultiFn != nil {
		return m.findMultiFn(ctx, ids, versions)
	}
	return nil, nil
}

func (m *mockBackend) FindAllVersions(ctx context.Context, id string) ([]resource.Resource, error) {
	if m.findAllVersionsFn != nil {
		return m.findAllVersionsFn(ctx, id)
	}
	return nil, nil
}

func (m *mockBackend) ListByGem5Versions(ctx context.Context, versions []string) ([]resource.Resource, error) {
	if m.listFn != nil {
		return m.listFn(ctx, versions)
	}
	return nil, nil
}

func (m *mockBackend) FieldValues(ctx context.Context, field string) ([]string, error) {
	if m.fieldValuesFn != nil {
		return m.fieldValuesFn(ctx, field)
	}
	return nil, nil
}

func (m *mockBackend) Ping(_ context.Context) error { return m.pingErr }

func newTestServer(t *testing.T) (http.Handler, *mockBackend) {
	t.Helper()
	backend := &mockBackend{}

	server := NewServer(
		searchuc.New(backend),
		batchuc.New(backend),
		listinguc.New(backend),
		filtersuc.New(backend),
		healthuc.New(backend, nil, ""),
		zap.NewNop(),
	)

	r := chirouter.NewRouter()
	server.RegisterRoutes(r)
	return r, backend
}

func doRequest(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func res(id, version string) resource.Resource {
	return resource.Reconstruct(id, version, "", "", "", nil, nil, 0, nil)
}
