package catalog

import (
	"context"

	"github.com/gem5-vision/catalogd/internal/domain/resource"
	"github.com/gem5-vision/catalogd/internal/domain/search/request"
	"github.com/gem5-vision/catalogd/internal/domain/search/result"
	healthuc "github.com/gem5-vision/catalogd/internal/usecase/health"
)

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn func(ctx context.Context, req *request.Request) (result.Page, error)
}

func (m *mockSearchUC) Search(ctx context.Context, req *request.Request) (result.Page, error) {
	return m.searchFn(ctx, req)
}

// --- batchUseCase mock ---

type mockBatchUC struct {
	findFn func(ctx context.Context, ids, versions []string) ([]resource.Document, error)
}

func (m *mockBatchUC) Find(ctx context.Context, ids, versions []string) ([]resource.Document, error) {
	return m.findFn(ctx, ids, versions)
}

// --- listingUseCase mock ---

type mockListingUC struct {
	listFn func(ctx context.Context, gem5Version string, latestOnly bool) ([]resource.Document, error)
}

func (m *mockListingUC) List(ctx context.Context, gem5Version string, latestOnly bool) ([]resource.Document, error) {
	return m.listFn(ctx, gem5Version, latestOnly)
}

// --- filtersUseCase mock ---

type mockFiltersUC struct {
	valuesFn func(ctx context.Context) (map[string][]string, error)
}

func (m *mockFiltersUC) Values(ctx context.Context) (map[string][]string, error) {
	return m.valuesFn(ctx)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	checkFn func(ctx context.Context) healthuc.Report
}

func (m *mockHealthUC) Check(ctx context.Context) healthuc.Report {
	return m.checkFn(ctx)
}
