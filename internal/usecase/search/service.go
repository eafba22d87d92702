// Package search implements the catalog search pipeline: query the
// full-text index, consolidate versions, rank, and paginate.
package search

import (
	"context"
	"fmt"

	"github.com/gem5-vision/catalogd/internal/domain"
	"github.com/gem5-vision/catalogd/internal/domain/resource"
	"github.com/gem5-vision/catalogd/internal/domain/search/request"
	"github.com/gem5-vision/catalogd/internal/domain/search/result"
	"github.com/gem5-vision/catalogd/internal/metrics"
)

// Service handles catalog searches.
type Service struct {
	repo Repository
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search runs the full pipeline for one validated request and returns one
// page of documents plus the consolidated match count.
func (s *Service) Search(ctx context.Context, req *request.Request) (result.Page, error) {
	candidates, err := s.repo.Search(ctx, req.Query(), req.Filters())
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues(string(req.Sort()), "error").Inc()
		return result.Page{}, fmt.Errorf("search candidates: %w", err)
	}

	consolidated := resource.Consolidate(candidates)
	rank(consolidated, req.Sort())

	metrics.SearchRequestsTotal.WithLabelValues(string(req.Sort()), "ok").Inc()
	metrics.SearchCandidates.Observe(float64(len(candidates)))
	metrics.SearchResultsTotal.Observe(float64(len(consolidated)))

	return paginate(consolidated, req.Page(), req.PageSize()), nil
}

// paginate slices one page out of the ranked set and renders it for
// transport. Out-of-range pages yield an empty page with the full count.
func paginate(resources []resource.Resource, page, pageSize int) result.Page {
	total := len(resources)

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	documents := make([]resource.Document, 0, end-start)
	for i := start; i < end; i++ {
		documents = append(documents, resources[i].Output(domain.SourceTag))
	}
	return result.New(documents, total)
}
