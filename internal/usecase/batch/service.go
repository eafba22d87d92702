// Package batch resolves sets of id/version pairs in one request.
package batch

import (
	"context"
	"fmt"

	"github.com/gem5-vision/catalogd/internal/domain"
	"github.com/gem5-vision/catalogd/internal/domain/resource"
	"github.com/gem5-vision/catalogd/internal/metrics"
)

// AllVersions is the sentinel version meaning every stored version of an id.
const AllVersions = "None"

// Service handles batch resource lookups.
type Service struct {
	repo Repository
}

// New creates a batch service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Find resolves each id/version pair, in request order. Exact pairs are
// fetched in one pipelined read; AllVersions pairs expand to every stored
// version of the id. Missing resources are skipped, not errors.
func (s *Service) Find(ctx context.Context, ids, versions []string) ([]resource.Document, error) {
	if len(ids) == 0 {
		return nil, domain.NewInvalidRequest("No resource ids provided")
	}
	if len(ids) != len(versions) {
		return nil, domain.NewInvalidRequest(
			"Number of ids must match the number of corresponding resource versions")
	}

	exactIDs := make([]string, 0, len(ids))
	exactVersions := make([]string, 0, len(ids))
	for i := range ids {
		if versions[i] != AllVersions {
			exactIDs = append(exactIDs, ids[i])
			exactVersions = append(exactVersions, versions[i])
		}
	}

	exact, err := s.repo.FindMulti(ctx, exactIDs, exactVersions)
	if err != nil {
		metrics.BatchLookupsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("find batch: %w", err)
	}
	byKey := make(map[string]resource.Resource, len(exact))
	for _, r := range exact {
		byKey[r.ID()+":"+r.ResourceVersion()] = r
	}

	var documents []resource.Document
	for i := range ids {
		if versions[i] == AllVersions {
			all, err := s.repo.FindAllVersions(ctx, ids[i])
			if err != nil {
				metrics.BatchLookupsTotal.WithLabelValues("error").Inc()
				return nil, fmt.Errorf("find versions %s: %w", ids[i], err)
			}
			for _, r := range all {
				documents = append(documents, r.Output(domain.SourceTag))
			}
			continue
		}

		if r, ok := byKey[ids[i]+":"+versions[i]]; ok {
			documents = append(documents, r.Output(domain.SourceTag))
		}
	}

	metrics.BatchLookupsTotal.WithLabelValues("ok").Inc()
	return documents, nil
}
