// Package listing enumerates catalog entries compatible with a simulator
// version.
package listing

import (
	"context"
	"fmt"
	"strings"

	"github.com/gem5-vision/catalogd/internal/domain"
	"github.com/gem5-vision/catalogd/internal/domain/resource"
)

// Service handles compatibility listings.
type Service struct {
	repo Repository
}

// New creates a listing service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every entry whose supported simulator versions include a
// dotted prefix of version. With latestOnly only the highest
// resource_version per id survives.
func (s *Service) List(ctx context.Context, version string, latestOnly bool) ([]resource.Document, error) {
	prefixes, err := expandPrefixes(version)
	if err != nil {
		return nil, err
	}

	resources, err := s.repo.ListByGem5Versions(ctx, prefixes)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}

	if latestOnly {
		resources = resource.Latest(resources)
	}

	documents := make([]resource.Document, 0, len(resources))
	for _, r := range resources {
		documents = append(documents, r.Output(domain.SourceTag))
	}
	return documents, nil
}

// expandPrefixes builds every dotted prefix of version starting at
// major.minor: "25.0.0.1" yields "25.0", "25.0.0", "25.0.0.1". Simulator
// versions always carry at least one dot, so a bare major is an error.
func expandPrefixes(version string) ([]string, error) {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return nil, domain.NewInvalidRequest(
			"Invalid 'gem5-version' parameter: must have at least major version format (e.g., '23.0', '25.1')")
	}

	prefixes := make([]string, 0, len(parts)-1)
	for i := 2; i <= len(parts); i++ {
		prefixes = append(prefixes, strings.Join(parts[:i], "."))
	}
	return prefixes, nil
}
