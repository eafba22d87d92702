// Package filters exposes the catalog's filterable field values so
// clients can build filter pickers.
package filters

import (
	"context"
	"fmt"
	"sort"
)

// Field enumeration order matches the response layout clients expect.
var fields = []string{"category", "architecture", "gem5_versions"}

// Service handles filter value enumeration.
type Service struct {
	repo Repository
}

// New creates a filters service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Values returns the distinct values of every filterable field. Category
// and architecture sort ascending; simulator versions sort descending so
// the newest release leads.
func (s *Service) Values(ctx context.Context) (map[string][]string, error) {
	out := make(map[string][]string, len(fields))
	for _, field := range fields {
		values, err := s.repo.FieldValues(ctx, field)
		if err != nil {
			return nil, fmt.Errorf("values for %s: %w", field, err)
		}

		if field == "gem5_versions" {
			sort.Sort(sort.Reverse(sort.StringSlice(values)))
		} else {
			sort.Strings(values)
		}
		out[field] = values
	}
	return out, nil
}
