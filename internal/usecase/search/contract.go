package search

import (
	"context"

	"github.com/gem5-vision/catalogd/internal/domain/resource"
	"github.com/gem5-vision/catalogd/internal/domain/search/filter"
)

// Repository defines the candidate source for search operations.
type Repository interface {
	Search(ctx context.Context, phrase string, filters filter.Expression) ([]resource.Resource, error)
}
