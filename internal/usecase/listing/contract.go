package listing

import (
	"context"

	"github.com/gem5-vision/catalogd/internal/domain/resource"
)

// Repository defines the storage contract for version listings.
type Repository interface {
	ListByGem5Versions(ctx context.Context, versions []string) ([]resource.Resource, error)
}
