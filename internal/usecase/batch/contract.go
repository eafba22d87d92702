package batch

import (
	"context"

	"github.com/gem5-vision/catalogd/internal/domain/resource"
)

// Repository defines the storage contract for batch lookups.
type Repository interface {
	FindMulti(ctx context.Context, ids, versions []string) ([]resource.Resource, error)
	FindAllVersions(ctx context.Context, id string) ([]resource.Resource, error)
}
