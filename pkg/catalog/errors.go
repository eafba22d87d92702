package catalog

import "github.com/gem5-vision/catalogd/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound       = domain.ErrNotFound
	ErrInvalidRequest = domain.ErrInvalidRequest
)
