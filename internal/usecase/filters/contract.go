package filters

import "context"

// Repository enumerates distinct values of indexed catalog fields.
type Repository interface {
	FieldValues(ctx context.Context, field string) ([]string, error)
}
