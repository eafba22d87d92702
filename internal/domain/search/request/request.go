// Package request defines the validated search query object.
package request

import (
	"fmt"

	"github.com/gem5-vision/catalogd/internal/domain"
	"github.com/gem5-vision/catalogd/internal/domain/search/filter"
	"github.com/gem5-vision/catalogd/internal/domain/search/policy"
)

// Pagination limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxQueryLength bounds the free-text phrase after sanitization.
	MaxQueryLength = 200
)

// Request is a validated search query.
type Request struct {
	query    string
	filters  filter.Expression
	sort     policy.Policy
	page     int
	pageSize int
}

// New validates search parameters. The query is assumed sanitized by the
// transport; pagination bounds are enforced here so no backend call is
// made for out-of-range input.
func New(
	query string,
	filters filter.Expression,
	sort policy.Policy,
	page, pageSize int,
) (Request, error) {
	if len(query) > MaxQueryLength {
		query = query[:MaxQueryLength]
	}
	if page < 1 {
		return Request{}, domain.NewInvalidRequest(
			"Invalid pagination parameters: page must be >= 1")
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return Request{}, domain.NewInvalidRequest(fmt.Sprintf(
			"Invalid pagination parameters: page-size must be between 1 and %d", MaxPageSize))
	}

	return Request{
		query:    query,
		filters:  filters,
		sort:     sort,
		page:     page,
		pageSize: pageSize,
	}, nil
}

// Query returns the free-text phrase ("" means match everything).
func (r *Request) Query() string { return r.query }

// Filters returns the must-include filter expression.
func (r *Request) Filters() filter.Expression { return r.filters }

// Sort returns the requested sort policy.
func (r *Request) Sort() policy.Policy { return r.sort }

// Page returns the 1-based page number.
func (r *Request) Page() int { return r.page }

// PageSize returns the page size.
func (r *Request) PageSize() int { return r.pageSize }
