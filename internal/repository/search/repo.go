// Package search translates catalog search requests into full-text
// queries and maps the hits back into domain resources.
package search

import (
	"context"
	"fmt"

	"github.com/gem5-vision/catalogd/internal/db"
	"github.com/gem5-vision/catalogd/internal/domain/resource"
	"github.com/gem5-vision/catalogd/internal/domain/search/filter"
)

// store is the consumer interface for search operations (ISP).
type store interface {
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

// Config carries index parameters shared by all searches.
type Config struct {
	IndexName     string
	MaxCandidates int
}

// Repo implements the search candidate source over a full-text index.
type Repo struct {
	store store
	cfg   Config
}

// New creates a search repository.
func New(s store, cfg Config) *Repo {
	return &Repo{store: s, cfg: cfg}
}

// Search runs a free-text search with filters and returns the scored
// candidate set, capped at the configured candidate limit.
func (r *Repo) Search(
	ctx context.Context, phrase string, filters filter.Expression,
) ([]resource.Resource, error) {
	q := &db.TextQuery{
		IndexName:  r.cfg.IndexName,
		Query:      BuildQuery(phrase, filters),
		Limit:      r.cfg.MaxCandidates,
		WithScores: true,
	}

	sr, err := r.store.SearchText(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", r.cfg.IndexName, err)
	}

	return parseEntries(sr), nil
}
