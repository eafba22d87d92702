// Package catalog reads stored catalog entries directly by key and by
// exact-match index lookups.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gem5-vision/catalogd/internal/db"
	"github.com/gem5-vision/catalogd/internal/domain"
	"github.com/gem5-vision/catalogd/internal/domain/resource"
	"github.com/gem5-vision/catalogd/internal/repository/search"
)

// store is the consumer interface for direct catalog reads (ISP).
type store interface {
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONGetMulti(ctx context.Context, keys []string) ([][]byte, error)
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
	TagValues(ctx context.Context, index, field string) ([]string, error)
}

// Config carries index and key-space parameters.
type Config struct {
	IndexName     string
	KeyPrefix     string
	MaxCandidates int
}

// Repo implements direct catalog entry access.
type Repo struct {
	store store
	cfg   Config
}

// New creates a catalog repository.
func New(s store, cfg Config) *Repo {
	return &Repo{store: s, cfg: cfg}
}

// Key returns the storage key of one entry version.
func (r *Repo) Key(id, version string) string {
	return r.cfg.KeyPrefix + id + ":" + version
}

// Find returns one exact entry version, or domain.ErrNotFound.
func (r *Repo) Find(ctx context.Context, id, version string) (resource.Resource, error) {
	data, err := r.store.JSONGet(ctx, r.Key(id, version))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return resource.Resource{}, domain.ErrNotFound
		}
		return resource.Resource{}, fmt.Errorf("find %s %s: %w", id, version, err)
	}

	res, ok := parseDoc(data)
	if !ok {
		return resource.Resource{}, domain.ErrNotFound
	}
	return res, nil
}

// FindMulti resolves exact id/version pairs in one pipelined round trip.
// Missing or unparseable entries are skipped.
func (r *Repo) FindMulti(ctx context.Context, ids, versions []string) ([]resource.Resource, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i := range ids {
		keys[i] = r.Key(ids[i], versions[i])
	}

	docs, err := r.store.JSONGetMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("find multi: %w", err)
	}

	resources := make([]resource.Resource, 0, len(docs))
	for _, data := range docs {
		if data == nil {
			continue
		}
		if res, ok := parseDoc(data); ok {
			resources = append(resources, res)
		}
	}
	return resources, nil
}

// FindAllVersions returns every stored version of an id via the exact-match
// index field.
func (r *Repo) FindAllVersions(ctx context.Context, id string) ([]resource.Resource, error) {
	q := &db.TextQuery{
		IndexName: r.cfg.IndexName,
		Query:     fmt.Sprintf("@id_tag:{%s}", search.EscapeTag(id)),
		Limit:     r.cfg.MaxCandidates,
	}

	sr, err := r.store.SearchText(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("find versions %s: %w", id, err)
	}
	return parseSearchEntries(sr), nil
}

// ListByGem5Versions returns entries supporting any of the given simulator
// versions.
func (r *Repo) ListByGem5Versions(ctx context.Context, versions []string) ([]resource.Resource, error) {
	if len(versions) == 0 {
		return nil, nil
	}

	q := &db.TextQuery{
		IndexName: r.cfg.IndexName,
		Query:     buildVersionQuery(versions),
		Limit:     r.cfg.MaxCandidates,
	}

	sr, err := r.store.SearchText(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list by versions: %w", err)
	}
	return parseSearchEntries(sr), nil
}

// FieldValues enumerates the distinct values of an indexed TAG field.
func (r *Repo) FieldValues(ctx context.Context, field string) ([]string, error) {
	values, err := r.store.TagValues(ctx, r.cfg.IndexName, field)
	if err != nil {
		return nil, fmt.Errorf("field values %s: %w", field, err)
	}
	return values, nil
}

func buildVersionQuery(versions []string) string {
	escaped := make([]string, 0, len(versions))
	for _, v := range versions {
		escaped = append(escaped, search.EscapeTag(v))
	}
	return "@gem5_versions:{" + strings.Join(escaped, "|") + "}"
}
