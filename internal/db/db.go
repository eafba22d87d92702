// Package db defines the storage/search backend contract.
package db

import (
	"context"
	"time"
)

// Store is the backend facade combining all sub-interfaces. Consumers
// depend on the narrow sub-interfaces, not on Store.
type Store interface {
	Pinger
	JSONStore
	IndexManager
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks backend connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// JSONStore provides JSON document reads.
type JSONStore interface {
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONGetMulti(ctx context.Context, keys []string) ([][]byte, error)
}

// IndexManager provides FT index lifecycle operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Searcher provides query operations over FT indexes.
type Searcher interface {
	SearchText(ctx context.Context, q *TextQuery) (*SearchResult, error)
	TagValues(ctx context.Context, index, field string) ([]string, error)
}
