package catalog

import (
	"github.com/gem5-vision/catalogd/internal/domain/resource"
	batchuc "github.com/gem5-vision/catalogd/internal/usecase/batch"
)

// AllVersions requests every stored version of an id in FindBatch.
const AllVersions = batchuc.AllVersions

// Document is one rendered catalog entry: its stored fields plus a
// provenance tag.
type Document = resource.Document

// SearchQuery describes one catalog search.
type SearchQuery struct {
	// Text is the free-text phrase. Empty matches everything.
	Text string
	// MustInclude filters by field values, e.g.
	// {"category": {"kernel"}, "architecture": {"RISCV", "ARM"}}.
	MustInclude map[string][]string
	// Sort is one of "date", "name", "version", "id_asc", "id_desc".
	// Empty sorts by relevance.
	Sort string
	// Page is 1-based. Zero means the first page.
	Page int
	// PageSize defaults to 10, capped at 100.
	PageSize int
}

// SearchPage is one page of consolidated search results.
type SearchPage struct {
	Documents  []Document
	TotalCount int
}

// BatchKey identifies one entry version in FindBatch.
type BatchKey struct {
	ID      string
	Version string
}
