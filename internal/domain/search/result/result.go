// Package result defines the outcome of a consolidated search.
package result

import "github.com/gem5-vision/catalogd/internal/domain/resource"

// Page is one page of consolidated search results.
type Page struct {
	documents  []resource.Document
	totalCount int
}

// New creates a result page. totalCount counts all consolidated matches,
// not just the returned slice.
func New(documents []resource.Document, totalCount int) Page {
	return Page{documents: documents, totalCount: totalCount}
}

// Documents returns the page's documents in ranked order.
func (p *Page) Documents() []resource.Document { return p.documents }

// TotalCount returns the consolidated match count before pagination.
func (p *Page) TotalCount() int { return p.totalCount }
