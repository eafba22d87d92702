package search

import (
	"encoding/json"

	"github.com/gem5-vision/catalogd/internal/db"
	"github.com/gem5-vision/catalogd/internal/domain/resource"
)

// parseEntry decodes a JSON search hit into a resource carrying the hit's
// relevance score. Entries without a parseable document are skipped.
func parseEntry(entry db.SearchEntry) (resource.Resource, bool) {
	doc, ok := entry.Fields["$"]
	if !ok {
		return resource.Resource{}, false
	}

	var r resource.Resource
	if err := json.Unmarshal([]byte(doc), &r); err != nil {
		return resource.Resource{}, false
	}
	return r.WithScore(entry.Score), true
}

func parseEntries(sr *db.SearchResult) []resource.Resource {
	if sr == nil || len(sr.Entries) == 0 {
		return nil
	}

	resources := make([]resource.Resource, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		if r, ok := parseEntry(entry); ok {
			resources = append(resources, r)
		}
	}
	return resources
}
