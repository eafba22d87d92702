package catalog

import (
	"encoding/json"

	"github.com/gem5-vision/catalogd/internal/db"
	"github.com/gem5-vision/catalogd/internal/domain/resource"
)

func parseDoc(data []byte) (resource.Resource, bool) {
	var r resource.Resource
	if err := json.Unmarshal(data, &r); err != nil {
		return resource.Resource{}, false
	}
	return r, true
}

func parseSearchEntries(sr *db.SearchResult) []resource.Resource {
	if sr == nil || len(sr.Entries) == 0 {
		return nil
	}

	resources := make([]resource.Resource, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		doc, ok := entry.Fields["$"]
		if !ok {
			continue
		}
		if r, ok := parseDoc([]byte(doc)); ok {
			resources = append(resources, r)
		}
	}
	return resources
}
