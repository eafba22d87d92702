package catalog

import "github.com/gem5-vision/catalogd/internal/db"

// Schema builds the catalog search index definition. Category,
// architecture and tags are indexed twice: as TAG for exact filters and
// as TEXT for relevance scoring. The id gets the same dual treatment so
// version lookups stay exact while free-text queries can still rank on it.
func Schema(indexName, keyPrefix string) (*db.IndexDefinition, error) {
	return db.NewIndex(indexName).
		OnJSON().
		Prefix(keyPrefix).
		Text("$.id", "id").
		Tag("$.id", "id_tag").
		Text("$.description", "description").
		Tag("$.category", "category").
		Text("$.category", "category_text").
		Tag("$.architecture", "architecture").
		Text("$.architecture", "architecture_text").
		Tag("$.tags[*]", "tags").
		Text("$.tags[*]", "tags_text").
		Tag("$.gem5_versions[*]", "gem5_versions").
		Tag("$.resource_version", "resource_version").
		Build()
}
