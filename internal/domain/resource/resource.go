// Package resource models stored catalog entries and their version
// consolidation rules.
package resource

// Resource is one stored version of a catalog entry. Beyond the indexed
// fields it carries the entry's remaining descriptive fields opaquely, so
// the API returns whatever the catalog stores.
type Resource struct {
	id              string
	resourceVersion string
	category        string
	architecture    string
	date            string
	tags            []string
	gem5Versions    []string
	score           float64
	extra           map[string]any
}

// Reconstruct builds a Resource from already-stored data without validation.
func Reconstruct(
	id, resourceVersion, category, architecture, date string,
	tags, gem5Versions []string,
	score float64,
	extra map[string]any,
) Resource {
	return Resource{
		id:              id,
		resourceVersion: resourceVersion,
		category:        category,
		architecture:    architecture,
		date:            date,
		tags:            tags,
		gem5Versions:    gem5Versions,
		score:           score,
		extra:           extra,
	}
}

// ID returns the logical identifier shared by all versions of the entry.
func (r *Resource) ID() string { return r.id }

// ResourceVersion returns the dotted version string of this entry.
func (r *Resource) ResourceVersion() string { return r.resourceVersion }

// Category returns the entry category.
func (r *Resource) Category() string { return r.category }

// Architecture returns the target architecture.
func (r *Resource) Architecture() string { return r.architecture }

// Date returns the entry date field ("" if absent).
func (r *Resource) Date() string { return r.date }

// Tags returns the entry tags.
func (r *Resource) Tags() []string { return r.tags }

// Gem5Versions returns the simulator versions the entry supports.
func (r *Resource) Gem5Versions() []string { return r.gem5Versions }

// Score returns the backend-assigned relevance score.
func (r *Resource) Score() float64 { return r.score }

// Extra returns the opaque pass-through descriptive fields.
func (r *Resource) Extra() map[string]any { return r.extra }

// WithScore returns a copy of the resource with the given relevance score.
func (r Resource) WithScore(score float64) Resource {
	r.score = score
	return r
}

// Version parses the entry's resource_version; malformed versions rank
// below any well-formed one.
func (r *Resource) Version() Version {
	return ParseVersion(r.resourceVersion)
}

// MaxGem5Version returns the lexicographically largest supported simulator
// version, or "0" if the entry lists none.
func (r *Resource) MaxGem5Version() string {
	maxVer := "0"
	for _, v := range r.gem5Versions {
		if v > maxVer {
			maxVer = v
		}
	}
	return maxVer
}

// Document is the transport shape of a resource.
type Document map[string]any

// Output renders the resource for an API response: stored fields plus a
// provenance tag, with the relevance score stripped.
func (r *Resource) Output(source string) Document {
	doc := r.asMap()
	doc["database"] = source
	return doc
}

func (r *Resource) asMap() map[string]any {
	doc := make(map[string]any, len(r.extra)+7)
	for k, v := range r.extra {
		doc[k] = v
	}
	doc["id"] = r.id
	doc["resource_version"] = r.resourceVersion
	if r.category != "" {
		doc["category"] = r.category
	}
	if r.architecture != "" {
		doc["architecture"] = r.architecture
	}
	if r.date != "" {
		doc["date"] = r.date
	}
	if r.tags != nil {
		doc["tags"] = r.tags
	}
	if r.gem5Versions != nil {
		doc["gem5_versions"] = r.gem5Versions
	}
	return doc
}
