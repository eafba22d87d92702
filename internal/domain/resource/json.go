package resource

import "encoding/json"

// Field names the catalog indexes; everything else is pass-through.
const (
	fieldID              = "id"
	fieldResourceVersion = "resource_version"
	fieldCategory        = "category"
	fieldArchitecture    = "architecture"
	fieldDate            = "date"
	fieldTags            = "tags"
	fieldGem5Versions    = "gem5_versions"
)

// MarshalJSON renders the resource in its stored shape. The relevance
// score is backend-assigned, never part of the document.
func (r Resource) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.asMap()) //nolint:wrapcheck // plain encoding
}

// UnmarshalJSON parses a stored catalog document, separating indexed
// fields from opaque pass-through ones. Fields of unexpected types are
// kept as pass-through rather than rejected.
func (r *Resource) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err //nolint:wrapcheck // plain decoding
	}

	*r = Resource{extra: make(map[string]any)}
	for k, v := range raw {
		switch k {
		case fieldID:
			if s, ok := v.(string); ok {
				r.id = s
				continue
			}
		case fieldResourceVersion:
			if s, ok := v.(string); ok {
				r.resourceVersion = s
				continue
			}
		case fieldCategory:
			if s, ok := v.(string); ok {
				r.category = s
				continue
			}
		case fieldArchitecture:
			if s, ok := v.(string); ok {
				r.architecture = s
				continue
			}
		case fieldDate:
			if s, ok := v.(string); ok {
				r.date = s
				continue
			}
		case fieldTags:
			if ss, ok := stringSlice(v); ok {
				r.tags = ss
				continue
			}
		case fieldGem5Versions:
			if ss, ok := stringSlice(v); ok {
				r.gem5Versions = ss
				continue
			}
		}
		r.extra[k] = v
	}
	return nil
}

func stringSlice(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
