// Package policy defines the sort orders a search can request.
package policy

// Policy is a named ordering rule applied to consolidated results.
type Policy string

// Sort policy constants.
const (
	// Default orders by backend relevance score, best first.
	Default Policy = "default"
	// Date orders by the entry date, newest first.
	Date Policy = "date"
	// Name orders by id, case-folded ascending.
	Name  Policy = "name"
	IDAsc Policy = "id_asc"
	// IDDesc orders by id, case-folded descending.
	IDDesc Policy = "id_desc"
	// Version orders by the highest supported simulator version, descending.
	Version Policy = "version"
)

// Parse maps a client sort token to a Policy. Unrecognized or empty
// tokens fall back to Default.
func Parse(s string) Policy {
	switch Policy(s) {
	case Date, Name, IDAsc, IDDesc, Version:
		return Policy(s)
	default:
		return Default
	}
}
