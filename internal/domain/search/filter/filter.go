// Package filter models the must-include filter clauses of a search.
package filter

import (
	"regexp"
	"strings"

	"github.com/gem5-vision/catalogd/internal/domain"
)

// Field is a filterable catalog field.
type Field string

// Filterable fields. Category and architecture hold one value per entry;
// tags and gem5_versions are collections, so their filters test membership.
const (
	FieldCategory     Field = "category"
	FieldArchitecture Field = "architecture"
	FieldTags         Field = "tags"
	FieldGem5Versions Field = "gem5_versions"
)

// IsValid reports whether f is a known filterable field.
func (f Field) IsValid() bool {
	switch f {
	case FieldCategory, FieldArchitecture, FieldTags, FieldGem5Versions:
		return true
	}
	return false
}

// IsCollection reports whether the field holds multiple values per entry.
func (f Field) IsCollection() bool {
	return f == FieldTags || f == FieldGem5Versions
}

// Clause requires an entry to match one of the values on a field.
type Clause struct {
	field  Field
	values []string
}

// Field returns the filtered field.
func (c Clause) Field() Field { return c.field }

// Values returns the accepted values.
func (c Clause) Values() []string { return c.values }

// Expression is an ordered conjunction of filter clauses.
type Expression struct {
	clauses []Clause
}

// Clauses returns the clauses in request order.
func (e Expression) Clauses() []Clause { return e.clauses }

// IsEmpty reports whether the expression has no clauses.
func (e Expression) IsEmpty() bool { return len(e.clauses) == 0 }

// valuePattern matches sane filter values: word characters, dash, dot.
var valuePattern = regexp.MustCompile(`^[\w\-.]{1,100}$`)

// ParseMustInclude parses the wire format
// "field,val1,val2;field2,val1" into an Expression. A group with fewer
// than two tokens or a value failing sanitization is a validation error.
// Unknown field names are dropped, matching the catalog's historical
// behavior of ignoring filters it cannot apply.
func ParseMustInclude(s string) (Expression, error) {
	if s == "" {
		return Expression{}, nil
	}

	var clauses []Clause
	for _, group := range strings.Split(s, ";") {
		if group == "" {
			continue
		}

		parts := strings.Split(group, ",")
		if len(parts) < 2 {
			return Expression{}, domain.NewInvalidRequest("Invalid filter format")
		}

		values := make([]string, 0, len(parts)-1)
		for _, v := range parts[1:] {
			v = strings.TrimSpace(v)
			if !valuePattern.MatchString(v) {
				return Expression{}, domain.NewInvalidRequest("Invalid filter value format")
			}
			values = append(values, v)
		}

		field := Field(parts[0])
		if !field.IsValid() {
			continue
		}
		clauses = append(clauses, Clause{field: field, values: values})
	}

	return Expression{clauses: clauses}, nil
}
