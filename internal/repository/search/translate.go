package search

import (
	"fmt"
	"strings"

	"github.com/gem5-vision/catalogd/internal/domain/search/filter"
)

// queryField is one full-text field a search term is matched against.
type queryField struct {
	name     string
	weighted bool
}

// Term groups probe these fields; id hits outrank descriptive-field hits.
var queryFields = []queryField{
	{name: "id", weighted: true},
	{name: "description"},
	{name: "category_text"},
	{name: "architecture_text"},
	{name: "tags_text"},
}

const idWeight = "10.0"

// BuildQuery assembles the complete FT.SEARCH query string from a
// free-text phrase and a filter expression. Identical inputs produce
// byte-identical output.
func BuildQuery(phrase string, filters filter.Expression) string {
	filterExpr := BuildFilterExpr(filters)
	queryText := BuildQueryText(phrase)

	switch {
	case filterExpr == "" && queryText == "":
		return "*"
	case filterExpr == "":
		return queryText
	case queryText == "":
		return filterExpr
	default:
		return filterExpr + " " + queryText
	}
}

// BuildQueryText translates a free-text phrase into the text part of the
// query. Each whitespace-separated term becomes a disjunctive group of
// exact and prefix matches over the indexed text fields; groups are
// conjoined, so every term must match somewhere.
func BuildQueryText(phrase string) string {
	terms := strings.Fields(phrase)
	if len(terms) == 0 {
		return ""
	}

	groups := make([]string, 0, len(terms))
	for _, term := range terms {
		groups = append(groups, buildTermGroup(escapeTerm(term)))
	}
	return strings.Join(groups, " ")
}

func buildTermGroup(escaped string) string {
	parts := make([]string, 0, len(queryFields)*2)
	for _, f := range queryFields {
		exact := fmt.Sprintf("@%s:(%s)", f.name, escaped)
		prefix := fmt.Sprintf("@%s:(%s*)", f.name, escaped)
		if f.weighted {
			exact = fmt.Sprintf("(%s => { $weight: %s })", exact, idWeight)
			prefix = fmt.Sprintf("(%s => { $weight: %s })", prefix, idWeight)
		}
		parts = append(parts, exact, prefix)
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

// BuildFilterExpr translates a filter expression into TAG match groups.
// Scalar fields match the whole value; collection fields match membership,
// which the multi-value JSON paths give for free.
func BuildFilterExpr(expr filter.Expression) string {
	if expr.IsEmpty() {
		return ""
	}

	groups := make([]string, 0, len(expr.Clauses()))
	for _, clause := range expr.Clauses() {
		groups = append(groups, buildTagGroup(string(clause.Field()), clause.Values()))
	}
	return strings.Join(groups, " ")
}

func buildTagGroup(field string, values []string) string {
	escaped := make([]string, 0, len(values))
	for _, v := range values {
		escaped = append(escaped, tagEscaper.Replace(v))
	}
	return fmt.Sprintf("@%s:{%s}", field, strings.Join(escaped, "|"))
}

// termEscaper neutralizes the query syntax characters reserved by the
// search engine so user input is matched literally.
var termEscaper = strings.NewReplacer(
	`\`, `\\`,
	`+`, `\+`,
	`-`, `\-`,
	`&`, `\&`,
	`|`, `\|`,
	`!`, `\!`,
	`(`, `\(`,
	`)`, `\)`,
	`{`, `\{`,
	`}`, `\}`,
	`[`, `\[`,
	`]`, `\]`,
	`^`, `\^`,
	`~`, `\~`,
	`*`, `\*`,
	`?`, `\?`,
	`:`, `\:`,
	`/`, `\/`,
	`"`, `\"`,
)

func escapeTerm(s string) string {
	return termEscaper.Replace(s)
}

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	" ", "\\ ",
)

// EscapeTag escapes a value for use inside a TAG match group.
func EscapeTag(s string) string {
	return tagEscaper.Replace(s)
}
