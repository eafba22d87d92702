package db

// TextQuery is the input for a full-text FT.SEARCH call. Query is the
// complete backend query string, already translated and escaped.
type TextQuery struct {
	IndexName  string
	Query      string
	Limit      int
	WithScores bool
}

// SearchResult is the output of a search operation. Total is the index's
// own match count, which can exceed len(Entries) when the query limit
// truncates the candidate set.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
