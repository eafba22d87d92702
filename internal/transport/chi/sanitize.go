package chi

import (
	"regexp"
	"strings"
)

// Input sanitizers. Each strips or rejects characters before any value
// reaches the search pipeline, so handlers never pass raw query strings
// downstream.

var (
	idPattern      = regexp.MustCompile(`^[\w\-.]{1,100}$`)
	versionPattern = regexp.MustCompile(`^[0-9.]{1,20}$`)

	containsStrip    = regexp.MustCompile(`[^\w\s\-.,:;!?@#%&()\[\]{}<>/\\=+*'"]`)
	mustIncludeStrip = regexp.MustCompile(`[^\w,;\-.]`)
)

const (
	maxContainsLen    = 200
	maxMustIncludeLen = 500
)

// sanitizeID validates a resource id: word characters, dash, dot, up to
// 100 chars. Returns "" for anything else.
func sanitizeID(value string) string {
	value = strings.TrimSpace(value)
	if !idPattern.MatchString(value) {
		return ""
	}
	return value
}

// sanitizeVersion validates a dotted version string: digits and dots, up
// to 20 chars. Returns "" for anything else.
func sanitizeVersion(value string) string {
	value = strings.TrimSpace(value)
	if !versionPattern.MatchString(value) {
		return ""
	}
	return value
}

// sanitizeContainsStr strips the free-text phrase down to basic printable
// characters and caps its length.
func sanitizeContainsStr(value string) string {
	value = strings.TrimSpace(value)
	value = containsStrip.ReplaceAllString(value, "")
	if len(value) > maxContainsLen {
		value = value[:maxContainsLen]
	}
	return value
}

// sanitizeMustInclude strips the filter string down to the characters its
// wire format uses and caps its length.
func sanitizeMustInclude(value string) string {
	value = strings.TrimSpace(value)
	value = mustIncludeStrip.ReplaceAllString(value, "")
	if len(value) > maxMustIncludeLen {
		value = value[:maxMustIncludeLen]
	}
	return value
}
