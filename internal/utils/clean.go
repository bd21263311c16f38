package utils

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// StripTags removes all markup from an HTML string, leaving plain text.
// Entities are unescaped first so "&lt;b&gt;" counts as markup too.
func StripTags(data string) string {
	return strictPolicy.Sanitize(html.UnescapeString(data))
}

// SanitizeField cleans a submitted field with the UGC policy and reports
// whether anything had to be dropped, so the caller can warn the user.
func SanitizeField(data string) (string, bool) {
	unescaped := html.UnescapeString(data)
	cleaned := policy.Sanitize(unescaped)
	return cleaned, cleaned == unescaped
}
