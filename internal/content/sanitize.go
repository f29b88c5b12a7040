package content

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// articlePolicy keeps inline and structural formatting only. No
// attributes survive: no links, no images, no event handlers, no styles.
// Disallowed tags are stripped, not escaped.
var articlePolicy = newArticlePolicy()

// textPolicy strips all markup, leaving bare text.
var textPolicy = bluemonday.StrictPolicy()

func newArticlePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"p", "b", "i", "u", "strong", "em", "br",
		"ul", "ol", "li",
		"h1", "h2", "h3", "h4", "h5", "h6",
	)
	return p
}

// Sanitize reduces HTML to the allow-listed formatting tags. It is
// idempotent and tolerates malformed or truncated fragments.
func Sanitize(s string) string {
	return articlePolicy.Sanitize(s)
}

// stripTags removes all markup and resolves entities, producing the bare
// text used for read-time estimation and previews.
func stripTags(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}
