package content

import (
	"encoding/json"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

var htmlConverter = md.NewConverter("", true, nil)

// ToMarkdown converts a body of any encoding to Markdown. HTML is
// sanitized first; document trees are walked; plain text passes through
// untouched. The result is always renderable, possibly empty.
func ToMarkdown(body string) (string, Kind) {
	kind := Classify(body)
	switch kind {
	case KindHTML:
		out, err := htmlConverter.ConvertString(Sanitize(body))
		if err != nil {
			// A fragment the converter cannot handle still has text.
			return stripTags(body), kind
		}
		return out, kind

	case KindDocument:
		return documentToMarkdown(body), kind

	default:
		return body, kind
	}
}

// PlainText extracts the bare text of a body, whatever its encoding.
// Feeds read-time estimation and list previews.
func PlainText(body string) string {
	switch Classify(body) {
	case KindHTML:
		return stripTags(body)

	case KindDocument:
		var doc docNode
		if err := json.Unmarshal([]byte(body), &doc); err != nil {
			return ""
		}
		return collectText(doc)

	default:
		return body
	}
}

// Excerpt truncates a raw body to n runes and renders the fragment
// through the same path as full bodies, so previews keep their inline
// formatting and HTML previews sanitize identically. Truncation is not
// structure-aware; the sanitizer tolerates the dangling fragments it
// can produce.
func Excerpt(body string, n int) string {
	runes := []rune(body)
	if len(runes) > n {
		body = string(runes[:n]) + "…"
	}
	out, _ := ToMarkdown(body)
	return out
}
