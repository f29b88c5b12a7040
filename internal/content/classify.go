// Package content classifies article bodies and converts them into
// Markdown, the canonical intermediate format the UI renders from.
// The backend stores content in three encodings depending on which
// editor produced it: HTML markup, a rich-text document tree serialized
// as JSON, or plain text.
package content

import (
	"encoding/json"
	"regexp"
)

// Kind is the detected encoding of an article body.
type Kind int

const (
	KindPlain Kind = iota
	KindHTML
	KindDocument
)

func (k Kind) String() string {
	switch k {
	case KindHTML:
		return "html"
	case KindDocument:
		return "document"
	default:
		return "plain"
	}
}

var htmlTagPattern = regexp.MustCompile(`(?i)<[a-z][\s\S]*>`)

// Classify determines the encoding of a raw body. First match wins:
// anything containing an HTML tag is HTML even if it would also parse as
// JSON; syntactically valid JSON is a rich-text document; everything
// else is plain text.
func Classify(s string) Kind {
	if htmlTagPattern.MatchString(s) {
		return KindHTML
	}
	if len(s) > 0 && json.Valid([]byte(s)) {
		return KindDocument
	}
	return KindPlain
}
