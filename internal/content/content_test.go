package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleDoc = `{
	"type": "doc",
	"content": [
		{"type": "heading", "attrs": {"level": 2}, "content": [{"type": "text", "text": "Title"}]},
		{"type": "paragraph", "content": [
			{"type": "text", "text": "Hello "},
			{"type": "text", "text": "bold", "marks": [{"type": "bold"}]},
			{"type": "text", "text": " and "},
			{"type": "text", "text": "slanted", "marks": [{"type": "italic"}]}
		]},
		{"type": "bulletList", "content": [
			{"type": "listItem", "content": [{"type": "paragraph", "content": [{"type": "text", "text": "one"}]}]},
			{"type": "listItem", "content": [{"type": "paragraph", "content": [{"type": "text", "text": "two"}]}]}
		]}
	]
}`

func TestToMarkdownDocument(t *testing.T) {
	md, kind := ToMarkdown(sampleDoc)

	assert.Equal(t, KindDocument, kind)
	assert.Contains(t, md, "## Title")
	assert.Contains(t, md, "Hello **bold** and *slanted*")
	assert.Contains(t, md, "- one")
	assert.Contains(t, md, "- two")
}

func TestToMarkdownDocumentEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "valid json, not a document", body: `{"foo": 1}`},
		{name: "json array", body: `[1, 2, 3]`},
		{name: "json scalar", body: `42`},
		{name: "json string", body: `"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var md string
			var kind Kind
			assert.NotPanics(t, func() { md, kind = ToMarkdown(tt.body) })
			assert.Equal(t, KindDocument, kind)
			assert.Empty(t, md)
		})
	}

	t.Run("unknown node types render inert", func(t *testing.T) {
		body := `{"type":"doc","content":[
			{"type":"codeBlock","content":[{"type":"text","text":"x := 1"}]},
			{"type":"paragraph","content":[{"type":"mention","content":[{"type":"text","text":"ada"}]}]}
		]}`
		md, _ := ToMarkdown(body)
		assert.NotContains(t, md, "codeBlock")
		assert.Contains(t, md, "ada")
	})

	t.Run("hard break becomes a markdown line break", func(t *testing.T) {
		body := `{"type":"doc","content":[{"type":"paragraph","content":[
			{"type":"text","text":"a"},{"type":"hardBreak"},{"type":"text","text":"b"}
		]}]}`
		md, _ := ToMarkdown(body)
		assert.Contains(t, md, "a  \nb")
	})
}

func TestToMarkdownHTML(t *testing.T) {
	md, kind := ToMarkdown("<h1>Head</h1><p>Hello <strong>there</strong></p>")

	assert.Equal(t, KindHTML, kind)
	assert.Contains(t, md, "# Head")
	assert.Contains(t, md, "**there**")
}

func TestToMarkdownPlain(t *testing.T) {
	md, kind := ToMarkdown("nothing special here")

	assert.Equal(t, KindPlain, kind)
	assert.Equal(t, "nothing special here", md)
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "html is stripped to text",
			body:     "<p>Hello <b>world</b></p>",
			expected: "Hello world",
		},
		{
			name:     "entities are resolved",
			body:     "<p>a &amp; b</p>",
			expected: "a & b",
		},
		{
			name:     "document joins text nodes",
			body:     `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"Hello"},{"type":"text","text":"world"}]}]}`,
			expected: "Hello world",
		},
		{
			name:     "plain passes through",
			body:     "as is",
			expected: "as is",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PlainText(tt.body))
		})
	}
}

func TestExcerpt(t *testing.T) {
	t.Run("short bodies are untouched", func(t *testing.T) {
		assert.Equal(t, "short", Excerpt("short", 100))
	})

	t.Run("long bodies are truncated with an ellipsis", func(t *testing.T) {
		long := strings.Repeat("a", 200)
		got := Excerpt(long, 100)
		assert.Equal(t, 101, len([]rune(got)))
		assert.True(t, strings.HasSuffix(got, "…"))
	})

	t.Run("truncated html stays sanitized", func(t *testing.T) {
		body := "<p>" + strings.Repeat("a", 200) + "<script>bad()</script></p>"
		var got string
		assert.NotPanics(t, func() { got = Excerpt(body, 50) })
		assert.NotContains(t, got, "script")
	})

	t.Run("truncation counts runes, not bytes", func(t *testing.T) {
		body := strings.Repeat("é", 150)
		got := Excerpt(body, 100)
		assert.Equal(t, 101, len([]rune(got)))
	})
}
