package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Kind
	}{
		{
			name:     "html markup",
			body:     "<p>Hello</p>",
			expected: KindHTML,
		},
		{
			name:     "valid json document",
			body:     `{"type":"doc","content":[]}`,
			expected: KindDocument,
		},
		{
			name:     "plain text",
			body:     "just some words",
			expected: KindPlain,
		},
		{
			name:     "html wins over json when both match",
			body:     `{"a":"<b>hi</b>"}`,
			expected: KindHTML,
		},
		{
			name:     "empty string is plain",
			body:     "",
			expected: KindPlain,
		},
		{
			name:     "uppercase tag",
			body:     "<P>Hello</P>",
			expected: KindHTML,
		},
		{
			name:     "angle bracket without a tag is plain",
			body:     "2 < 3 and 4 > 1",
			expected: KindPlain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.body))
		})
	}
}

func TestSanitize(t *testing.T) {
	t.Run("strips event handlers and script tags", func(t *testing.T) {
		got := Sanitize(`<p onclick='x()'>Hi <script>bad()</script></p>`)
		assert.Equal(t, "<p>Hi </p>", got)
	})

	t.Run("allow-listed tags survive", func(t *testing.T) {
		in := "<h2>Head</h2><p><strong>bold</strong> <em>em</em> <u>u</u><br/></p><ul><li>one</li></ul>"
		got := Sanitize(in)
		for _, tag := range []string{"<h2>", "<p>", "<strong>", "<em>", "<u>", "<ul>", "<li>"} {
			assert.Contains(t, got, tag)
		}
	})

	t.Run("attributes never survive", func(t *testing.T) {
		got := Sanitize(`<p style="color:red" class="x"><b href="nope">t</b></p>`)
		assert.NotContains(t, got, "style")
		assert.NotContains(t, got, "class")
		assert.NotContains(t, got, "href")
	})

	t.Run("links and images are stripped, not escaped", func(t *testing.T) {
		got := Sanitize(`<p><a href="https://evil.example">click</a><img src="x.png"/></p>`)
		assert.NotContains(t, got, "<a")
		assert.NotContains(t, got, "<img")
		assert.NotContains(t, got, "&lt;a")
		assert.Contains(t, got, "click")
	})

	t.Run("idempotent", func(t *testing.T) {
		in := `<h1 id="x">Title</h1><p>Hi <script>bad()</script><b>there</b></p>`
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once))
	})

	t.Run("tolerates truncated fragments", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Sanitize("<p><b>dangling")
			Sanitize("<p unclosed")
		})
	})
}
