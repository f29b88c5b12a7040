package content

import (
	"encoding/json"
	"fmt"
	"strings"
)

// docNode is one node of the rich-text document tree: blocks (doc,
// paragraph, heading, lists) containing inline runs (text with marks,
// hard breaks).
type docNode struct {
	Type    string         `json:"type"`
	Text    string         `json:"text"`
	Marks   []docMark      `json:"marks"`
	Attrs   map[string]any `json:"attrs"`
	Content []docNode      `json:"content"`
}

type docMark struct {
	Type string `json:"type"`
}

// documentToMarkdown renders a serialized document tree as Markdown.
// A payload that is valid JSON but not a document renders empty rather
// than failing; unknown node types render as inert text.
func documentToMarkdown(raw string) string {
	var doc docNode
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return ""
	}
	if doc.Type != "doc" && len(doc.Content) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(doc.Content))
	for _, node := range doc.Content {
		if b := renderBlock(node); b != "" {
			blocks = append(blocks, b)
		}
	}
	return strings.Join(blocks, "\n\n")
}

func renderBlock(node docNode) string {
	switch node.Type {
	case "paragraph":
		return renderInline(node.Content)

	case "heading":
		level := headingLevel(node)
		text := renderInline(node.Content)
		if text == "" {
			return ""
		}
		return strings.Repeat("#", level) + " " + text

	case "bulletList":
		return renderList(node.Content, func(int) string { return "- " })

	case "orderedList":
		return renderList(node.Content, func(i int) string { return fmt.Sprintf("%d. ", i+1) })

	default:
		// Unknown block types render as inert/empty.
		return ""
	}
}

func renderList(items []docNode, marker func(int) string) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		if item.Type != "listItem" {
			continue
		}
		parts := make([]string, 0, len(item.Content))
		for _, child := range item.Content {
			if b := renderBlock(child); b != "" {
				parts = append(parts, b)
			}
		}
		lines = append(lines, marker(i)+strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}

func renderInline(nodes []docNode) string {
	var s strings.Builder
	for _, node := range nodes {
		switch node.Type {
		case "text":
			s.WriteString(applyMarks(node.Text, node.Marks))
		case "hardBreak":
			s.WriteString("  \n")
		default:
			// Inert: keep any nested text, drop the rest.
			s.WriteString(collectText(node))
		}
	}
	return strings.TrimSpace(s.String())
}

func applyMarks(text string, marks []docMark) string {
	if text == "" {
		return ""
	}
	for _, mark := range marks {
		switch mark.Type {
		case "bold":
			text = "**" + text + "**"
		case "italic":
			text = "*" + text + "*"
		}
		// Underline has no Markdown form; the text stays as-is.
	}
	return text
}

func headingLevel(node docNode) int {
	if v, ok := node.Attrs["level"]; ok {
		if f, ok := v.(float64); ok && f >= 1 && f <= 6 {
			return int(f)
		}
	}
	return 1
}

// collectText joins the text of every node in the subtree, in order.
func collectText(node docNode) string {
	parts := make([]string, 0, len(node.Content)+1)
	if node.Text != "" {
		parts = append(parts, node.Text)
	}
	for _, child := range node.Content {
		if t := collectText(child); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
