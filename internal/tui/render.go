package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"

	"statereadr/internal/content"
	"statereadr/pkg/models"
)

// renderArticle builds the full detail view: a styled header, the body
// rendered from its canonical Markdown, and the engagement footer.
func renderArticle(article models.Article, width int) string {
	var s strings.Builder

	s.WriteString(articleTitleStyle.Render(article.Title))
	s.WriteString("\n")

	author := article.Author.Name
	if article.Author.Username != "" {
		author += fmt.Sprintf(" (@%s)", article.Author.Username)
	}
	s.WriteString(initialStyle.Render(authorInitial(article.Author.Name)))
	s.WriteString(" " + author)
	s.WriteString("\n")
	s.WriteString(helpStyle.Render(fmt.Sprintf("%s · %s",
		article.PublishedAt.Format("Jan 2, 2006"), article.ReadTime)))
	s.WriteString("\n")
	if article.Author.Avatar != "" {
		s.WriteString(helpStyle.Render("avatar: " + article.Author.Avatar))
		s.WriteString("\n")
	}
	if article.Image != "" {
		s.WriteString(helpStyle.Render("image: " + article.Image))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	md, _ := content.ToMarkdown(article.Content)
	s.WriteString(renderMarkdown(md, width))
	s.WriteString("\n")
	s.WriteString(helpStyle.Render(fmt.Sprintf("♥ %d · comments %d · %d views",
		article.Likes, article.Comments, article.Views)))

	return s.String()
}

// renderMarkdown renders Markdown for the terminal, falling back to the
// raw text when the renderer cannot be built.
func renderMarkdown(md string, width int) string {
	wrap := (width * 9) / 10
	if wrap > 100 {
		wrap = 100
	}
	if wrap < 40 {
		wrap = 40
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// authorInitial is the avatar fallback: the first character of the
// resolved name.
func authorInitial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "U"
}

// formatPublishedDate renders a timestamp relative to now, with
// "Recently" covering records whose dates could not be parsed.
func formatPublishedDate(t time.Time) string {
	if t.IsZero() {
		return "Recently"
	}
	return humanize.Time(t)
}
