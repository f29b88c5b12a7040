package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"statereadr/internal/content"
	"statereadr/pkg/models"
)

type articleItem struct {
	article models.Article
	excerpt string
}

func newArticleItem(article models.Article, excerptLen int) articleItem {
	// Previews go through the same classify/sanitize path as full
	// bodies, flattened to one line for the list row.
	excerpt := content.Excerpt(article.Content, excerptLen)
	excerpt = strings.Join(strings.Fields(excerpt), " ")
	return articleItem{article: article, excerpt: excerpt}
}

func (i articleItem) Title() string {
	return i.article.Title
}

func (i articleItem) Description() string {
	return fmt.Sprintf("%s · %s · %s — %s",
		i.article.Author.Name,
		formatPublishedDate(i.article.CreatedAt),
		i.article.ReadTime,
		i.excerpt,
	)
}

func (i articleItem) FilterValue() string {
	return i.article.Title
}

var _ list.Item = articleItem{}
