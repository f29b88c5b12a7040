package fetch

import (
	"time"

	"statereadr/pkg/models"
)

// sampleDashboard is what the dashboard shows when a primary fetch
// fails: the error banner plus a small built-in dataset, so the screen
// is never completely empty.
func sampleDashboard() *Dashboard {
	return &Dashboard{
		Articles:   sampleArticles(),
		Categories: sampleCategories(),
		Err:        ErrLoadFailed,
	}
}

func sampleArticles() []models.Article {
	return []models.Article{
		{
			ID:          "1",
			Title:       "The Future of AI: Opportunities and Challenges",
			Content:     "Artificial intelligence is rapidly transforming industries across the globe...",
			Author:      models.Author{Name: "Alex Johnson"},
			PublishedAt: time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
			CreatedAt:   time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
			ReadTime:    "8 min read",
			Views:       1250,
			Comments:    48,
			Likes:       230,
			Category:    "1",
		},
		{
			ID:          "2",
			Title:       "Healthcare in Crisis: A Global Perspective",
			Content:     "The global healthcare system is facing unprecedented challenges...",
			Author:      models.Author{Name: "Sarah Lee"},
			PublishedAt: time.Date(2025, 3, 16, 9, 0, 0, 0, time.UTC),
			CreatedAt:   time.Date(2025, 3, 16, 9, 0, 0, 0, time.UTC),
			ReadTime:    "5 min read",
			Views:       890,
			Comments:    32,
			Likes:       150,
			Category:    "3",
		},
	}
}

func sampleCategories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Technology", Slug: "technology"},
		{ID: "2", Name: "Politics", Slug: "politics"},
		{ID: "3", Name: "Health", Slug: "health"},
	}
}
