package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"statereadr/internal/api"
)

func TestResolveAuthorName(t *testing.T) {
	tests := []struct {
		name     string
		raw      api.RawArticle
		expected string
	}{
		{
			name:     "no author object at all",
			raw:      api.RawArticle{"title": "hello"},
			expected: "Unknown Author",
		},
		{
			name: "first and last name take priority over username",
			raw: api.RawArticle{
				"author": map[string]any{
					"first_name": "Ada",
					"last_name":  "Lovelace",
					"username":   "ada42",
				},
			},
			expected: "Ada Lovelace",
		},
		{
			name: "camelCase first and last name",
			raw: api.RawArticle{
				"user": map[string]any{
					"firstName": "Grace",
					"lastName":  "Hopper",
				},
			},
			expected: "Grace Hopper",
		},
		{
			name: "explicit name field",
			raw: api.RawArticle{
				"author": map[string]any{"name": "Alan Turing", "username": "alan"},
			},
			expected: "Alan Turing",
		},
		{
			name: "username when no name fields",
			raw: api.RawArticle{
				"created_by": map[string]any{"username": "dijkstra"},
			},
			expected: "dijkstra",
		},
		{
			name: "email local part",
			raw: api.RawArticle{
				"owner": map[string]any{"email": "edsger@example.com"},
			},
			expected: "edsger",
		},
		{
			name: "article-level fallback field",
			raw: api.RawArticle{
				"author_name": "Barbara Liskov",
			},
			expected: "Barbara Liskov",
		},
		{
			name: "null fields are skipped",
			raw: api.RawArticle{
				"author":    map[string]any{"name": nil, "username": nil},
				"user_name": "Tony Hoare",
			},
			expected: "Tony Hoare",
		},
		{
			name: "first name alone is a candidate, not a pair",
			raw: api.RawArticle{
				"author": map[string]any{"first_name": "Ada"},
			},
			expected: "Ada",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveAuthorName(tt.raw))
		})
	}
}

func TestResolveAvatar(t *testing.T) {
	const assetBase = "https://assets.example/"

	users := []api.RawUser{
		{"name": "Someone Else", "profile_image": "other.png"},
		{"first_name": "Ada", "last_name": "Lovelace", "profile_image": "ada.png"},
		{"username": "hopper", "avatar": "https://cdn.example/hopper.png"},
		{"email": "turing@example.com"},
	}

	tests := []struct {
		name       string
		authorName string
		expected   string
	}{
		{
			name:       "relative image path gets the asset base",
			authorName: "Ada Lovelace",
			expected:   "https://assets.example/ada.png",
		},
		{
			name:       "match is case and whitespace insensitive",
			authorName: "  ADA   lovelace ",
			expected:   "https://assets.example/ada.png",
		},
		{
			name:       "absolute URL passes through unchanged",
			authorName: "hopper",
			expected:   "https://cdn.example/hopper.png",
		},
		{
			name:       "match without any image field",
			authorName: "turing",
			expected:   "",
		},
		{
			name:       "no matching user",
			authorName: "Nobody Here",
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveAvatar(tt.authorName, users, assetBase))
		})
	}

	t.Run("nil user directory yields no avatar", func(t *testing.T) {
		assert.Empty(t, resolveAvatar("Ada Lovelace", nil, assetBase))
	})
}

func TestResolveAssetURL(t *testing.T) {
	const assetBase = "https://assets.example/"

	assert.Equal(t, "https://assets.example/img/cover.jpg", ResolveAssetURL("img/cover.jpg", assetBase))
	assert.Equal(t, "https://cdn.example/x.png", ResolveAssetURL("https://cdn.example/x.png", assetBase))
	assert.Equal(t, "http://cdn.example/x.png", ResolveAssetURL("http://cdn.example/x.png", assetBase))
	assert.Empty(t, ResolveAssetURL("", assetBase))
}

func TestReadTime(t *testing.T) {
	assert.Equal(t, "1 min read", ReadTime(0, 200))
	assert.Equal(t, "1 min read", ReadTime(1, 200))
	assert.Equal(t, "1 min read", ReadTime(200, 200))
	assert.Equal(t, "2 min read", ReadTime(201, 200))
	assert.Equal(t, "5 min read", ReadTime(1000, 200))
	assert.Equal(t, "1 min read", ReadTime(1000, 1000))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "tech-corner", Slug("Tech Corner"))
	assert.Equal(t, "a-b-c", Slug("  A   B\tC "))
	assert.Equal(t, "", Slug(""))
}

func TestCategory(t *testing.T) {
	tests := []struct {
		name     string
		raw      api.RawCategory
		expected string
		slug     string
	}{
		{
			name:     "derives slug from name",
			raw:      api.RawCategory{"id": "7", "name": "Tech Corner"},
			expected: "Tech Corner",
			slug:     "tech-corner",
		},
		{
			name:     "title stands in for name",
			raw:      api.RawCategory{"id": "8", "title": "Politics"},
			expected: "Politics",
			slug:     "politics",
		},
		{
			name:     "explicit slug wins",
			raw:      api.RawCategory{"id": "9", "name": "Health", "slug": "wellness"},
			expected: "Health",
			slug:     "wellness",
		},
		{
			name:     "no name at all",
			raw:      api.RawCategory{"id": "10"},
			expected: "Unnamed Category",
			slug:     "unnamed-category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := Category(tt.raw)
			assert.Equal(t, tt.expected, cat.Name)
			assert.Equal(t, tt.slug, cat.Slug)
		})
	}

	t.Run("missing id gets minted", func(t *testing.T) {
		cat := Category(api.RawCategory{"name": "X"})
		assert.NotEmpty(t, cat.ID)
	})
}

func TestArticleDefaults(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	opts := Options{
		AssetBase: "https://assets.example/",
		Now:       func() time.Time { return now },
	}

	t.Run("empty record degrades to defaults", func(t *testing.T) {
		a := Article(api.RawArticle{}, nil, opts)

		assert.NotEmpty(t, a.ID)
		assert.Equal(t, "Untitled Article", a.Title)
		assert.Equal(t, "Unknown Author", a.Author.Name)
		assert.Empty(t, a.Author.Avatar)
		assert.Equal(t, now, a.PublishedAt)
		assert.Equal(t, now, a.CreatedAt)
		assert.Equal(t, "1 min read", a.ReadTime)
		assert.Empty(t, a.Image)
		assert.Zero(t, a.Views)
		assert.Zero(t, a.Comments)
		assert.Zero(t, a.Likes)
		assert.Empty(t, a.Category)
	})

	t.Run("published date falls back to created date", func(t *testing.T) {
		a := Article(api.RawArticle{"created_at": "2025-03-15T10:30:00Z"}, nil, opts)
		want := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
		assert.Equal(t, want, a.CreatedAt)
		assert.Equal(t, want, a.PublishedAt)
	})

	t.Run("explicit published date wins", func(t *testing.T) {
		a := Article(api.RawArticle{
			"publishedAt": "2025-03-16T09:00:00Z",
			"created_at":  "2025-03-15T10:30:00Z",
		}, nil, opts)
		assert.Equal(t, time.Date(2025, 3, 16, 9, 0, 0, 0, time.UTC), a.PublishedAt)
		assert.Equal(t, time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC), a.CreatedAt)
	})

	t.Run("upstream read time is used verbatim", func(t *testing.T) {
		a := Article(api.RawArticle{"readTime": "8 min read", "content": "x"}, nil, opts)
		assert.Equal(t, "8 min read", a.ReadTime)
	})

	t.Run("read time computed from content plain text", func(t *testing.T) {
		body := make([]byte, 450)
		for i := range body {
			body[i] = 'a'
		}
		a := Article(api.RawArticle{"content": string(body)}, nil, Options{ReadTimeDivisor: 200, Now: opts.Now})
		assert.Equal(t, "3 min read", a.ReadTime)
	})

	t.Run("numeric id and counters", func(t *testing.T) {
		a := Article(api.RawArticle{
			"id":       float64(42),
			"views":    float64(1250),
			"likes":    float64(230),
			"comments": float64(48),
		}, nil, opts)
		assert.Equal(t, "42", a.ID)
		assert.Equal(t, 1250, a.Views)
		assert.Equal(t, 230, a.Likes)
		assert.Equal(t, 48, a.Comments)
	})

	t.Run("relative image is resolved against the asset base", func(t *testing.T) {
		a := Article(api.RawArticle{"image": "covers/ai.jpg"}, nil, opts)
		assert.Equal(t, "https://assets.example/covers/ai.jpg", a.Image)
	})

	t.Run("author resolution is isolated per record", func(t *testing.T) {
		raws := []api.RawArticle{
			{"author": map[string]any{"name": "Ada Lovelace"}},
			{"title": "orphaned"},
		}
		articles := Articles(raws, nil, opts)
		assert.Equal(t, "Ada Lovelace", articles[0].Author.Name)
		assert.Equal(t, "Unknown Author", articles[1].Author.Name)
	})
}
