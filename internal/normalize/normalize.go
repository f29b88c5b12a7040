// Package normalize maps the backend's heterogeneous raw payloads onto
// the canonical view-model in pkg/models. It is pure transformation:
// every missing or malformed field degrades to a documented default, and
// no input can make it fail.
package normalize

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"statereadr/internal/api"
	"statereadr/internal/content"
	"statereadr/pkg/models"
)

const unknownAuthor = "Unknown Author"

// Options carries the constants normalization depends on. Zero values
// fall back to the defaults the product ships with.
type Options struct {
	// AssetBase is the URL prefix that resolves relative media paths.
	AssetBase string
	// ReadTimeDivisor is the characters-per-minute divisor for computed
	// read times.
	ReadTimeDivisor int
	// Now supplies the current time for timestamp fallbacks. Tests
	// override it.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.ReadTimeDivisor <= 0 {
		o.ReadTimeDivisor = 200
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Articles normalizes a full article listing. The user directory may be
// nil when it was not fetched; avatars are then left empty.
func Articles(raws []api.RawArticle, users []api.RawUser, opts Options) []models.Article {
	articles := make([]models.Article, 0, len(raws))
	for _, raw := range raws {
		articles = append(articles, Article(raw, users, opts))
	}
	return articles
}

// Article builds the view-model for one raw article record.
func Article(raw api.RawArticle, users []api.RawUser, opts Options) models.Article {
	opts = opts.withDefaults()

	name := resolveAuthorName(raw)
	authorObj := objectField(raw, "author", "user", "created_by", "owner")

	body := stringField(raw, "content")
	plain := content.PlainText(body)

	createdAt := parseTime(stringField(raw, "created_at"), opts.Now)
	publishedAt := createdAt
	if ts := stringField(raw, "publishedAt", "published_at"); ts != "" {
		publishedAt = parseTime(ts, opts.Now)
	}

	return models.Article{
		ID:          resolveID(raw),
		Title:       titleOrDefault(raw),
		Content:     body,
		Author: models.Author{
			Name:     name,
			Username: resolveAuthorUsername(authorObj),
			Avatar:   resolveAvatar(name, users, opts.AssetBase),
		},
		PublishedAt: publishedAt,
		CreatedAt:   createdAt,
		ReadTime:    resolveReadTime(raw, plain, opts.ReadTimeDivisor),
		Image:       ResolveAssetURL(stringField(raw, "image"), opts.AssetBase),
		Views:       intField(raw, "views"),
		Comments:    intField(raw, "comments"),
		Likes:       intField(raw, "likes"),
		Category:    stringField(raw, "category"),
	}
}

// Categories normalizes the category listing.
func Categories(raws []api.RawCategory) []models.Category {
	categories := make([]models.Category, 0, len(raws))
	for _, raw := range raws {
		categories = append(categories, Category(raw))
	}
	return categories
}

// Category fills in a category's name and slug when the backend omits
// them. Some schema versions name the category via "title".
func Category(raw api.RawCategory) models.Category {
	name := stringField(raw, "name", "title")
	if name == "" {
		name = "Unnamed Category"
	}
	slug := stringField(raw, "slug")
	if slug == "" {
		slug = Slug(name)
	}
	return models.Category{
		ID:   resolveID(raw),
		Name: name,
		Slug: slug,
	}
}

// User normalizes the signed-in viewer's identity record.
func User(raw api.RawUser, assetBase string) models.User {
	return models.User{
		ID:       resolveID(raw),
		Name:     userDisplayName(raw),
		Username: stringField(raw, "username"),
		Email:    stringField(raw, "email"),
		Avatar:   ResolveAssetURL(stringField(raw, "profile_image", "avatar", "profile_picture"), assetBase),
	}
}

// resolveAuthorName applies the author name resolution order: an
// explicit first/last name pair wins; otherwise the first usable
// candidate from name fields, username, email local part, then the
// article-level fallback fields; else "Unknown Author".
func resolveAuthorName(raw api.RawArticle) string {
	authorObj := objectField(raw, "author", "user", "created_by", "owner")

	if name := joinedName(authorObj, "first_name", "last_name"); name != "" {
		return name
	}
	if name := joinedName(authorObj, "firstName", "lastName"); name != "" {
		return name
	}

	candidates := []string{
		stringField(authorObj, "name"),
		stringField(authorObj, "first_name"),
		stringField(authorObj, "last_name"),
		stringField(authorObj, "firstName"),
		stringField(authorObj, "lastName"),
		stringField(authorObj, "full_name"),
		stringField(authorObj, "fullName"),
		stringField(authorObj, "username"),
		emailLocal(stringField(authorObj, "email")),
		stringField(raw, "author_name"),
		stringField(raw, "user_name"),
		stringField(raw, "created_by_name"),
		stringField(raw, "owner_name"),
	}
	for _, candidate := range candidates {
		if candidate != "" {
			return candidate
		}
	}
	return unknownAuthor
}

func resolveAuthorUsername(authorObj map[string]any) string {
	if username := stringField(authorObj, "username"); username != "" {
		return username
	}
	return emailLocal(stringField(authorObj, "email"))
}

// resolveAvatar scans the user directory for a record whose display name
// normalizes to the same string as the resolved author name, then picks
// its first image field. A linear scan is fine: both collections are
// tens to low hundreds of records and live only for one render.
func resolveAvatar(authorName string, users []api.RawUser, assetBase string) string {
	want := normalizeName(authorName)
	for _, user := range users {
		if normalizeName(userDisplayName(user)) != want {
			continue
		}
		return ResolveAssetURL(stringField(user, "profile_image", "avatar", "profile_picture"), assetBase)
	}
	return ""
}

// userDisplayName resolves a user record's display name with the same
// preference order the author resolver uses.
func userDisplayName(user api.RawUser) string {
	if name := stringField(user, "name"); name != "" {
		return name
	}
	if name := joinedName(user, "first_name", "last_name"); name != "" {
		return name
	}
	if username := stringField(user, "username"); username != "" {
		return username
	}
	return emailLocal(stringField(user, "email"))
}

// ResolveAssetURL turns a relative asset path into an absolute URL using
// the fixed asset-host base. Values already carrying a URL scheme pass
// through unchanged; empty input resolves to empty.
func ResolveAssetURL(path, assetBase string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") {
		return path
	}
	return assetBase + path
}

// ReadTime formats the computed reading time for a text of the given
// length: max(1, ceil(chars/divisor)) minutes.
func ReadTime(chars, divisor int) string {
	if divisor <= 0 {
		divisor = 200
	}
	minutes := int(math.Ceil(float64(chars) / float64(divisor)))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// Slug derives a URL-safe identifier from a display name: lowercased,
// whitespace runs collapsed to single hyphens.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func resolveReadTime(raw api.RawArticle, plain string, divisor int) string {
	if rt := stringField(raw, "readTime", "read_time"); rt != "" {
		return rt
	}
	return ReadTime(len([]rune(plain)), divisor)
}

func titleOrDefault(raw api.RawArticle) string {
	if title := stringField(raw, "title"); title != "" {
		return title
	}
	return "Untitled Article"
}

// resolveID keeps the backend's identifier when present and mints one
// otherwise, so list rendering always has a stable key for the cycle.
func resolveID(m map[string]any) string {
	if id := stringField(m, "id"); id != "" {
		return id
	}
	return uuid.NewString()
}

func joinedName(m map[string]any, firstKey, lastKey string) string {
	first := stringField(m, firstKey)
	last := stringField(m, lastKey)
	if first == "" || last == "" {
		return ""
	}
	return strings.TrimSpace(first + " " + last)
}

// normalizeName lowercases and collapses internal whitespace so that
// names differing only in spacing or case still match.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// parseTime accepts the timestamp layouts the backend has been seen to
// produce. Anything unparseable falls through to the current time, per
// the published-date fallback chain.
func parseTime(s string, now func() time.Time) time.Time {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return now()
}
