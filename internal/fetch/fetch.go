// Package fetch gathers everything one screen needs from the backend,
// in order, and degrades gracefully: primary resources fall back to the
// built-in sample set with a user-visible message, while the user
// directory is enrichment only and its failure is swallowed.
package fetch

import (
	"context"
	"errors"
	"fmt"

	"statereadr/internal/api"
	"statereadr/internal/config"
	"statereadr/internal/normalize"
	"statereadr/internal/session"
	"statereadr/pkg/logger"
	"statereadr/pkg/models"
)

// ErrLoadFailed is the message shown when a primary fetch fails.
const ErrLoadFailed = "Failed to load data. Please try again later."

// ForYouSlug is the pseudo-category tab showing every article.
const ForYouSlug = "for-you"

// Orchestrator issues the fetch sequence for each screen. The stored
// credential is read once at the start of every cycle, never mid-cycle.
type Orchestrator struct {
	cfg   config.APIConfig
	store *session.Store
}

func New(cfg config.APIConfig, store *session.Store) *Orchestrator {
	return &Orchestrator{cfg: cfg, store: store}
}

// Dashboard is one fetch cycle's worth of dashboard data. Err carries
// the user-visible message on hard failure; Articles and Categories are
// then the sample set so the screen is never empty.
type Dashboard struct {
	Articles   []models.Article
	Categories []models.Category
	Err        string
}

// LoadDashboard runs the dashboard sequence: categories, then articles,
// then the user directory when a credential is present.
func (o *Orchestrator) LoadDashboard(ctx context.Context) *Dashboard {
	client := o.client()

	rawCategories, err := client.ListCategories(ctx)
	if err != nil {
		logger.Error("dashboard: category fetch failed", err)
		return sampleDashboard()
	}

	rawArticles, err := client.ListArticles(ctx)
	if err != nil {
		logger.Error("dashboard: article fetch failed", err)
		return sampleDashboard()
	}

	users := o.fetchUsers(ctx, client)

	return &Dashboard{
		Articles:   normalize.Articles(rawArticles, users, o.normalizeOptions()),
		Categories: normalize.Categories(rawCategories),
	}
}

// LoadArticle runs the detail sequence: the article itself, then the
// credential-gated user directory. api.ErrNotFound passes through so the
// UI can show its not-found state.
func (o *Orchestrator) LoadArticle(ctx context.Context, id string) (models.Article, error) {
	client := o.client()

	raw, err := client.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return models.Article{}, err
		}
		return models.Article{}, fmt.Errorf("loading article: %w", err)
	}

	users := o.fetchUsers(ctx, client)

	return normalize.Article(raw, users, o.normalizeOptions()), nil
}

// CurrentUser resolves the viewer behind the stored credential. A failed
// lookup discards the credential and reads as "not logged in".
func (o *Orchestrator) CurrentUser(ctx context.Context) (models.User, bool) {
	client := o.client()
	if !client.Authenticated() {
		return models.User{}, false
	}

	raw, err := client.CurrentUser(ctx)
	if err != nil {
		logger.Warn("identity lookup failed, discarding credential", err)
		if derr := o.store.DeleteToken(); derr != nil {
			logger.Error("discarding credential", derr)
		}
		return models.User{}, false
	}

	return normalize.User(raw, o.cfg.AssetBase), true
}

// Login exchanges credentials for a token and persists it.
func (o *Orchestrator) Login(ctx context.Context, username, password string) error {
	client := api.NewClient(o.cfg.BaseURL, "")
	token, err := client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if err := o.store.SetToken(token); err != nil {
		return fmt.Errorf("persisting credential: %w", err)
	}
	return nil
}

// Register creates an account. The new user still has to log in.
func (o *Orchestrator) Register(ctx context.Context, reg api.Registration) error {
	client := api.NewClient(o.cfg.BaseURL, "")
	return client.Register(ctx, reg)
}

// Logout removes the stored credential.
func (o *Orchestrator) Logout() error {
	return o.store.DeleteToken()
}

// Publish creates an article and returns its normalized view-model.
func (o *Orchestrator) Publish(ctx context.Context, draft api.ArticleDraft) (models.Article, error) {
	client := o.client()
	raw, err := client.CreateArticle(ctx, draft)
	if err != nil {
		return models.Article{}, err
	}
	return normalize.Article(raw, nil, o.normalizeOptions()), nil
}

// Authenticated reports whether a credential is currently stored.
func (o *Orchestrator) Authenticated() bool {
	_, err := o.store.Token()
	return err == nil
}

// Filter returns the articles for one category tab. The for-you tab
// shows everything; otherwise articles match by the category id behind
// the slug, and articles referencing unknown categories drop out.
func (d *Dashboard) Filter(slug string) []models.Article {
	if slug == "" || slug == ForYouSlug {
		return d.Articles
	}

	var categoryID string
	for _, c := range d.Categories {
		if c.Slug == slug {
			categoryID = c.ID
			break
		}
	}
	if categoryID == "" {
		return nil
	}

	var filtered []models.Article
	for _, a := range d.Articles {
		if a.Category == categoryID {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// client builds the API client for one fetch cycle, reading the stored
// credential up front.
func (o *Orchestrator) client() *api.Client {
	token, err := o.store.Token()
	if err != nil {
		if !errors.Is(err, session.ErrNoToken) {
			logger.Warn("reading stored credential", err)
		}
		token = ""
	}
	return api.NewClient(o.cfg.BaseURL, token)
}

// fetchUsers is the soft half of the sequence: attempted only with a
// credential, and any failure degrades to "no users" instead of
// propagating, since avatar enrichment is a nice-to-have.
func (o *Orchestrator) fetchUsers(ctx context.Context, client *api.Client) []api.RawUser {
	if !client.Authenticated() {
		return nil
	}
	users, err := client.ListUsers(ctx)
	if err != nil {
		logger.Warn("user directory fetch failed, skipping avatars", err)
		return nil
	}
	return users
}

func (o *Orchestrator) normalizeOptions() normalize.Options {
	return normalize.Options{
		AssetBase:       o.cfg.AssetBase,
		ReadTimeDivisor: o.cfg.ReadTimeDivisor,
	}
}
