package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

var (
	ErrNotFound     = errors.New("article not found")
	ErrUnauthorized = errors.New("not authorized")
)

// Client talks to the State backend. The bearer token is handed in at
// construction time; an empty token means the viewer is unauthenticated
// and only the public endpoints are usable.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		client:  &http.Client{},
	}
}

// Authenticated reports whether the client carries a bearer token.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// ListCategories fetches the category list.
func (c *Client) ListCategories(ctx context.Context) ([]RawCategory, error) {
	var categories []RawCategory
	if err := c.getJSON(ctx, "/def/category/", &categories); err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}
	return categories, nil
}

// ListArticles fetches the full article list.
func (c *Client) ListArticles(ctx context.Context) ([]RawArticle, error) {
	var articles []RawArticle
	if err := c.getJSON(ctx, "/def/article/", &articles); err != nil {
		return nil, fmt.Errorf("fetching articles: %w", err)
	}
	return articles, nil
}

// GetArticle fetches a single article by id. A 404 is reported as
// ErrNotFound so the UI can show its not-found state.
func (c *Client) GetArticle(ctx context.Context, id string) (RawArticle, error) {
	var article RawArticle
	if err := c.getJSON(ctx, fmt.Sprintf("/def/article/%s/", id), &article); err != nil {
		return nil, fmt.Errorf("fetching article %s: %w", id, err)
	}
	return article, nil
}

// ListUsers fetches the user directory used for avatar enrichment.
// Requires a token.
func (c *Client) ListUsers(ctx context.Context) ([]RawUser, error) {
	var users []RawUser
	if err := c.getJSON(ctx, "/auth/users/", &users); err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}
	return users, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	payload := map[string]string{"username": username, "password": password}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling login payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/jwt/create/", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending login request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var result struct {
		Access string `json:"access"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding login response: %w", err)
	}
	if result.Access == "" {
		return "", errors.New("login response carried no access token")
	}

	return result.Access, nil
}

// Register creates a new account. The backend takes this as multipart
// form data, with the profile image as an optional file part.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"username":   reg.Username,
		"email":      reg.Email,
		"password":   reg.Password,
		"first_name": reg.FirstName,
		"last_name":  reg.LastName,
		"bio":        reg.Bio,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("writing form field %s: %w", name, err)
		}
	}
	if reg.ProfileImage != nil {
		part, err := w.CreateFormFile("profile_image", reg.ProfileImageName)
		if err != nil {
			return fmt.Errorf("creating image part: %w", err)
		}
		if _, err := io.Copy(part, reg.ProfileImage); err != nil {
			return fmt.Errorf("copying image: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/def/register/", &buf)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending register request: %w", err)
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

// CurrentUser resolves the identity behind the stored token. The backend
// expects the token in the request body rather than a header.
func (c *Client) CurrentUser(ctx context.Context) (RawUser, error) {
	payload := map[string]string{"token": c.token}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling token payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/def/user-info/", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending user-info request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, ErrUnauthorized
	}

	var user RawUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decoding user-info response: %w", err)
	}

	return user, nil
}

// CreateArticle publishes a new article as multipart form data.
// Requires a token.
func (c *Client) CreateArticle(ctx context.Context, draft ArticleDraft) (RawArticle, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("title", draft.Title); err != nil {
		return nil, fmt.Errorf("writing title field: %w", err)
	}
	if err := w.WriteField("content", draft.Content); err != nil {
		return nil, fmt.Errorf("writing content field: %w", err)
	}
	if draft.Category != "" {
		if err := w.WriteField("category", draft.Category); err != nil {
			return nil, fmt.Errorf("writing category field: %w", err)
		}
	}
	if draft.Image != nil {
		part, err := w.CreateFormFile("image", draft.ImageName)
		if err != nil {
			return nil, fmt.Errorf("creating image part: %w", err)
		}
		if _, err := io.Copy(part, draft.Image); err != nil {
			return nil, fmt.Errorf("copying image: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/def/article/", &buf)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending create request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var article RawArticle
	if err := json.NewDecoder(resp.Body).Decode(&article); err != nil {
		return nil, fmt.Errorf("decoding created article: %w", err)
	}

	return article, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if err := checkStatus(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
}

// checkStatus turns a non-2xx response into an error, preferring the
// backend's own "detail" message when it sends one.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
		return fmt.Errorf("backend error (status %d): %s", resp.StatusCode, detail.Detail)
	}
	return fmt.Errorf("backend error (status %d): %s", resp.StatusCode, string(body))
}
