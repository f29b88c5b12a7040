package api

import "io"

// The backend returns article, category and user records in several
// inconsistent shapes depending on schema version. Raw payloads are kept
// as decoded JSON objects so that no field access can fail structurally;
// internal/normalize maps them onto the strict view-model types.
type (
	RawArticle  map[string]any
	RawCategory map[string]any
	RawUser     map[string]any
)

// ArticleDraft is the multipart payload for creating an article.
// Category and Image are optional.
type ArticleDraft struct {
	Title    string
	Content  string
	Category string

	ImageName string
	Image     io.Reader
}

// Registration is the multipart payload for creating an account.
type Registration struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Bio       string

	ProfileImageName string
	ProfileImage     io.Reader
}
