package models

import "time"

// Author is resolved once at normalization time and embedded into the
// Article it belongs to. Name is never empty.
type Author struct {
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// Article is the normalized, display-ready representation of a backend
// article record. Every field is defaulted during normalization and none
// of them are mutated afterwards.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Author      Author    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	ReadTime    string    `json:"read_time"`
	Image       string    `json:"image,omitempty"`
	Views       int       `json:"views"`
	Comments    int       `json:"comments"`
	Likes       int       `json:"likes"`
	Category    string    `json:"category,omitempty"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// User is the identity record for the signed-in viewer. Raw user records
// used during avatar lookup never leave internal/api.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}
