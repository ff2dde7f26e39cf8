package models

import (
	"time"
)

// Article represents a blog article
type Article struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Author    string    `json:"author" db:"author"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ArticleSummary is the list view of an article. Description holds the
// first DescriptionLength characters of the content; the full content is omitted.
type ArticleSummary struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Author      string    `json:"author" db:"author"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// DescriptionLength is the number of content characters exposed in the list view
const DescriptionLength = 200

// ArticleInput is the request body for creating or updating an article.
// Length limits live in the validate tags and are counted in characters.
type ArticleInput struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author" validate:"required,max=100"`
}
