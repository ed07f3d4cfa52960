package model

import "time"

// Article is the single content entity served by the API.
// It is a pure domain model with no database-specific dependencies or tags.
// Optional columns are pointer-typed so "absent" survives the round trip
// between JSON, the service layer, and Postgres NULLs.
type Article struct {
	ID              int64      `json:"id"`
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Excerpt         *string    `json:"excerpt,omitempty"`
	Content         string     `json:"content,omitempty"`
	FeaturedImage   *string    `json:"featuredImage,omitempty"`
	Category        *string    `json:"category,omitempty"`
	Author          string     `json:"author"`
	Status          string     `json:"status"`
	MetaTitle       *string    `json:"metaTitle,omitempty"`
	MetaDescription *string    `json:"metaDescription,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty"`
}

// Status values with defined behavior. StatusPublished makes an article
// publicly visible; the comparison is case-insensitive and any other stored
// value is treated as a draft by the read path.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// DefaultAuthor is assigned when a create request carries no author.
const DefaultAuthor = "Admin"
