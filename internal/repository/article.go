package repository

import (
	"context"
	"errors"

	"github.com/adevaproject/webapppro/internal/model"
)

// ErrDuplicateSlug is returned by Create when the slug unique constraint
// is violated. It is derived from the driver's structured error code, not
// from message text, so callers can rely on errors.Is.
var ErrDuplicateSlug = errors.New("slug already exists")

// ArticleRepository defines data access for articles. Implementations hold
// persistence concerns only; publish policy and merging live in the service
// layer. Missing rows are reported as sql.ErrNoRows.
type ArticleRepository interface {
	// Create inserts a new article row and returns the stored record,
	// including the database-assigned id. A slug collision yields
	// ErrDuplicateSlug; the insert itself is the uniqueness check, so
	// concurrent creators of the same slug cannot both succeed.
	Create(ctx context.Context, a *model.Article) (*model.Article, error)

	// FindBySlug returns an article by slug regardless of status.
	FindBySlug(ctx context.Context, slug string) (*model.Article, error)

	// FindPublishedBySlug returns an article by slug only when its status
	// is published; a draft with a matching slug is reported as missing.
	FindPublishedBySlug(ctx context.Context, slug string) (*model.Article, error)

	// ListPublished returns a page of published articles ordered by
	// published_at descending plus the total count for the same filter.
	ListPublished(ctx context.Context, q ArticleQuery) (*PageResult[model.Article], error)

	// Update writes all mutable columns of the row identified by a.Slug.
	// Zero rows affected is reported as sql.ErrNoRows.
	Update(ctx context.Context, a *model.Article) error

	// Delete removes an article by slug. Zero rows affected is reported
	// as sql.ErrNoRows.
	Delete(ctx context.Context, slug string) error
}

// ArticleQuery holds the filter and limit/offset pagination parameters for
// the published listing.
type ArticleQuery struct {
	Category *string
	Limit    int
	Offset   int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
