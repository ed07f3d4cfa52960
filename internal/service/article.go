package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/adevaproject/webapppro/internal/model"
	"github.com/adevaproject/webapppro/internal/repository"
)

var (
	// ErrInvalidInput marks client-side validation failures (HTTP 400).
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when no article matches the slug (HTTP 404).
	ErrNotFound = errors.New("article not found")
	// ErrSlugTaken is returned when a create collides on slug (HTTP 409).
	ErrSlugTaken = errors.New("slug already in use")
)

// CreateArticleInput carries the fields accepted at creation. Optional
// fields are pointers so absence and empty string stay distinguishable.
// A caller-supplied excerpt is deliberately not accepted; the excerpt is
// always derived from content.
type CreateArticleInput struct {
	Slug            string  `json:"slug" validate:"required"`
	Title           string  `json:"title" validate:"required"`
	Content         string  `json:"content" validate:"required"`
	FeaturedImage   *string `json:"featuredImage"`
	Category        *string `json:"category"`
	Author          *string `json:"author"`
	Status          *string `json:"status"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
}

// UpdateArticleInput carries a partial update. nil means "leave untouched";
// a non-nil pointer overwrites, even with an empty value. The slug is the
// row identity and is not updatable.
type UpdateArticleInput struct {
	Title           *string `json:"title"`
	Content         *string `json:"content"`
	FeaturedImage   *string `json:"featuredImage"`
	Category        *string `json:"category"`
	Author          *string `json:"author"`
	Status          *string `json:"status"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
}

func (in UpdateArticleInput) empty() bool {
	return in.Title == nil &&
		in.Content == nil &&
		in.FeaturedImage == nil &&
		in.Category == nil &&
		in.Author == nil &&
		in.Status == nil &&
		in.MetaTitle == nil &&
		in.MetaDescription == nil
}

// ListArticlesQuery holds the public listing parameters.
type ListArticlesQuery struct {
	Page     int
	Size     int
	Category *string
}

// Pagination is the metadata returned alongside a listing page.
type Pagination struct {
	Page       int     `json:"page"`
	Size       int     `json:"size"`
	Category   *string `json:"category"`
	TotalItems int     `json:"totalItems"`
	TotalPages int     `json:"totalPages"`
}

// ArticleListResult is the service-level DTO for a paginated listing.
type ArticleListResult struct {
	Items      []model.Article
	Pagination Pagination
}

// ArticleService defines the article use cases.
type ArticleService interface {
	// Create stores a new article. Slug, title and content are required;
	// excerpt and publish state are derived, never caller-controlled.
	Create(ctx context.Context, in CreateArticleInput) (*model.Article, error)

	// Update applies a partial update to the article identified by slug.
	// A request with no recognized field fails instead of silently
	// succeeding as a no-op.
	Update(ctx context.Context, slug string, in UpdateArticleInput) (*model.Article, error)

	// Delete removes an article by slug.
	Delete(ctx context.Context, slug string) error

	// Get returns a single published article with full content. Drafts are
	// invisible here even when the slug exists.
	Get(ctx context.Context, slug string) (*model.Article, error)

	// List returns a page of published articles, newest publish first.
	List(ctx context.Context, q ListArticlesQuery) (*ArticleListResult, error)
}

type articleService struct {
	repo repository.ArticleRepository
	now  func() time.Time
}

// NewArticleService constructs the article service over the given repository.
func NewArticleService(repo repository.ArticleRepository) ArticleService {
	return &articleService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *articleService) Create(ctx context.Context, in CreateArticleInput) (*model.Article, error) {
	if in.Slug == "" || in.Title == "" || in.Content == "" {
		return nil, fmt.Errorf("%w: slug, title and content are required", ErrInvalidInput)
	}

	now := s.now()
	status, publishedAt := resolvePublishState("", in.Status, nil, now)

	author := model.DefaultAuthor
	if in.Author != nil && *in.Author != "" {
		author = *in.Author
	}

	a := &model.Article{
		Slug:            in.Slug,
		Title:           in.Title,
		Excerpt:         deriveExcerpt(in.Content),
		Content:         in.Content,
		FeaturedImage:   in.FeaturedImage,
		Category:        in.Category,
		Author:          author,
		Status:          status,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
		PublishedAt:     publishedAt,
	}

	stored, err := s.repo.Create(ctx, a)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, fmt.Errorf("%w: %s", ErrSlugTaken, in.Slug)
		}
		return nil, fmt.Errorf("create article: %w", err)
	}
	return stored, nil
}

func (s *articleService) Update(ctx context.Context, slug string, in UpdateArticleInput) (*model.Article, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	if in.empty() {
		return nil, fmt.Errorf("%w: no updatable fields supplied", ErrInvalidInput)
	}

	// Read-modify-write: the stored status and publish timestamp are the
	// baseline for the publish policy and the partial merge.
	existing, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
		}
		return nil, fmt.Errorf("read article: %w", err)
	}

	now := s.now()
	existing.Status, existing.PublishedAt = resolvePublishState(existing.Status, in.Status, existing.PublishedAt, now)

	if in.Content != nil {
		existing.Content = *in.Content
		existing.Excerpt = deriveExcerpt(*in.Content)
	}
	if in.Title != nil {
		existing.Title = *in.Title
	}
	if in.Author != nil {
		existing.Author = *in.Author
	}
	if in.FeaturedImage != nil {
		existing.FeaturedImage = in.FeaturedImage
	}
	if in.Category != nil {
		existing.Category = in.Category
	}
	if in.MetaTitle != nil {
		existing.MetaTitle = in.MetaTitle
	}
	if in.MetaDescription != nil {
		existing.MetaDescription = in.MetaDescription
	}
	existing.UpdatedAt = now

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Deleted between our read and this write.
			return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
		}
		return nil, fmt.Errorf("update article: %w", err)
	}
	return existing, nil
}

func (s *articleService) Delete(ctx context.Context, slug string) error {
	if slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	if err := s.repo.Delete(ctx, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", ErrNotFound, slug)
		}
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

func (s *articleService) Get(ctx context.Context, slug string) (*model.Article, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	a, err := s.repo.FindPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
		}
		return nil, fmt.Errorf("read article: %w", err)
	}
	return a, nil
}

func (s *articleService) List(ctx context.Context, q ListArticlesQuery) (*ArticleListResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Size < 1 {
		q.Size = 10
	}

	res, err := s.repo.ListPublished(ctx, repository.ArticleQuery{
		Category: q.Category,
		Limit:    q.Size,
		Offset:   (q.Page - 1) * q.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return &ArticleListResult{
		Items: res.Items,
		Pagination: Pagination{
			Page:       q.Page,
			Size:       q.Size,
			Category:   q.Category,
			TotalItems: res.Total,
			TotalPages: (res.Total + q.Size - 1) / q.Size,
		},
	}, nil
}
