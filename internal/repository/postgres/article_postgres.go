package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/adevaproject/webapppro/internal/model"
	"github.com/adevaproject/webapppro/internal/repository"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

const articleColumns = `id, slug, title, excerpt, content, featured_image, category, author, status, meta_title, meta_description, created_at, updated_at, published_at`

// ArticlePostgres is a PostgreSQL implementation of repository.ArticleRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ArticlePostgres struct {
	db *sql.DB
}

// NewArticlePostgres creates a new ArticlePostgres repository.
func NewArticlePostgres(db *sql.DB) *ArticlePostgres {
	return &ArticlePostgres{db: db}
}

var _ repository.ArticleRepository = (*ArticlePostgres)(nil)

func scanArticle(row interface{ Scan(...any) error }) (*model.Article, error) {
	var a model.Article
	if err := row.Scan(
		&a.ID,
		&a.Slug,
		&a.Title,
		&a.Excerpt,
		&a.Content,
		&a.FeaturedImage,
		&a.Category,
		&a.Author,
		&a.Status,
		&a.MetaTitle,
		&a.MetaDescription,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.PublishedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// isUniqueViolation reports whether err is a structured unique-constraint
// error from the pgx driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// Create inserts a new article row and returns the stored record.
func (r *ArticlePostgres) Create(ctx context.Context, a *model.Article) (*model.Article, error) {
	const q = `
		INSERT INTO articles (slug, title, excerpt, content, featured_image, category, author, status, meta_title, meta_description, created_at, updated_at, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + articleColumns
	row := r.db.QueryRowContext(ctx, q,
		a.Slug,
		a.Title,
		a.Excerpt,
		a.Content,
		a.FeaturedImage,
		a.Category,
		a.Author,
		a.Status,
		a.MetaTitle,
		a.MetaDescription,
		a.CreatedAt,
		a.UpdatedAt,
		a.PublishedAt,
	)
	out, err := scanArticle(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", repository.ErrDuplicateSlug, a.Slug)
		}
		return nil, err
	}
	return out, nil
}

// FindBySlug fetches a single article by slug regardless of status.
func (r *ArticlePostgres) FindBySlug(ctx context.Context, slug string) (*model.Article, error) {
	const q = `SELECT ` + articleColumns + ` FROM articles WHERE slug = $1`
	return scanArticle(r.db.QueryRowContext(ctx, q, slug))
}

// FindPublishedBySlug fetches a single published article by slug. Drafts
// with a matching slug come back as sql.ErrNoRows.
func (r *ArticlePostgres) FindPublishedBySlug(ctx context.Context, slug string) (*model.Article, error) {
	const q = `SELECT ` + articleColumns + ` FROM articles WHERE slug = $1 AND LOWER(status) = 'published'`
	return scanArticle(r.db.QueryRowContext(ctx, q, slug))
}

// ListPublished returns published articles using LIMIT/OFFSET pagination and
// a total count under the same filter. Content is not selected on the list
// path; the excerpt is the teaser. Ties on published_at break by id DESC.
func (r *ArticlePostgres) ListPublished(ctx context.Context, q repository.ArticleQuery) (*repository.PageResult[model.Article], error) {
	const qCount = `
		SELECT COUNT(*) FROM articles
		WHERE LOWER(status) = 'published' AND ($1::text IS NULL OR category = $1)
	`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, q.Category).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, slug, title, excerpt, featured_image, category, author, status, meta_title, meta_description, created_at, updated_at, published_at
		FROM articles
		WHERE LOWER(status) = 'published' AND ($1::text IS NULL OR category = $1)
		ORDER BY published_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, q.Category, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Article, 0)
	for rows.Next() {
		var a model.Article
		if err := rows.Scan(
			&a.ID,
			&a.Slug,
			&a.Title,
			&a.Excerpt,
			&a.FeaturedImage,
			&a.Category,
			&a.Author,
			&a.Status,
			&a.MetaTitle,
			&a.MetaDescription,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.PublishedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Article]{
		Items: items,
		Total: total,
	}, nil
}

// Update writes every mutable column of the row identified by a.Slug.
// The slug itself never changes; it is the row identity at this boundary.
func (r *ArticlePostgres) Update(ctx context.Context, a *model.Article) error {
	const q = `
		UPDATE articles
		SET title = $2, excerpt = $3, content = $4, featured_image = $5, category = $6,
		    author = $7, status = $8, meta_title = $9, meta_description = $10,
		    updated_at = $11, published_at = $12
		WHERE slug = $1
	`
	res, err := r.db.ExecContext(ctx, q,
		a.Slug,
		a.Title,
		a.Excerpt,
		a.Content,
		a.FeaturedImage,
		a.Category,
		a.Author,
		a.Status,
		a.MetaTitle,
		a.MetaDescription,
		a.UpdatedAt,
		a.PublishedAt,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Row vanished between the caller's read and this write.
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes an article by slug and reports a missing row as sql.ErrNoRows.
func (r *ArticlePostgres) Delete(ctx context.Context, slug string) error {
	const q = `DELETE FROM articles WHERE slug = $1`
	res, err := r.db.ExecContext(ctx, q, slug)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
