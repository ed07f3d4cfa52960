package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/adevaproject/webapppro/internal/logger"
)

type step struct {
	Name string
	SQL  string
}

var steps = []step{
	{
		Name: "create_table_articles",
		SQL: `CREATE TABLE IF NOT EXISTS articles (
  id               BIGINT      GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  slug             TEXT        NOT NULL UNIQUE,
  title            TEXT        NOT NULL,
  excerpt          TEXT,
  content          TEXT        NOT NULL,
  featured_image   TEXT,
  category         TEXT,
  author           TEXT        NOT NULL DEFAULT 'Admin',
  status           TEXT        NOT NULL DEFAULT 'draft',
  meta_title       TEXT,
  meta_description TEXT,
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  published_at     TIMESTAMPTZ
);`,
	},
	{
		Name: "create_index_articles_status_published_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_articles_status_published_at ON articles (status, published_at DESC);`,
	},
	{
		Name: "create_index_articles_category",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_articles_category ON articles (category);`,
	},
	{
		Name: "create_table_settings",
		SQL: `CREATE TABLE IF NOT EXISTS settings (
  key   TEXT PRIMARY KEY,
  value TEXT
);`,
	},
	{
		Name: "seed_settings",
		SQL: `INSERT INTO settings (key, value) VALUES
  ('site_title',       'My Blog'),
  ('site_description', 'A simple blog'),
  ('site_url',         'http://localhost:8080'),
  ('language',         'en'),
  ('posts_per_page',   '10'),
  ('contact_email',    'admin@example.com')
ON CONFLICT (key) DO NOTHING;`,
	},
}

// Run applies the schema steps in order. Every step is idempotent
// (IF NOT EXISTS / ON CONFLICT DO NOTHING) so Run is safe on every startup.
func Run(ctx context.Context, db *sql.DB) error {
	log := logger.Get()
	start := time.Now()

	for _, s := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, s.SQL); err != nil {
			log.Error().
				Str("component", "database").
				Str("migration_step", s.Name).
				Err(err).
				Msg("migration step failed")
			return fmt.Errorf("migration step %s: %w", s.Name, err)
		}
		log.Debug().
			Str("component", "database").
			Str("migration_step", s.Name).
			Int64("duration_ms", time.Since(stepStart).Milliseconds()).
			Msg("migration step applied")
	}

	log.Info().
		Str("component", "database").
		Int("steps", len(steps)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("schema migration complete")

	return nil
}
