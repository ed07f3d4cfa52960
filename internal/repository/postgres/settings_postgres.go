package postgres

import (
	"context"
	"database/sql"

	"github.com/adevaproject/webapppro/internal/repository"
)

// SettingsPostgres is a PostgreSQL implementation of repository.SettingsRepository.
type SettingsPostgres struct {
	db *sql.DB
}

// NewSettingsPostgres creates a new SettingsPostgres repository.
func NewSettingsPostgres(db *sql.DB) *SettingsPostgres {
	return &SettingsPostgres{db: db}
}

var _ repository.SettingsRepository = (*SettingsPostgres)(nil)

// All returns the settings table as a flat key/value mapping.
func (r *SettingsPostgres) All(ctx context.Context) (map[string]*string, error) {
	const q = `SELECT key, value FROM settings`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]*string)
	for rows.Next() {
		var (
			key   string
			value *string
		)
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
