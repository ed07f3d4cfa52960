package repository

import "context"

// SettingsRepository reads the key-value site configuration. The settings
// table is seeded by migration and has no write path through the API.
type SettingsRepository interface {
	// All returns every setting as a flat key/value mapping.
	// NULL values are carried as nil pointers.
	All(ctx context.Context) (map[string]*string, error)
}
