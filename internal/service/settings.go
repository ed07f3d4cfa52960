package service

import (
	"context"
	"fmt"

	"github.com/adevaproject/webapppro/internal/repository"
)

// SettingsService exposes the site configuration as a flat mapping.
// Settings are read-only at this boundary.
type SettingsService interface {
	All(ctx context.Context) (map[string]*string, error)
}

type settingsService struct {
	repo repository.SettingsRepository
}

// NewSettingsService constructs the settings service over the given repository.
func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) All(ctx context.Context) (map[string]*string, error) {
	out, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	return out, nil
}
