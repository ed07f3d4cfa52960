package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repoMocks "github.com/adevaproject/webapppro/internal/repository/mocks"
)

func TestSettingsService_All(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the flat mapping through", func(t *testing.T) {
		mRepo := new(repoMocks.MockSettingsRepository)
		svc := NewSettingsService(mRepo)

		title := "My Blog"
		mRepo.On("All", ctx).Return(map[string]*string{
			"site_title": &title,
			"tagline":    nil,
		}, nil)

		got, err := svc.All(ctx)

		require.NoError(t, err)
		assert.Equal(t, "My Blog", *got["site_title"])
		assert.Nil(t, got["tagline"])
	})

	t.Run("propagates storage failures", func(t *testing.T) {
		mRepo := new(repoMocks.MockSettingsRepository)
		svc := NewSettingsService(mRepo)

		mRepo.On("All", ctx).Return(nil, errors.New("db down"))

		_, err := svc.All(ctx)

		assert.Error(t, err)
	})
}
