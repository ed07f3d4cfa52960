package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adevaproject/webapppro/internal/model"
	serviceMocks "github.com/adevaproject/webapppro/internal/service/mocks"
)

func newTestApp(t *testing.T) (*fiber.App, *serviceMocks.MockArticleService, *serviceMocks.MockSettingsService) {
	t.Helper()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	articles := new(serviceMocks.MockArticleService)
	settings := new(serviceMocks.MockSettingsService)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, db, articles, settings, "test-key")

	return app, articles, settings
}

func TestAdminRoutesRequireAPIKey(t *testing.T) {
	app, articles, _ := newTestApp(t)

	t.Run("missing key is rejected before the handler", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/admin/articles", fiber.Map{
			"slug": "s", "title": "T", "content": "c",
		}))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		articles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("wrong key is rejected", func(t *testing.T) {
		req := jsonRequest(http.MethodDelete, "/api/admin/articles", fiber.Map{"slug": "s"})
		req.Header.Set("X-API-Key", "wrong")

		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		articles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("valid key reaches the handler", func(t *testing.T) {
		articles.On("Create", mock.Anything, mock.Anything).
			Return(&model.Article{Slug: "s"}, nil).Once()

		req := jsonRequest(http.MethodPost, "/api/admin/articles", fiber.Map{
			"slug": "s", "title": "T", "content": "c",
		})
		req.Header.Set("X-API-Key", "test-key")

		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		articles.AssertExpectations(t)
	})
}

func TestPublicRoutesNeedNoKey(t *testing.T) {
	app, _, settings := newTestApp(t)

	settings.On("All", mock.Anything).Return(map[string]*string{}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/settings", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	settings.AssertExpectations(t)
}

func TestUnknownRouteEnvelope(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody[response](t, resp)
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Message)
}
