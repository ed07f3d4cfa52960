package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(m.Handler())
	app.Get("/api/articles/:slug", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/articles/hello", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/api/articles/other", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// both requests collapse onto the route pattern label
	count := testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/api/articles/:slug", "200"))
	assert.Equal(t, float64(2), count)
}

func TestPrometheusMiddleware_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	_, err = NewPrometheusMiddleware(reg)
	assert.Error(t, err)
}
