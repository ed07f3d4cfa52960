package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/adevaproject/webapppro/internal/http/middleware"
	"github.com/adevaproject/webapppro/internal/service"
)

// RegisterRoutes attaches all HTTP routes to the provided Fiber app. The
// admin group is fenced by the API-key middleware so no admin handler runs
// without a valid key.
func RegisterRoutes(app *fiber.App, db *sql.DB, articles service.ArticleService, settings service.SettingsService, adminKey string) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Get("/articles", ListArticles(articles))
	api.Get("/articles/:slug", GetArticle(articles))
	api.Get("/settings", GetSettings(settings))

	admin := api.Group("/admin", middleware.APIKey(adminKey))
	admin.Post("/articles", CreateArticle(articles))
	admin.Put("/articles", UpdateArticle(articles))
	admin.Delete("/articles", DeleteArticle(articles))
}
