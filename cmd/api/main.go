package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/adevaproject/webapppro/docs"
	"github.com/adevaproject/webapppro/internal/config"
	"github.com/adevaproject/webapppro/internal/database"
	"github.com/adevaproject/webapppro/internal/database/migration"
	handlers "github.com/adevaproject/webapppro/internal/http/handler"
	"github.com/adevaproject/webapppro/internal/http/middleware"
	"github.com/adevaproject/webapppro/internal/logger"
	appotel "github.com/adevaproject/webapppro/internal/otel"
	"github.com/adevaproject/webapppro/internal/repository/postgres"
	"github.com/adevaproject/webapppro/internal/service"
)

// @title CMS API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Load()

	logger.Init(cfg.Log)
	log := logger.Get()

	if cfg.AdminAPIKey == "" {
		log.Fatal().Msg("ADMIN_API_KEY must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := appotel.Init(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migration.Run(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	articleRepo := postgres.NewArticlePostgres(db)
	settingsRepo := postgres.NewSettingsPostgres(db)
	articleSvc := service.NewArticleService(articleRepo)
	settingsSvc := service.NewSettingsService(settingsRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(otelfiber.Middleware())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, articleSvc, settingsSvc, cfg.AdminAPIKey)

	app.Get("/swagger/*", swaggerHandler)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Msg("server starting")
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		log.Error().Err(err).Msg("tracer shutdown failed")
	}
}

// swaggerHandler serves the UI with the host and scheme of the incoming
// request so "try it out" targets the right origin behind a proxy.
func swaggerHandler(c *fiber.Ctx) error {
	scheme := c.Protocol()
	if proto := c.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}

	docs.SwaggerInfo.Host = c.Hostname()
	docs.SwaggerInfo.Schemes = []string{scheme}

	return swagger.HandlerDefault(c)
}
