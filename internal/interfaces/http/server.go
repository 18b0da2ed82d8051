package http

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/jhoicas/warehome-api/internal/infrastructure/metrics"
)

// ServerConfig opciones de la aplicación fiber.
type ServerConfig struct {
	AppName string
	// DocsFile swagger.json servido en /docs; se omite si el archivo no existe.
	DocsFile string
	Logger   zerolog.Logger
	// Metrics nil deshabilita /metrics.
	Metrics *metrics.Recorder
	// Health verifica dependencias (BD) en /health.
	Health func(ctx context.Context) error
}

// NewApp construye la aplicación con middlewares, /health, /metrics, /docs y las rutas de la API.
func NewApp(cfg ServerConfig, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	var obs HTTPObserver
	if cfg.Metrics != nil {
		obs = cfg.Metrics
	}
	app.Use(RequestLogger(cfg.Logger, obs))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.DocsFile != "" {
		if _, err := os.Stat(cfg.DocsFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.DocsFile,
				Path:     "docs",
				Title:    "Warehome API",
			}))
		} else {
			cfg.Logger.Warn().Str("file", cfg.DocsFile).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if cfg.Health != nil {
			if err := cfg.Health(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status":  "unavailable",
					"service": cfg.AppName,
					"error":   err.Error(),
				})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.AppName})
	})

	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	Router(app, deps)
	return app
}
