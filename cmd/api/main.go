package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
	"github.com/jhoicas/warehome-api/internal/infrastructure/metrics"
	"github.com/jhoicas/warehome-api/internal/infrastructure/pdf"
	"github.com/jhoicas/warehome-api/internal/infrastructure/persistence"
	"github.com/jhoicas/warehome-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/warehome-api/internal/interfaces/http"
	"github.com/jhoicas/warehome-api/pkg/config"
	"github.com/jhoicas/warehome-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	backend, err := persistence.Open(context.Background(), cfg.DB, cfg.DB.AutoMigrate, log.Component("db"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base de datos")
	}
	defer backend.Close()

	var recorder *metrics.Recorder
	var observer catalog.Observer = catalog.NopObserver{}
	if cfg.Metrics.Enabled {
		recorder = metrics.NewRecorder("warehome")
		observer = recorder
	}

	services := catalog.NewServices(backend.Repos, observer,
		xmlexport.NewTreeExporter(),
		pdf.NewTreeExporter(cfg.App.Name),
	)

	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:  cfg.App.Name,
		DocsFile: cfg.HTTP.DocsFile,
		Logger:   log.Component("http"),
		Metrics:  recorder,
		Health:   backend.Ping,
	}, httpRouter.DepsFromServices(services))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
	if err := httpRouter.Serve(ctx, app, cfg.HTTP.Addr(), 10*time.Second); err != nil {
		backend.Close()
		log.Fatal().Err(err).Msg("servidor HTTP finalizado")
	}

	log.Info().Msg("aplicación detenida")
}
