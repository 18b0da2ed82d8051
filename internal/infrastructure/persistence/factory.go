package persistence

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
	"github.com/jhoicas/warehome-api/internal/infrastructure/postgres"
	"github.com/jhoicas/warehome-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/warehome-api/pkg/config"
)

// Backend repositorios del catálogo listos para usar más su runner de transacciones.
type Backend struct {
	Driver string
	Repos  catalog.Repositories
	Tx     catalog.TxRunner
	// Ping verifica la conexión (health check).
	Ping  func(ctx context.Context) error
	close func()
}

// Close libera las conexiones.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Open selecciona la implementación según DB_DRIVER:
//
//	sqlite   (por defecto) archivo SQLITE_PATH
//	postgres DATABASE_URL o DB_HOST/DB_PORT/...
//
// Con migrate=true aplica el esquema antes de devolver.
func Open(ctx context.Context, cfg config.DBConfig, migrate bool, log zerolog.Logger) (*Backend, error) {
	switch cfg.Driver {
	case "", config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := sqlite.Migrate(ctx, db); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		log.Info().Str("driver", config.DriverSQLite).Str("path", cfg.SQLitePath).Bool("migrated", migrate).Msg("base de datos lista")
		return &Backend{
			Driver: config.DriverSQLite,
			Repos:  sqlite.NewRepositories(db),
			Tx:     sqlite.NewTxRunner(db),
			Ping:   db.PingContext,
			close:  func() { _ = db.Close() },
		}, nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, err
			}
		}
		log.Info().Str("driver", config.DriverPostgres).Bool("migrated", migrate).Msg("base de datos lista")
		return &Backend{
			Driver: config.DriverPostgres,
			Repos:  postgres.NewRepositories(pool),
			Tx:     postgres.NewTxRunner(pool),
			Ping:   pool.Ping,
			close:  pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("driver de base de datos desconocido %q", cfg.Driver)
	}
}
