// Package cli implementa catalogctl, la herramienta de administración del catálogo.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhoicas/warehome-api/internal/infrastructure/persistence"
	"github.com/jhoicas/warehome-api/pkg/config"
	"github.com/jhoicas/warehome-api/pkg/logger"
)

// RootOptions flags globales de todos los comandos.
type RootOptions struct {
	Verbose bool
	// SQLitePath fuerza el driver sqlite con ese archivo (ignora DB_DRIVER).
	SQLitePath string

	cfg *config.Config
	log zerolog.Logger
}

// NewRootCommand crea el comando raíz de catalogctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "Administración del catálogo de bodegas y tipos de artículo",
		Long: `catalogctl aplica el esquema de base de datos e importa o exporta
las jerarquías de categorías de bodegas y de tipos de artículo.

La conexión se configura igual que la API (DB_DRIVER, SQLITE_PATH, DATABASE_URL, ...).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if opts.SQLitePath != "" {
				cfg.DB.Driver = config.DriverSQLite
				cfg.DB.SQLitePath = opts.SQLitePath
			}
			level := cfg.Log.Level
			if opts.Verbose {
				level = "debug"
			}
			opts.cfg = cfg
			opts.log = logger.New(logger.Config{
				Env:    cfg.App.Env,
				Level:  level,
				App:    "catalogctl",
				Output: cmd.ErrOrStderr(),
			}).Zerolog()
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "salida detallada")
	cmd.PersistentFlags().StringVar(&opts.SQLitePath, "sqlite-path", "", "archivo SQLite (sustituye la configuración)")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// openBackend abre la base configurada; migrate fuerza la aplicación del esquema.
func (o *RootOptions) openBackend(ctx context.Context, migrate bool) (*persistence.Backend, error) {
	if o.cfg == nil {
		return nil, fmt.Errorf("configuración no cargada")
	}
	return persistence.Open(ctx, o.cfg.DB, migrate || o.cfg.DB.AutoMigrate, o.log)
}
