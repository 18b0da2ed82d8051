package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
	"github.com/jhoicas/warehome-api/internal/infrastructure/catalogfile"
)

type importOptions struct {
	format   string
	encoding string
}

// NewImportCommand crea el comando import.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &importOptions{}
	cmd := &cobra.Command{
		Use:   "import <archivo>",
		Short: "Importa categorías, bodegas y tipos de artículo desde YAML o CSV",
		Long: `Importa un catálogo dentro de una sola transacción.

Las categorías y elementos que ya existen se omiten, y los ancestros faltantes
se crean primero, así que importar dos veces el mismo archivo no cambia nada.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, rootOpts, opts, args[0])
		},
	}
	cmd.Flags().StringVar(&opts.format, "format", "", "yaml|csv (por defecto según la extensión)")
	cmd.Flags().StringVar(&opts.encoding, "encoding", catalogfile.EncodingUTF8, "utf-8|latin1|windows-1252")
	return cmd
}

func runImport(cmd *cobra.Command, rootOpts *RootOptions, opts *importOptions, path string) error {
	format := opts.format
	if format == "" {
		detected, err := catalogfile.DetectFormat(path)
		if err != nil {
			return err
		}
		format = detected
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()

	doc, err := catalogfile.Parse(f, format, opts.encoding)
	if err != nil {
		return fmt.Errorf("leer %s: %w", path, err)
	}

	backend, err := rootOpts.openBackend(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer backend.Close()

	report, err := catalog.NewImportUseCase(backend.Tx, rootOpts.log).Import(cmd.Context(), doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(),
		"categorías: %d creadas, %d omitidas\nelementos: %d creados, %d omitidos\n",
		report.CategoriesCreated, report.CategoriesSkipped, report.LeavesCreated, report.LeavesSkipped)
	return err
}
