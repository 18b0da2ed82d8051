package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
	"github.com/jhoicas/warehome-api/internal/domain/entity"
	"github.com/jhoicas/warehome-api/internal/infrastructure/pdf"
	"github.com/jhoicas/warehome-api/internal/infrastructure/xmlexport"
)

type exportOptions struct {
	kind   string
	format string
	output string
}

// NewExportCommand crea el comando export.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &exportOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporta el árbol de una jerarquía en JSON, XML o PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, rootOpts, opts)
		},
	}
	cmd.Flags().StringVar(&opts.kind, "kind", string(entity.KindStorage), "storage|item_type")
	cmd.Flags().StringVar(&opts.format, "format", "json", "json|xml|pdf")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "archivo de salida (por defecto stdout)")
	return cmd
}

func runExport(cmd *cobra.Command, rootOpts *RootOptions, opts *exportOptions) error {
	kind := entity.CategoryKind(opts.kind)
	if !kind.Valid() {
		return fmt.Errorf("--kind %q inválido: use storage o item_type", opts.kind)
	}

	backend, err := rootOpts.openBackend(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer backend.Close()

	services := catalog.NewServices(backend.Repos, nil, xmlexport.NewTreeExporter(), pdf.NewTreeExporter(rootOpts.cfg.App.Name))
	res, err := services.Export.Export(cmd.Context(), kind, opts.format)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(res.Data)
		return err
	}
	if err := os.WriteFile(opts.output, res.Data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", opts.output, err)
	}
	rootOpts.log.Info().Str("file", opts.output).Int("bytes", len(res.Data)).Msg("árbol exportado")
	return nil
}
