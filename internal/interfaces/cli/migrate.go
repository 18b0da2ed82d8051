package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMigrateCommand crea el comando migrate.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica el esquema de base de datos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := rootOpts.openBackend(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer backend.Close()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "esquema aplicado (%s)\n", backend.Driver)
			return err
		},
	}
}
