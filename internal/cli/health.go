package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the storage backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.ThemeService.Kinds(cmd.Context()); err != nil {
				return err
			}

			output(cmd).Print(HealthResult{Status: "ok", Storage: app.StorageType})
			return nil
		},
	}
}
