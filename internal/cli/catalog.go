package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/fastlane/internal/api/response"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List locations, jobs, courses and items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Catalog
			if err := client.Get("/api/v1/catalog", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}
