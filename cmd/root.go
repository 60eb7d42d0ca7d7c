// Package cmd assembles the catalog command line.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shoeppe/catalog-api/cmd/migrate"
	"github.com/shoeppe/catalog-api/cmd/serve"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "catalog",
		Short:         "Product catalog REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serve.NewServeCommand())
	rootCmd.AddCommand(migrate.NewMigrateCommand())
	return rootCmd
}
