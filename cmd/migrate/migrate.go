package migrate

import (
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/shoeppe/catalog-api/app/config"
	"github.com/shoeppe/catalog-api/app/logger"
	"github.com/shoeppe/catalog-api/database"
)

const (
	envFileFlag = "env-file"
	stepsFlag   = "steps"
)

func envFileFlags() map[string]cobraflags.Flag {
	return map[string]cobraflags.Flag{
		envFileFlag: &cobraflags.StringFlag{
			Name:  envFileFlag,
			Value: config.DefaultEnvFile,
			Usage: "Path to a .env file; a missing file is ignored",
		},
	}
}

func NewMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate [up|down]",
		Short: "Apply or roll back the database schema",
		Long: `Apply or roll back the catalog schema.

The SQL migrations are embedded in the binary and tracked in the
schema_migrations table.

Examples:
  catalog migrate up                # apply every pending migration
  catalog migrate down --steps 1    # roll back the last migration`,
	}

	migrateCmd.AddCommand(newUpCommand())
	migrateCmd.AddCommand(newDownCommand())
	return migrateCmd
}

func newUpCommand() *cobra.Command {
	flags := envFileFlags()

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags[envFileFlag].GetString())
			if err != nil {
				return err
			}
			return database.MigrateUp(cfg, logger.New(cfg))
		},
	}

	cobraflags.RegisterMap(upCmd, flags)
	return upCmd
}

func newDownCommand() *cobra.Command {
	flags := envFileFlags()

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps, err := cmd.Flags().GetInt(stepsFlag)
			if err != nil {
				return err
			}
			if err := checkSteps(steps); err != nil {
				return err
			}

			cfg, err := config.Load(flags[envFileFlag].GetString())
			if err != nil {
				return err
			}
			return database.MigrateDown(cfg, steps, logger.New(cfg))
		},
	}

	cobraflags.RegisterMap(downCmd, flags)
	downCmd.Flags().Int(stepsFlag, 1, "Number of migrations to roll back")
	return downCmd
}

func checkSteps(steps int) error {
	if steps < 1 {
		return fmt.Errorf("--%s must be positive, got %d", stepsFlag, steps)
	}
	return nil
}
