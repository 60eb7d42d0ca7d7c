package serve

import (
	"context"
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/shoeppe/catalog-api/app/categories"
	"github.com/shoeppe/catalog-api/app/config"
	"github.com/shoeppe/catalog-api/app/logger"
	"github.com/shoeppe/catalog-api/app/products"
	"github.com/shoeppe/catalog-api/app/server"
	"github.com/shoeppe/catalog-api/database"
	"github.com/shoeppe/catalog-api/models"
)

const envFileFlag = "env-file"

func NewServeCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		envFileFlag: &cobraflags.StringFlag{
			Name:  envFileFlag,
			Value: config.DefaultEnvFile,
			Usage: "Path to a .env file; a missing file is ignored",
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the catalog HTTP API",
		Long: `Run the catalog HTTP API under /api.

The server connects to PostgreSQL using the POSTGRES_* settings and stops
gracefully on SIGINT or SIGTERM, waiting at most SHUTDOWN_TIMEOUT for
in-flight requests.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), flags[envFileFlag].GetString())
		},
	}

	cobraflags.RegisterMap(serveCmd, flags)
	return serveCmd
}

func run(ctx context.Context, envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	log := logger.New(cfg)

	db, err := database.Open(cfg, log)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn().Err(err).Msg("failed to close database")
		}
	}()

	router := server.NewRouter(
		cfg,
		log,
		categories.NewCategoryHandler(models.NewCategoriesRepository(db)),
		products.NewProductHandler(models.NewProductsRepository(db)),
	)

	return server.Run(ctx, cfg, router, log)
}
