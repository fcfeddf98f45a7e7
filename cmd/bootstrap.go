package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rpupo63/developer-projects-backend/config"
	"github.com/rpupo63/developer-projects-backend/database"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Create the tables and seed the technology catalog",
	Long: `Create the developers, developer_infos, projects, technologies and
projects_technologies tables when they are missing, then insert the catalog
technologies that are not stored yet. Running it twice is harmless.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := setupLogging(cfg.Log, os.Stdout); err != nil {
			return fmt.Errorf("configuring logging: %w", err)
		}

		ctx := log.Logger.WithContext(cmd.Context())
		db, err := database.Open(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close(db)

		return database.New(db).Bootstrap(ctx)
	},
}
