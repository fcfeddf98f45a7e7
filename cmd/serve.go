package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rpupo63/developer-projects-backend/api"
	"github.com/rpupo63/developer-projects-backend/config"
	"github.com/rpupo63/developer-projects-backend/database"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Connect to Postgres and serve the API until SIGINT or SIGTERM.

With BOOTSTRAP_SCHEMA=true the tables are created and the technology
catalog is seeded before the server starts.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
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
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("closing database")
		}
	}()

	currentDB := database.New(db)
	if cfg.Database.Bootstrap {
		if err := currentDB.Bootstrap(ctx); err != nil {
			return fmt.Errorf("bootstrapping schema: %w", err)
		}
	}

	server := api.NewServer(cfg.Server, currentDB)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		return listenToInterrupt(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		return server.ShutdownGracefully(cfg.Server.ShutdownTimeoutDuration())
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errInterrupted) {
		return err
	}
	return nil
}

var errInterrupted = errors.New("interrupted")

// listenToInterrupt returns errInterrupted on SIGINT or SIGTERM, which cancels
// the group, and nil when ctx is cancelled first.
func listenToInterrupt(ctx context.Context) error {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(c)

	select {
	case sig := <-c:
		log.Info().Str("signal", sig.String()).Msg("Closing server")
		return errInterrupted
	case <-ctx.Done():
		return nil
	}
}
