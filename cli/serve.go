package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/doitintl/bq-audit/cli/config"
	"github.com/doitintl/bq-audit/framework/connection"
	"github.com/doitintl/bq-audit/framework/mid"
	"github.com/doitintl/bq-audit/framework/web"
	"github.com/doitintl/bq-audit/handlers"
	"github.com/doitintl/bq-audit/logger"
)

const serverShutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the audit engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags(), nil)
			if err != nil {
				return err
			}

			return runServe(cmd.Context(), cmd, cfg)
		},
	}

	cmd.Flags().String("project", "", "GCP project the server audits by default")
	cmd.Flags().Int("port", 8082, "port to listen on")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	logging, err := logger.NewLogging(ctx)
	if err != nil {
		return fmt.Errorf("could not initialize logging: %w", err)
	}

	conn, err := connection.NewConnection(ctx, logging, cfg.Project)
	if err != nil {
		return fmt.Errorf("could not initialize bigquery connection: %w", err)
	}

	// Buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	app := web.NewApp(shutdown, conn, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	audit := handlers.NewAudit(logger.FromContext, conn)

	app.Post("/api/v1/audits", audit.CreateAudit)
	app.Post("/api/v1/analyses", audit.CreateAnalysis)
	app.Get("/health", audit.Health)

	server := http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: app,
	}

	// Buffered so the goroutine can exit if we don't collect this error.
	serverErrors := make(chan error, 1)

	go func() {
		fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("%s : starting server", err)

	case sig := <-shutdown:
		fmt.Fprintf(cmd.OutOrStdout(), "%v : start shutdown\n", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			if closeErr := server.Close(); closeErr != nil {
				return fmt.Errorf("could not stop server gracefully: %s", closeErr)
			}

			return fmt.Errorf("could not stop server gracefully: %s", err)
		}
	}

	return nil
}
