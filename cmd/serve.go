package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"github.com/davidbz/energysim/internal/http"
	"github.com/davidbz/energysim/internal/observability"
)

var shutdownTimeout time.Duration

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the energysim HTTP API.

Routes:
  GET|POST /import/power?source=fixed|dynamic|battery
  GET|POST /import/gas?source=...&heating=boiler|heatpump
  GET      /search?gte=2024-03-31T22:00&lte=2024-03-31T22:45&energy=power
  DELETE   /tariffs/{energy}/{day}
  GET      /health
  GET      /metrics

GET imports read FILES_POWER_CSV / FILES_GAS_CSV; POST imports read the
CSV export from the request body.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 15*time.Second, "grace period for in-flight requests")
}

func runServe(cmd *cobra.Command, _ []string) error {
	container, err := buildContainer()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = container.Invoke(func(server *http.Server, client *goredis.Client) error {
		if client != nil {
			defer client.Close()
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	})
	if err != nil {
		return fmt.Errorf("serve failed: %w", dig.RootCause(err))
	}

	observability.FromContext(ctx).Info("server stopped")
	return nil
}
