package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"vpndash/internal/config"
	"vpndash/internal/demo"
	"vpndash/pkg/logging"

	"github.com/spf13/cobra"
)

func newDemoServerCmd() *cobra.Command {
	var listen string
	var trafficInterval time.Duration

	cmd := &cobra.Command{
		Use:   "demo-server",
		Short: "Run a simulated VPN control API for local testing",
		Long: `Serves the five control API endpoints with simulated behaviour: a
fixed server catalogue, a stable fake public IP per server, traffic that
grows while connected and a sample WireGuard config. No tunnel is created.

Point the dashboard at it with 'vpndash --endpoint http://<listen>'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen == "" {
				cfg, err := config.LoadConfig()
				if err != nil {
					return fmt.Errorf("failed to load configuration: %w", err)
				}
				listen = cfg.Demo.Listen
			}

			if trafficInterval <= 0 {
				trafficInterval = config.DefaultTrafficInterval
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			backend := demo.NewBackend()
			go backend.Run(ctx, trafficInterval)

			srv := &http.Server{
				Addr:              listen,
				Handler:           backend.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()
			logging.Info("DemoServer", "Listening on http://%s", listen)

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("demo server failed: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logging.Info("DemoServer", "Shutting down")
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "Address to listen on (default from config, "+config.DefaultDemoListen+")")
	cmd.Flags().DurationVar(&trafficInterval, "traffic-interval", config.DefaultTrafficInterval, "How often simulated traffic grows while connected")
	return cmd
}
