package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/Belphemur/YouTubeTranscript/internal/config"
	grpcserver "github.com/Belphemur/YouTubeTranscript/internal/grpc"
	"github.com/Belphemur/YouTubeTranscript/internal/metrics"
)

func newServeCmd(s *state) *cobra.Command {
	var (
		address string
		port    int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the transcript gRPC API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("address") {
				s.cfg.Server.Address = address
			}
			if cmd.Flags().Changed("port") {
				s.cfg.Server.Port = port
			}
			return s.runServe(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "Listen address (default from config)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (default from config)")
	return cmd
}

// runServe serves gRPC (and Prometheus metrics when enabled) until ctx is cancelled.
func (s *state) runServe(ctx context.Context) error {
	cfg := s.cfg
	logger := config.GetLogger()

	defaults, err := configDefaults(cfg)
	if err != nil {
		return err
	}
	app, err := s.openApp()
	if err != nil {
		return err
	}

	logger.Info().
		Str("subtitle_source", cfg.YtDlp.SubtitleSource).
		Bool("cache_enabled", cfg.Cache.Enabled).
		Int("server_port", cfg.Server.Port).
		Str("server_address", cfg.Server.Address).
		Msg("Starting transcript server")

	grpcServer := grpcserver.NewGRPCServer(app.Service, defaults)

	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("Failed to serve metrics")
			}
		}()
		defer func() {
			if err := metricsServer.Shutdown(context.Background()); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown metrics server")
			}
		}()
	}

	address := net.JoinHostPort(cfg.Server.Address, fmt.Sprint(cfg.Server.Port))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	logger.Info().Str("address", listener.Addr().String()).Msg("Starting gRPC server")

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		logger.Info().Msg("Shutdown requested")
		grpcServer.GracefulStop()
	}()

	if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("failed to serve gRPC: %w", err)
	}
	<-stopped

	logger.Info().Msg("Server stopped gracefully")
	return nil
}
