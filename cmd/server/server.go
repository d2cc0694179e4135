package main

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/vagabond-api/internal/config"
	"github.com/KirkDiggler/vagabond-api/internal/pkg/logging"
	redisclient "github.com/KirkDiggler/vagabond-api/internal/redis"
	"github.com/KirkDiggler/vagabond-api/internal/rules"
	"github.com/KirkDiggler/vagabond-api/internal/server"
)

var grpcPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Vagabond API gRPC server backed by Redis.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port, overrides server.port")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = grpcPort
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync() // nolint:errcheck // stderr sync fails on some platforms
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := redisclient.NewClient(cfg.Redis.Endpoint, cfg.Redis.Options())
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // safe to ignore on shutdown
	}()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", cfg.Redis.Endpoint, err)
	}

	ruleset, err := rules.Load(cfg.Rules.Path)
	if err != nil {
		return fmt.Errorf("failed to load ruleset: %w", err)
	}

	srv, err := server.Build(&server.Dependencies{
		Redis:              redisClient,
		Rules:              ruleset,
		MaxActivityEntries: cfg.Activity.MaxEntries,
		Logger:             logger,
	})
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	lis, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("gRPC server starting", zap.String("addr", lis.Addr().String()))
		if err := srv.GRPC.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down gRPC server")
		shutdown(srv, cfg.Server.ShutdownTimeout, logger)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}

// shutdown drains in-flight calls, forcing a stop once the timeout passes.
// A zero timeout waits indefinitely.
func shutdown(srv *server.Server, timeout time.Duration, logger *zap.Logger) {
	stopped := make(chan struct{})
	go func() {
		srv.Shutdown()
		close(stopped)
	}()

	if timeout <= 0 {
		<-stopped
		return
	}

	select {
	case <-stopped:
	case <-time.After(timeout):
		logger.Warn("graceful shutdown timeout exceeded, forcing stop", zap.Duration("timeout", timeout))
		srv.GRPC.Stop()
	}
}
