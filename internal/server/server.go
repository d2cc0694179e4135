// Package server assembles the gRPC server for the Vagabond services
package server

import (
	"context"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	vagabondv1alpha1 "github.com/KirkDiggler/vagabond-api/internal/api/vagabond/v1alpha1"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
	"github.com/KirkDiggler/vagabond-api/internal/pkg/logging"
)

// Config holds the service implementations to register
type Config struct {
	ActorService vagabondv1alpha1.ActorServiceServer
	PlayService  vagabondv1alpha1.PlayServiceServer
	Logger       *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ActorService == nil {
		vb.RequiredField("ActorService")
	}
	if c.PlayService == nil {
		vb.RequiredField("PlayService")
	}

	return vb.Build()
}

// Server is a configured gRPC server with its health service
type Server struct {
	GRPC   *grpc.Server
	Health *health.Server
}

// New builds a gRPC server with logging and panic recovery interceptors and
// registers both Vagabond services plus the health service
func New(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid server config")
	}

	logger := logging.OrNop(cfg.Logger)
	interceptorLogger := InterceptorLogger(logger)
	logOpts := []grpc_logging.Option{
		grpc_logging.WithLogOnEvents(grpc_logging.FinishCall),
	}
	recoveryOpts := []grpc_recovery.Option{
		grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
			logger.Error("recovered from panic", zap.Any("panic", p), zap.Stack("stack"))
			return status.Errorf(codes.Internal, "internal error")
		}),
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger, logOpts...),
			grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger, logOpts...),
			grpc_recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)

	vagabondv1alpha1.RegisterActorServiceServer(srv, cfg.ActorService)
	vagabondv1alpha1.RegisterPlayServiceServer(srv, cfg.PlayService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(vagabondv1alpha1.ActorService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(vagabondv1alpha1.PlayService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{GRPC: srv, Health: healthServer}, nil
}

// Shutdown marks every service as not serving and stops accepting calls
func (s *Server) Shutdown() {
	s.Health.Shutdown()
	s.GRPC.GracefulStop()
}
