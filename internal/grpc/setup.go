package grpc

import (
	"context"
	"sync"

	"github.com/getsentry/sentry-go"
	grpcprom "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/showfinder/showfinder/internal/client"
)

var (
	grpcServerMetrics         *grpcprom.ServerMetrics
	registerServerMetricsOnce sync.Once
)

// NewGRPCServer creates a fully configured gRPC server with Prometheus metrics,
// Sentry reporting, health checking, and reflection.
func NewGRPCServer(c client.Client) *grpc.Server {
	// Set up Prometheus gRPC server metrics once per process
	registerServerMetricsOnce.Do(func() {
		grpcServerMetrics = grpcprom.NewServerMetrics(
			grpcprom.WithServerHandlingTimeHistogram(),
		)
		prometheus.MustRegister(grpcServerMetrics)
	})

	srvMetrics := grpcServerMetrics

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			srvMetrics.UnaryServerInterceptor(),
			sentryUnaryInterceptor,
		),
		grpc.ChainStreamInterceptor(srvMetrics.StreamServerInterceptor()),
	)

	RegisterShowServiceServer(grpcServer, NewServer(c))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	// Register reflection service for tools like grpcurl
	reflection.Register(grpcServer)

	// Initialize gRPC metrics with all registered service methods
	srvMetrics.InitializeMetrics(grpcServer)

	return grpcServer
}

// sentryUnaryInterceptor gives each call its own hub, reports server-side
// failures and turns panics into Internal errors.
func sentryUnaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	hub := sentry.CurrentHub().Clone()
	hub.Scope().SetTag("grpc.method", info.FullMethod)
	ctx = sentry.SetHubOnContext(ctx, hub)

	defer func() {
		if r := recover(); r != nil {
			hub.RecoverWithContext(ctx, r)
			resp, err = nil, status.Error(codes.Internal, "internal error")
		}
	}()

	resp, err = handler(ctx, req)
	switch status.Code(err) {
	case codes.Internal, codes.Unavailable, codes.Unknown:
		hub.CaptureException(err)
	}
	return resp, err
}
