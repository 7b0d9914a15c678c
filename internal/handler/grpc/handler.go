package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/internal/service"
)

// ServiceName is the service name reported by the health endpoint besides
// the empty (whole server) name.
const ServiceName = "customers"

// Handler serves grpc.health.v1.Health backed by the storage health check.
type Handler struct {
	healthpb.UnimplementedHealthServer

	// services provides the readiness check.
	services *service.Services

	logger *logger.Logger
}

// NewHandler constructs a [Handler] over the service layer.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register attaches the handler to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h)
}

// Check reports SERVING while storage answers pings, NOT_SERVING otherwise.
// Unknown service names yield codes.NotFound.
func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if name := req.GetService(); name != "" && name != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", name)
	}

	if err := h.services.AppInfoService.CheckHealth(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.Check").Msg("health check failed")
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
