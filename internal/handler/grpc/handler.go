// Package grpc exposes the gRPC side of the server: the standard health
// checking protocol for orchestrators and load balancers.
package grpc

import (
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// UploadsService is the health service name reported for the upload queue.
const UploadsService = "uploads"

// Handler is the root gRPC transport handler.
//
// Besides the overall server status ("") it reports one health service per
// configured entity, plus [UploadsService] when an object store is wired.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every service starts NOT_SERVING until
// [Handler.SetServing] is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setAll(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing marks every service as ready.
func (h *Handler) SetServing() {
	h.setAll(healthpb.HealthCheckResponse_SERVING)
}

// Shutdown marks every service as NOT_SERVING and ends open Watch streams.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setAll(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	for _, name := range h.serviceNames() {
		h.health.SetServingStatus(name, status)
	}
}

func (h *Handler) serviceNames() []string {
	if h.services == nil {
		return nil
	}

	var names []string
	if h.services.Reconcilers != nil {
		names = h.services.Reconcilers.Names()
	}
	if h.services.Uploads != nil {
		names = append(names, UploadsService)
	}
	return names
}
