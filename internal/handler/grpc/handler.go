// Package grpc exposes the gRPC side of the account service: a standard
// health endpoint whose status follows the reachability of the database.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "accounts.v1.AccountService"

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It owns a health server whose serving status is driven by [Handler.WatchDependencies].
type Handler struct {
	health *health.Server
	pinger Pinger

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. A nil pinger leaves the status at SERVING.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		pinger: pinger,
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)

	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Health returns the underlying health server.
func (h *Handler) Health() healthpb.HealthServer {
	return h.health
}

// CheckDependencies pings the dependencies once and updates the health status.
func (h *Handler) CheckDependencies(ctx context.Context) {
	if h.pinger == nil {
		return
	}

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("dependency ping failed")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}

	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// WatchDependencies runs CheckDependencies every interval until ctx is done.
func (h *Handler) WatchDependencies(ctx context.Context, interval time.Duration) {
	if h.pinger == nil || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, interval)
			h.CheckDependencies(pingCtx)
			cancel()
		}
	}
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
