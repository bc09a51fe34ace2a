package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/handler"
	myGRPC "github.com/MKhiriev/go-account-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestNewServer_NoTransports(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_GRPCListenFailure(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(nil, logger.Nop())}

	_, err := NewServer(handlers, config.Server{GRPCAddress: "127.0.0.1:99999"}, logger.Nop())
	assert.Error(t, err)
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	srv := newHTTPServer(http.NotFoundHandler(), config.Server{
		HTTPAddress:    "127.0.0.1:0",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())

	assert.Equal(t, "127.0.0.1:0", srv.server.Addr)
	assert.Equal(t, readHeaderTimeout, srv.server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, srv.server.ReadTimeout)
	assert.Equal(t, 10*time.Second, srv.server.WriteTimeout)
}

func TestNewHTTPServer_NoRequestTimeout(t *testing.T) {
	srv := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.Zero(t, srv.server.ReadTimeout)
	assert.Zero(t, srv.server.WriteTimeout)
}

func TestGRPCServer_ServesHealth(t *testing.T) {
	h := myGRPC.NewHandler(nil, logger.Nop())
	srv, err := newGRPCServer(h, config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		srv.RunServer()
		close(done)
	}()

	conn, err := grpc.NewClient(srv.gRPCNetListener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: myGRPC.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	srv.Shutdown()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("gRPC server did not stop")
	}
}
