package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-account-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-account-keeper/internal/logger"

	"google.golang.org/grpc"
)

const healthCheckInterval = 10 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener
	watchCtx        context.Context
	stopWatching    context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC address %q: %w", cfg.GRPCAddress, err)
	}

	srv := grpc.NewServer()
	handler.Register(srv)

	ctx, cancel := context.WithCancel(context.Background())

	return &grpcServer{
		handler:         handler,
		server:          srv,
		gRPCNetListener: listener,
		watchCtx:        ctx,
		stopWatching:    cancel,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	go g.handler.WatchDependencies(g.watchCtx, healthCheckInterval)

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.stopWatching()
	g.handler.Shutdown()
	g.server.GracefulStop()
}
