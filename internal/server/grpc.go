package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-sheet-sync/internal/config"
	myGRPC "github.com/MKhiriev/go-sheet-sync/internal/handler/grpc"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  s,
		logger:  logger,
	}
}

// RunServer listens on the configured address and serves until Shutdown.
// The health status switches to SERVING once the listener is open.
func (g *grpcServer) RunServer() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", g.address, err)
	}

	g.handler.SetServing()
	g.logger.Info().Str("address", g.address).Msg("gRPC server listening")

	if err = g.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC serve: %w", err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.handler.Shutdown()
	g.server.GracefulStop()
	g.logger.Info().Msg("gRPC server Shutdown")
}
