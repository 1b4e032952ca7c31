package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-sheet-sync/internal/config"
	"github.com/MKhiriev/go-sheet-sync/internal/handler"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/internal/workers"
	"golang.org/x/sync/errgroup"
)

var errNoTransports = errors.New("neither HTTP nor gRPC transport is configured")

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	workers    *workers.Workers

	stop         context.CancelFunc
	stopMu       sync.Mutex
	shutdownOnce sync.Once

	logger *logger.Logger
}

// NewServer builds the transports enabled by handlers. background runs
// alongside them and is cancelled on shutdown; it may be nil.
func NewServer(handlers *handler.Handlers, background *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{workers: background, logger: logger}

	if handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if handlers.GRPC != nil && cfg.GRPCAddress != "" {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoTransports
	}

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.stopMu.Lock()
	s.stop = cancel
	s.stopMu.Unlock()

	g, ctx := errgroup.WithContext(ctx)

	// listen for stop signals
	g.Go(func() error {
		<-ctx.Done()
		s.shutdown()
		return nil
	})

	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		g.Go(s.httpServer.RunServer)
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching gRPC server")
		g.Go(s.gRPCServer.RunServer)
	}
	if s.workers != nil {
		s.logger.Info().Msg("Launching background workers")
		g.Go(func() error { return s.workers.Run(ctx) })
	}

	// a transport that returns stops the rest
	err := g.Wait()
	if err != nil {
		s.logger.Err(err).Str("func", "server.RunServer").Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

// Shutdown asks a running server to stop; RunServer returns once every
// component has finished.
func (s *server) Shutdown() {
	s.stopMu.Lock()
	stop := s.stop
	s.stopMu.Unlock()

	if stop != nil {
		stop()
		return
	}
	s.shutdown()
}

func (s *server) shutdown() {
	s.shutdownOnce.Do(func() {
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
	})
}
