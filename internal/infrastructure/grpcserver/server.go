package grpcserver

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/dezh-tech/immortal/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the service reported next to the overall ("") status.
const ServiceName = "rodut.ingest"

// Server exposes the standard grpc.health.v1 service for orchestrators.
type Server struct {
	config Config
	grpc   *grpc.Server
	health *health.Server
	lis    net.Listener
}

func New(cfg Config) *Server {
	s := &Server{
		config: cfg,
		grpc:   grpc.NewServer(),
		health: health.NewServer(),
	}

	healthpb.RegisterHealthServer(s.grpc, s.health)
	s.SetServing(false)

	return s
}

// Listen binds the configured address. Port 0 picks a free port.
func (s *Server) Listen() error {
	lis, err := net.Listen("tcp", net.JoinHostPort(s.config.Bind, strconv.Itoa(int(s.config.Port))))
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}
	s.lis = lis

	return nil
}

// Addr is the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.lis == nil {
		return nil
	}

	return s.lis.Addr()
}

// Serve blocks until Stop is called.
func (s *Server) Serve() error {
	if s.lis == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	logger.Info("grpc health server listening", "addr", s.lis.Addr().String())

	if err := s.grpc.Serve(s.lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}

	return nil
}

func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Stop reports NOT_SERVING and drains in-flight RPCs.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
