package grpc

import (
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is reported through the health service next to the overall status.
const ServiceName = "hearing"

type Server struct {
	srv    *grpc.Server
	health *health.Server
}

func NewGrpc() *Server {
	server := &Server{
		srv:    grpc.NewServer(),
		health: health.NewServer(),
	}

	healthpb.RegisterHealthServer(server.srv, server.health)
	reflection.Register(server.srv)

	server.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return server
}

func (v *Server) Listen(bind string) error {
	listener, err := net.Listen("tcp", bind)
	if err != nil {
		return err
	}

	return v.srv.Serve(listener)
}

// Shutdown marks every service as not serving before stopping.
func (v *Server) Shutdown() {
	v.health.Shutdown()
	v.srv.GracefulStop()
}
