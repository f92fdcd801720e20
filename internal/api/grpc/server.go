package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const shutdownTimeout = 2 * time.Second

// Server serves profileviewer.Viewer service.
type Server struct {
	service ViewerServer
	address string
	limiter *rate.Limiter
	l       logrus.FieldLogger
}

// NewServer creates new Server instance. Open, Query and Retry calls are limited by limiter, if it's not nil.
func NewServer(service ViewerServer, address string, limiter *rate.Limiter, l logrus.FieldLogger) *Server {
	return &Server{
		service: service,
		address: address,
		limiter: limiter,
		l:       l,
	}
}

// Run listens on server's address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("starting tcp listener: %w", err)
	}

	return s.Serve(ctx, lis)
}

// Serve serves requests from listener until ctx is done, then gracefully stops.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.UnaryInterceptor(rateLimitInterceptor(s.limiter)))
	RegisterViewerServer(srv, s.service)

	errc := make(chan error, 1)
	go func() {
		s.l.Infof("starting grpc server, listening on %s", lis.Addr())
		if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case <-ctx.Done():
		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(shutdownTimeout):
			// open watch streams
			srv.Stop()
		}
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("serving grpc: %w", err)
		}
	}
	s.l.Info("grpc server shut down")

	return nil
}

// Dial connects to viewer service at given address.
func Dial(ctx context.Context, address string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append(
		[]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())},
		opts...,
	)
	conn, err := grpc.DialContext(ctx, address, opts...)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", address, err)
	}
	return conn, nil
}
