package bootstrap

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/skybooking/config"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const swaggerFile = "flights.swagger.json"

type Servers struct {
	grpcServer *grpc.Server
	httpServer *http.Server
	health     *health.Server
	healthConn *grpc.ClientConn
	grpcLis    net.Listener
	httpLis    net.Listener
	logger     *zap.Logger
}

// Run starts the gRPC health server and the HTTP server (JSON API, /healthz
// and swagger) and blocks until ctx is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, app http.Handler, logger *zap.Logger) error {
	s, err := newServers(cfg, app, logger)
	if err != nil {
		return err
	}
	return s.serve(ctx)
}

func newServers(cfg *config.Config, app http.Handler, logger *zap.Logger) (*Servers, error) {
	grpcLis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	httpLis, err := net.Listen("tcp", cfg.HTTP.Address)
	if err != nil {
		grpcLis.Close()
		return nil, fmt.Errorf("listen HTTP %s: %w", cfg.HTTP.Address, err)
	}

	grpcSrv := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	conn, err := grpc.NewClient(dialTarget(grpcLis.Addr()), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		grpcLis.Close()
		httpLis.Close()
		return nil, fmt.Errorf("dial gRPC health: %w", err)
	}
	gateway := runtime.NewServeMux(runtime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)))

	handler := http.NewServeMux()
	handler.Handle("/healthz", gateway)

	if cfg.HTTP.SwaggerDir != "" {
		fs := http.FileServer(http.Dir(cfg.HTTP.SwaggerDir))
		handler.Handle("/swagger/", http.StripPrefix("/swagger/", fs))
		handler.Handle("/docs/", httpSwagger.Handler(httpSwagger.URL("/swagger/"+swaggerFile)))
	}
	handler.Handle("/", app)

	return &Servers{
		grpcServer: grpcSrv,
		httpServer: &http.Server{Handler: handler, ReadHeaderTimeout: 10 * time.Second},
		health:     healthSrv,
		healthConn: conn,
		grpcLis:    grpcLis,
		httpLis:    httpLis,
		logger:     logger,
	}, nil
}

func (s *Servers) serve(ctx context.Context) error {
	defer s.healthConn.Close()

	errCh := make(chan error, 2)

	s.logger.Info("gRPC server listening", zap.String("address", s.grpcLis.Addr().String()))
	go func() { errCh <- s.grpcServer.Serve(s.grpcLis) }()

	s.logger.Info("HTTP server listening", zap.String("address", s.httpLis.Addr().String()))
	go func() { errCh <- s.httpServer.Serve(s.httpLis) }()

	select {
	case err := <-errCh:
		s.grpcServer.Stop()
		s.httpServer.Close()
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down servers")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// dialTarget turns a wildcard listen address into one a client can dial.
func dialTarget(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}
