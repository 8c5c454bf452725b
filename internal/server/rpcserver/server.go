package rpcserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/yndnr/keyval-go/api/proto/v1/keyvalv1connect"
	"github.com/yndnr/keyval-go/internal/core/service"
	"github.com/yndnr/keyval-go/internal/telemetry/metric"
)

const readHeaderTimeout = 10 * time.Second

// Config configures the RPC server.
type Config struct {
	// Addr is the listen address, e.g. "127.0.0.1:50051".
	Addr string

	// RateLimit is the allowed requests per second. 0 disables limiting.
	RateLimit float64
	RateBurst int

	Logger  *slog.Logger
	Metrics *metric.Registry
}

// Server serves the keyval RPC API over h2c.
type Server struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server

	mu       sync.Mutex
	listener net.Listener
}

// New creates a new RPC server for the given services.
func New(cfg Config, values *service.ValueService, snapshots *service.SnapshotService) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	s := &Server{
		cfg:    cfg,
		logger: cfg.Logger,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(s.routes(values, snapshots), &http2.Server{}),
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(cfg.Logger.Handler(), slog.LevelWarn),
	}
	return s
}

func (s *Server) interceptors() []connect.Interceptor {
	interceptors := []connect.Interceptor{
		NewLoggingInterceptor(s.logger),
		NewMetricsInterceptor(s.cfg.Metrics),
		NewRecoveryInterceptor(s.logger),
	}
	if s.cfg.RateLimit > 0 {
		interceptors = append(interceptors, NewRateLimitInterceptor(s.cfg.RateLimit, s.cfg.RateBurst))
	}
	return interceptors
}

func (s *Server) routes(values *service.ValueService, snapshots *service.SnapshotService) http.Handler {
	opts := connect.WithInterceptors(s.interceptors()...)

	mux := http.NewServeMux()
	mux.Handle(keyvalv1connect.NewValueHandler(NewValueHandler(values), opts))
	mux.Handle(keyvalv1connect.NewAdminHandler(NewAdminHandler(snapshots), opts))
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", s.cfg.Metrics.Handler())
	return mux
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		s.logger.DebugContext(r.Context(), "write health response", "error", err)
	}
}

// ListenAndServe listens on the configured address and serves until
// Shutdown is called.
func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(l)
}

// Serve serves on l. It returns nil after a graceful Shutdown.
func (s *Server) Serve(l net.Listener) error {
	s.mu.Lock()
	s.listener = l
	s.mu.Unlock()

	s.logger.Info("rpc server listening", "addr", l.Addr().String())
	if err := s.httpServer.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Addr returns the bound address once serving, else the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.cfg.Addr
}

// Shutdown stops accepting connections and waits for in-flight calls.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("rpc server shutting down")
	return s.httpServer.Shutdown(ctx)
}
