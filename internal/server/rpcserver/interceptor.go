package rpcserver

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"connectrpc.com/connect"
	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"

	"github.com/yndnr/keyval-go/internal/core/domain"
	"github.com/yndnr/keyval-go/internal/telemetry/logger"
	"github.com/yndnr/keyval-go/internal/telemetry/metric"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-Id"

// LoggingInterceptor assigns a request id and logs every call.
type LoggingInterceptor struct {
	logger *slog.Logger
}

// NewLoggingInterceptor creates a new logging interceptor.
func NewLoggingInterceptor(l *slog.Logger) *LoggingInterceptor {
	if l == nil {
		l = slog.Default()
	}
	return &LoggingInterceptor{logger: l}
}

// WrapUnary implements connect.Interceptor.
func (i *LoggingInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		requestID := req.Header().Get(RequestIDHeader)
		if requestID == "" {
			requestID = ulid.Make().String()
		}
		ctx = logger.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := next(ctx, req)
		duration := time.Since(start)

		if err != nil {
			if ce, ok := err.(*connect.Error); ok {
				ce.Meta().Set(RequestIDHeader, requestID)
			}
			i.logger.WarnContext(ctx, "rpc error",
				"method", req.Spec().Procedure,
				"peer", req.Peer().Addr,
				"code", connect.CodeOf(err).String(),
				"duration_ms", duration.Milliseconds(),
				"error", err)
			return nil, err
		}

		resp.Header().Set(RequestIDHeader, requestID)
		i.logger.InfoContext(ctx, "rpc completed",
			"method", req.Spec().Procedure,
			"peer", req.Peer().Addr,
			"duration_ms", duration.Milliseconds())
		return resp, nil
	}
}

// WrapStreamingClient implements connect.Interceptor.
func (i *LoggingInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

// WrapStreamingHandler implements connect.Interceptor.
func (i *LoggingInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return next
}

// MetricsInterceptor records request counts and latency per procedure.
type MetricsInterceptor struct {
	metrics *metric.Registry
}

// NewMetricsInterceptor creates a new metrics interceptor. A nil registry
// records nothing.
func NewMetricsInterceptor(m *metric.Registry) *MetricsInterceptor {
	return &MetricsInterceptor{metrics: m}
}

// WrapUnary implements connect.Interceptor.
func (i *MetricsInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		i.metrics.ObserveRequest(req.Spec().Procedure, statusCode(err), time.Since(start))
		return resp, err
	}
}

// WrapStreamingClient implements connect.Interceptor.
func (i *MetricsInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

// WrapStreamingHandler implements connect.Interceptor.
func (i *MetricsInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return next
}

func statusCode(err error) string {
	if err == nil {
		return "ok"
	}
	return connect.CodeOf(err).String()
}

// RateLimitInterceptor rejects calls above a token-bucket rate with
// resource_exhausted.
type RateLimitInterceptor struct {
	limiter *rate.Limiter
}

// NewRateLimitInterceptor creates a limiter allowing perSecond calls with
// the given burst. A burst below 1 is raised to ceil(perSecond).
func NewRateLimitInterceptor(perSecond float64, burst int) *RateLimitInterceptor {
	if burst < 1 {
		burst = int(math.Max(1, math.Ceil(perSecond)))
	}
	return &RateLimitInterceptor{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// WrapUnary implements connect.Interceptor.
func (i *RateLimitInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		if !i.limiter.Allow() {
			return nil, toConnectError(domain.ErrRateLimited.WithDetails(req.Spec().Procedure))
		}
		return next(ctx, req)
	}
}

// WrapStreamingClient implements connect.Interceptor.
func (i *RateLimitInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

// WrapStreamingHandler implements connect.Interceptor.
func (i *RateLimitInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return next
}

// RecoveryInterceptor turns handler panics into internal errors.
type RecoveryInterceptor struct {
	logger *slog.Logger
}

// NewRecoveryInterceptor creates a new recovery interceptor.
func NewRecoveryInterceptor(l *slog.Logger) *RecoveryInterceptor {
	if l == nil {
		l = slog.Default()
	}
	return &RecoveryInterceptor{logger: l}
}

// WrapUnary implements connect.Interceptor.
func (i *RecoveryInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (resp connect.AnyResponse, err error) {
		defer func() {
			if r := recover(); r != nil {
				i.logger.ErrorContext(ctx, "rpc panic recovered",
					"method", req.Spec().Procedure,
					"panic", fmt.Sprint(r))
				err = toConnectError(domain.ErrInternal.WithDetails("panic recovered"))
			}
		}()
		return next(ctx, req)
	}
}

// WrapStreamingClient implements connect.Interceptor.
func (i *RecoveryInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

// WrapStreamingHandler implements connect.Interceptor.
func (i *RecoveryInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return next
}
