package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/mmynk/scribe/internal/metrics"
)

// LoggingInterceptor logs every RPC call and records its latency.
// It logs the procedure name, user ID, duration, and any error codes/messages.
type LoggingInterceptor struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

var _ connect.Interceptor = (*LoggingInterceptor)(nil)

// NewLoggingInterceptor returns a LoggingInterceptor. m may be nil.
func NewLoggingInterceptor(logger *slog.Logger, m *metrics.Metrics) *LoggingInterceptor {
	return &LoggingInterceptor{logger: logger, metrics: m}
}

func (l *LoggingInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		if req.Spec().IsClient {
			return next(ctx, req)
		}
		start := time.Now()
		resp, err := next(ctx, req)
		l.log(ctx, "RPC", req.Spec().Procedure, start, err)
		return resp, err
	}
}

func (l *LoggingInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (l *LoggingInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		start := time.Now()
		l.logger.Info("RPC stream opened",
			"procedure", conn.Spec().Procedure,
			"user_id", GetUserID(ctx),
		)
		err := next(ctx, conn)
		l.log(ctx, "RPC stream", conn.Spec().Procedure, start, err)
		return err
	}
}

func (l *LoggingInterceptor) log(ctx context.Context, kind, procedure string, start time.Time, err error) {
	userID := GetUserID(ctx) // empty if pre-auth
	elapsed := time.Since(start)
	duration := elapsed.Milliseconds()

	if err == nil {
		l.metrics.ObserveRPC(procedure, "ok", elapsed)
		l.logger.Info(kind+" ok",
			"procedure", procedure,
			"user_id", userID,
			"duration_ms", duration,
		)
		return
	}

	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		l.metrics.ObserveRPC(procedure, connectErr.Code().String(), elapsed)
		l.logger.Warn(kind+" error",
			"procedure", procedure,
			"code", connectErr.Code(),
			"error", connectErr.Message(),
			"user_id", userID,
			"duration_ms", duration,
		)
		return
	}
	l.metrics.ObserveRPC(procedure, connect.CodeUnknown.String(), elapsed)
	l.logger.Error(kind+" error",
		"procedure", procedure,
		"error", err,
		"user_id", userID,
		"duration_ms", duration,
	)
}
