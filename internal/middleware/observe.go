package middleware

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"medicomeet-api/internal/metrics"
)

// Observe logs each call and records its latency per method and code.
func Observe(log zerolog.Logger, m *metrics.Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		elapsed := time.Since(start)
		code := status.Code(err)
		m.ObserveRPC(info.FullMethod, code.String(), elapsed.Seconds())

		ev := log.Debug()
		switch code {
		case codes.OK:
		case codes.Internal, codes.Unknown:
			ev = log.Error().Err(err)
		default:
			ev = log.Info().Str("error", status.Convert(err).Message())
		}
		ev.Str("method", info.FullMethod).
			Str("code", code.String()).
			Dur("elapsed", elapsed).
			Msg("rpc")
		return resp, err
	}
}
