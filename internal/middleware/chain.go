package middleware

import (
	"context"

	"google.golang.org/grpc"
)

// Chain folds interceptors into one, outermost first. The gRPC server and
// the HTTP gateway share the result so both paths enforce the same rules.
func Chain(ics ...grpc.UnaryServerInterceptor) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		h := next
		for i := len(ics) - 1; i >= 0; i-- {
			ic, inner := ics[i], h
			h = func(ctx context.Context, req any) (any, error) {
				return ic(ctx, req, info, inner)
			}
		}
		return h(ctx, req)
	}
}
