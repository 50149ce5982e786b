package middleware

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"medicomeet-api/internal/auth"
	"medicomeet-api/internal/model"
)

type ctxKey string

const (
	UserIDKey ctxKey = "uid"
	RoleKey   ctxKey = "role"
)

const svc = "/medicomeet.v1.BookingService/"

// skip auth for these
var open = map[string]bool{
	svc + "Register":                    true,
	svc + "Login":                       true,
	svc + "ListSpecializations":         true,
	svc + "ListDoctors":                 true,
	svc + "GetDoctor":                   true,
	svc + "ListDoctorsBySpecialization": true,
	svc + "SearchDoctors":               true,
	svc + "GetDoctorAvailability":       true,
}

// admin dashboard only
var adminOnly = map[string]bool{
	svc + "ListAllAppointments": true,
	svc + "FilterAppointments":  true,
	svc + "GetOverview":         true,
}

func Auth(secret string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if open[info.FullMethod] {
			return next(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		// token from Authorization: Bearer <jwt>
		raw := ""
		vals := md.Get("authorization")
		if len(vals) > 0 {
			raw = strings.TrimPrefix(vals[0], "Bearer ")
		}

		if raw == "" {
			return nil, status.Error(codes.Unauthenticated, "no token")
		}

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "bad token")
		}

		if adminOnly[info.FullMethod] && claims.Role != model.RoleAdmin {
			return nil, status.Error(codes.PermissionDenied, "admin only")
		}

		ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		return next(ctx, req)
	}
}

// UserID is empty when the call was not authenticated.
func UserID(ctx context.Context) string {
	v, _ := ctx.Value(UserIDKey).(string)
	return v
}

func Role(ctx context.Context) model.Role {
	v, _ := ctx.Value(RoleKey).(model.Role)
	return v
}
