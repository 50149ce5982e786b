package middleware

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

const (
	clientTTL     = 3 * time.Minute
	cleanupPeriod = time.Minute
)

// RateLimiter keeps one token bucket per client address. Idle clients
// expire after clientTTL.
type RateLimiter struct {
	mu      sync.Mutex
	clients *cache.Cache
	r       rate.Limit
	burst   int
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		clients: cache.New(clientTTL, cleanupPeriod),
		r:       rate.Limit(rps),
		burst:   burst,
	}
}

func (rl *RateLimiter) get(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if v, ok := rl.clients.Get(ip); ok {
		l := v.(*rate.Limiter)
		// slide the expiry on every hit
		rl.clients.SetDefault(ip, l)
		return l
	}
	l := rate.NewLimiter(rl.r, rl.burst)
	rl.clients.SetDefault(ip, l)
	return l
}

// Allow reports whether the client may make another call now.
func (rl *RateLimiter) Allow(ip string) bool {
	return rl.get(ip).Allow()
}

// methods that should be rate limited
var limited = map[string]bool{
	svc + "Register": true,
	svc + "Login":    true,
}

func RateLimit(rl *RateLimiter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if !limited[info.FullMethod] {
			return next(ctx, req)
		}
		if !rl.Allow(clientIP(ctx)) {
			return nil, status.Error(codes.ResourceExhausted, "too many requests")
		}
		return next(ctx, req)
	}
}

// clientIP drops the port so reconnects share a bucket.
func clientIP(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
