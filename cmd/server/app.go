package main

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	"medicomeet-api/internal/booking"
	"medicomeet-api/internal/catalog"
	"medicomeet-api/internal/config"
	"medicomeet-api/internal/gateway"
	"medicomeet-api/internal/handler"
	"medicomeet-api/internal/metrics"
	"medicomeet-api/internal/middleware"
	"medicomeet-api/internal/store"
)

type app struct {
	store *store.Store
	grpc  *grpc.Server
	web   http.Handler
}

// build wires both transports over one store. Nothing listens yet.
func build(cfg config.Config, log zerolog.Logger, reg *prometheus.Registry) (*app, error) {
	// in-memory state lives as long as the process
	st := store.New()
	users := store.NewUsers()
	if err := store.SeedDemoUsers(users); err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}
	m := metrics.New(reg)

	var api booking.API = booking.NewService(catalog.Seeded(), st, log, m)
	lat := booking.Latency{Catalog: cfg.CatalogLatency, Appointments: cfg.AppointmentLatency}
	if lat.Enabled() {
		log.Info().Dur("catalog", lat.Catalog).Dur("appointments", lat.Appointments).Msg("simulated latency on")
		api = booking.NewDelayed(api, lat)
	}
	h := handler.New(api, users, cfg.JWTSecret, cfg.TokenTTL, log)

	rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	chain := middleware.Chain(
		middleware.Observe(log, m),
		middleware.RateLimit(rl),
		middleware.Auth(cfg.JWTSecret),
	)

	srv := grpc.NewServer(grpc.UnaryInterceptor(chain))
	handler.RegisterBookingServiceServer(srv, h)

	// json gateway for browsers, same handler and interceptors
	gw := gateway.New(h, chain, reg, log).TrustForwardedFor(cfg.TrustProxy)

	return &app{store: st, grpc: srv, web: gw.Routes()}, nil
}
