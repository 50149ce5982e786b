package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"medicomeet-api/internal/config"
	"medicomeet-api/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger not configured yet
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("config")
	}
	log := logging.New(cfg.LogLevel, cfg.Pretty())
	log.Info().Str("env", cfg.Env).Msg("starting medicomeet api")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	a, err := build(cfg, log, reg)
	if err != nil {
		log.Fatal().Err(err).Msg("build")
	}

	// grpc server
	lis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		log.Fatal().Err(err).Msg("listen")
	}
	go func() {
		log.Info().Str("port", cfg.Port).Msg("grpc listening")
		if err := a.grpc.Serve(lis); err != nil {
			log.Error().Err(err).Msg("grpc")
		}
	}()

	httpSrv := &http.Server{
		Addr:         ":" + cfg.WebPort,
		Handler:      a.web,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		log.Info().Str("port", cfg.WebPort).Msg("http gateway listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("http")
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	done := make(chan struct{})
	go func() {
		a.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		a.grpc.Stop()
	}
	log.Info().Int("appointments", a.store.Len()).Msg("stopped")
}
