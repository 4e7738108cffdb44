package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"userregistry/pkg/api"
	"userregistry/pkg/config"
	"userregistry/pkg/events"
	"userregistry/pkg/logger"
	"userregistry/pkg/metrics"
	"userregistry/pkg/otel"
	"userregistry/pkg/sysinfo"
	"userregistry/pkg/user/memory"
)

const serviceName = "userregistry"

// @title User Registry API
// @version 1.0
// @description In-memory user registry with validation and metrics
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(os.Stdout, level, serviceName, otel.GetTraceID)
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error(context.Background(), "startup", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, log *logger.Logger) error {
	ctx := context.Background()

	tp, shutdownTracing, err := otel.InitTracing(log, otel.Config{
		ServiceName: serviceName,
		Host:        cfg.OtelHost,
		Probability: cfg.TraceProbability,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdownTracing(context.Background())

	m := metrics.New(prometheus.NewRegistry())
	host := sysinfo.NewHost()
	m.SetSystemMemoryTotal(host.Collect(ctx).MemoryTotalBytes)

	var pub events.Publisher = events.Nop{}
	if cfg.RedisAddr != "" {
		rp := events.NewRedisPublisher(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}), cfg.EventsChannel)
		defer rp.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := rp.Ping(pingCtx); err != nil {
			log.Warn(ctx, "redis unreachable, events may be dropped", "addr", cfg.RedisAddr, "error", err)
		}
		cancel()
		pub = rp
		log.Info(ctx, "publishing events", "addr", cfg.RedisAddr, "channel", cfg.EventsChannel)
	}

	h := api.New(memory.New(), m, host, pub, log)
	router := api.NewRouter(h, api.RouterConfig{
		Metrics:        m,
		Tracer:         tp.Tracer(serviceName),
		Log:            log,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", cfg.Addr, "tls", cfg.TLS())
		if cfg.TLS() {
			serverErrors <- srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
			return
		}
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info(ctx, "shutdown started", "signal", sig.String())
		defer log.Info(ctx, "shutdown complete")

		sctx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}
