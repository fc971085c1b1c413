package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/app/background"
	"github.com/LavaJover/shvark-campaign-service/internal/app/setup"
	"github.com/LavaJover/shvark-campaign-service/internal/config"
	"github.com/LavaJover/shvark-campaign-service/internal/delivery/grpcapi"
	"github.com/LavaJover/shvark-campaign-service/internal/delivery/http/handlers"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	slog.SetDefault(newLogger(cfg.LogConfig))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.InitializeDependencies(ctx, cfg, prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	defer deps.Close()

	uc := setup.InitializeUseCases(deps)

	tasks := background.NewBackgroundTasks(uc.AnalyticsUsecase, uc.ContentUsecase, deps.Subscriber)
	tasks.RollupInterval = cfg.Background.RollupInterval
	tasks.TrackingTopic = cfg.KafkaService.Topics.Tracking
	tasks.GroupID = cfg.KafkaService.Topics.GroupID
	tasks.StartAll(ctx)

	limiter := handlers.NewRateLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	defer limiter.Stop()

	opts := handlers.Options{
		JWTSecret:   cfg.Auth.JWTSecret,
		DebugErrors: cfg.Env != "prod",
		Logger:      slog.Default(),
		Ready:       deps.Ready,
		Gatherer:    prometheus.DefaultGatherer,
		Limiter:     limiter,
	}
	handler := handlers.NewHandler(
		uc.CampaignUsecase,
		uc.AnalyticsUsecase,
		uc.ContentUsecase,
		uc.AttributionUsecase,
		uc.PaymentUsecase,
		opts,
	)
	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:      handlers.NewRouter(handler, opts),
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}

	// Creating gRPC server
	grpcServer := grpc.NewServer()
	healthHandler := grpcapi.NewHealthHandler(deps.Ready)
	healthHandler.Register(grpcServer)
	lis, err := net.Listen("tcp", net.JoinHostPort(cfg.GRPCServer.Host, cfg.GRPCServer.Port))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("http server started", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		slog.Info("grpc server started", "addr", lis.Addr().String())
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		healthHandler.Watch(gctx, 15*time.Second)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("http shutdown failed", "error", err.Error())
		}
		grpcServer.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("server stopped with error", "error", err.Error())
		os.Exit(1)
	}
	slog.Info("campaign service stopped")
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	var out io.Writer = os.Stdout
	if cfg.LogOutput == "stderr" {
		out = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(out, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(out, handlerOpts))
}
