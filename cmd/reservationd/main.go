// Command reservationd serves the reservation RPC surface (§6): a gRPC
// listener for the reservation service plus an ancillary HTTP listener
// for health checks. Bootstrap sequencing (load config, connect
// dependencies, wire layers, serve, graceful shutdown) is adapted from
// the teacher's cmd/server/main.go.
package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/shiva/reservation/internal/config"
	"github.com/shiva/reservation/internal/httpapi"
	"github.com/shiva/reservation/internal/middleware"
	"github.com/shiva/reservation/internal/rpcservice"
	"github.com/shiva/reservation/internal/rsvppb"
	"github.com/shiva/reservation/internal/storage"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()

	pgPool, err := storage.NewPool(ctx, storage.PoolConfig{
		DSN:             cfg.Database.DSN(),
		MaxConns:        cfg.Database.MaxConnections,
		MinConns:        cfg.Database.MinConnections,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pgPool.Close()
	log.Info().Msg("postgres connected")

	var redisClient *redis.Client
	var cache *storage.PageCache
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		cache = storage.NewPageCache(redisClient)
		log.Info().Msg("redis connected")
	}

	notifier := storage.NewNotifier()
	manager := storage.NewManager(pgPool, cache, notifier)
	service := rpcservice.New(manager)

	grpcServer := grpc.NewServer()
	rsvppb.RegisterReservationServiceServer(grpcServer, service)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("rsvp.ReservationService", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Server.Addr()).Msg("failed to bind grpc listener")
	}

	go func() {
		log.Info().Str("addr", cfg.Server.Addr()).Msg("grpc server listening")
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal().Err(err).Msg("grpc server error")
		}
	}()

	httpRouter := middleware.Recoverer(middleware.RequestLogger(httpapi.NewRouter(pgPool, redisClient)))
	httpServer := &http.Server{
		Addr:         cfg.Server.HTTPAddr(),
		Handler:      httpRouter,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Server.HTTPAddr()).Msg("health http server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("health http server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	grpcServer.GracefulStop()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("health http server forced to shutdown")
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info().Msg("shutdown complete")
}
