package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"attest/internal/events"
	"attest/internal/events/kafka"
	"attest/internal/platform/config"
	"attest/internal/platform/httpserver"
	"attest/internal/platform/logger"
	platformredis "attest/internal/platform/redis"
	"attest/internal/registry"
	registrymetrics "attest/internal/registry/metrics"
	"attest/internal/registry/service"
	indexstore "attest/internal/registry/store/index"
	profilestore "attest/internal/registry/store/profile"
	skillstore "attest/internal/registry/store/skill"
	"attest/internal/token"
	httptransport "attest/internal/transport/http"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal service packages.
func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		profiles service.ProfileStore
		skills   service.SkillStore
	)
	if cfg.PostgresURL != "" {
		db, err := sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			log.Error("failed to open postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Error("failed to ping postgres", "error", err)
			os.Exit(1)
		}
		if err := profilestore.EnsureSchema(ctx, db); err != nil {
			log.Error("failed to apply schema", "error", err)
			os.Exit(1)
		}
		if err := skillstore.EnsureSchema(ctx, db); err != nil {
			log.Error("failed to apply schema", "error", err)
			os.Exit(1)
		}
		profiles = profilestore.NewPostgres(db)
		skills = skillstore.NewPostgres(db)
		log.Info("using postgres stores")
	} else {
		profiles = profilestore.NewInMemory()
		skills = skillstore.NewInMemory()
		log.Info("using in-memory stores")
	}

	var index service.SkillIndex
	if redisClient, err := platformredis.New(ctx, cfg.RedisURL); err != nil {
		log.Error("failed to connect redis", "error", err)
		os.Exit(1)
	} else if redisClient != nil {
		defer redisClient.Close()
		index = indexstore.NewRedis(redisClient.Client)
		log.Info("using redis skill index")
	} else {
		index = indexstore.NewInMemory()
	}

	var sink events.Sink
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink, err := kafka.New(ctx, cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Error("failed to connect kafka", "error", err)
			os.Exit(1)
		}
		defer kafkaSink.Close()
		sink = kafkaSink
		log.Info("publishing events to kafka", "topic", cfg.KafkaTopic)
	} else {
		sink = events.NewInMemoryStore()
		log.Info("events retained in memory only")
	}

	bus := events.NewBus(cfg.EventBuffer)
	tokens := token.NewService(cfg.JWTSigningKey, cfg.JWTIssuer)

	svc := registry.NewService(profiles, skills, index,
		service.WithPublisher(bus),
		service.WithMetrics(registrymetrics.New()),
		service.WithLogger(log),
	)
	router := httptransport.NewRouter(registry.NewHandler(svc, tokens, log), log)
	srv := httpserver.New(cfg.Addr, router)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := events.NewRelay(bus, sink, log).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		log.Info("starting attest registry", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
