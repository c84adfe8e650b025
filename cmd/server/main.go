package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zoo-arcadia/arcadia-gateway/internal/api"
	"github.com/zoo-arcadia/arcadia-gateway/internal/cache"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/ports"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/service"
	"github.com/zoo-arcadia/arcadia-gateway/internal/infrastructure/config"
	redisinfra "github.com/zoo-arcadia/arcadia-gateway/internal/infrastructure/db/redis"
	"github.com/zoo-arcadia/arcadia-gateway/internal/session"
	"github.com/zoo-arcadia/arcadia-gateway/internal/upstream"
	"github.com/zoo-arcadia/arcadia-gateway/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// @title        Zoo Arcadia Gateway API
// @version      1.0
// @description  Session, authentication and content gateway in front of the Zoo Arcadia REST backend.
// @BasePath     /
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Credential tokens persist in Redis; the in-memory store is for
	// development and single-instance deployments.
	var (
		tokens ports.TokenStore
		rdb    *redis.Client
	)
	if cfg.Session.Store == "redis" {
		var err error
		rdb, err = redisinfra.Connect(ctx, redisinfra.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		tokens = redisinfra.NewTokenStore(rdb)
	} else {
		tokens = session.NewMemoryTokenStore()
	}

	sessions := session.NewStore(tokens, cfg.Session.TTL, log)
	zoo := upstream.NewClient(upstream.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
	}, log)
	auth := service.NewAuthService(zoo, sessions, log)

	publicCache := cache.NewPublic(cfg.Cache.TTL)
	if cfg.Cache.RefreshInterval > 0 {
		refresher := cache.NewRefresher(publicCache, []cache.Source{
			{Key: cache.KeyAnimals, Fetch: func(ctx context.Context) (any, error) { return zoo.ListAnimals(ctx) }},
			{Key: cache.KeyHabitats, Fetch: func(ctx context.Context) (any, error) { return zoo.ListHabitats(ctx) }},
			{Key: cache.KeyServices, Fetch: func(ctx context.Context) (any, error) { return zoo.ListServices(ctx) }},
			{Key: cache.KeyReviews, Fetch: func(ctx context.Context) (any, error) { return zoo.ListReviews(ctx) }},
		}, cfg.Cache.RefreshInterval, log)
		refresher.Start(ctx)
	}

	e := api.NewRouter(api.RouterConfig{
		CookieName: cfg.Session.CookieName,
		CookieTTL:  cfg.Session.TTL,
	}, sessions, auth, zoo, publicCache, rdb, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("upstream", cfg.Upstream.BaseURL).Msg("gateway listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
