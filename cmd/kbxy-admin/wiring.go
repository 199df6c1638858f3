package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/clients/bestiary"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/config"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/engine/rulebased"
	monsterorch "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/orchestrators/monster"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/redis"
	collectionrepo "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/collection"
	monsterrepo "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/monster"
	tagrepo "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/tag"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/pkg/clock"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/pkg/idgen"
	monstersvc "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/services/monster"
)

var configPath string

// newService builds the full stack behind the service interface: config,
// redis client, repositories, derivation engine, bestiary client and the
// orchestrator on top. The returned cleanup closes the redis connection.
func newService() (monstersvc.Service, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	setupLogging(cfg.Log)

	redisClient, err := newRedisClient(cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to redis: %w", err)
	}
	cleanup := func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}

	monsterRepo, err := monsterrepo.NewRedis(&monsterrepo.RedisConfig{Client: redisClient})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("creating monster repository: %w", err)
	}

	tagRepo, err := tagrepo.NewRedis(&tagrepo.RedisConfig{Client: redisClient})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("creating tag repository: %w", err)
	}

	collectionRepo, err := collectionrepo.NewRedis(&collectionrepo.RedisConfig{Client: redisClient})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("creating collection repository: %w", err)
	}

	eng, err := rulebased.New(&rulebased.Config{})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("creating derivation engine: %w", err)
	}

	bestiaryClient, err := bestiary.New(&bestiary.Config{
		BaseURL:     cfg.Bestiary.BaseURL,
		HTTPTimeout: time.Duration(cfg.Bestiary.HTTPTimeout) * time.Second,
		CacheTTL:    time.Duration(cfg.Bestiary.CacheTTL) * time.Second,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("creating bestiary client: %w", err)
	}

	orchestrator, err := monsterorch.New(&monsterorch.Config{
		MonsterRepo:           monsterRepo,
		TagRepo:               tagRepo,
		CollectionRepo:        collectionRepo,
		Engine:                eng,
		BestiaryClient:        bestiaryClient,
		IDGenerator:           idgen.NewPrefixed("mon_"),
		CollectionIDGenerator: idgen.NewPrefixed("col_"),
		Clock:                 clock.New(),
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("creating orchestrator: %w", err)
	}

	return orchestrator, cleanup, nil
}

// newRedisClient prefers REDIS_URL from the environment, then the config
// file's url, then the plain endpoint.
func newRedisClient(cfg config.RedisConfig) (redis.Client, error) {
	opts := &redis.Options{
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	}

	if url := os.Getenv("REDIS_URL"); url != "" {
		return redis.NewClientFromURL(url, opts)
	}
	if cfg.URL != "" {
		return redis.NewClientFromURL(cfg.URL, opts)
	}
	return redis.NewClient(cfg.Endpoint, opts)
}

func setupLogging(cfg config.LogConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// signalContext returns a context cancelled on SIGINT or SIGTERM, so batch
// commands can stop between items instead of dying mid-write.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received shutdown signal", "signal", sig.String())
		cancel()
	}()

	return ctx, cancel
}
