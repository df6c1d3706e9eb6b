package main

import (
	"github.com/TheDemonTuan/client-score-management/internal/cache"
	"github.com/TheDemonTuan/client-score-management/internal/config"
	"github.com/TheDemonTuan/client-score-management/internal/refresh"
	"github.com/TheDemonTuan/client-score-management/internal/server"
	"github.com/TheDemonTuan/client-score-management/pkg/logger"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.Get()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log := logger.Get()

	var store cache.Store
	switch cfg.CacheBackend {
	case "redis":
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		store = cache.NewRedisStore(redis.NewClient(opts), cfg.CacheTTL)
		log.Info().Msg("using redis cache backend")
	default:
		store = cache.NewMemoryStore()
		log.Info().Msg("using in-memory cache backend")
	}

	sweeper := refresh.NewSweeper(store)
	if err := sweeper.Start(cfg.RefreshInterval); err != nil {
		log.Fatal().Err(err).Msg("failed to start cache refresh sweeper")
	}
	defer sweeper.Stop()

	srv := server.New(cfg, store)
	log.Info().Str("port", cfg.Port).Str("upstream", cfg.UpstreamBaseURL).Msg("records gateway listening")
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}
