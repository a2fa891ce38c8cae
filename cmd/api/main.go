package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kelu/tote/app"
	"github.com/kelu/tote/app/api"
	"github.com/kelu/tote/app/database"
	apiDoc "github.com/kelu/tote/app/doc"
	"github.com/kelu/tote/app/markets"
	"github.com/kelu/tote/app/stream"
	"github.com/kelu/tote/app/wagers"
	"github.com/kelu/tote/app/wallet"
	_ "github.com/kelu/tote/docs"
	"github.com/kelu/tote/internal/cache"
	"github.com/kelu/tote/internal/events"
	"github.com/kelu/tote/internal/logger"
	"github.com/kelu/tote/internal/sanitizer"
)

// @title Tote API
// @version 1.0
// @description Pari-mutuel betting markets: open a market, stake on an outcome, resolve, claim winnings.

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey AccountAuth
// @in header
// @name X-Account-ID
// @description Account UUID of the caller.
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	appLogger := logger.NewZeroLogger(os.Stdout, logLevel(cfg.LogLevel))

	db, err := database.New(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var redisOpts *cache.RedisOptions
	if cfg.CacheBackend == cache.RedisBackend || cfg.PublishEvents {
		redisOpts = &cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}
	}

	oddsCache, err := cache.New[markets.OddsResponse](cfg.CacheBackend, redisOpts)
	if err != nil {
		log.Fatal("Failed to create odds cache:", err)
	}

	bus := events.NewMemoryBus()
	defer bus.Close()

	var publisher events.Publisher = bus
	if cfg.PublishEvents {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		publisher = events.Multi{bus, events.NewRedisPublisher(client, events.DefaultChannel)}
	}

	cleaner := sanitizer.NewTextCleaner()

	r := gin.Default()
	r.Use(api.CorsMiddleware())

	apiV1 := r.Group("/api/v1")
	apiV1.GET("/healthz", api.HealthCheck)

	markets.Init(apiV1, markets.Dependencies{
		DB:        db,
		Config:    &cfg.Markets,
		Cleaner:   cleaner,
		OddsCache: oddsCache,
		Publisher: publisher,
		Logger:    appLogger,
	})
	wagers.Init(apiV1, wagers.Dependencies{
		DB: db,
		Config: &wagers.Config{
			Params:       cfg.Markets.Params,
			FeeAccountID: cfg.Markets.FeeAccountID,
		},
		OddsCache: oddsCache,
		Publisher: publisher,
		Logger:    appLogger,
	})
	wallet.Init(apiV1, wallet.Dependencies{
		DB:     db,
		Config: &wallet.Config{Params: cfg.Markets.Params},
		Logger: appLogger,
	})
	stream.Init(apiV1, stream.Dependencies{
		Bus:    bus,
		Logger: appLogger,
	})
	apiDoc.Init(r, cfg.Env)

	appLogger.Info("starting api server", logger.Fields{
		"host": cfg.AppHost,
		"port": cfg.AppPort,
		"env":  cfg.Env,
	})
	if err := r.Run(fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func logLevel(name string) logger.Level {
	switch name {
	case "debug":
		return logger.LevelDebug
	case "error":
		return logger.LevelError
	case "off":
		return logger.LevelOff
	default:
		return logger.LevelInfo
	}
}
