package main

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stefdorosh/portfolio-backend/config"
	"github.com/stefdorosh/portfolio-backend/internal/bootstrap"
	"github.com/stefdorosh/portfolio-backend/internal/content/cache"
	"github.com/stefdorosh/portfolio-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{
		DSN:      cfg.Database.DSN,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	var contentCache *cache.Cache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		contentCache = cache.New(client, time.Duration(cfg.Redis.CacheTTL)*time.Second)
		if err := contentCache.Ping(ctx); err != nil {
			log.Printf("redis unreachable, caching disabled: %v", err)
			contentCache = nil
		}
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "portfolio-backend",
		Version:     cfg.App.Version,
		AdminToken:  cfg.Admin.Token,
		DB:          db,
		Cache:       contentCache,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
