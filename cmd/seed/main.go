package main

import (
	"context"
	"log"

	"github.com/stefdorosh/portfolio-backend/config"
	"github.com/stefdorosh/portfolio-backend/internal/bootstrap"
	"github.com/stefdorosh/portfolio-backend/internal/content/domain"
	"github.com/stefdorosh/portfolio-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

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
	if err := postgres.Seed(ctx, db, domain.DefaultHeroContent()); err != nil {
		log.Fatalf("seed: %v", err)
	}

	log.Println("seed complete")
}
