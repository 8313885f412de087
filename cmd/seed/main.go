package main

import (
	"context"
	"log"
	"os"

	"pastelaria/internal/config"
	"pastelaria/internal/db"
	"pastelaria/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool); err != nil {
		logger.Fatalf("seed products: %v", err)
	}

	adminPhone := os.Getenv("SEED_ADMIN_PHONE")
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPhone != "" && adminPassword != "" {
		if err := seed.EnsureAdmin(ctx, pool, "Administrator", adminPhone, adminPassword); err != nil {
			logger.Fatalf("seed admin: %v", err)
		}
		logger.Printf("admin account ensured for phone %s", adminPhone)
	}

	logger.Println("seed data applied")
}
