package main

import (
	"context"
	"flag"
	"log"
	"time"

	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	"gearguard/seeders"
)

func main() {
	migrate := flag.Bool("migrate", false, "apply pending migrations before seeding")
	flag.Parse()

	cfg := config.New()

	if *migrate {
		if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer db.Close()

	seeders.SeedDemoData(db)
}
