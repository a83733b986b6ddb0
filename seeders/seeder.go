package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDemoData fills an empty database with a small demo dataset: teams,
// categories, equipment, a few profiles and requests in various stages.
// Every seeder is idempotent and skips rows that already exist.
func SeedDemoData(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding demo data...")

	if err := seedProfiles(ctx, db); err != nil {
		log.Fatalf("seeding profiles failed: %v", err)
	}
	if err := seedTeams(ctx, db); err != nil {
		log.Fatalf("seeding teams failed: %v", err)
	}
	if err := seedCategories(ctx, db); err != nil {
		log.Fatalf("seeding categories failed: %v", err)
	}
	if err := seedEquipment(ctx, db); err != nil {
		log.Fatalf("seeding equipment failed: %v", err)
	}
	if err := seedRequests(ctx, db); err != nil {
		log.Fatalf("seeding requests failed: %v", err)
	}

	log.Println("demo data seeded")
}
