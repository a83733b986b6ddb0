package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedTeams(ctx context.Context, db *pgxpool.Pool) error {
	for _, t := range teamsData {
		var exists bool
		err := db.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM maintenance_teams WHERE name = $1)", t.Name).Scan(&exists)
		if err != nil {
			return fmt.Errorf("checking team %s: %w", t.Name, err)
		}
		if exists {
			log.Printf("  - team %s already exists, skipping", t.Name)
			continue
		}

		_, err = db.Exec(ctx,
			`INSERT INTO maintenance_teams (name, description, department) VALUES ($1, $2, $3)`,
			t.Name, t.Description, t.Department)
		if err != nil {
			return fmt.Errorf("inserting team %s: %w", t.Name, err)
		}
		log.Printf("  - team %s created", t.Name)
	}
	return nil
}

func seedCategories(ctx context.Context, db *pgxpool.Pool) error {
	for _, name := range categoriesData {
		var exists bool
		err := db.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM equipment_categories WHERE name = $1)", name).Scan(&exists)
		if err != nil {
			return fmt.Errorf("checking category %s: %w", name, err)
		}
		if exists {
			continue
		}

		if _, err := db.Exec(ctx,
			"INSERT INTO equipment_categories (name) VALUES ($1)", name); err != nil {
			return fmt.Errorf("inserting category %s: %w", name, err)
		}
		log.Printf("  - category %s created", name)
	}
	return nil
}
