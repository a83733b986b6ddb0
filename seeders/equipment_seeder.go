package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedEquipment(ctx context.Context, db *pgxpool.Pool) error {
	for _, e := range equipmentData {
		var exists bool
		err := db.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM equipment WHERE serial_number = $1)", e.SerialNumber).Scan(&exists)
		if err != nil {
			return fmt.Errorf("checking equipment %s: %w", e.SerialNumber, err)
		}
		if exists {
			log.Printf("  - equipment %s already exists, skipping", e.SerialNumber)
			continue
		}

		_, err = db.Exec(ctx,
			`INSERT INTO equipment (name, serial_number, category_id, department, location, maintenance_team_id, status)
			 VALUES (
				$1, $2,
				(SELECT id FROM equipment_categories WHERE name = $3),
				$4, $5,
				(SELECT id FROM maintenance_teams WHERE name = $6),
				$7
			 )`,
			e.Name, e.SerialNumber, e.Category, e.Department, e.Location, e.Team, e.Status)
		if err != nil {
			return fmt.Errorf("inserting equipment %s: %w", e.SerialNumber, err)
		}
		log.Printf("  - equipment %s created", e.Name)
	}
	return nil
}
