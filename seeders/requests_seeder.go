package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedRequests(ctx context.Context, db *pgxpool.Pool) error {
	for _, r := range requestsData {
		var exists bool
		err := db.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM maintenance_requests WHERE subject = $1)", r.Subject).Scan(&exists)
		if err != nil {
			return fmt.Errorf("checking request %q: %w", r.Subject, err)
		}
		if exists {
			log.Printf("  - request %q already exists, skipping", r.Subject)
			continue
		}

		var description, scheduledDate *string
		if r.Description != "" {
			description = &r.Description
		}
		if r.ScheduledDate != "" {
			scheduledDate = &r.ScheduledDate
		}

		_, err = db.Exec(ctx,
			`INSERT INTO maintenance_requests
				(subject, description, equipment_id, team_id, created_by, type, priority, stage, scheduled_date)
			 VALUES (
				$1, $2,
				(SELECT id FROM equipment WHERE name = $3),
				(SELECT id FROM maintenance_teams WHERE name = $4),
				(SELECT id FROM profiles WHERE email = 'admin@gearguard.local'),
				$5, $6, $7, $8::date
			 )`,
			r.Subject, description, r.Equipment, r.Team, r.Type, r.Priority, r.Stage, scheduledDate)
		if err != nil {
			return fmt.Errorf("inserting request %q: %w", r.Subject, err)
		}
		log.Printf("  - request %q created", r.Subject)
	}
	return nil
}
