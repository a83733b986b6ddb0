package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

var profilesData = []struct {
	Email      string
	FullName   string
	Department string
	Role       string
	Password   string
}{
	{Email: "admin@gearguard.local", FullName: "Alex Admin", Department: "Maintenance", Role: "admin", Password: "admin123"},
	{Email: "jordan@gearguard.local", FullName: "Jordan Reyes", Department: "Assembly", Role: "technician", Password: "password"},
	{Email: "sam@gearguard.local", FullName: "Sam Okafor", Department: "IT", Role: "technician", Password: "password"},
}

func seedProfiles(ctx context.Context, db *pgxpool.Pool) error {
	for _, p := range profilesData {
		var exists bool
		err := db.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM profiles WHERE email = $1)", p.Email).Scan(&exists)
		if err != nil {
			return fmt.Errorf("checking profile %s: %w", p.Email, err)
		}
		if exists {
			log.Printf("  - profile %s already exists, skipping", p.Email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		_, err = db.Exec(ctx,
			`INSERT INTO profiles (email, full_name, department, role, password_hash)
			 VALUES ($1, $2, $3, $4, $5)`,
			p.Email, p.FullName, p.Department, p.Role, string(hash))
		if err != nil {
			return fmt.Errorf("inserting profile %s: %w", p.Email, err)
		}
		log.Printf("  - profile %s created", p.Email)
	}
	return nil
}
