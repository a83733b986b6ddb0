package entities

import (
	"time"

	"github.com/google/uuid"
)

// Profile is an authenticated user of the dashboard. The id doubles as the
// identity carried in tokens and in audit records.
type Profile struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	Department   *string
	Role         *string
	PasswordHash string
	CreatedAt    time.Time
}
