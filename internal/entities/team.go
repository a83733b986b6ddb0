package entities

import (
	"time"

	"github.com/google/uuid"
)

type MaintenanceTeam struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Department  *string
	CreatedAt   time.Time
}
