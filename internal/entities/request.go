package entities

import (
	"time"

	"github.com/google/uuid"
)

// RequestType classifies a maintenance request: planned work vs. a reactive
// repair.
type RequestType string

const (
	TypeCorrective RequestType = "corrective"
	TypePreventive RequestType = "preventive"
)

func (t RequestType) Valid() bool {
	return t == TypeCorrective || t == TypePreventive
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type MaintenanceRequest struct {
	ID            uuid.UUID
	Subject       string
	Description   *string
	EquipmentID   uuid.UUID
	TeamID        *uuid.UUID
	Type          RequestType
	Priority      Priority
	Stage         Stage
	ScheduledDate *time.Time
	DurationHours *float64
	AssignedTo    *uuid.UUID
	CreatedBy     uuid.UUID
	// IsOverdue is derived by the store on read, never written.
	IsOverdue bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
