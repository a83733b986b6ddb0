package entities

import (
	"time"

	"github.com/google/uuid"
)

type EquipmentStatus string

const (
	EquipmentActive   EquipmentStatus = "active"
	EquipmentInactive EquipmentStatus = "inactive"
	EquipmentScrapped EquipmentStatus = "scrapped"
)

// EquipmentStatuses in canonical display order.
var EquipmentStatuses = []EquipmentStatus{EquipmentActive, EquipmentInactive, EquipmentScrapped}

func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentActive, EquipmentInactive, EquipmentScrapped:
		return true
	}
	return false
}

type Equipment struct {
	ID                uuid.UUID
	Name              string
	SerialNumber      string
	CategoryID        *uuid.UUID
	Department        *string
	Location          *string
	MaintenanceTeamID *uuid.UUID
	PurchaseDate      *time.Time
	WarrantyExpiry    *time.Time
	Status            EquipmentStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type EquipmentCategory struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}
