package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type ShortCategoryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EquipmentDTO struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	SerialNumber   string            `json:"serial_number"`
	Category       *ShortCategoryDTO `json:"category,omitempty"`
	Department     *string           `json:"department,omitempty"`
	Location       *string           `json:"location,omitempty"`
	Team           *ShortTeamDTO     `json:"maintenance_team,omitempty"`
	PurchaseDate   *string           `json:"purchase_date,omitempty"`
	WarrantyExpiry *string           `json:"warranty_expiry,omitempty"`
	Status         string            `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
}

type CreateEquipmentDTO struct {
	Name              string  `json:"name" validate:"required"`
	SerialNumber      string  `json:"serial_number" validate:"required"`
	CategoryID        *string `json:"category_id" validate:"omitempty,uuid"`
	Department        *string `json:"department"`
	Location          *string `json:"location"`
	MaintenanceTeamID *string `json:"maintenance_team_id" validate:"omitempty,uuid"`
	PurchaseDate      *string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	WarrantyExpiry    *string `json:"warranty_expiry" validate:"omitempty,datetime=2006-01-02"`
	Status            string  `json:"status" validate:"required,equipment_status"`
}

type UpdateEquipmentDTO struct {
	Name              null.String `json:"name"`
	SerialNumber      null.String `json:"serial_number"`
	CategoryID        null.String `json:"category_id"`
	Department        null.String `json:"department"`
	Location          null.String `json:"location"`
	MaintenanceTeamID null.String `json:"maintenance_team_id"`
	PurchaseDate      null.String `json:"purchase_date"`
	WarrantyExpiry    null.String `json:"warranty_expiry"`
	Status            null.String `json:"status"`
}

type CategoryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateCategoryDTO struct {
	Name string `json:"name" validate:"required"`
}
