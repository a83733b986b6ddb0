package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type ShortEquipmentDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SerialNumber string `json:"serial_number"`
}

type ShortTeamDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RequestDTO struct {
	ID            string             `json:"id"`
	Subject       string             `json:"subject"`
	Description   *string            `json:"description,omitempty"`
	Type          string             `json:"type"`
	Priority      string             `json:"priority"`
	Stage         string             `json:"stage"`
	Equipment     ShortEquipmentDTO  `json:"equipment"`
	Team          *ShortTeamDTO      `json:"team,omitempty"`
	Assigned      *ShortProfileDTO   `json:"assigned,omitempty"`
	Creator       ShortProfileDTO    `json:"creator"`
	ScheduledDate *string            `json:"scheduled_date,omitempty"`
	DurationHours *float64           `json:"duration_hours,omitempty"`
	IsOverdue     bool               `json:"is_overdue"`
	CreatedAt     time.Time          `json:"created_at"`
}

type CreateRequestDTO struct {
	Subject       string   `json:"subject" validate:"required"`
	EquipmentID   string   `json:"equipment_id" validate:"required,uuid"`
	TeamID        *string  `json:"team_id" validate:"omitempty,uuid"`
	Type          string   `json:"type" validate:"required,request_type"`
	Priority      string   `json:"priority" validate:"required,priority"`
	Description   *string  `json:"description"`
	ScheduledDate *string  `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	DurationHours *float64 `json:"duration_hours" validate:"omitempty,gte=0"`
	AssignedTo    *string  `json:"assigned_to" validate:"omitempty,uuid"`
}

// UpdateRequestDTO covers field edits only; the stage moves exclusively
// through the transition endpoint so every stage change is audited.
type UpdateRequestDTO struct {
	Subject       null.String  `json:"subject"`
	EquipmentID   null.String  `json:"equipment_id"`
	TeamID        null.String  `json:"team_id"`
	Type          null.String  `json:"type"`
	Priority      null.String  `json:"priority"`
	Description   null.String  `json:"description"`
	ScheduledDate null.String  `json:"scheduled_date"`
	DurationHours null.Float64 `json:"duration_hours"`
	AssignedTo    null.String  `json:"assigned_to"`
}

type TransitionRequestDTO struct {
	Stage string `json:"stage" validate:"required,stage"`
}

type RequestFilterDTO struct {
	Stage  string
	Type   string
	Search string
}

type HistoryEntryDTO struct {
	ID        string          `json:"id"`
	RequestID string          `json:"request_id"`
	OldStage  string          `json:"old_stage"`
	NewStage  string          `json:"new_stage"`
	ChangedBy ShortProfileDTO `json:"changed_by"`
	ChangedAt time.Time       `json:"changed_at"`
}

type BoardColumnDTO struct {
	Stage    string       `json:"stage"`
	Count    int          `json:"count"`
	Requests []RequestDTO `json:"requests"`
}
