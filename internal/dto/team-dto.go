package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type TeamDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Department  *string   `json:"department,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateTeamDTO struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Department  *string `json:"department"`
}

type UpdateTeamDTO struct {
	Name        null.String `json:"name"`
	Description null.String `json:"description"`
	Department  null.String `json:"department"`
}
