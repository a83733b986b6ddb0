package dto

import "github.com/aarondl/null/v8"

type ProfileDTO struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	FullName   string  `json:"full_name"`
	Department *string `json:"department,omitempty"`
	Role       *string `json:"role,omitempty"`
}

type ShortProfileDTO struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

// UpdateProfileDTO is a partial update: absent fields stay untouched, JSON
// null clears a nullable field.
type UpdateProfileDTO struct {
	FullName   null.String `json:"full_name"`
	Department null.String `json:"department"`
}
