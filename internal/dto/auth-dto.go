package dto

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterDTO struct {
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=6"`
	FullName   string  `json:"full_name" validate:"required"`
	Department *string `json:"department"`
}

type AuthResponseDTO struct {
	AccessToken string     `json:"access_token"`
	Profile     ProfileDTO `json:"profile"`
}
