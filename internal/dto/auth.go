package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"anna@example.com"`
	Name     string `json:"name" validate:"required,min=2,max=100" example:"Anna"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"anna@example.com"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type UpdateProfileRequestDTO struct {
	Email string `json:"email" validate:"required,email" example:"anna@example.com"`
	Name  string `json:"name" validate:"required,min=2,max=100" example:"Anna"`
}

type ProfileResponseDTO struct {
	ID    int    `json:"id" example:"1"`
	Email string `json:"email" example:"anna@example.com"`
	Name  string `json:"name" example:"Anna"`
}
