package dto

import "time"

// RegisterUserRequest payload de registro de usuário.
type RegisterUserRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"senha" validate:"required,min=8"`
	Name         string `json:"nome_completo" validate:"required"`
	Registration string `json:"matricula"`
	Role         string `json:"papel" validate:"required"`
}

// LoginRequest payload de autenticação.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

// LoginResponse token emitido e dados do usuário autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse representação de usuário nas respostas. Nunca expõe o hash.
type UserResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"nome_completo"`
	Registration string    `json:"matricula,omitempty"`
	Role         string    `json:"papel"`
	Active       bool      `json:"ativo"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserListResponse listagem paginada de usuários.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
