package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLocationRequest payload de criação de local físico.
type CreateLocationRequest struct {
	ProjectID   string           `json:"id_obra" validate:"required"`
	Name        string           `json:"nome_local" validate:"required"`
	Description string           `json:"descricao"`
	CapacityM3  *decimal.Decimal `json:"capacidade_m3"`
}

// UpdateLocationRequest payload de atualização parcial de local.
type UpdateLocationRequest struct {
	Name        *string          `json:"nome_local"`
	Description *string          `json:"descricao"`
	CapacityM3  *decimal.Decimal `json:"capacidade_m3"`
}

// LocationResponse representação de local nas respostas.
type LocationResponse struct {
	ID          string           `json:"id"`
	ProjectID   string           `json:"id_obra"`
	Name        string           `json:"nome_local"`
	Description string           `json:"descricao,omitempty"`
	CapacityM3  *decimal.Decimal `json:"capacidade_m3,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// LocationListResponse listagem paginada de locais.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
