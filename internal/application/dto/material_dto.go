package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest payload de criação de material.
type CreateMaterialRequest struct {
	Code        string           `json:"codigo" validate:"required"`
	Name        string           `json:"nome_material" validate:"required"`
	Description string           `json:"descricao"`
	Category    string           `json:"categoria"`
	Subcategory string           `json:"subcategoria"`
	UnitID      string           `json:"id_unidade_padrao" validate:"required"`
	MinStock    *decimal.Decimal `json:"estoque_minimo"`
	MaxStock    *decimal.Decimal `json:"estoque_maximo"`
}

// UpdateMaterialRequest payload de atualização parcial de material.
type UpdateMaterialRequest struct {
	Name        *string          `json:"nome_material"`
	Description *string          `json:"descricao"`
	Category    *string          `json:"categoria"`
	Subcategory *string          `json:"subcategoria"`
	UnitID      *string          `json:"id_unidade_padrao"`
	MinStock    *decimal.Decimal `json:"estoque_minimo"`
	MaxStock    *decimal.Decimal `json:"estoque_maximo"`
}

// MaterialResponse representação de material nas respostas.
type MaterialResponse struct {
	ID          string           `json:"id"`
	Code        string           `json:"codigo"`
	Name        string           `json:"nome_material"`
	Description string           `json:"descricao,omitempty"`
	Category    string           `json:"categoria,omitempty"`
	Subcategory string           `json:"subcategoria,omitempty"`
	UnitID      string           `json:"id_unidade_padrao"`
	MinStock    *decimal.Decimal `json:"estoque_minimo,omitempty"`
	MaxStock    *decimal.Decimal `json:"estoque_maximo,omitempty"`
	Active      bool             `json:"ativo"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// MaterialListResponse listagem paginada de materiais.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
