package dto

import "time"

// CreateSupplierRequest payload de criação de fornecedor.
type CreateSupplierRequest struct {
	LegalName   string `json:"razao_social" validate:"required"`
	TradeName   string `json:"nome_fantasia"`
	CNPJ        string `json:"cnpj" validate:"required"`
	ContactName string `json:"contato_nome"`
	Email       string `json:"email"`
	Phone       string `json:"telefone"`
	City        string `json:"cidade"`
	State       string `json:"estado"`
}

// UpdateSupplierRequest payload de atualização parcial de fornecedor.
type UpdateSupplierRequest struct {
	LegalName   *string `json:"razao_social"`
	TradeName   *string `json:"nome_fantasia"`
	ContactName *string `json:"contato_nome"`
	Email       *string `json:"email"`
	Phone       *string `json:"telefone"`
	City        *string `json:"cidade"`
	State       *string `json:"estado"`
}

// SupplierResponse representação de fornecedor nas respostas.
type SupplierResponse struct {
	ID          string    `json:"id"`
	LegalName   string    `json:"razao_social"`
	TradeName   string    `json:"nome_fantasia,omitempty"`
	CNPJ        string    `json:"cnpj"`
	ContactName string    `json:"contato_nome,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"telefone,omitempty"`
	City        string    `json:"cidade,omitempty"`
	State       string    `json:"estado,omitempty"`
	Active      bool      `json:"ativo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SupplierListResponse listagem de fornecedores ativos.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
}
