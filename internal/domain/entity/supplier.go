package entity

import "time"

// Supplier representa um fornecedor de materiais.
type Supplier struct {
	ID          string
	LegalName   string // razão social
	TradeName   string // nome fantasia
	CNPJ        string
	ContactName string
	Email       string
	Phone       string
	City        string
	State       string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
