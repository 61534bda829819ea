package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material representa um item de estoque rastreável do almoxarifado.
// Nunca é removido fisicamente (movimentações o referenciam); a exclusão é
// lógica via Active. MinStock alimenta os alertas de estoque baixo.
type Material struct {
	ID          string
	Code        string // código interno, ex: CIM-001
	Name        string
	Description string
	Category    string
	Subcategory string
	UnitID      string // unidade de medida padrão
	MinStock    *decimal.Decimal
	MaxStock    *decimal.Decimal
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
