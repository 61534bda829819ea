package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Location representa um local físico de armazenamento (almoxarifado, pátio)
// vinculado a uma obra. Referenciado por saldos e movimentações como origem/destino.
type Location struct {
	ID          string
	ProjectID   string // obra à qual o local pertence
	Name        string
	Description string
	CapacityM3  *decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
