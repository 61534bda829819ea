package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot representa um lote de material com rastreabilidade própria.
// Criado no máximo uma vez por linha de entrada; imutável após a criação.
type Lot struct {
	ID         string
	MaterialID string
	Number     string // num_lote informado na NF
	InitialQty decimal.Decimal
	ExpiresAt  *time.Time
	CreatedAt  time.Time
}
