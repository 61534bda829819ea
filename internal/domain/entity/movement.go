package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	MovementEntry    = "entrada"
	MovementExit     = "saida"
	MovementReturn   = "devolucao"
	MovementTransfer = "transferencia"
)

// Movement representa um lançamento imutável no razão de movimentações.
// É a trilha de auditoria do estoque: nunca é atualizado nem excluído.
// Entrada tem destino e origem nula; saída tem origem e destino nulo.
type Movement struct {
	ID             string
	Type           string // entrada, saida, devolucao, transferencia
	MaterialID     string
	Quantity       decimal.Decimal // sempre positiva
	UnitCost       *decimal.Decimal
	FromLocationID *string
	ToLocationID   *string
	LotID          *string
	UserID         string
	Note           string
	Date           time.Time
	CreatedAt      time.Time
}
