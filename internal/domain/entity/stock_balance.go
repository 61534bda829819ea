package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBalance representa o saldo atual e o custo médio ponderado de um
// material em um local. No máximo uma linha viva por (material, local);
// saldo nunca negativo; saldo zero é estado válido, a linha não é removida.
// Projeção derivada mantida pelo motor de movimentação, não editada pelo usuário.
type StockBalance struct {
	ID         string
	MaterialID string
	LocationID string
	LotID      *string
	Quantity   decimal.Decimal // saldo_atual
	AvgCost    decimal.Decimal // custo_medio
	UpdatedAt  time.Time
}
