package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBalanceResponse saldo atual de um material em um local.
type StockBalanceResponse struct {
	MaterialID string          `json:"id_material"`
	LocationID string          `json:"id_local"`
	LotID      *string         `json:"id_lote,omitempty"`
	Quantity   decimal.Decimal `json:"saldo_atual"`
	AvgCost    decimal.Decimal `json:"custo_medio"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// StockByLocationResponse saldos positivos de um local.
type StockByLocationResponse struct {
	LocationID string                 `json:"id_local"`
	Items      []StockBalanceResponse `json:"items"`
}

// UnitResponse unidade de medida.
type UnitResponse struct {
	ID          string `json:"id"`
	Symbol      string `json:"sigla"`
	Description string `json:"descricao,omitempty"`
}
