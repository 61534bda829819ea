package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/obrasoft/almoxarifado-api/internal/domain/stock"
)

// Saldo de 100 a 10.00 + entrada de 50 a 16.00 => 150 a 12.00.
func TestWeightedAverageCost_BlendaEntradaComSaldo(t *testing.T) {
	got := stock.WeightedAverageCost(
		decimal.NewFromInt(100), decimal.RequireFromString("10.00"),
		decimal.NewFromInt(50), decimal.RequireFromString("16.00"),
	)
	assert.True(t, got.Equal(decimal.NewFromInt(12)),
		"custo médio esperado 12.00, obtido %s", got)
}

// Sem saldo anterior o custo médio é o custo da própria entrada.
func TestWeightedAverageCost_SaldoZeradoUsaCustoDaEntrada(t *testing.T) {
	got := stock.WeightedAverageCost(
		decimal.Zero, decimal.Zero,
		decimal.NewFromInt(100), decimal.RequireFromString("34.50"),
	)
	assert.True(t, got.Equal(decimal.RequireFromString("34.50")))
}

// Quantidade combinada zero não divide por zero: devolve o custo da entrada.
func TestWeightedAverageCost_QuantidadeCombinadaZero(t *testing.T) {
	got := stock.WeightedAverageCost(
		decimal.Zero, decimal.RequireFromString("9.99"),
		decimal.Zero, decimal.RequireFromString("5.00"),
	)
	assert.True(t, got.Equal(decimal.RequireFromString("5.00")))
}
