// Package stock contém serviços de domínio do estoque (custo médio ponderado).
package stock

import "github.com/shopspring/decimal"

// WeightedAverageCost calcula o novo custo médio ponderado após uma entrada.
// NovoCusto = ((SaldoAtual * CustoAtual) + (QtdEntrada * CustoEntrada)) / (SaldoAtual + QtdEntrada)
// Quando a quantidade combinada é zero (ou negativa) usa o custo da entrada,
// evitando divisão por zero.
func WeightedAverageCost(currentQty, currentCost, entryQty, entryCost decimal.Decimal) decimal.Decimal {
	total := currentQty.Add(entryQty)
	if total.LessThanOrEqual(decimal.Zero) {
		return entryCost
	}
	num := currentQty.Mul(currentCost).Add(entryQty.Mul(entryCost))
	return num.Div(total)
}
