package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockTotalsResult resultado cru dos agregados de saldo do estoque.
type StockTotalsResult struct {
	TotalValue decimal.Decimal // soma de saldo_atual * custo_medio
	TotalItems decimal.Decimal // soma de saldo_atual
}

// MovementTotalsResult resultado cru da contagem de movimentações num período.
type MovementTotalsResult struct {
	Count      int
	TotalValue decimal.Decimal // soma de quantidade * custo_unitario (entradas)
}

// LowStockRow resultado cru da consulta de materiais abaixo do estoque mínimo.
// Saldo total somado em todos os locais; a classificação fica no caso de uso.
type LowStockRow struct {
	MaterialID   string
	MaterialName string
	UnitSymbol   string
	MinStock     decimal.Decimal
	TotalBalance decimal.Decimal
}

// RecentMovementRow resultado cru de uma movimentação recente (com joins).
type RecentMovementRow struct {
	MovementID   string
	Type         string
	MaterialName string
	UnitSymbol   string
	Quantity     decimal.Decimal
	UserName     string
	Note         string
	Date         time.Time
}

// DashboardRepository define as consultas read-only do dashboard.
// As implementações não modificam dados.
type DashboardRepository interface {
	// CountActiveMaterials conta os materiais com ativo = true.
	CountActiveMaterials(ctx context.Context) (int, error)

	// GetStockTotals soma os saldos e o valor de estoque (saldo * custo médio)
	// de todos os locais. COALESCE garante zero quando não há saldos.
	GetStockTotals(ctx context.Context) (StockTotalsResult, error)

	// GetMovementTotals conta as movimentações de um tipo desde o instante dado
	// e acumula o valor (quantidade * custo unitário) quando houver custo.
	GetMovementTotals(ctx context.Context, movType string, since time.Time) (MovementTotalsResult, error)

	// CountWorkOrdersByStatus conta as ordens de serviço no status dado.
	CountWorkOrdersByStatus(ctx context.Context, status string) (int, error)

	// GetMaterialsBelowMinimum devolve os materiais ativos com estoque mínimo
	// configurado cujo saldo total está abaixo do mínimo.
	GetMaterialsBelowMinimum(ctx context.Context) ([]LowStockRow, error)

	// GetRecentMovements devolve as últimas movimentações com material,
	// unidade e usuário resolvidos.
	GetRecentMovements(ctx context.Context, limit int) ([]RecentMovementRow, error)
}
