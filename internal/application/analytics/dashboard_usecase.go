// Package analytics contém o caso de uso do painel do almoxarifado:
// indicadores de estoque, alertas de mínimo e movimentações recentes.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/obrasoft/almoxarifado-api/internal/application/dto"
	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
	"github.com/obrasoft/almoxarifado-api/internal/domain/repository"
)

const (
	dashboardRecentMovements = 10 // linhas no widget de movimentações recentes
	defaultLowStockLimit     = 20 // teto padrão da lista de estoque baixo
)

// DashboardUseCase monta o resumo do painel a partir de consultas read-only.
// Não acessa as tabelas diretamente; delega tudo no repositório.
type DashboardUseCase struct {
	dashRepo repository.DashboardRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(dashRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashRepo: dashRepo}
}

// GetSummary constrói o DashboardSummaryDTO.
//
// Seis consultas em paralelo:
//  1. CountActiveMaterials          → MateriaisAtivos
//  2. GetStockTotals                → valor e itens em estoque
//  3. GetMovementTotals(entrada)    → entradas do mês + valor
//  4. GetMovementTotals(saida)      → saídas do mês
//  5. CountWorkOrdersByStatus       → OS ativas
//  6. GetMaterialsBelowMinimum      → alertas de estoque baixo
//
// As movimentações recentes vêm na sequência (dependem de pouco e fecham o DTO).
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type countResult struct {
		n   int
		err error
	}
	type totalsResult struct {
		totals repository.StockTotalsResult
		err    error
	}
	type movTotalsResult struct {
		totals repository.MovementTotalsResult
		err    error
	}
	type lowStockResult struct {
		rows []repository.LowStockRow
		err  error
	}

	materialsCh := make(chan countResult, 1)
	stockCh := make(chan totalsResult, 1)
	entriesCh := make(chan movTotalsResult, 1)
	exitsCh := make(chan movTotalsResult, 1)
	ordersCh := make(chan countResult, 1)
	lowCh := make(chan lowStockResult, 1)

	go func() {
		n, err := uc.dashRepo.CountActiveMaterials(ctx)
		materialsCh <- countResult{n, err}
	}()
	go func() {
		t, err := uc.dashRepo.GetStockTotals(ctx)
		stockCh <- totalsResult{t, err}
	}()
	go func() {
		t, err := uc.dashRepo.GetMovementTotals(ctx, entity.MovementEntry, monthStart)
		entriesCh <- movTotalsResult{t, err}
	}()
	go func() {
		t, err := uc.dashRepo.GetMovementTotals(ctx, entity.MovementExit, monthStart)
		exitsCh <- movTotalsResult{t, err}
	}()
	go func() {
		n, err := uc.dashRepo.CountWorkOrdersByStatus(ctx, entity.WorkOrderActive)
		ordersCh <- countResult{n, err}
	}()
	go func() {
		rows, err := uc.dashRepo.GetMaterialsBelowMinimum(ctx)
		lowCh <- lowStockResult{rows, err}
	}()

	materials := <-materialsCh
	stockTotals := <-stockCh
	entries := <-entriesCh
	exits := <-exitsCh
	orders := <-ordersCh
	low := <-lowCh

	if materials.err != nil {
		return nil, fmt.Errorf("dashboard: materiais ativos: %w", materials.err)
	}
	if stockTotals.err != nil {
		return nil, fmt.Errorf("dashboard: totais de estoque: %w", stockTotals.err)
	}
	if entries.err != nil {
		return nil, fmt.Errorf("dashboard: entradas do mês: %w", entries.err)
	}
	if exits.err != nil {
		return nil, fmt.Errorf("dashboard: saídas do mês: %w", exits.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("dashboard: OS ativas: %w", orders.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: estoque baixo: %w", low.err)
	}

	recent, err := uc.dashRepo.GetRecentMovements(ctx, dashboardRecentMovements)
	if err != nil {
		return nil, fmt.Errorf("dashboard: movimentações recentes: %w", err)
	}

	return &dto.DashboardSummaryDTO{
		ActiveMaterials:  materials.n,
		StockTotalValue:  stockTotals.totals.TotalValue.Round(2),
		StockTotalItems:  stockTotals.totals.TotalItems,
		EntriesThisMonth: entries.totals.Count,
		EntriesValue:     entries.totals.TotalValue.Round(2),
		ExitsThisMonth:   exits.totals.Count,
		ActiveWorkOrders: orders.n,
		LowStockAlerts:   classifyLowStock(low.rows),
		RecentMovements:  toRecentMovements(recent),
	}, nil
}

// GetLowStock lista os materiais abaixo do estoque mínimo com severidade,
// ordenados do pior percentual para o melhor, limitados aos piores N.
// limit <= 0 usa o teto padrão.
func (uc *DashboardUseCase) GetLowStock(ctx context.Context, limit int) ([]dto.LowStockAlertDTO, error) {
	if limit <= 0 {
		limit = defaultLowStockLimit
	}
	rows, err := uc.dashRepo.GetMaterialsBelowMinimum(ctx)
	if err != nil {
		return nil, fmt.Errorf("estoque baixo: %w", err)
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return classifyLowStock(rows), nil
}

// classifyLowStock converte as linhas cruas em alertas com severidade:
// crítico abaixo de 25% do mínimo, atenção entre 25% e 99%.
func classifyLowStock(rows []repository.LowStockRow) []dto.LowStockAlertDTO {
	quarter := decimal.NewFromFloat(0.25)
	alerts := make([]dto.LowStockAlertDTO, 0, len(rows))
	for _, row := range rows {
		severity := dto.LowStockAttention
		if row.TotalBalance.LessThan(row.MinStock.Mul(quarter)) {
			severity = dto.LowStockCritical
		}
		alerts = append(alerts, dto.LowStockAlertDTO{
			MaterialID:   row.MaterialID,
			MaterialName: row.MaterialName,
			UnitSymbol:   row.UnitSymbol,
			MinStock:     row.MinStock,
			TotalBalance: row.TotalBalance,
			Severity:     severity,
		})
	}
	return alerts
}

func toRecentMovements(rows []repository.RecentMovementRow) []dto.RecentMovementDTO {
	list := make([]dto.RecentMovementDTO, 0, len(rows))
	for _, row := range rows {
		list = append(list, dto.RecentMovementDTO{
			MovementID:   row.MovementID,
			Type:         row.Type,
			MaterialName: row.MaterialName,
			UnitSymbol:   row.UnitSymbol,
			Quantity:     row.Quantity,
			UserName:     row.UserName,
			Note:         row.Note,
			Date:         row.Date,
		})
	}
	return list
}
