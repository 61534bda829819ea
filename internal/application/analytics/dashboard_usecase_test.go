package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obrasoft/almoxarifado-api/internal/application/analytics"
	"github.com/obrasoft/almoxarifado-api/internal/application/dto"
	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
	"github.com/obrasoft/almoxarifado-api/internal/domain/repository"
)

type fakeDashboardRepo struct {
	lowStock []repository.LowStockRow
	recent   []repository.RecentMovementRow
}

func (r *fakeDashboardRepo) CountActiveMaterials(context.Context) (int, error) { return 42, nil }

func (r *fakeDashboardRepo) GetStockTotals(context.Context) (repository.StockTotalsResult, error) {
	return repository.StockTotalsResult{
		TotalValue: decimal.NewFromInt(15000),
		TotalItems: decimal.NewFromInt(870),
	}, nil
}

func (r *fakeDashboardRepo) GetMovementTotals(_ context.Context, movType string, _ time.Time) (repository.MovementTotalsResult, error) {
	if movType == entity.MovementEntry {
		return repository.MovementTotalsResult{Count: 12, TotalValue: decimal.NewFromInt(3400)}, nil
	}
	return repository.MovementTotalsResult{Count: 7}, nil
}

func (r *fakeDashboardRepo) CountWorkOrdersByStatus(context.Context, string) (int, error) {
	return 3, nil
}

func (r *fakeDashboardRepo) GetMaterialsBelowMinimum(context.Context) ([]repository.LowStockRow, error) {
	return r.lowStock, nil
}

func (r *fakeDashboardRepo) GetRecentMovements(context.Context, int) ([]repository.RecentMovementRow, error) {
	return r.recent, nil
}

func TestGetSummary_AgregaIndicadores(t *testing.T) {
	repo := &fakeDashboardRepo{
		recent: []repository.RecentMovementRow{
			{MovementID: "m1", Type: entity.MovementEntry, MaterialName: "Cimento CP-II", Quantity: decimal.NewFromInt(100)},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 42, summary.ActiveMaterials)
	assert.True(t, summary.StockTotalValue.Equal(decimal.NewFromInt(15000)))
	assert.Equal(t, 12, summary.EntriesThisMonth)
	assert.Equal(t, 7, summary.ExitsThisMonth)
	assert.Equal(t, 3, summary.ActiveWorkOrders)
	require.Len(t, summary.RecentMovements, 1)
	assert.Equal(t, "Cimento CP-II", summary.RecentMovements[0].MaterialName)
}

func TestGetLowStock_LimitaAosPioresN(t *testing.T) {
	min := decimal.NewFromInt(100)
	repo := &fakeDashboardRepo{
		// O repositório devolve do pior percentual para o melhor.
		lowStock: []repository.LowStockRow{
			{MaterialID: "m1", MaterialName: "Cimento", MinStock: min, TotalBalance: decimal.NewFromInt(10)},
			{MaterialID: "m2", MaterialName: "Areia", MinStock: min, TotalBalance: decimal.NewFromInt(50)},
			{MaterialID: "m3", MaterialName: "Brita", MinStock: min, TotalBalance: decimal.NewFromInt(90)},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	alerts, err := uc.GetLowStock(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "Cimento", alerts[0].MaterialName)
	assert.Equal(t, dto.LowStockCritical, alerts[0].Severity)
	assert.Equal(t, "Areia", alerts[1].MaterialName)

	// limite <= 0 cai no teto padrão, que comporta as três linhas.
	alerts, err = uc.GetLowStock(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, alerts, 3)
}

func TestGetSummary_ClassificaEstoqueBaixo(t *testing.T) {
	min := decimal.NewFromInt(100)
	repo := &fakeDashboardRepo{
		lowStock: []repository.LowStockRow{
			// 20 de 100 -> abaixo de 25% do mínimo: crítico
			{MaterialID: "m1", MaterialName: "Cimento", MinStock: min, TotalBalance: decimal.NewFromInt(20)},
			// 25 de 100 -> exatamente 25%: atenção
			{MaterialID: "m2", MaterialName: "Areia", MinStock: min, TotalBalance: decimal.NewFromInt(25)},
			// 80 de 100 -> atenção
			{MaterialID: "m3", MaterialName: "Brita", MinStock: min, TotalBalance: decimal.NewFromInt(80)},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.LowStockAlerts, 3)

	assert.Equal(t, dto.LowStockCritical, summary.LowStockAlerts[0].Severity)
	assert.Equal(t, dto.LowStockAttention, summary.LowStockAlerts[1].Severity)
	assert.Equal(t, dto.LowStockAttention, summary.LowStockAlerts[2].Severity)
}
