package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/obrasoft/almoxarifado-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas read-only para o painel.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountActiveMaterials conta os materiais ativos no catálogo.
func (r *DashboardRepo) CountActiveMaterials(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM materiais WHERE ativo = true`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active materials: %w", err)
	}
	return count, nil
}

// GetStockTotals soma saldos e valor de estoque de todos os locais.
func (r *DashboardRepo) GetStockTotals(ctx context.Context) (repository.StockTotalsResult, error) {
	query := `
		SELECT COALESCE(SUM(saldo_atual * custo_medio), 0),
		       COALESCE(SUM(saldo_atual), 0)
		FROM estoque_saldo`
	var res repository.StockTotalsResult
	if err := r.pool.QueryRow(ctx, query).Scan(&res.TotalValue, &res.TotalItems); err != nil {
		return res, fmt.Errorf("stock totals: %w", err)
	}
	return res, nil
}

// GetMovementTotals conta as movimentações de um tipo desde o instante dado.
// O valor só acumula nas linhas com custo unitário informado.
func (r *DashboardRepo) GetMovementTotals(ctx context.Context, movType string, since time.Time) (repository.MovementTotalsResult, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(quantidade * custo_unitario), 0)
		FROM movimentacao
		WHERE tipo_mov = $1 AND data_mov >= $2`
	var res repository.MovementTotalsResult
	if err := r.pool.QueryRow(ctx, query, movType, since).Scan(&res.Count, &res.TotalValue); err != nil {
		return res, fmt.Errorf("movement totals: %w", err)
	}
	return res, nil
}

// CountWorkOrdersByStatus conta as ordens de serviço no status dado.
func (r *DashboardRepo) CountWorkOrdersByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ordens_servico WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count work orders: %w", err)
	}
	return count, nil
}

// GetMaterialsBelowMinimum devolve os materiais ativos com estoque mínimo
// configurado cujo saldo total (somado em todos os locais) ficou abaixo dele.
// LEFT JOIN mantém materiais sem nenhuma linha de saldo (saldo zero).
func (r *DashboardRepo) GetMaterialsBelowMinimum(ctx context.Context) ([]repository.LowStockRow, error) {
	query := `
		SELECT m.id, m.nome_material, u.sigla, m.estoque_minimo,
		       COALESCE(SUM(e.saldo_atual), 0) AS saldo_total
		FROM materiais m
		JOIN unidades_medida u ON u.id = m.id_unidade_padrao
		LEFT JOIN estoque_saldo e ON e.id_material = m.id
		WHERE m.ativo = true AND m.estoque_minimo IS NOT NULL AND m.estoque_minimo > 0
		GROUP BY m.id, m.nome_material, u.sigla, m.estoque_minimo
		HAVING COALESCE(SUM(e.saldo_atual), 0) < m.estoque_minimo
		ORDER BY saldo_total / m.estoque_minimo`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("materials below minimum: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.MaterialID, &row.MaterialName, &row.UnitSymbol,
			&row.MinStock, &row.TotalBalance); err != nil {
			return nil, fmt.Errorf("scan low stock row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetRecentMovements devolve as últimas movimentações com material, unidade e
// usuário resolvidos.
func (r *DashboardRepo) GetRecentMovements(ctx context.Context, limit int) ([]repository.RecentMovementRow, error) {
	query := `
		SELECT mv.id, mv.tipo_mov, m.nome_material, u.sigla,
		       mv.quantidade, COALESCE(p.nome_completo, ''), COALESCE(mv.observacao, ''), mv.data_mov
		FROM movimentacao mv
		JOIN materiais m ON m.id = mv.id_material
		JOIN unidades_medida u ON u.id = m.id_unidade_padrao
		LEFT JOIN profiles p ON p.id = mv.id_usuario
		ORDER BY mv.data_mov DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent movements: %w", err)
	}
	defer rows.Close()
	var list []repository.RecentMovementRow
	for rows.Next() {
		var row repository.RecentMovementRow
		if err := rows.Scan(&row.MovementID, &row.Type, &row.MaterialName, &row.UnitSymbol,
			&row.Quantity, &row.UserName, &row.Note, &row.Date); err != nil {
			return nil, fmt.Errorf("scan recent movement: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
