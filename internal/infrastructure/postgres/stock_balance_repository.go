package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
	"github.com/obrasoft/almoxarifado-api/internal/domain/repository"
)

var _ repository.StockBalanceRepository = (*StockBalanceRepo)(nil)

// StockBalanceRepo implementação de StockBalanceRepository sobre PostgreSQL
// (usável com pool ou tx).
type StockBalanceRepo struct {
	q Querier
}

// NewStockBalanceRepository constrói o adaptador de saldo. Passar pool ou tx (Querier).
func NewStockBalanceRepository(q Querier) *StockBalanceRepo {
	return &StockBalanceRepo{q: q}
}

const balanceColumns = "id, id_material, id_local, id_lote, saldo_atual, custo_medio, updated_at"

// Get obtém o saldo atual de um material em um local. Sem linha devolve um
// stub com ID vazio e saldo zero (o motor decide criar ou tratar como no-op).
func (r *StockBalanceRepo) Get(materialID, locationID string) (*entity.StockBalance, error) {
	query := `
		SELECT ` + balanceColumns + `
		FROM estoque_saldo WHERE id_material = $1 AND id_local = $2`
	return r.scanOne(query, materialID, locationID, "get stock balance")
}

// GetForUpdate obtém o saldo e bloqueia a linha (SELECT ... FOR UPDATE).
func (r *StockBalanceRepo) GetForUpdate(materialID, locationID string) (*entity.StockBalance, error) {
	query := `
		SELECT ` + balanceColumns + `
		FROM estoque_saldo WHERE id_material = $1 AND id_local = $2
		FOR UPDATE`
	return r.scanOne(query, materialID, locationID, "get stock balance for update")
}

func (r *StockBalanceRepo) scanOne(query, materialID, locationID, op string) (*entity.StockBalance, error) {
	var b entity.StockBalance
	err := r.q.QueryRow(context.Background(), query, materialID, locationID).Scan(
		&b.ID, &b.MaterialID, &b.LocationID, &b.LotID, &b.Quantity, &b.AvgCost, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockBalance{
				MaterialID: materialID,
				LocationID: locationID,
				Quantity:   decimal.Zero,
				AvgCost:    decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &b, nil
}

// CreateIfAbsent insere a linha de saldo quando ainda não existe. Em corrida
// de primeiro recebimento o INSERT concorrente bloqueia na constraint única
// até o vencedor commitar; o perdedor recebe false e relê com FOR UPDATE.
func (r *StockBalanceRepo) CreateIfAbsent(balance *entity.StockBalance) (bool, error) {
	query := `
		INSERT INTO estoque_saldo (id, id_material, id_local, id_lote, saldo_atual, custo_medio, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (id_material, id_local) DO NOTHING`
	ct, err := r.q.Exec(context.Background(), query,
		balance.ID, balance.MaterialID, balance.LocationID, balance.LotID,
		balance.Quantity, balance.AvgCost,
	)
	if err != nil {
		return false, fmt.Errorf("create stock balance: %w", err)
	}
	return ct.RowsAffected() == 1, nil
}

// Upsert insere ou atualiza o saldo por (material, local). A constraint única
// em (id_material, id_local) garante no máximo uma linha viva por par. O motor
// só chama Upsert com a linha já bloqueada por GetForUpdate.
func (r *StockBalanceRepo) Upsert(balance *entity.StockBalance) error {
	query := `
		INSERT INTO estoque_saldo (id, id_material, id_local, id_lote, saldo_atual, custo_medio, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (id_material, id_local)
		DO UPDATE SET saldo_atual = EXCLUDED.saldo_atual, custo_medio = EXCLUDED.custo_medio, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		balance.ID, balance.MaterialID, balance.LocationID, balance.LotID,
		balance.Quantity, balance.AvgCost,
	)
	if err != nil {
		return fmt.Errorf("upsert stock balance: %w", err)
	}
	return nil
}

// ListByLocation lista os saldos positivos de um local (estoque disponível para saída).
func (r *StockBalanceRepo) ListByLocation(locationID string) ([]*entity.StockBalance, error) {
	query := `
		SELECT ` + balanceColumns + `
		FROM estoque_saldo WHERE id_local = $1 AND saldo_atual > 0
		ORDER BY id_material`
	rows, err := r.q.Query(context.Background(), query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list stock balances: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockBalance
	for rows.Next() {
		var b entity.StockBalance
		if err := rows.Scan(&b.ID, &b.MaterialID, &b.LocationID, &b.LotID, &b.Quantity, &b.AvgCost, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock balance: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
