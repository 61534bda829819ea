package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
	"github.com/obrasoft/almoxarifado-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementação de LotRepository sobre PostgreSQL.
type LotRepo struct {
	q Querier
}

// NewLotRepository constrói o adaptador de lotes. Passar pool ou tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create persiste um lote novo. Lotes são imutáveis após a criação.
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lotes (id, id_material, num_lote, quantidade_inicial, data_validade, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.MaterialID, lot.Number, lot.InitialQty, lot.ExpiresAt, lot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create lot: %w", err)
	}
	return nil
}

// GetByID obtém um lote por ID.
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	query := `
		SELECT id, id_material, num_lote, quantidade_inicial, data_validade, created_at
		FROM lotes WHERE id = $1`
	var l entity.Lot
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.MaterialID, &l.Number, &l.InitialQty, &l.ExpiresAt, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return &l, nil
}

// ListByMaterial lista os lotes de um material, mais recentes primeiro.
func (r *LotRepo) ListByMaterial(materialID string) ([]*entity.Lot, error) {
	query := `
		SELECT id, id_material, num_lote, quantidade_inicial, data_validade, created_at
		FROM lotes WHERE id_material = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, materialID)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lot
	for rows.Next() {
		var l entity.Lot
		if err := rows.Scan(&l.ID, &l.MaterialID, &l.Number, &l.InitialQty, &l.ExpiresAt, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
