package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
	"github.com/obrasoft/almoxarifado-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementação read-only das unidades de medida sobre PostgreSQL.
type UnitRepo struct {
	pool *pgxpool.Pool
}

func NewUnitRepository(pool *pgxpool.Pool) *UnitRepo {
	return &UnitRepo{pool: pool}
}

// GetByID obtém uma unidade de medida por ID.
func (r *UnitRepo) GetByID(id string) (*entity.Unit, error) {
	query := `SELECT id, sigla, descricao FROM unidades_medida WHERE id = $1`
	var u entity.Unit
	err := r.pool.QueryRow(context.Background(), query, id).Scan(&u.ID, &u.Symbol, &u.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}

// List lista todas as unidades de medida ordenadas pela sigla.
func (r *UnitRepo) List() ([]*entity.Unit, error) {
	query := `SELECT id, sigla, descricao FROM unidades_medida ORDER BY sigla`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.Symbol, &u.Description); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
