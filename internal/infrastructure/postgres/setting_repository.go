package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/obrasoft/almoxarifado-api/internal/domain"
	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
	"github.com/obrasoft/almoxarifado-api/internal/domain/repository"
)

var _ repository.SettingRepository = (*SettingRepo)(nil)

// SettingRepo implementação das configurações globais sobre PostgreSQL.
type SettingRepo struct {
	pool *pgxpool.Pool
}

func NewSettingRepository(pool *pgxpool.Pool) *SettingRepo {
	return &SettingRepo{pool: pool}
}

// List lista todas as configurações ordenadas pela chave.
func (r *SettingRepo) List() ([]*entity.Setting, error) {
	query := `SELECT id, chave, valor, descricao, updated_at FROM configuracoes ORDER BY chave`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Setting
	for rows.Next() {
		var s entity.Setting
		if err := rows.Scan(&s.ID, &s.Key, &s.Value, &s.Description, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetByKey obtém uma configuração pela chave. Ausência devolve ErrNotFound.
func (r *SettingRepo) GetByKey(key string) (*entity.Setting, error) {
	query := `SELECT id, chave, valor, descricao, updated_at FROM configuracoes WHERE chave = $1`
	var s entity.Setting
	err := r.pool.QueryRow(context.Background(), query, key).Scan(
		&s.ID, &s.Key, &s.Value, &s.Description, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return &s, nil
}

// UpdateValue grava o valor JSON de uma configuração existente.
func (r *SettingRepo) UpdateValue(key string, value json.RawMessage) error {
	query := `UPDATE configuracoes SET valor = $2, updated_at = now() WHERE chave = $1`
	cmd, err := r.pool.Exec(context.Background(), query, key, value)
	if err != nil {
		return fmt.Errorf("update setting: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
