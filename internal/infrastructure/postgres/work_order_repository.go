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

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementação do porto WorkOrderRepository sobre PostgreSQL.
type WorkOrderRepo struct {
	pool *pgxpool.Pool
}

// NewWorkOrderRepository constrói o adaptador de persistência para ordens de serviço.
func NewWorkOrderRepository(pool *pgxpool.Pool) *WorkOrderRepo {
	return &WorkOrderRepo{pool: pool}
}

const workOrderColumns = "id, codigo, descricao, equipe_responsavel, status, id_obra, created_at, updated_at"

// Create persiste uma ordem de serviço nova.
func (r *WorkOrderRepo) Create(order *entity.WorkOrder) error {
	query := `
		INSERT INTO ordens_servico (` + workOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		order.ID, order.Code, order.Description, order.Team, order.Status,
		order.ProjectID, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert work order: %w", err)
	}
	return nil
}

// GetByID obtém uma ordem de serviço por ID.
func (r *WorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM ordens_servico WHERE id = $1`
	var w entity.WorkOrder
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.Code, &w.Description, &w.Team, &w.Status, &w.ProjectID,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order: %w", err)
	}
	return &w, nil
}

// Update atualiza uma ordem de serviço existente.
func (r *WorkOrderRepo) Update(order *entity.WorkOrder) error {
	query := `
		UPDATE ordens_servico
		SET codigo = $2, descricao = $3, equipe_responsavel = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		order.ID, order.Code, order.Description, order.Team, order.Status, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update work order: %w", err)
	}
	return nil
}

// ListByStatus lista ordens de serviço num status, código mais recente primeiro.
func (r *WorkOrderRepo) ListByStatus(status string, limit, offset int) ([]*entity.WorkOrder, error) {
	query := `
		SELECT ` + workOrderColumns + `
		FROM ordens_servico WHERE status = $1 ORDER BY codigo DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkOrder
	for rows.Next() {
		var w entity.WorkOrder
		if err := rows.Scan(&w.ID, &w.Code, &w.Description, &w.Team, &w.Status,
			&w.ProjectID, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
