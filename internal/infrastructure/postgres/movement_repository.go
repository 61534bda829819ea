package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
	"github.com/obrasoft/almoxarifado-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação de MovementRepository sobre PostgreSQL
// (usável com pool ou tx). A tabela é append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = "id, tipo_mov, id_material, quantidade, custo_unitario, id_local_origem, id_local_destino, id_lote, id_usuario, observacao, data_mov, created_at"

// Create persiste uma movimentação no razão.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimentacao (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	note := (*string)(nil)
	if movement.Note != "" {
		note = &movement.Note
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Type, movement.MaterialID, movement.Quantity,
		movement.UnitCost, movement.FromLocationID, movement.ToLocationID,
		movement.LotID, movement.UserID, note, movement.Date, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtém uma movimentação por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimentacao WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListByMaterial lista movimentações de um material num intervalo de datas.
func (r *MovementRepo) ListByMaterial(materialID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	return r.list("id_material", materialID, from, to, limit, offset)
}

// ListByLocation lista movimentações que tocam um local (origem ou destino).
func (r *MovementRepo) ListByLocation(locationID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movimentacao WHERE (id_local_origem = $1 OR id_local_destino = $1)`
	args := []any{locationID}
	query, args = appendDateRange(query, args, from, to)
	query += fmt.Sprintf(" ORDER BY data_mov DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.queryList(query, args)
}

func (r *MovementRepo) list(column, value string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movimentacao WHERE ` + column + ` = $1`
	args := []any{value}
	query, args = appendDateRange(query, args, from, to)
	query += fmt.Sprintf(" ORDER BY data_mov DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.queryList(query, args)
}

func appendDateRange(query string, args []any, from, to *time.Time) (string, []any) {
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND data_mov >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND data_mov <= $%d", len(args))
	}
	return query, args
}

func (r *MovementRepo) queryList(query string, args []any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var note *string
	err := row.Scan(
		&m.ID, &m.Type, &m.MaterialID, &m.Quantity, &m.UnitCost,
		&m.FromLocationID, &m.ToLocationID, &m.LotID, &m.UserID, &note,
		&m.Date, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if note != nil {
		m.Note = *note
	}
	return &m, nil
}
